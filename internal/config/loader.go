package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHangman loads the hangman configuration.
// Search order: customPath -> ~/.hangart/configs/hangman.yaml -> ./configs/hangman.yaml -> embedded default
//
// Only a custom path reports read or parse errors; the other locations are
// skipped silently when missing or broken. Missing fields keep their
// default values.
func LoadHangman(customPath string) (HangmanConfig, error) {
	cfg := DefaultHangmanConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hangman.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath, cfg); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "hangman.yaml"), cfg); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHangmanYAML, &cfg); err != nil {
		return DefaultHangmanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad unmarshals path over base. It reports false when the file is
// missing or unparsable.
func tryLoad(path string, base HangmanConfig) (HangmanConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hangart", "configs", filename)
}

// Marshal renders cfg as YAML, e.g. to seed a user config file.
func Marshal(cfg HangmanConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}
