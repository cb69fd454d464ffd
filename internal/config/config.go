// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Disclosure modes decide what drives the art disclosure.
const (
	ModePenalty = "penalty" // image shrinks with every miss
	ModeReward  = "reward"  // image grows with every discovered letter
)

// HangmanConfig contains all configuration for the hangman game.
type HangmanConfig struct {
	Lives     int       `yaml:"lives"`
	Mode      string    `yaml:"mode"`
	Words     []string  `yaml:"words"`
	Art       string    `yaml:"art"`     // '|'-marked art lines; empty picks a built-in artwork
	ArtDir    string    `yaml:"art_dir"` // optional directory of extra artworks
	Placement Placement `yaml:"placement"`
}

// Placement says where the artwork goes on the game screen.
type Placement struct {
	Center bool `yaml:"center"` // center horizontally above the status lines
	X      int  `yaml:"x"`
	Y      int  `yaml:"y"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// LivesForPreset returns the number of lives for a difficulty preset,
// or 0 for an unknown preset.
func LivesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 9
	case DifficultyNormal:
		return 7
	case DifficultyHard:
		return 5
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *HangmanConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	lives := LivesForPreset(preset)
	if lives == 0 {
		return fmt.Errorf("config: unknown difficulty %q", preset)
	}
	cfg.Lives = lives
	return nil
}

// Validate checks that the config can run a game.
func (c HangmanConfig) Validate() error {
	var errs []error

	if c.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Lives))
	}
	switch c.Mode {
	case ModePenalty, ModeReward:
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	if len(c.CleanWords()) == 0 {
		errs = append(errs, errors.New("word list is empty"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid hangman config: %w", err)
	}
	return nil
}

// CleanWords returns the configured words trimmed, with blanks removed.
func (c HangmanConfig) CleanWords() []string {
	words := make([]string, 0, len(c.Words))
	for _, w := range c.Words {
		w = strings.TrimSpace(w)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
