package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/vovakirdan/hangart/internal/art"
	"github.com/vovakirdan/hangart/internal/art/catalog"
	"github.com/vovakirdan/hangart/internal/config"
	"github.com/vovakirdan/hangart/internal/games/hangman"
	"github.com/vovakirdan/hangart/internal/storage"
)

// seed returns the --seed value, or a time-based seed when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newRand returns the RNG used for artwork ordering and fallback picks.
func newRand() art.Rand {
	return rand.New(rand.NewSource(seed()))
}

// readText reads a file, or standard input when path is "-".
func readText(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("cannot read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return string(data), nil
}

// builtinArt returns the built-in artwork with a 1-based index.
func builtinArt(n int) (string, error) {
	text, err := catalog.Entry(n - 1)
	if err != nil {
		return "", fmt.Errorf("no built-in artwork #%d (have 1-%d)", n, catalog.Len())
	}
	return text, nil
}

// storedArt returns a gallery artwork by name.
func storedArt(name string) (string, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	a, err := store.Art(name)
	if err != nil {
		return "", fmt.Errorf("gallery artwork %q: %w", name, err)
	}
	return a.Text, nil
}

// loadSettings builds game settings from a config file, a difficulty preset
// and an optional artwork. artRef names a gallery entry, a built-in number
// prefixed with '#', or a file.
func loadSettings(configPath, difficulty, artRef string) (hangman.Settings, error) {
	cfg, err := config.LoadHangman(configPath)
	if err != nil {
		return hangman.Settings{}, err
	}
	if difficulty != "" {
		if err := config.ApplyPreset(&cfg, config.DifficultyPreset(difficulty)); err != nil {
			return hangman.Settings{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return hangman.Settings{}, err
	}

	s := hangman.Settings{Config: cfg}
	if artRef == "" {
		return s, nil
	}

	s.Art, err = resolveArt(artRef)
	if err != nil {
		return hangman.Settings{}, err
	}
	return s, nil
}

func resolveArt(ref string) (string, error) {
	var n int
	if _, err := fmt.Sscanf(ref, "#%d", &n); err == nil {
		return builtinArt(n)
	}

	if text, err := storedArt(ref); err == nil {
		return text, nil
	}

	text, err := readText(ref, os.Stdin)
	if err != nil {
		return "", fmt.Errorf("artwork %q is neither a gallery entry nor a readable file", ref)
	}
	if !catalog.HasImage(text) {
		return "", fmt.Errorf("artwork %q has no image lines", ref)
	}
	return text, nil
}
