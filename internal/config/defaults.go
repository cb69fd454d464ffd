package config

import (
	_ "embed"
)

//go:embed defaults/hangman.yaml
var defaultHangmanYAML []byte

// DefaultHangmanConfig returns the default hangman configuration.
func DefaultHangmanConfig() HangmanConfig {
	return HangmanConfig{
		Lives: 7,
		Mode:  ModePenalty,
		Words: []string{
			"apple", "banana", "castle", "dragon", "elephant",
			"giraffe", "island", "jungle", "kitten", "lemon",
		},
		Placement: Placement{Center: true},
	}
}
