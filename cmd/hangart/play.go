package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hangart/internal/core"
	"github.com/vovakirdan/hangart/internal/games/hangman"
	"github.com/vovakirdan/hangart/internal/platform/tui"
	"github.com/vovakirdan/hangart/internal/registry"
	"github.com/vovakirdan/hangart/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagArt        string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a round",
	Long: `Start playing. Without a game ID the mode from the configuration is used.

Controls:
  a-z        - Guess a letter
  Enter      - Next word (after the round is over)
  Ctrl+R     - Give up and start a new word
  Ctrl+S     - Save a text screenshot to ~/.hangart/screenshots
  Esc/Ctrl+C - Quit

Difficulty options:
  easy   - 9 lives
  normal - 7 lives
  hard   - 5 lives

Artwork (--art):
  NAME   - an artwork saved with 'hangart gallery add'
  #N     - built-in artwork N (see 'hangart catalog')
  FILE   - an artwork file

Set HANGART_LOG to a file path to write a debug log while playing.

Examples:
  hangart play
  hangart play hangman_reward
  hangart play --difficulty hard --art cat
  hangart play --config ./my-hangman.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagArt, "art", "", "Artwork for every round: gallery name, #N, or file")
}

func runPlay(_ *cobra.Command, args []string) error {
	settings, err := loadSettings(flagConfig, flagDifficulty, flagArt)
	if err != nil {
		return err
	}
	hangman.SetSettings(settings)

	gameID := hangman.IDForMode(settings.Config.Mode)
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'hangart list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Bubble Tea owns the terminal, so logs go to a file or nowhere
	var gameLogger *log.Logger
	if path := os.Getenv("HANGART_LOG"); path != "" {
		f, logErr := tea.LogToFile(path, "hangart")
		if logErr != nil {
			return fmt.Errorf("cannot open log file: %w", logErr)
		}
		defer f.Close()

		gameLogger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "hangart",
			Level:           logger.GetLevel(),
		})
	}

	// Open storage; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, gameLogger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
