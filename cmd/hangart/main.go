// hangart is a hangman game whose ASCII-art picture fades away with every
// miss, or appears as the word is found.
//
// Usage:
//
//	hangart play [game]       - Play a round in the terminal
//	hangart list              - List available games
//	hangart render [file|-]   - Render an artwork at a disclosure fraction
//	hangart catalog           - List the built-in artworks
//	hangart gallery ...       - Manage saved artworks
//	hangart history           - Show recent rounds
//	hangart config            - Print the effective game configuration
//	hangart serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--db <path>         - Set database path (default: ~/.hangart/hangart.db)
//	--log-level <level> - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/hangart/internal/games/hangman"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hangart",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangart",
	Short: "Hangman with ASCII-art pictures in your terminal",
	Long: `hangart is a terminal hangman game. Every round comes with an ASCII-art
picture: in the classic mode each miss wipes part of it away, in the reward
mode the picture appears as you find the letters.

Available commands:
  play     - Play a round
  list     - Show all available games
  render   - Render an artwork at a disclosure fraction
  catalog  - List or show the built-in artworks
  gallery  - Save and manage your own artworks
  history  - View recent rounds
  config   - Print the effective game configuration
  serve    - Start SSH server for remote play

Examples:
  hangart play
  hangart play hangman_reward --difficulty easy
  hangart render --builtin 3 --fraction 2/5
  hangart gallery add cat ./cat.txt
  hangart serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hangart/hangart.db", "Path to the results and gallery database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
