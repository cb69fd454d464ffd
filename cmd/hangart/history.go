package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hangart/internal/platform/tui"
	"github.com/vovakirdan/hangart/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent rounds",
	Long: `Show recently played rounds and overall statistics.

On a terminal the history opens as a scrollable table; when the output is
piped, or with --plain, it is printed as text.

Examples:
  hangart history
  hangart history --plain --limit 5`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of rounds to print in plain mode")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text even on a terminal")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	return withStore(func(store *storage.Store) error {
		fd := int(os.Stdout.Fd())
		if !flagPlain && term.IsTerminal(fd) {
			width, height, err := term.GetSize(fd)
			if err != nil {
				width, height = 80, 24
			}
			return tui.RunHistory(store, width, height)
		}

		results, err := store.RecentResults(flagLimit)
		if err != nil {
			return err
		}
		stats, err := store.Stats()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if stats.Played == 0 {
			fmt.Fprintln(out, "No rounds recorded yet.")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Run 'hangart play' to start!")
			return nil
		}

		fmt.Fprintf(out, "Played %d, won %d, best score %d\n\n", stats.Played, stats.Won, stats.BestScore)
		fmt.Fprintf(out, "  %-12s  %-14s  %-14s  %-6s  %-5s  %s\n", "Date", "Game", "Word", "Result", "Score", "Picture")
		fmt.Fprintf(out, "  %-12s  %-14s  %-14s  %-6s  %-5s  %s\n", "----", "----", "----", "------", "-----", "-------")
		for _, r := range results {
			row := tui.HistoryRow(r)
			fmt.Fprintf(out, "  %-12s  %-14s  %-14s  %-6s  %-5s  %s\n", row[0], row[1], row[2], row[3], row[4], row[5])
		}
		return nil
	})
}
