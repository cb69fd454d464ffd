package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hangart/internal/art"
	"github.com/vovakirdan/hangart/internal/art/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in artworks",
	Long: `List the artworks shipped with hangart. Rounds without a configured
artwork pick one of these at random.

Examples:
  hangart catalog
  hangart catalog show 12`,
	Args: cobra.NoArgs,
	Run:  runCatalog,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <n>",
	Short: "Print built-in artwork N",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

func init() {
	catalogCmd.AddCommand(catalogShowCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  %-3s  %-7s  %-6s  %s\n", "#", "Size", "Glyphs", "Credit")
	fmt.Fprintf(out, "  %-3s  %-7s  %-6s  %s\n", "-", "----", "------", "------")
	for i, text := range catalog.All() {
		img := art.New(text, art.Offset{})
		dim := img.Dimension()
		fmt.Fprintf(out, "  %-3d  %-7s  %-6d  %s\n",
			i+1, fmt.Sprintf("%dx%d", dim.Width, dim.Height), img.Len(), catalog.Credit(text))
	}
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid artwork number %q", args[0])
	}
	text, err := builtinArt(n)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), art.New(text, art.Offset{}).String())
	return nil
}
