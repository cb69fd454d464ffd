package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hangart/internal/art"
)

var (
	flagFraction string
	flagBuiltin  int
	flagStored   string
	flagInfo     bool
	flagStrict   bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Render an artwork at a disclosure fraction",
	Long: `Parse an artwork and print the glyphs left visible after hiding it by
the given fraction.

Only lines starting with '|' are part of the picture; the marker itself is
not drawn. A fraction n/d hides n parts out of d: 0/d shows everything, d/d
leaves a sixth of the glyphs. Input without any picture falls back to a random
built-in artwork.

Examples:
  hangart render cat.txt
  hangart render --builtin 7 --fraction 3/7
  hangart render --stored cat --fraction 1/2
  cat cat.txt | hangart render - --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&flagFraction, "fraction", "0/1", "Hidden part of the picture as n/d")
	renderCmd.Flags().IntVar(&flagBuiltin, "builtin", 0, "Render built-in artwork N (see 'hangart catalog')")
	renderCmd.Flags().StringVar(&flagStored, "stored", "", "Render a gallery artwork by name")
	renderCmd.Flags().BoolVar(&flagInfo, "info", false, "Print size and visibility to stderr")
	renderCmd.Flags().BoolVar(&flagStrict, "strict", false, "Fail on input without a picture instead of using a built-in artwork")
}

func runRender(cmd *cobra.Command, args []string) error {
	f, err := art.ParseFraction(flagFraction)
	if err != nil {
		return err
	}

	var text string
	switch {
	case flagBuiltin != 0:
		text, err = builtinArt(flagBuiltin)
	case flagStored != "":
		text, err = storedArt(flagStored)
	case len(args) == 1:
		text, err = readText(args[0], cmd.InOrStdin())
	default:
		return errors.New("nothing to render: give a file, '-', --builtin or --stored")
	}
	if err != nil {
		return err
	}
	if flagStrict && len(art.Parse(text)) == 0 {
		return errors.New("input has no picture lines (lines starting with '|')")
	}

	img := art.NewWithRand(text, art.Offset{}, newRand())
	img.Hide(f)

	fmt.Fprint(cmd.OutOrStdout(), img.String())

	if flagInfo {
		dim := img.Dimension()
		fmt.Fprintf(cmd.ErrOrStderr(), "%dx%d, %d of %d glyphs visible\n",
			dim.Width, dim.Height, img.Visible(), img.Len())
	}
	return nil
}
