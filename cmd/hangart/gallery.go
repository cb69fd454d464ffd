package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hangart/internal/art"
	"github.com/vovakirdan/hangart/internal/art/catalog"
	"github.com/vovakirdan/hangart/internal/storage"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Save and manage your own artworks",
	Long: `The gallery keeps named artworks in the hangart database. Use them in a
round with 'hangart play --art NAME'.

Artwork files are plain text; only lines starting with '|' are drawn.

Examples:
  hangart gallery add cat ./cat.txt
  hangart gallery import ./my-art
  hangart gallery list
  hangart gallery show cat
  hangart gallery rm cat`,
}

var galleryAddCmd = &cobra.Command{
	Use:   "add <name> <file|->",
	Short: "Save an artwork under a name, replacing an existing one",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(args[1], cmd.InOrStdin())
		if err != nil {
			return err
		}
		return withStore(func(store *storage.Store) error {
			if err := store.SaveArt(args[0], text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %q.\n", args[0])
			return nil
		})
	},
}

var galleryImportCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Save every .txt and .art artwork in a directory, named after its file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arts, err := catalog.NewLoader(args[0]).LoadAll()
		if err != nil {
			return err
		}
		if len(arts) == 0 {
			return fmt.Errorf("no artworks found in %s", args[0])
		}

		return withStore(func(store *storage.Store) error {
			for _, a := range arts {
				if err := store.SaveArt(a.Name, a.Text); err != nil {
					return err
				}
				logger.Debug("imported artwork", "name", a.Name, "file", a.FilePath)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d artworks.\n", len(arts))
			return nil
		})
	},
}

var galleryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved artworks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(func(store *storage.Store) error {
			arts, err := store.ListArt()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(arts) == 0 {
				fmt.Fprintln(out, "The gallery is empty.")
				return nil
			}

			maxNameLen := 4 // "Name" header
			for _, a := range arts {
				maxNameLen = max(maxNameLen, len(a.Name))
			}

			fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, "Name", "Size", "Updated")
			fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, "----", "----", "-------")
			for _, a := range arts {
				dim := art.New(a.Text, art.Offset{}).Dimension()
				fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, a.Name,
					fmt.Sprintf("%dx%d", dim.Width, dim.Height),
					a.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		})
	},
}

var galleryShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved artwork",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			a, err := store.Art(args[0])
			if err != nil {
				return galleryErr(args[0], err)
			}
			fmt.Fprint(cmd.OutOrStdout(), art.New(a.Text, art.Offset{}).String())
			return nil
		})
	},
}

var galleryRmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete a saved artwork",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store *storage.Store) error {
			if err := store.DeleteArt(args[0]); err != nil {
				return galleryErr(args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q.\n", args[0])
			return nil
		})
	},
}

func init() {
	galleryCmd.AddCommand(galleryAddCmd, galleryImportCmd, galleryListCmd, galleryShowCmd, galleryRmCmd)
}

// withStore opens the database for the duration of fn.
func withStore(fn func(*storage.Store) error) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}

	fnErr := fn(store)
	if err := store.Close(); err != nil && fnErr == nil {
		return err
	}
	return fnErr
}

func galleryErr(name string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no artwork named %q in the gallery", name)
	}
	return err
}
