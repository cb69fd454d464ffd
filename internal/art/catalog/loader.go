package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Artwork is a user provided artwork loaded from disk.
type Artwork struct {
	Name     string // file name without extension
	Text     string
	FilePath string
}

// Loader loads artworks from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a new artwork loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all artwork files.
// Files without image lines are skipped. Results are sorted by name.
func (l *Loader) LoadAll() ([]Artwork, error) {
	var arts []Artwork

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		a, err := l.LoadFile(path)
		if err != nil {
			// Skip unusable files
			return nil
		}
		arts = append(arts, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(arts, func(i, j int) bool {
		return arts[i].Name < arts[j].Name
	})

	return arts, nil
}

// LoadFile loads a single artwork file.
func (l *Loader) LoadFile(path string) (Artwork, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Artwork{}, fmt.Errorf("catalog: reading file %s: %w", path, err)
	}

	text := string(data)
	if !HasImage(text) {
		return Artwork{}, fmt.Errorf("catalog: %s has no image lines", path)
	}

	base := filepath.Base(path)
	return Artwork{
		Name:     strings.TrimSuffix(base, filepath.Ext(base)),
		Text:     text,
		FilePath: path,
	}, nil
}

// LoadByName loads the artwork with the given name.
func (l *Loader) LoadByName(name string) (Artwork, error) {
	arts, err := l.LoadAll()
	if err != nil {
		return Artwork{}, err
	}

	for _, a := range arts {
		if a.Name == name {
			return a, nil
		}
	}

	return Artwork{}, fmt.Errorf("catalog: artwork not found: %s", name)
}

// Texts returns the text of every artwork, in order.
func Texts(arts []Artwork) []string {
	out := make([]string, len(arts))
	for i, a := range arts {
		out[i] = a.Text
	}
	return out
}

func isSupportedExtension(ext string) bool {
	switch ext {
	case ".txt", ".art":
		return true
	}
	return false
}
