// Package catalog holds the built-in ASCII artworks and loads user artwork
// directories. Entries are plain text in the marked-line format: art rows
// start with '|', everything else is a comment.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed builtin/*.txt
var builtinFS embed.FS

// builtin is filled once at init and never modified.
var builtin []string

func init() {
	names, err := fs.Glob(builtinFS, "builtin/*.txt")
	if err != nil {
		panic(fmt.Sprintf("catalog: cannot list built-in art: %v", err))
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("catalog: cannot read %s: %v", name, err))
		}
		text := string(data)
		if !HasImage(text) {
			panic(fmt.Sprintf("catalog: %s has no image lines", name))
		}
		builtin = append(builtin, text)
	}

	if len(builtin) == 0 {
		panic("catalog: no built-in art")
	}
}

// Source picks random indices. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Len returns the number of built-in artworks.
func Len() int {
	return len(builtin)
}

// Entry returns the built-in artwork at index i.
func Entry(i int) (string, error) {
	if i < 0 || i >= len(builtin) {
		return "", fmt.Errorf("catalog: no artwork %d (have %d)", i, len(builtin))
	}
	return builtin[i], nil
}

// All returns a copy of the built-in artworks.
func All() []string {
	out := make([]string, len(builtin))
	copy(out, builtin)
	return out
}

// Random returns a uniformly chosen built-in artwork.
func Random(src Source) string {
	return builtin[src.Intn(len(builtin))]
}

// maxCoord matches the clip of art.Parse: glyphs past column or row 255
// never reach an image.
const maxCoord = 255

// HasImage reports whether text contains at least one art line with a
// visible glyph inside the 256x256 area art.Parse keeps.
func HasImage(text string) bool {
	y := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.HasPrefix(line, "|") {
			continue
		}
		if y > maxCoord {
			return false
		}
		x := 0
		for _, r := range line[1:] {
			if x > maxCoord {
				break
			}
			if r != ' ' {
				return true
			}
			x++
		}
		y++
	}
	return false
}

// Credit returns the first comment line of an artwork without its '#', or
// "" when there is none. Built-in art keeps author credits this way.
func Credit(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}
	return ""
}
