// Package art parses marked-up ASCII art into addressable glyphs and manages
// how much of the picture is disclosed.
//
// The package has no terminal dependencies: an Image renders to a flat text
// grid and the platform decides where and how to show it.
package art

// Point is a single art glyph at a zero-based grid coordinate.
// Code is never a space; spaces are the implicit background.
type Point struct {
	X, Y uint8
	Code rune
}

// Equal reports whether both points have the same coordinate and glyph.
func (p Point) Equal(other Point) bool {
	return p == other
}

// Weight is the disclosure weight of the point.
// Points near the lower left corner are light.
func (p Point) Weight() int {
	return int(p.X) - int(p.Y)
}

// CompareWeight orders two points by disclosure weight only.
// It is not an equality relation: different points may compare as 0.
func CompareWeight(a, b Point) int {
	wa, wb := a.Weight(), b.Weight()
	switch {
	case wa < wb:
		return -1
	case wa > wb:
		return 1
	default:
		return 0
	}
}
