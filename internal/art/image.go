package art

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hangart/internal/art/catalog"
)

// Marker starts every art line. Lines without it are ignored, so art can be
// embedded in configuration text next to comments and other data.
const Marker = '|'

// maxCoord is the largest column or row index a Point can hold.
const maxCoord = 255

// Offset is where the image should be placed inside a larger screen.
// The art package only carries it around.
type Offset struct {
	X, Y int
}

// Dimension is the bounding box of an image: one past the largest
// coordinate seen, or zero when the image has no points.
type Dimension struct {
	Width, Height int
}

// Image is an ASCII-art picture whose glyphs are stored in disclosure order.
// Only the first Visible() points are drawn.
//
// An Image is not safe for concurrent use; Hide must not run while the image
// is being rendered from another goroutine.
type Image struct {
	points    []Point
	offset    Offset
	dimension Dimension
	visible   int
}

// New parses text into a fully disclosed image. When text contains no art
// lines, a built-in artwork is chosen at random instead.
func New(text string, offset Offset) *Image {
	return NewWithRand(text, offset, defaultRand)
}

// NewWithRand is New with an explicit randomness source, used for the
// catalog pick and for shuffling big images.
func NewWithRand(text string, offset Offset, rng Rand) *Image {
	points := Parse(text)
	if len(points) == 0 {
		fallback := catalog.Random(rng)
		points = Parse(fallback)
		if len(points) == 0 {
			panic(fmt.Sprintf("art: built-in artwork has no image lines:\n%s", fallback))
		}
	}

	dim := dimensionOf(points)
	order(points, rng)

	return &Image{
		points:    points,
		offset:    offset,
		dimension: dim,
		visible:   len(points),
	}
}

// Parse extracts the glyphs of all marked lines in scan order (top to
// bottom, left to right). The marker itself does not count as a column.
// Glyphs beyond column or row 255 are dropped.
func Parse(text string) []Point {
	var points []Point

	y := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.HasPrefix(line, string(Marker)) {
			continue
		}
		if y > maxCoord {
			break
		}

		x := 0
		for _, r := range line[1:] {
			if x > maxCoord {
				break
			}
			if r != ' ' {
				points = append(points, Point{X: uint8(x), Y: uint8(y), Code: r})
			}
			x++
		}
		y++
	}

	return points
}

// dimensionOf returns the bounding box of points.
func dimensionOf(points []Point) Dimension {
	if len(points) == 0 {
		return Dimension{}
	}

	var xMax, yMax uint8
	for _, p := range points {
		if p.X > xMax {
			xMax = p.X
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}
	return Dimension{Width: int(xMax) + 1, Height: int(yMax) + 1}
}

// Points returns a copy of the points in disclosure order.
func (img *Image) Points() []Point {
	out := make([]Point, len(img.points))
	copy(out, img.points)
	return out
}

// Len returns the total number of points.
func (img *Image) Len() int {
	return len(img.points)
}

// Visible returns how many points are currently disclosed.
func (img *Image) Visible() int {
	return img.visible
}

// Offset returns the placement hint given at construction.
func (img *Image) Offset() Offset {
	return img.offset
}

// Dimension returns the image bounding box.
func (img *Image) Dimension() Dimension {
	return img.dimension
}

// Progress returns the disclosed share of the image in [0, 1].
func (img *Image) Progress() float64 {
	if len(img.points) == 0 {
		return 0
	}
	return float64(img.visible) / float64(len(img.points))
}

// Equal reports whether two images have the same points in the same order,
// the same placement, dimension and disclosure state.
func (img *Image) Equal(other *Image) bool {
	if img == nil || other == nil {
		return img == other
	}
	if img.offset != other.offset || img.dimension != other.dimension || img.visible != other.visible {
		return false
	}
	if len(img.points) != len(other.points) {
		return false
	}
	for i := range img.points {
		if !img.points[i].Equal(other.points[i]) {
			return false
		}
	}
	return true
}
