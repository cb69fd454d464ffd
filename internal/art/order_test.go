package art

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"
)

func TestCompareWeightIsNotEquality(t *testing.T) {
	a := Point{X: 1, Y: 1, Code: 'a'}
	b := Point{X: 2, Y: 2, Code: 'b'}

	if CompareWeight(a, b) != 0 {
		t.Errorf("CompareWeight(%v, %v) = %d, want 0", a, b, CompareWeight(a, b))
	}
	if a.Equal(b) {
		t.Errorf("%v and %v should not be equal", a, b)
	}
	if !a.Equal(Point{X: 1, Y: 1, Code: 'a'}) {
		t.Error("identical points should be equal")
	}
	if a.Equal(Point{X: 1, Y: 1, Code: 'z'}) {
		t.Error("points with different glyphs should not be equal")
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		p    Point
		want int
	}{
		{Point{X: 0, Y: 0}, 0},
		{Point{X: 5, Y: 0}, 5},
		{Point{X: 0, Y: 5}, -5},
		{Point{X: 255, Y: 0}, 255},
		{Point{X: 0, Y: 255}, -255},
	}

	for _, tt := range tests {
		if got := tt.p.Weight(); got != tt.want {
			t.Errorf("%v.Weight() = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestSmallImageAscendingWeight(t *testing.T) {
	// A staircase gives every point a distinct weight.
	text := "|   d\n|  c\n| b\n|a\n"
	img := New(text, Offset{})

	points := img.Points()
	for i := 1; i < len(points); i++ {
		if points[i-1].Weight() >= points[i].Weight() {
			t.Errorf("weights not strictly ascending at %d: %v then %v", i, points[i-1], points[i])
		}
	}
	if points[0].Code != 'a' {
		t.Errorf("first point = %v, want the lower left 'a'", points[0])
	}
}

func TestSmallImageStableTies(t *testing.T) {
	// Every point of a 3x3 block on the same diagonal has the same weight;
	// ties must keep row-major scan order.
	img := New("|abc\n|def\n|ghi\n", Offset{})

	want := []rune("gdhaeibfc")
	got := make([]rune, 0, img.Len())
	for _, p := range img.Points() {
		got = append(got, p.Code)
	}
	if string(got) != string(want) {
		t.Errorf("disclosure order = %q, want %q", string(got), string(want))
	}
}

func TestSmallImageOrderIgnoresRand(t *testing.T) {
	text := "|abc\n|def\n"
	a := NewWithRand(text, Offset{}, rand.New(rand.NewSource(1)))
	b := NewWithRand(text, Offset{}, rand.New(rand.NewSource(2)))

	if !a.Equal(b) {
		t.Error("small images should not depend on the random source")
	}
}

// bigArt returns an art text with exactly n glyphs.
func bigArt(n int) string {
	var sb strings.Builder
	for n > 0 {
		row := min(n, 20)
		sb.WriteString("|")
		sb.WriteString(strings.Repeat("#", row))
		sb.WriteString("\n")
		n -= row
	}
	return sb.String()
}

func TestThresholdBoundary(t *testing.T) {
	tests := []struct {
		n      int
		sorted bool
	}{
		{BigImageThreshold - 1, true},
		{BigImageThreshold, true},
		{BigImageThreshold + 1, false},
		{400, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			text := bigArt(tt.n)
			img := NewWithRand(text, Offset{}, rand.New(rand.NewSource(42)))

			if img.Len() != tt.n {
				t.Fatalf("Len() = %d, want %d", img.Len(), tt.n)
			}

			sorted := slices.IsSortedFunc(img.Points(), CompareWeight)
			if tt.sorted && !sorted {
				t.Error("small image should be sorted by weight")
			}
			if !tt.sorted && sorted {
				t.Error("big image should be shuffled")
			}
		})
	}
}

func TestBigImageShuffleKeepsPoints(t *testing.T) {
	text := bigArt(250)
	img := NewWithRand(text, Offset{}, rand.New(rand.NewSource(7)))

	want := Parse(text)
	got := img.Points()
	cmp := func(a, b Point) int {
		if a.Y != b.Y {
			return int(a.Y) - int(b.Y)
		}
		return int(a.X) - int(b.X)
	}
	slices.SortFunc(got, cmp)
	slices.SortFunc(want, cmp)

	if !slices.Equal(got, want) {
		t.Error("shuffled image should contain exactly the parsed points")
	}
}

func TestBigImageShuffleDeterministicPerSeed(t *testing.T) {
	text := bigArt(150)
	a := NewWithRand(text, Offset{}, rand.New(rand.NewSource(99)))
	b := NewWithRand(text, Offset{}, rand.New(rand.NewSource(99)))

	if !a.Equal(b) {
		t.Error("same seed should give the same disclosure order")
	}
}
