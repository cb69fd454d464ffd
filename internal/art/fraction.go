package art

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Fraction is how much of a budget has been consumed: Num out of Den.
type Fraction struct {
	Num, Den int
}

// String formats the fraction as "n/d".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// ParseFraction parses "n/d". A bare "n" is rejected.
func ParseFraction(s string) (Fraction, error) {
	num, den, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Fraction{}, fmt.Errorf("art: fraction %q: missing '/'", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return Fraction{}, fmt.Errorf("art: fraction %q: bad numerator: %w", s, err)
	}
	d, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil {
		return Fraction{}, fmt.Errorf("art: fraction %q: bad denominator: %w", s, err)
	}
	return Fraction{Num: n, Den: d}, nil
}

// Hide sets how much of the image is disclosed the next time it is rendered.
//
// With T points, Fraction{0, d} shows all T points and Fraction{d, d} shows
// T/6 of them; values in between interpolate and never grow with Num. The
// result depends only on f, never on earlier calls. A zero (or negative)
// denominator is ignored. Num is clamped to [0, Den].
func (img *Image) Hide(f Fraction) {
	if f.Den <= 0 {
		return
	}

	num := min(max(f.Num, 0), f.Den)
	total := len(img.points)

	// 5*total*(den-num) needs 128 bits for large denominators. The quotient
	// is at most 5*total and the high word stays below den, so Div64 is safe.
	hi, lo := bits.Mul64(5*uint64(total), uint64(f.Den-num))
	shown, _ := bits.Div64(hi, lo, uint64(f.Den))

	visible := (int(shown) + total) / 6
	img.visible = min(max(visible, 0), total)
}

// Reveal discloses the whole image.
func (img *Image) Reveal() {
	img.visible = len(img.points)
}
