package art

import (
	"math/rand"
	"slices"
)

// BigImageThreshold is the largest point count that is still disclosed as a
// diagonal sweep. Bigger images are disclosed in random order.
const BigImageThreshold = 100

// Rand is the randomness an Image needs at construction.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// globalRand uses the goroutine-safe top-level math/rand functions.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

var defaultRand Rand = globalRand{}

// order arranges points in disclosure order, in place.
// Small images sweep in from the lower left corner; equal weights keep their
// scan order. Big images materialize out of noise.
func order(points []Point, rng Rand) {
	if len(points) <= BigImageThreshold {
		slices.SortStableFunc(points, CompareWeight)
		return
	}
	rng.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
}
