package sky

import (
	"math"
	"math/rand/v2"

	"github.com/papapumpkin/nightsky/internal/pos"
)

// skyRadius is the radius, in percent, of the circle the sky is drawn in.
const skyRadius = 45

// Background scatters n decorative, unclassified stars uniformly over the
// sky circle. They belong to no paragraph (Paragraph is -1) and are never
// part of a generated Scene. All randomness comes from rng.
func Background(rng *rand.Rand, n int, margin float64) []Star {
	stars := make([]Star, 0, n)
	lo, hi := margin, 100-margin
	for range n {
		// sqrt keeps the density uniform over the disc.
		r := skyRadius * math.Sqrt(rng.Float64())
		theta := rng.Float64() * 2 * math.Pi
		size := SizeTiny
		if rng.IntN(4) == 0 {
			size = SizeSmall
		}
		stars = append(stars, Star{
			X:         clamp(50+r*math.Cos(theta), lo, hi),
			Y:         clamp(50+r*math.Sin(theta), lo, hi),
			Size:      size,
			Paragraph: -1,
			Color:     "#FFFFFF",
			Shape:     pos.ShapeCircle,
		})
	}
	return stars
}

// NewRand returns a deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
