package viewer

import (
	"image/color"
	"math/rand/v2"
)

// RandomPalette returns one opaque color per face from a generator seeded
// with seed, so the same mesh always gets the same colors.
func RandomPalette(faces int, seed uint64) []color.RGBA {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	colors := make([]color.RGBA, faces)
	for i := range colors {
		colors[i] = color.RGBA{
			R: uint8(rng.IntN(256)),
			G: uint8(rng.IntN(256)),
			B: uint8(rng.IntN(256)),
			A: 0xff,
		}
	}
	return colors
}

// FlatPalette returns a single-entry palette; every face falls back to it.
func FlatPalette(c color.RGBA) []color.RGBA {
	return []color.RGBA{c}
}
