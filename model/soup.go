package model

import "math/rand/v2"

// Randomize inserts live cells inside vp, each with probability density
func Randomize(cells *CellSet, vp Viewport, density float64, rng *rand.Rand) {
	for y := range vp.Height {
		for x := range vp.Width {
			if rng.Float64() < density {
				cells.Insert(Coord{X: vp.Origin.X + x, Y: vp.Origin.Y + y})
			}
		}
	}
}

// InjectRandomLife adds count random live cells inside vp to break stagnation
func InjectRandomLife(cells *CellSet, vp Viewport, count int, rng *rand.Rand) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	for range count {
		cells.Insert(Coord{X: vp.Origin.X + rng.IntN(vp.Width), Y: vp.Origin.Y + rng.IntN(vp.Height)})
	}
}

// NewRNG returns a deterministic generator for seed
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
