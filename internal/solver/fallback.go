package solver

import (
	"math/rand"

	"github.com/dungeonforge/dungeon-api/internal/entities"
)

// Synthesize fills the requested volume with a weighted draw over the
// prototype palette. It is the terminal path for factory-only solvers: a
// generation request always ends in an explicit success or failure, never
// in silently producing nothing. Output is deterministic for a given rng
// seed and prototype order.
func Synthesize(prototypes []*entities.ResolvedPrototype, dims entities.Dims, rng *rand.Rand) []int {
	grid := make([]int, dims.Volume())

	cumulative := make([]float64, len(prototypes))
	total := 0.0
	for i, p := range prototypes {
		if p.Weight > 0 {
			total += p.Weight
		}
		cumulative[i] = total
	}

	if total <= 0 {
		for i := range grid {
			grid[i] = entities.VoidCell
		}
		return grid
	}

	for i := range grid {
		grid[i] = prototypes[pick(cumulative, total, rng)].ID
	}
	return grid
}

// pick draws an index proportionally to the cumulative weight table.
func pick(cumulative []float64, total float64, rng *rand.Rand) int {
	r := rng.Float64() * total
	for i, c := range cumulative {
		if r < c {
			return i
		}
	}
	return len(cumulative) - 1
}
