package generation

import (
	"strconv"
	"strings"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
	"github.com/dungeonforge/dungeon-api/internal/solver"
)

// ExtractGrid reads a dense grid out of a finished solver instance. A
// sparse readout takes priority over a direct grid; cells the readout
// does not cover stay void. Every cell is range-checked against the
// prototype count so downstream consumers never index out of bounds.
func ExtractGrid(instance any, dims entities.Dims, prototypeCount int) ([]int, error) {
	var grid []int

	switch inst := instance.(type) {
	case solver.Readout:
		densified, err := densify(inst.Readout(), dims)
		if err != nil {
			return nil, err
		}
		grid = densified
	case solver.GridReader:
		direct := inst.Grid()
		if len(direct) != dims.Volume() {
			return nil, errors.Internalf("solver grid has %d cells, want %d", len(direct), dims.Volume())
		}
		grid = make([]int, len(direct))
		copy(grid, direct)
	default:
		return nil, errors.Internal("solver exposes no readable grid")
	}

	for i, id := range grid {
		if id == entities.VoidCell {
			continue
		}
		if id < 0 || id >= prototypeCount {
			return nil, errors.Internalf("cell %d holds unknown prototype id %d", i, id)
		}
	}
	return grid, nil
}

// densify expands a sparse "x,y,z" readout into a dense flat grid with
// void cells everywhere the readout is silent.
func densify(readout map[string]int, dims entities.Dims) ([]int, error) {
	grid := make([]int, dims.Volume())
	for i := range grid {
		grid[i] = entities.VoidCell
	}

	for key, id := range readout {
		x, y, z, err := parseCellKey(key)
		if err != nil {
			return nil, err
		}
		if !dims.Contains(x, y, z) {
			return nil, errors.Internalf("readout cell %q is outside the %dx%dx%d volume", key, dims.X, dims.Y, dims.Z)
		}
		grid[dims.Index(x, y, z)] = id
	}
	return grid, nil
}

func parseCellKey(key string) (x, y, z int, err error) {
	parts := strings.Split(key, ",")
	if len(parts) != 3 {
		return 0, 0, 0, errors.Internalf("malformed readout cell key %q", key)
	}
	coords := make([]int, 3)
	for i, part := range parts {
		n, convErr := strconv.Atoi(strings.TrimSpace(part))
		if convErr != nil {
			return 0, 0, 0, errors.Internalf("malformed readout cell key %q", key)
		}
		coords[i] = n
	}
	return coords[0], coords[1], coords[2], nil
}

// Grid3D reshapes a flat grid into [z][y][x] nesting. The result shares
// no storage with the input.
func Grid3D(grid []int, dims entities.Dims) [][][]int {
	out := make([][][]int, dims.Z)
	for z := 0; z < dims.Z; z++ {
		out[z] = make([][]int, dims.Y)
		for y := 0; y < dims.Y; y++ {
			out[z][y] = make([]int, dims.X)
			for x := 0; x < dims.X; x++ {
				out[z][y][x] = grid[dims.Index(x, y, z)]
			}
		}
	}
	return out
}
