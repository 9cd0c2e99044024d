// Package ascii renders generated dungeon grids as plain-text floor
// plans for quick inspection from the command line.
package ascii

import (
	"fmt"
	"strings"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
)

const voidSymbol = ' '

// symbolFor picks the map symbol for one cell. Roles take priority over
// tile types so stairs read with their travel direction.
func symbolFor(p *entities.ResolvedPrototype) byte {
	switch p.Role {
	case "ascent":
		return '^'
	case "descent":
		return 'v'
	}

	switch p.Type {
	case entities.TileCorridor:
		return '.'
	case entities.TileRoom:
		return '#'
	case entities.TileStair:
		return 'S'
	case entities.TileDeadEnd:
		return 'x'
	case entities.TileOpenSpace:
		return ','
	default:
		return '?'
	}
}

// RenderLayer renders a single z layer of the grid, one text row per y
// row, northernmost row first.
func RenderLayer(grid3D [][][]int, z int, prototypes []*entities.ResolvedPrototype) (string, error) {
	if z < 0 || z >= len(grid3D) {
		return "", errors.InvalidArgumentf("layer %d out of range, grid has %d layers", z, len(grid3D))
	}

	var b strings.Builder
	layer := grid3D[z]
	for y := len(layer) - 1; y >= 0; y-- {
		for _, id := range layer[y] {
			if id == entities.VoidCell {
				b.WriteByte(voidSymbol)
				continue
			}
			if id < 0 || id >= len(prototypes) {
				return "", errors.InvalidArgumentf("cell holds unknown prototype id %d", id)
			}
			b.WriteByte(symbolFor(prototypes[id]))
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Render renders all layers bottom-up, separated by layer headings.
func Render(grid3D [][][]int, prototypes []*entities.ResolvedPrototype) (string, error) {
	var b strings.Builder
	for z := 0; z < len(grid3D); z++ {
		if z > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "== z=%d ==\n", z)

		layer, err := RenderLayer(grid3D, z, prototypes)
		if err != nil {
			return "", err
		}
		b.WriteString(layer)
	}
	return b.String(), nil
}

// Legend describes the map symbols.
func Legend() string {
	return `Legend:
  [^] Stairs up
  [v] Stairs down
  [S] Stairs (undirected)
  [#] Chamber/Room
  [.] Corridor
  [x] Dead-end
  [,] Open space
  [ ] Void`
}
