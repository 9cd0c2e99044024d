// Package entities provides core data structures for dungeon-api.
package entities

import "fmt"

// TileType classifies the semantic role of a structure in the dungeon.
type TileType string

// Tile types known to the catalog and the metadata packages.
const (
	TileCorridor  TileType = "corridor"
	TileRoom      TileType = "room"
	TileStair     TileType = "stair"
	TileDeadEnd   TileType = "dead_end"
	TileOpenSpace TileType = "open_space"
)

// Direction indexes the four edge signatures of a structure.
type Direction int

// Edge indices, in the fixed N/E/S/W order used throughout.
const (
	North Direction = iota
	East
	South
	West
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite returns the facing direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// AllDirections returns the four cardinal directions in N/E/S/W order.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// Edge pattern cells. A pattern is one character per face cell.
const (
	EdgeWall    = '0'
	EdgeOpen    = '1'
	EdgeSpecial = '2'
)

// EdgePatternLength is the number of cells along one face of a structure.
const EdgePatternLength = 3

// EdgePattern is a per-face signature deciding tile adjacency. Each
// character is one face cell: '0' wall, '1' open, '2' special.
type EdgePattern string

// IsWellFormed reports whether the pattern has exactly three cells drawn
// from the wall/open/special alphabet.
func (p EdgePattern) IsWellFormed() bool {
	if len(p) != EdgePatternLength {
		return false
	}
	for _, c := range p {
		if c != EdgeWall && c != EdgeOpen && c != EdgeSpecial {
			return false
		}
	}
	return true
}

// IsPassable reports whether the cell at position i is open or special.
func (p EdgePattern) IsPassable(i int) bool {
	return p[i] == EdgeOpen || p[i] == EdgeSpecial
}

// HasOpening reports whether any cell of the pattern is passable.
func (p EdgePattern) HasOpening() bool {
	for i := range p {
		if p.IsPassable(i) {
			return true
		}
	}
	return false
}

// Compatible reports whether two facing patterns may abut: at every
// position both sides must be simultaneously passable or simultaneously
// walled. Mere inequality is not enough to reject, nor equality to accept.
func (p EdgePattern) Compatible(q EdgePattern) bool {
	if len(p) != EdgePatternLength || len(q) != EdgePatternLength {
		return false
	}
	for i := 0; i < EdgePatternLength; i++ {
		if p.IsPassable(i) != q.IsPassable(i) {
			return false
		}
	}
	return true
}

// reverse flips a pattern end to end. Needed when a rotation changes the
// reading direction of a face.
func (p EdgePattern) reverse() EdgePattern {
	b := []byte(p)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return EdgePattern(b)
}

// StructureLayers is the number of vertical layers (floor, mid, ceiling).
const StructureLayers = 3

// Structure is an immutable 3-layer 3x3 voxel pattern with four edge
// signatures. Values are created once at catalog load; Rotate returns a
// new value and never mutates the receiver.
type Structure struct {
	Name   string
	Type   TileType
	Layers [StructureLayers][EdgePatternLength][EdgePatternLength]int
	Edges  [4]EdgePattern // indexed by Direction
}

// Edge returns the pattern facing the given direction.
func (s *Structure) Edge(d Direction) EdgePattern {
	return s.Edges[d]
}

// Rotate returns a copy of the structure rotated clockwise by the given
// number of degrees, which must be a multiple of 90 in [0, 360). Edges are
// cyclically permuted and re-read for the new orientation; layers are
// rotated in-plane. Rotating four times by 90 yields the original value.
func (s *Structure) Rotate(degrees int) (*Structure, error) {
	if degrees%90 != 0 || degrees < 0 || degrees >= 360 {
		return nil, fmt.Errorf("rotation must be one of 0, 90, 180, 270: got %d", degrees)
	}

	out := *s
	for i := 0; i < degrees/90; i++ {
		out = out.rotate90()
	}
	return &out, nil
}

// rotate90 rotates one quarter turn clockwise. North and south patterns
// are read west-to-east, east and west north-to-south, so the faces that
// arrive from a perpendicular orientation must be reversed.
func (s Structure) rotate90() Structure {
	out := s

	out.Edges[North] = s.Edges[West].reverse()
	out.Edges[East] = s.Edges[North]
	out.Edges[South] = s.Edges[East].reverse()
	out.Edges[West] = s.Edges[South]

	for l := 0; l < StructureLayers; l++ {
		for r := 0; r < EdgePatternLength; r++ {
			for c := 0; c < EdgePatternLength; c++ {
				out.Layers[l][r][c] = s.Layers[l][EdgePatternLength-1-c][r]
			}
		}
	}
	return out
}

// Validate checks structural well-formedness of a catalog entry.
func (s *Structure) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("structure name is required")
	}
	if s.Type == "" {
		return fmt.Errorf("structure %q: type is required", s.Name)
	}
	for _, d := range AllDirections() {
		if !s.Edges[d].IsWellFormed() {
			return fmt.Errorf("structure %q: malformed %s edge pattern %q", s.Name, d, s.Edges[d])
		}
	}
	return nil
}
