package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dungeonforge/dungeon-api/internal/entities"
)

type StructureTestSuite struct {
	suite.Suite
	corridor *entities.Structure
}

func (s *StructureTestSuite) SetupTest() {
	s.corridor = &entities.Structure{
		Name: "corridor_ns",
		Type: entities.TileCorridor,
		Layers: [3][3][3]int{
			{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
			{{1, 0, 1}, {1, 0, 1}, {1, 0, 1}},
			{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
		},
		Edges: [4]entities.EdgePattern{"010", "000", "010", "000"},
	}
}

func (s *StructureTestSuite) TestRotate90PermutesEdges() {
	rotated, err := s.corridor.Rotate(90)
	s.Require().NoError(err)

	// A north/south corridor pointed clockwise becomes east/west.
	s.Equal(entities.EdgePattern("000"), rotated.Edge(entities.North))
	s.Equal(entities.EdgePattern("010"), rotated.Edge(entities.East))
	s.Equal(entities.EdgePattern("000"), rotated.Edge(entities.South))
	s.Equal(entities.EdgePattern("010"), rotated.Edge(entities.West))

	// Original is untouched.
	s.Equal(entities.EdgePattern("010"), s.corridor.Edge(entities.North))
}

func (s *StructureTestSuite) TestRotateRoundTrip() {
	asymmetric := &entities.Structure{
		Name: "room_corner",
		Type: entities.TileRoom,
		Layers: [3][3][3]int{
			{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
			{{0, 1, 1}, {0, 0, 1}, {1, 1, 1}},
			{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
		},
		Edges: [4]entities.EdgePattern{"011", "012", "000", "110"},
	}

	out := asymmetric
	for i := 0; i < 4; i++ {
		var err error
		out, err = out.Rotate(90)
		s.Require().NoError(err)
	}

	s.Equal(asymmetric.Edges, out.Edges)
	s.Equal(asymmetric.Layers, out.Layers)
}

func (s *StructureTestSuite) TestRotate90Then270IsIdentity() {
	once, err := s.corridor.Rotate(90)
	s.Require().NoError(err)
	back, err := once.Rotate(270)
	s.Require().NoError(err)

	s.Equal(s.corridor.Edges, back.Edges)
	s.Equal(s.corridor.Layers, back.Layers)
}

func (s *StructureTestSuite) TestRotateRejectsInvalidDegrees() {
	for _, deg := range []int{-90, 45, 360, 540} {
		_, err := s.corridor.Rotate(deg)
		s.Error(err, "degrees %d should be rejected", deg)
	}
}

func TestStructureSuite(t *testing.T) {
	suite.Run(t, new(StructureTestSuite))
}

func TestEdgePatternCompatible(t *testing.T) {
	tests := []struct {
		name string
		a, b entities.EdgePattern
		want bool
	}{
		{"identical open", "010", "010", true},
		{"open matches special", "010", "020", true},
		{"walls match walls", "000", "000", true},
		{"opening meets wall", "010", "000", false},
		{"offset openings", "100", "001", false},
		{"malformed length", "01", "010", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compatible(tt.b); got != tt.want {
				t.Errorf("Compatible(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Compatibility is symmetric.
			if got := tt.b.Compatible(tt.a); got != tt.want {
				t.Errorf("Compatible(%q, %q) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestEdgePatternWellFormed(t *testing.T) {
	for pattern, want := range map[entities.EdgePattern]bool{
		"000":  true,
		"012":  true,
		"222":  true,
		"01":   false,
		"0123": false,
		"01x":  false,
		"":     false,
	} {
		if got := pattern.IsWellFormed(); got != want {
			t.Errorf("IsWellFormed(%q) = %v, want %v", pattern, got, want)
		}
	}
}
