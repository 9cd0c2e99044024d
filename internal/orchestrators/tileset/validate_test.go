package tileset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dungeonforge/dungeon-api/internal/catalog"
	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/orchestrators/tileset"
)

type ValidateTestSuite struct {
	suite.Suite
	compiler tileset.Service
	ctx      context.Context
}

func (s *ValidateTestSuite) SetupTest() {
	cat, err := catalog.Builtin()
	s.Require().NoError(err)

	s.compiler, err = tileset.NewOrchestrator(&tileset.Config{
		Structures: cat,
		Metadata:   cat,
		Packages:   cat,
		Cache:      tileset.NewCache(),
	})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

// prototype builds a minimal prototype with uniform or per-face edges.
func prototype(id int, name string, weight float64, edges [4]entities.EdgePattern) *entities.ResolvedPrototype {
	return &entities.ResolvedPrototype{
		ID:     id,
		Type:   entities.TileCorridor,
		Role:   "passage",
		Weight: weight,
		Structure: &entities.Structure{
			Name:  name,
			Type:  entities.TileCorridor,
			Edges: edges,
		},
	}
}

func (s *ValidateTestSuite) TestStandardPackageIsFullyConnected() {
	resolved, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "standard"})
	s.Require().NoError(err)

	output, err := s.compiler.Validate(s.ctx, &tileset.ValidateInput{Prototypes: resolved.Prototypes})
	s.Require().NoError(err)

	s.True(output.IsValid)
	s.Empty(output.Errors)
	s.Empty(output.Warnings, "rotated corridor palette leaves no isolated patterns")
}

func (s *ValidateTestSuite) TestNonPositiveWeightIsAnError() {
	for _, weight := range []float64{0, -1} {
		output, err := s.compiler.Validate(s.ctx, &tileset.ValidateInput{
			Prototypes: []*entities.ResolvedPrototype{
				prototype(0, "corridor_ns", weight, [4]entities.EdgePattern{"010", "000", "010", "000"}),
			},
		})
		s.Require().NoError(err)
		s.False(output.IsValid)
		s.NotEmpty(output.Errors)
	}
}

func (s *ValidateTestSuite) TestIsolatedPatternsAreWarningsNotErrors() {
	// Two self-connecting families that cannot reach each other: both
	// survive validation but each pattern is flagged as isolated.
	output, err := s.compiler.Validate(s.ctx, &tileset.ValidateInput{
		Prototypes: []*entities.ResolvedPrototype{
			prototype(0, "narrow", 1, [4]entities.EdgePattern{"010", "010", "010", "010"}),
			prototype(1, "wide", 1, [4]entities.EdgePattern{"011", "011", "011", "011"}),
		},
	})
	s.Require().NoError(err)

	s.True(output.IsValid)
	s.Empty(output.Errors)
	s.Len(output.Warnings, 2)
}

func (s *ValidateTestSuite) TestZeroCandidateNeighborsIsAnError() {
	// Every face of this lone prototype mismatches every opposite face,
	// including its own: it can never be placed next to anything.
	output, err := s.compiler.Validate(s.ctx, &tileset.ValidateInput{
		Prototypes: []*entities.ResolvedPrototype{
			prototype(0, "unplaceable", 1, [4]entities.EdgePattern{"010", "011", "001", "110"}),
		},
	})
	s.Require().NoError(err)

	s.False(output.IsValid)
	s.Require().NotEmpty(output.Errors)
	s.Contains(output.Errors[len(output.Errors)-1], "no candidate neighbor")
}

func (s *ValidateTestSuite) TestMalformedEdgeIsAnError() {
	output, err := s.compiler.Validate(s.ctx, &tileset.ValidateInput{
		Prototypes: []*entities.ResolvedPrototype{
			prototype(0, "broken", 1, [4]entities.EdgePattern{"01", "000", "010", "000"}),
		},
	})
	s.Require().NoError(err)
	s.False(output.IsValid)
}

func (s *ValidateTestSuite) TestValidateDoesNotMutatePrototypes() {
	p := prototype(0, "corridor_ns", 3, [4]entities.EdgePattern{"010", "000", "010", "000"})
	before := *p
	beforeStructure := *p.Structure

	_, err := s.compiler.Validate(s.ctx, &tileset.ValidateInput{
		Prototypes: []*entities.ResolvedPrototype{p},
	})
	s.Require().NoError(err)

	s.Equal(before.Weight, p.Weight)
	s.Equal(before.Role, p.Role)
	s.Equal(beforeStructure, *p.Structure)
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateTestSuite))
}
