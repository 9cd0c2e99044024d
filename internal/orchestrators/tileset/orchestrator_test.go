package tileset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dungeonforge/dungeon-api/internal/catalog"
	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
	"github.com/dungeonforge/dungeon-api/internal/orchestrators/tileset"
)

type OrchestratorTestSuite struct {
	suite.Suite
	catalog  *catalog.Catalog
	compiler tileset.Service
	ctx      context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	var err error
	s.catalog, err = catalog.Builtin()
	s.Require().NoError(err)

	s.compiler, err = tileset.NewOrchestrator(&tileset.Config{
		Structures: s.catalog,
		Metadata:   s.catalog,
		Packages:   s.catalog,
		Cache:      tileset.NewCache(),
	})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TestResolveStandardPackage() {
	output, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "standard"})
	s.Require().NoError(err)
	s.Require().NotEmpty(output.Prototypes)
	s.Empty(output.Skipped)
	s.False(output.FromCache)

	pkg, err := s.catalog.Package("standard")
	s.Require().NoError(err)
	s.Len(output.Prototypes, len(pkg.Entries))

	for i, p := range output.Prototypes {
		s.Equal(i, p.ID, "prototype ids are positional")
		s.NotNil(p.Structure)
		s.Positive(p.Weight)
		s.NotEmpty(p.Role)
	}
}

func (s *OrchestratorTestSuite) TestResolveAppliesRotation() {
	output, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "standard"})
	s.Require().NoError(err)

	// Entry 1 is corridor_ns rotated 90: the opening swings east/west.
	rotated := output.Prototypes[1]
	s.Equal("corridor_ns", rotated.Source.StructureName)
	s.Equal(90, rotated.Source.Rotation)
	s.Equal(entities.EdgePattern("000"), rotated.Edge(entities.North))
	s.Equal(entities.EdgePattern("010"), rotated.Edge(entities.East))
	s.Equal(entities.EdgePattern("010"), rotated.Edge(entities.West))
}

func (s *OrchestratorTestSuite) TestResolveDeterminism() {
	opts := tileset.ResolveOptions{NoCache: true}
	first, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "standard", Options: opts})
	s.Require().NoError(err)
	second, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "standard", Options: opts})
	s.Require().NoError(err)

	s.Equal(first.Prototypes, second.Prototypes)
}

func (s *OrchestratorTestSuite) TestResolveWeightFallback() {
	// sparse has no open_space weight; the default package supplies it.
	output, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "sparse"})
	s.Require().NoError(err)

	var openSpace *entities.ResolvedPrototype
	for _, p := range output.Prototypes {
		if p.Type == entities.TileOpenSpace {
			openSpace = p
			break
		}
	}
	s.Require().NotNil(openSpace)
	s.Equal(2.0, openSpace.Weight)
	s.Equal(entities.DefaultPackage, openSpace.Source.WeightPackage)
}

func (s *OrchestratorTestSuite) TestResolveStairRoles() {
	output, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "standard"})
	s.Require().NoError(err)

	roles := make(map[string]string)
	for _, p := range output.Prototypes {
		if p.Type == entities.TileStair {
			roles[p.Source.StructureName] = p.Role
		}
	}
	s.Equal("ascent", roles["stair_up"], "stair role keyed by structure name wins")
	s.Equal("descent", roles["stair_down"])
}

func (s *OrchestratorTestSuite) TestResolveStairRoleFallsBackToGeneric() {
	// The default role package only carries the generic stair role.
	output, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{
		Entries: []entities.TileConfigEntry{
			{StructureName: "stair_up", WeightPackage: "standard", RolePackage: "default", Rotation: 0},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(output.Prototypes, 1)
	s.Equal("stair", output.Prototypes[0].Role)
}

func (s *OrchestratorTestSuite) TestResolveUnknownPackage() {
	_, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "nope"})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestResolveUnknownStructureAborts() {
	input := &tileset.ResolveInput{
		Entries: []entities.TileConfigEntry{
			{StructureName: "corridor_ns", WeightPackage: "standard", RolePackage: "standard"},
			{StructureName: "missing", WeightPackage: "standard", RolePackage: "standard"},
		},
	}

	_, err := s.compiler.Resolve(s.ctx, input)
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestResolveSkipErrors() {
	input := &tileset.ResolveInput{
		Entries: []entities.TileConfigEntry{
			{StructureName: "corridor_ns", WeightPackage: "standard", RolePackage: "standard"},
			{StructureName: "missing", WeightPackage: "standard", RolePackage: "standard"},
			{StructureName: "room_small", WeightPackage: "standard", RolePackage: "standard"},
		},
		Options: tileset.ResolveOptions{SkipErrors: true},
	}

	output, err := s.compiler.Resolve(s.ctx, input)
	s.Require().NoError(err)
	s.Len(output.Prototypes, 2)
	s.Len(output.Skipped, 1)
	s.Contains(output.Skipped[0], "missing")

	// Ids stay dense after a skip.
	s.Equal(0, output.Prototypes[0].ID)
	s.Equal(1, output.Prototypes[1].ID)
}

func (s *OrchestratorTestSuite) TestResolveMalformedInlineEntryIsHardError() {
	input := &tileset.ResolveInput{
		Entries: []entities.TileConfigEntry{
			{StructureName: "corridor_ns", WeightPackage: "standard", RolePackage: "standard", Rotation: 45},
		},
		Options: tileset.ResolveOptions{SkipErrors: true},
	}

	_, err := s.compiler.Resolve(s.ctx, input)
	s.Error(err)
	s.True(errors.IsInvalidArgument(err), "malformed entries are not skippable")
}

func (s *OrchestratorTestSuite) TestResolveFilterTypes() {
	output, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{
		PackageName: "standard",
		Options:     tileset.ResolveOptions{FilterTypes: []entities.TileType{entities.TileCorridor}},
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(output.Prototypes)
	for _, p := range output.Prototypes {
		s.Equal(entities.TileCorridor, p.Type)
	}
}

func (s *OrchestratorTestSuite) TestResolveWeightMultiplier() {
	base, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "standard"})
	s.Require().NoError(err)

	scaled, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{
		PackageName: "standard",
		Options:     tileset.ResolveOptions{WeightMultiplier: 2},
	})
	s.Require().NoError(err)

	s.Require().Len(scaled.Prototypes, len(base.Prototypes))
	for i := range base.Prototypes {
		s.InDelta(base.Prototypes[i].Weight*2, scaled.Prototypes[i].Weight, 1e-9)
	}

	// Scaling materialized a new named weight package; the base package
	// is untouched.
	s.Equal("standard_scaled_2", scaled.Prototypes[0].Source.WeightPackage)
	s.True(s.catalog.HasWeightPackage("standard_scaled_2"))
	w, err := s.catalog.Weight("standard", entities.TileCorridor)
	s.Require().NoError(err)
	s.Equal(5.0, w)
}

func (s *OrchestratorTestSuite) TestCreateMixedTileset() {
	output, err := s.compiler.CreateMixedTileset(s.ctx, &tileset.CreateMixedTilesetInput{
		Name: "corridors_and_heavy_rooms",
		Mixes: []tileset.PackageMix{
			{PackageName: "standard", FilterTypes: []entities.TileType{entities.TileCorridor}},
			{PackageName: "standard", FilterTypes: []entities.TileType{entities.TileRoom}, WeightMultiplier: 3},
		},
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(output.Prototypes)

	var corridors, rooms int
	for _, p := range output.Prototypes {
		switch p.Type {
		case entities.TileCorridor:
			corridors++
		case entities.TileRoom:
			rooms++
			s.InDelta(12.0, p.Weight, 1e-9, "room weight 4 scaled by 3")
			s.Equal("standard_scaled_3", p.Source.WeightPackage)
		default:
			s.Failf("unexpected type", "type %s", p.Type)
		}
	}
	s.Positive(corridors)
	s.Positive(rooms)
}

func (s *OrchestratorTestSuite) TestCreateMixedTilesetEmptySelection() {
	_, err := s.compiler.CreateMixedTileset(s.ctx, &tileset.CreateMixedTilesetInput{
		Name: "empty",
		Mixes: []tileset.PackageMix{
			{PackageName: "sparse", FilterTypes: []entities.TileType{"no_such_type"}},
		},
	})
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := tileset.NewOrchestrator(&tileset.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
