package tileset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
	"github.com/dungeonforge/dungeon-api/internal/orchestrators/tileset"
	tilesetmock "github.com/dungeonforge/dungeon-api/internal/orchestrators/tileset/mock"
)

type CacheTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	structures *tilesetmock.MockStructureSource
	metadata   *tilesetmock.MockMetadataSource
	packages   *tilesetmock.MockPackageSource
	cache      *tileset.Cache
	compiler   tileset.Service
	ctx        context.Context
}

func (s *CacheTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.structures = tilesetmock.NewMockStructureSource(s.ctrl)
	s.metadata = tilesetmock.NewMockMetadataSource(s.ctrl)
	s.packages = tilesetmock.NewMockPackageSource(s.ctrl)
	s.cache = tileset.NewCache()

	compiler, err := tileset.NewOrchestrator(&tileset.Config{
		Structures: s.structures,
		Metadata:   s.metadata,
		Packages:   s.packages,
		Cache:      s.cache,
	})
	s.Require().NoError(err)
	s.compiler = compiler
	s.ctx = context.Background()
}

func (s *CacheTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func miniPackage() *entities.TileConfigPackage {
	return &entities.TileConfigPackage{
		Name: "mini",
		Entries: []entities.TileConfigEntry{
			{StructureName: "corridor_ns", WeightPackage: "standard", RolePackage: "standard"},
		},
	}
}

func miniStructure() *entities.Structure {
	return &entities.Structure{
		Name:  "corridor_ns",
		Type:  entities.TileCorridor,
		Edges: [4]entities.EdgePattern{"010", "000", "010", "000"},
	}
}

// expectFullResolution wires one complete pass through the sources.
func (s *CacheTestSuite) expectFullResolution() {
	s.packages.EXPECT().Package("mini").Return(miniPackage(), nil).Times(1)
	s.structures.EXPECT().Structure("corridor_ns").Return(miniStructure(), nil).Times(1)
	s.metadata.EXPECT().Weight("standard", entities.TileCorridor).Return(5.0, nil).Times(1)
	s.metadata.EXPECT().Role("standard", "corridor").Return("passage", nil).Times(1)
	s.metadata.EXPECT().Properties(entities.DefaultPackage).
		Return(nil, errors.NotFound("no default properties")).Times(1)
}

func (s *CacheTestSuite) TestSecondResolveIsServedFromCache() {
	s.expectFullResolution()

	first, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "mini"})
	s.Require().NoError(err)
	s.False(first.FromCache)

	// No further source expectations: a re-resolution would fail the
	// gomock controller.
	second, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "mini"})
	s.Require().NoError(err)
	s.True(second.FromCache)
	s.Equal(first.Prototypes, second.Prototypes)
}

func (s *CacheTestSuite) TestNoCacheBypassesReadButWritesBack() {
	s.expectFullResolution()

	opts := tileset.ResolveOptions{NoCache: true}
	_, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "mini", Options: opts})
	s.Require().NoError(err)
	s.Equal(1, s.cache.Len(), "NoCache still writes the result back")

	// A NoCache resolve re-runs resolution even with a warm cache.
	s.expectFullResolution()
	output, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "mini", Options: opts})
	s.Require().NoError(err)
	s.False(output.FromCache)
}

func (s *CacheTestSuite) TestOptionsArePartOfTheKey() {
	s.expectFullResolution()
	_, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "mini"})
	s.Require().NoError(err)

	// Different options miss the cache and resolve again.
	s.expectFullResolution()
	_, err = s.compiler.Resolve(s.ctx, &tileset.ResolveInput{
		PackageName: "mini",
		Options:     tileset.ResolveOptions{SkipErrors: true},
	})
	s.Require().NoError(err)
	s.Equal(2, s.cache.Len())
}

func (s *CacheTestSuite) TestClearCacheForcesResolution() {
	s.expectFullResolution()
	_, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "mini"})
	s.Require().NoError(err)

	s.compiler.ClearCache()
	s.Equal(0, s.cache.Len())

	s.expectFullResolution()
	output, err := s.compiler.Resolve(s.ctx, &tileset.ResolveInput{PackageName: "mini"})
	s.Require().NoError(err)
	s.False(output.FromCache)
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}
