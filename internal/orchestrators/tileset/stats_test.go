package tileset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dungeonforge/dungeon-api/internal/catalog"
	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/orchestrators/tileset"
)

func newCompiler(t *testing.T) tileset.Service {
	t.Helper()
	cat, err := catalog.Builtin()
	require.NoError(t, err)

	compiler, err := tileset.NewOrchestrator(&tileset.Config{
		Structures: cat,
		Metadata:   cat,
		Packages:   cat,
		Cache:      tileset.NewCache(),
	})
	require.NoError(t, err)
	return compiler
}

func TestStats(t *testing.T) {
	compiler := newCompiler(t)
	ctx := context.Background()

	resolved, err := compiler.Resolve(ctx, &tileset.ResolveInput{PackageName: "standard"})
	require.NoError(t, err)

	output, err := compiler.Stats(ctx, &tileset.StatsInput{Prototypes: resolved.Prototypes})
	require.NoError(t, err)

	stats := output.Stats
	require.Equal(t, len(resolved.Prototypes), stats.Count)
	require.Equal(t, 11, stats.CountByType[entities.TileCorridor])
	require.Equal(t, 2, stats.CountByType[entities.TileStair])
	require.Positive(t, stats.AverageWeight)
	require.Contains(t, stats.EdgePatterns, "010")
	require.Contains(t, stats.EdgePatterns, "020")

	total := 0
	for _, count := range stats.WeightHistogram {
		total += count
	}
	require.Equal(t, stats.Count, total, "every prototype lands in exactly one bucket")
	require.Positive(t, stats.WeightHistogram["1-2"], "stairs weigh 1")
	require.Positive(t, stats.WeightHistogram["5-10"], "corridors weigh 5")
}

func TestStatsEmptyList(t *testing.T) {
	compiler := newCompiler(t)

	output, err := compiler.Stats(context.Background(), &tileset.StatsInput{})
	require.NoError(t, err)
	require.Equal(t, 0, output.Stats.Count)
	require.Zero(t, output.Stats.AverageWeight)
}

func TestCompare(t *testing.T) {
	compiler := newCompiler(t)
	ctx := context.Background()

	standard, err := compiler.Resolve(ctx, &tileset.ResolveInput{PackageName: "standard"})
	require.NoError(t, err)
	sparse, err := compiler.Resolve(ctx, &tileset.ResolveInput{PackageName: "sparse"})
	require.NoError(t, err)

	output, err := compiler.Compare(ctx, &tileset.CompareInput{
		A: standard.Prototypes,
		B: sparse.Prototypes,
	})
	require.NoError(t, err)

	require.Equal(t, len(standard.Prototypes), output.A.Count)
	require.Equal(t, len(sparse.Prototypes), output.B.Count)
	require.Negative(t, output.TypeDelta[entities.TileCorridor], "sparse carries fewer corridors")
	require.Contains(t, output.SharedEdgePatterns, "010")
}
