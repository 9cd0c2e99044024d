package tileset

import (
	"context"
	"fmt"
	"sort"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
)

// weightBuckets are the fixed histogram boundaries. The last bucket is
// open-ended.
var weightBuckets = []struct {
	label string
	upper float64
}{
	{"0-1", 1},
	{"1-2", 2},
	{"2-5", 5},
	{"5-10", 10},
	{"10+", 0},
}

// Stats aggregates read-only diagnostics over a prototype list.
func (o *orchestrator) Stats(_ context.Context, input *StatsInput) (*StatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("stats input is required")
	}
	return &StatsOutput{Stats: aggregate(input.Prototypes)}, nil
}

// Compare diffs the aggregations of two prototype lists.
func (o *orchestrator) Compare(_ context.Context, input *CompareInput) (*CompareOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("compare input is required")
	}

	a := aggregate(input.A)
	b := aggregate(input.B)

	output := &CompareOutput{
		A:                  a,
		B:                  b,
		TypeDelta:          make(map[entities.TileType]int),
		AverageWeightDelta: b.AverageWeight - a.AverageWeight,
	}

	for t, count := range a.CountByType {
		output.TypeDelta[t] -= count
	}
	for t, count := range b.CountByType {
		output.TypeDelta[t] += count
	}

	inA := make(map[string]struct{}, len(a.EdgePatterns))
	for _, pattern := range a.EdgePatterns {
		inA[pattern] = struct{}{}
	}
	inB := make(map[string]struct{}, len(b.EdgePatterns))
	for _, pattern := range b.EdgePatterns {
		inB[pattern] = struct{}{}
	}

	for _, pattern := range a.EdgePatterns {
		if _, ok := inB[pattern]; ok {
			output.SharedEdgePatterns = append(output.SharedEdgePatterns, pattern)
		} else {
			output.UniqueEdgePatternsA = append(output.UniqueEdgePatternsA, pattern)
		}
	}
	for _, pattern := range b.EdgePatterns {
		if _, ok := inA[pattern]; !ok {
			output.UniqueEdgePatternsB = append(output.UniqueEdgePatternsB, pattern)
		}
	}

	return output, nil
}

func aggregate(prototypes []*entities.ResolvedPrototype) *TilesetStats {
	stats := &TilesetStats{
		Count:           len(prototypes),
		CountByType:     make(map[entities.TileType]int),
		CountByRole:     make(map[string]int),
		WeightHistogram: make(map[string]int),
	}

	patternSet := make(map[string]struct{})
	totalWeight := 0.0

	for _, p := range prototypes {
		stats.CountByType[p.Type]++
		stats.CountByRole[p.Role]++
		totalWeight += p.Weight
		stats.WeightHistogram[bucketFor(p.Weight)]++

		if p.Structure != nil {
			for _, d := range entities.AllDirections() {
				patternSet[string(p.Edge(d))] = struct{}{}
			}
		}
	}

	if stats.Count > 0 {
		stats.AverageWeight = totalWeight / float64(stats.Count)
	}

	stats.EdgePatterns = make([]string, 0, len(patternSet))
	for pattern := range patternSet {
		stats.EdgePatterns = append(stats.EdgePatterns, pattern)
	}
	sort.Strings(stats.EdgePatterns)

	return stats
}

func bucketFor(weight float64) string {
	for _, bucket := range weightBuckets[:len(weightBuckets)-1] {
		if weight < bucket.upper {
			return bucket.label
		}
	}
	return weightBuckets[len(weightBuckets)-1].label
}

// String renders a short human-readable summary for the CLI.
func (s *TilesetStats) String() string {
	return fmt.Sprintf("%d prototypes, %d types, %d roles, avg weight %.2f, %d edge patterns",
		s.Count, len(s.CountByType), len(s.CountByRole), s.AverageWeight, len(s.EdgePatterns))
}
