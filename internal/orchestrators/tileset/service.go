// Package tileset implements the constraint compiler: it resolves
// declarative tile config packages into solver-ready prototype lists,
// validates edge-pattern connectivity, and aggregates diagnostics.
package tileset

//go:generate mockgen -destination=mock/mock_sources.go -package=tilesetmock github.com/dungeonforge/dungeon-api/internal/orchestrators/tileset StructureSource,MetadataSource,PackageSource

import (
	"context"

	"github.com/dungeonforge/dungeon-api/internal/entities"
)

// StructureSource supplies base structures by name.
type StructureSource interface {
	Structure(name string) (*entities.Structure, error)
}

// MetadataSource supplies weight, role, and property lookups, and lets
// the compiler materialize scaled weight packages under new names.
type MetadataSource interface {
	Weight(pkg string, t entities.TileType) (float64, error)
	WeightPackage(name string) (*entities.WeightPackage, error)
	RegisterWeightPackage(p *entities.WeightPackage) error
	HasWeightPackage(name string) bool
	Role(pkg, key string) (string, error)
	Properties(name string) (map[string]any, error)
}

// PackageSource supplies named tile config packages.
type PackageSource interface {
	Package(name string) (*entities.TileConfigPackage, error)
}

// Service defines the compiler interface.
type Service interface {
	// Resolve turns a named package or inline entry list into an ordered
	// prototype array.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// Validate runs structural and connectivity checks over a prototype
	// list without mutating it.
	Validate(ctx context.Context, input *ValidateInput) (*ValidateOutput, error)

	// Stats aggregates read-only diagnostics over a prototype list.
	Stats(ctx context.Context, input *StatsInput) (*StatsOutput, error)

	// Compare diffs the stats of two prototype lists.
	Compare(ctx context.Context, input *CompareInput) (*CompareOutput, error)

	// CreateMixedTileset concatenates filtered, weight-scaled slices of
	// several named packages and resolves the result.
	CreateMixedTileset(ctx context.Context, input *CreateMixedTilesetInput) (*ResolveOutput, error)

	// ClearCache drops every cached resolve result. It is the only
	// invalidation path.
	ClearCache()
}

// ResolveOptions select caching and partial-failure behavior. The
// serialized options are part of the cache key.
type ResolveOptions struct {
	// NoCache bypasses the cache read; the result is still written back.
	NoCache bool `json:"no_cache,omitempty"`

	// SkipErrors records per-entry failures and skips the offending
	// entries instead of aborting the whole resolve.
	SkipErrors bool `json:"skip_errors,omitempty"`

	// FilterTypes, when non-empty, keeps only entries whose structure
	// has one of the listed types.
	FilterTypes []entities.TileType `json:"filter_types,omitempty"`

	// WeightMultiplier scales resolved weights through a materialized
	// "{base}_scaled_{multiplier}" weight package. Zero means unscaled.
	WeightMultiplier float64 `json:"weight_multiplier,omitempty"`
}

// ResolveInput names a registered package or carries an inline entry
// list. Exactly one of PackageName and Entries must be set.
type ResolveInput struct {
	PackageName string
	Entries     []entities.TileConfigEntry
	Options     ResolveOptions
}

// ResolveOutput is the ordered prototype array plus skip diagnostics.
type ResolveOutput struct {
	Prototypes []*entities.ResolvedPrototype

	// Skipped lists per-entry failure messages when SkipErrors is set.
	Skipped []string

	// FromCache reports whether the result was served from the cache.
	FromCache bool
}

// ValidateInput carries the prototypes to check.
type ValidateInput struct {
	Prototypes []*entities.ResolvedPrototype
}

// ValidateOutput reports structural errors and isolation warnings.
type ValidateOutput struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// StatsInput carries the prototypes to aggregate.
type StatsInput struct {
	Prototypes []*entities.ResolvedPrototype
}

// TilesetStats is a read-only aggregation used for diagnostics and
// package tuning, not for correctness.
type TilesetStats struct {
	Count           int
	CountByType     map[entities.TileType]int
	CountByRole     map[string]int
	AverageWeight   float64
	EdgePatterns    []string
	WeightHistogram map[string]int
}

// StatsOutput wraps the aggregation.
type StatsOutput struct {
	Stats *TilesetStats
}

// CompareInput carries the two prototype lists to diff.
type CompareInput struct {
	A []*entities.ResolvedPrototype
	B []*entities.ResolvedPrototype
}

// CompareOutput reports both aggregations and their deltas.
type CompareOutput struct {
	A *TilesetStats
	B *TilesetStats

	// TypeDelta is count(B) - count(A) per tile type.
	TypeDelta map[entities.TileType]int

	// AverageWeightDelta is B's average weight minus A's.
	AverageWeightDelta float64

	SharedEdgePatterns  []string
	UniqueEdgePatternsA []string
	UniqueEdgePatternsB []string
}

// PackageMix selects a filtered, weight-scaled slice of one named
// package.
type PackageMix struct {
	PackageName      string
	FilterTypes      []entities.TileType
	WeightMultiplier float64
}

// CreateMixedTilesetInput names the ad hoc tileset and lists its mixes.
type CreateMixedTilesetInput struct {
	Name    string
	Mixes   []PackageMix
	Options ResolveOptions
}
