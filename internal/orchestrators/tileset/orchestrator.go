package tileset

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
)

// Config holds the dependencies for the compiler orchestrator.
type Config struct {
	Structures StructureSource
	Metadata   MetadataSource
	Packages   PackageSource
	Cache      *Cache
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Structures == nil {
		vb.RequiredField("Structures")
	}
	if c.Metadata == nil {
		vb.RequiredField("Metadata")
	}
	if c.Packages == nil {
		vb.RequiredField("Packages")
	}
	if c.Cache == nil {
		vb.RequiredField("Cache")
	}

	return vb.Build()
}

type orchestrator struct {
	structures StructureSource
	metadata   MetadataSource
	packages   PackageSource
	cache      *Cache
}

// NewOrchestrator creates a new compiler orchestrator with the provided
// dependencies.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		structures: cfg.Structures,
		metadata:   cfg.Metadata,
		packages:   cfg.Packages,
		cache:      cfg.Cache,
	}, nil
}

// Resolve turns a named package or inline entry list into an ordered
// prototype array, applying rotation, weight/role fallback, and the
// caller's caching and partial-failure options.
func (o *orchestrator) Resolve(_ context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("resolve input is required")
	}
	if input.PackageName == "" && len(input.Entries) == 0 {
		return nil, errors.InvalidArgument("a package name or an inline entry list is required")
	}
	if input.PackageName != "" && len(input.Entries) > 0 {
		return nil, errors.InvalidArgument("package name and inline entries are mutually exclusive")
	}

	entries := input.Entries
	cacheable := input.PackageName != ""
	var key string

	if cacheable {
		key = o.cache.Key(input.PackageName, input.Options)
		if !input.Options.NoCache {
			if cached, ok := o.cache.Get(key); ok {
				return &ResolveOutput{Prototypes: cached, FromCache: true}, nil
			}
		}

		pkg, err := o.packages.Package(input.PackageName)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve package %s", input.PackageName)
		}
		entries = pkg.Entries
	} else {
		// Inline entries never went through registration, so the
		// create-time shape check runs here. Malformed entries are hard
		// errors regardless of SkipErrors.
		for i := range entries {
			if err := entries[i].Validate(); err != nil {
				return nil, errors.InvalidArgumentf("inline entry %d: %v", i, err)
			}
		}
	}

	output := &ResolveOutput{}
	for i := range entries {
		prototype, err := o.resolveEntry(&entries[i], input.Options)
		if err != nil {
			if input.Options.SkipErrors {
				output.Skipped = append(output.Skipped,
					fmt.Sprintf("entry %d (%s): %v", i, entries[i].StructureName, err))
				continue
			}
			return nil, errors.Wrapf(err, "entry %d (%s)", i, entries[i].StructureName)
		}
		if prototype == nil {
			// Filtered out.
			continue
		}
		prototype.ID = len(output.Prototypes)
		output.Prototypes = append(output.Prototypes, prototype)
	}

	if cacheable {
		// NoCache bypasses the read but still writes back.
		o.cache.Put(key, output.Prototypes)
	}

	slog.Info("Tileset resolved",
		"package", input.PackageName,
		"prototypes", len(output.Prototypes),
		"skipped", len(output.Skipped),
	)

	return output, nil
}

// resolveEntry produces one prototype, or nil when the entry is filtered
// out by the options. The ID is assigned by the caller.
func (o *orchestrator) resolveEntry(entry *entities.TileConfigEntry, opts ResolveOptions) (*entities.ResolvedPrototype, error) {
	structure, err := o.structures.Structure(entry.StructureName)
	if err != nil {
		return nil, err
	}

	if len(opts.FilterTypes) > 0 && !containsType(opts.FilterTypes, structure.Type) {
		return nil, nil
	}

	if entry.Rotation > 0 {
		structure, err = structure.Rotate(entry.Rotation)
		if err != nil {
			return nil, errors.InvalidArgument(err.Error())
		}
	}

	weight, weightPkg, err := o.resolveWeight(entry.WeightPackage, structure.Type, opts.WeightMultiplier)
	if err != nil {
		return nil, err
	}

	role, err := o.resolveRole(entry.RolePackage, structure)
	if err != nil {
		return nil, err
	}

	propertyPkg := entry.PropertyPackage
	if propertyPkg == "" {
		propertyPkg = entities.DefaultPackage
	}
	properties, err := o.metadata.Properties(propertyPkg)
	if err != nil {
		if propertyPkg != entities.DefaultPackage {
			return nil, err
		}
		// A missing default property package just means no properties.
		properties = nil
	}

	return &entities.ResolvedPrototype{
		Structure:  structure,
		Weight:     weight,
		Role:       role,
		Type:       structure.Type,
		Properties: properties,
		Source: entities.PrototypeSource{
			StructureName:   entry.StructureName,
			WeightPackage:   weightPkg,
			RolePackage:     entry.RolePackage,
			PropertyPackage: propertyPkg,
			Rotation:        entry.Rotation,
		},
	}, nil
}

// resolveWeight looks up the tile type's weight, falling back to the
// default package when the named one misses, and applies any scaling
// through a materialized named package.
func (o *orchestrator) resolveWeight(pkg string, t entities.TileType, multiplier float64) (float64, string, error) {
	sourcePkg := pkg
	weight, err := o.metadata.Weight(pkg, t)
	if err != nil {
		if !errors.IsNotFound(err) {
			return 0, "", err
		}
		sourcePkg = entities.DefaultPackage
		weight, err = o.metadata.Weight(entities.DefaultPackage, t)
		if err != nil {
			return 0, "", errors.Wrapf(err, "no weight for type %s in package %s or the default package", t, pkg)
		}
	}

	if multiplier > 0 && multiplier != 1 {
		scaledName, err := o.materializeScaledPackage(sourcePkg, multiplier)
		if err != nil {
			return 0, "", err
		}
		return weight * multiplier, scaledName, nil
	}
	return weight, sourcePkg, nil
}

// materializeScaledPackage registers a scaled copy of the base weight
// package under a derived name, preserving the immutability of named
// packages. Registering the same scaled name twice is fine.
func (o *orchestrator) materializeScaledPackage(base string, multiplier float64) (string, error) {
	name := fmt.Sprintf("%s_scaled_%s", base, strconv.FormatFloat(multiplier, 'g', -1, 64))
	if o.metadata.HasWeightPackage(name) {
		return name, nil
	}

	basePkg, err := o.metadata.WeightPackage(base)
	if err != nil {
		return "", err
	}

	scaled := &entities.WeightPackage{
		Name:    name,
		Weights: make(map[entities.TileType]float64, len(basePkg.Weights)),
	}
	for t, w := range basePkg.Weights {
		scaled.Weights[t] = w * multiplier
	}

	if err := o.metadata.RegisterWeightPackage(scaled); err != nil && !errors.IsAlreadyExists(err) {
		return "", err
	}
	return name, nil
}

// resolveRole applies the role lookup order. Stairs first try a role
// keyed by the specific structure name before the generic stair role;
// total failure falls back to the default role package with the same
// ordering.
func (o *orchestrator) resolveRole(pkg string, structure *entities.Structure) (string, error) {
	keys := []string{string(structure.Type)}
	if structure.Type == entities.TileStair {
		keys = []string{structure.Name, string(entities.TileStair)}
	}

	for _, sourcePkg := range []string{pkg, entities.DefaultPackage} {
		for _, key := range keys {
			role, err := o.metadata.Role(sourcePkg, key)
			if err == nil {
				return role, nil
			}
			if !errors.IsNotFound(err) {
				return "", err
			}
		}
	}
	return "", errors.NotFoundf("no role for %s in package %s or the default package", structure.Name, pkg)
}

// CreateMixedTileset concatenates filtered, weight-scaled slices of
// several named packages into one ad hoc entry list and resolves it.
func (o *orchestrator) CreateMixedTileset(ctx context.Context, input *CreateMixedTilesetInput) (*ResolveOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("a tileset name is required")
	}
	if len(input.Mixes) == 0 {
		return nil, errors.InvalidArgument("at least one package mix is required")
	}

	var entries []entities.TileConfigEntry
	for _, mix := range input.Mixes {
		pkg, err := o.packages.Package(mix.PackageName)
		if err != nil {
			return nil, errors.Wrapf(err, "mix package %s", mix.PackageName)
		}

		for i := range pkg.Entries {
			entry := pkg.Entries[i]

			if len(mix.FilterTypes) > 0 {
				structure, err := o.structures.Structure(entry.StructureName)
				if err != nil {
					return nil, errors.Wrapf(err, "mix package %s entry %d", mix.PackageName, i)
				}
				if !containsType(mix.FilterTypes, structure.Type) {
					continue
				}
			}

			if mix.WeightMultiplier > 0 && mix.WeightMultiplier != 1 {
				scaledName, err := o.materializeScaledPackage(entry.WeightPackage, mix.WeightMultiplier)
				if err != nil {
					return nil, errors.Wrapf(err, "mix package %s entry %d", mix.PackageName, i)
				}
				entry.WeightPackage = scaledName
			}

			entries = append(entries, entry)
		}
	}

	if len(entries) == 0 {
		return nil, errors.FailedPreconditionf("mixed tileset %s selected no entries", input.Name)
	}

	slog.Info("Mixed tileset assembled",
		"name", input.Name,
		"mixes", len(input.Mixes),
		"entries", len(entries),
	)

	return o.Resolve(ctx, &ResolveInput{Entries: entries, Options: input.Options})
}

// ClearCache drops every cached resolve result.
func (o *orchestrator) ClearCache() {
	o.cache.Clear()
}

func containsType(types []entities.TileType, t entities.TileType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}
