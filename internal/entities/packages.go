package entities

import "fmt"

// DefaultPackage is the fallback name used when a weight, role, or
// property lookup fails for a specific package.
const DefaultPackage = "default"

// WeightPackage maps tile types to relative likelihoods. Named packages
// are immutable once registered; scaled variants are materialized under a
// new name instead of mutating the base.
type WeightPackage struct {
	Name    string               `json:"name" yaml:"name"`
	Weights map[TileType]float64 `json:"weights" yaml:"weights"`
}

// RolePackage maps tile types (and, for stairs, specific structure names)
// to semantic role tags consumed by the renderer.
type RolePackage struct {
	Name  string            `json:"name" yaml:"name"`
	Roles map[string]string `json:"roles" yaml:"roles"`
}

// PropertyPackage carries free-form per-entry metadata.
type PropertyPackage struct {
	Name       string         `json:"name" yaml:"name"`
	Properties map[string]any `json:"properties" yaml:"properties"`
}

// Rotation values accepted by a tile config entry.
const FullRotation = 360

// TileConfigEntry is one declarative tuple of a tile config package. It
// has no behavior of its own; the compiler resolves it into a prototype.
type TileConfigEntry struct {
	StructureName   string `json:"structure_name" yaml:"structure_name"`
	WeightPackage   string `json:"weight_package" yaml:"weight_package"`
	RolePackage     string `json:"role_package" yaml:"role_package"`
	Rotation        int    `json:"rotation" yaml:"rotation"`
	PropertyPackage string `json:"property_package,omitempty" yaml:"property_package,omitempty"`
}

// Validate rejects malformed entries. This runs at package registration
// time so a malformed package can never reach the solver.
func (e *TileConfigEntry) Validate() error {
	if e.StructureName == "" {
		return fmt.Errorf("structure_name is required")
	}
	if e.WeightPackage == "" {
		return fmt.Errorf("entry %q: weight_package is required", e.StructureName)
	}
	if e.RolePackage == "" {
		return fmt.Errorf("entry %q: role_package is required", e.StructureName)
	}
	if e.Rotation%90 != 0 || e.Rotation < 0 || e.Rotation >= FullRotation {
		return fmt.Errorf("entry %q: rotation must be a multiple of 90 in [0,360): got %d",
			e.StructureName, e.Rotation)
	}
	return nil
}

// TileConfigPackage is an ordered list of entries describing one complete
// dungeon flavor. Order is semantically significant: it defines the stable
// prototype ids consumed by solver rule indices.
type TileConfigPackage struct {
	Name    string            `json:"name" yaml:"name"`
	Entries []TileConfigEntry `json:"entries" yaml:"entries"`
}

// Validate checks the package structurally. Packages arriving from the
// persistence layer are untrusted and must pass this before resolving.
func (p *TileConfigPackage) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("package name is required")
	}
	if len(p.Entries) == 0 {
		return fmt.Errorf("package %q has no entries", p.Name)
	}
	for i := range p.Entries {
		if err := p.Entries[i].Validate(); err != nil {
			return fmt.Errorf("package %q entry %d: %w", p.Name, i, err)
		}
	}
	return nil
}
