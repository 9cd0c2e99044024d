package entities

// PrototypeSource records where the resolved fields of a prototype came
// from, for diagnostics and package tuning.
type PrototypeSource struct {
	StructureName   string `json:"structure_name"`
	WeightPackage   string `json:"weight_package"`
	RolePackage     string `json:"role_package"`
	PropertyPackage string `json:"property_package"`
	Rotation        int    `json:"rotation"`
}

// ResolvedPrototype is one solver-ready tile variant: a rotated structure
// with its weight, role, and properties resolved. Prototypes are created
// fresh on every compile and never mutated afterwards; cached resolve
// results are therefore safe to share across readers.
type ResolvedPrototype struct {
	// ID is the positional index of this prototype in the resolved
	// array. Solver rule indices depend on it being stable.
	ID         int             `json:"id"`
	Structure  *Structure      `json:"structure"`
	Weight     float64         `json:"weight"`
	Role       string          `json:"role"`
	Type       TileType        `json:"type"`
	Properties map[string]any  `json:"properties,omitempty"`
	Source     PrototypeSource `json:"source"`
}

// Edge returns the structure's pattern facing the given direction.
func (p *ResolvedPrototype) Edge(d Direction) EdgePattern {
	return p.Structure.Edge(d)
}
