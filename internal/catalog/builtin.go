package catalog

import (
	_ "embed"
)

//go:embed data/structures.yaml
var builtinStructures []byte

//go:embed data/packages.yaml
var builtinPackages []byte

// Builtin returns a catalog preloaded with the shipped structures and
// packages. The embedded data passes the same untrusted-input validation
// as anything arriving from the persistence layer.
func Builtin() (*Catalog, error) {
	c := New()
	if err := LoadYAML(c, builtinStructures); err != nil {
		return nil, err
	}
	if err := LoadYAML(c, builtinPackages); err != nil {
		return nil, err
	}
	return c, nil
}
