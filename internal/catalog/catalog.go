// Package catalog holds the structure catalog and the named metadata
// packages (weights, roles, properties, tile configs) the compiler
// resolves against. Registered values are immutable; scaled or derived
// variants are registered under new names.
package catalog

import (
	"sort"
	"sync"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
)

// Catalog is a process-wide registry of structures and packages. Reads
// may run concurrently; writes take the lock.
type Catalog struct {
	mu         sync.RWMutex
	structures map[string]*entities.Structure
	weights    map[string]*entities.WeightPackage
	roles      map[string]*entities.RolePackage
	properties map[string]*entities.PropertyPackage
	packages   map[string]*entities.TileConfigPackage
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		structures: make(map[string]*entities.Structure),
		weights:    make(map[string]*entities.WeightPackage),
		roles:      make(map[string]*entities.RolePackage),
		properties: make(map[string]*entities.PropertyPackage),
		packages:   make(map[string]*entities.TileConfigPackage),
	}
}

// RegisterStructure validates and stores a structure. Names are unique.
func (c *Catalog) RegisterStructure(s *entities.Structure) error {
	if s == nil {
		return errors.InvalidArgument("structure is required")
	}
	if err := s.Validate(); err != nil {
		return errors.InvalidArgument(err.Error())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.structures[s.Name]; ok {
		return errors.AlreadyExists("structure already registered: " + s.Name)
	}
	c.structures[s.Name] = s
	return nil
}

// Structure returns the named structure.
func (c *Catalog) Structure(name string) (*entities.Structure, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.structures[name]
	if !ok {
		return nil, errors.NotFoundf("unknown structure: %s", name)
	}
	return s, nil
}

// RegisterWeightPackage stores a weight table under its name. Re-registering
// an existing name is rejected so named packages stay immutable.
func (c *Catalog) RegisterWeightPackage(p *entities.WeightPackage) error {
	if p == nil || p.Name == "" {
		return errors.InvalidArgument("weight package with a name is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.weights[p.Name]; ok {
		return errors.AlreadyExists("weight package already registered: " + p.Name)
	}
	c.weights[p.Name] = p
	return nil
}

// Weight resolves a tile type's likelihood in the named package.
func (c *Catalog) Weight(pkg string, t entities.TileType) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.weights[pkg]
	if !ok {
		return 0, errors.NotFoundf("unknown weight package: %s", pkg)
	}
	w, ok := p.Weights[t]
	if !ok {
		return 0, errors.NotFoundf("weight package %s has no entry for type %s", pkg, t)
	}
	return w, nil
}

// WeightPackage returns the named weight table.
func (c *Catalog) WeightPackage(name string) (*entities.WeightPackage, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.weights[name]
	if !ok {
		return nil, errors.NotFoundf("unknown weight package: %s", name)
	}
	return p, nil
}

// HasWeightPackage reports whether the named weight package exists.
func (c *Catalog) HasWeightPackage(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.weights[name]
	return ok
}

// RegisterRolePackage stores a role table under its name.
func (c *Catalog) RegisterRolePackage(p *entities.RolePackage) error {
	if p == nil || p.Name == "" {
		return errors.InvalidArgument("role package with a name is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.roles[p.Name]; ok {
		return errors.AlreadyExists("role package already registered: " + p.Name)
	}
	c.roles[p.Name] = p
	return nil
}

// Role resolves a role tag by key in the named package. Keys are tile
// types, or specific structure names for the stair special case.
func (c *Catalog) Role(pkg, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.roles[pkg]
	if !ok {
		return "", errors.NotFoundf("unknown role package: %s", pkg)
	}
	r, ok := p.Roles[key]
	if !ok {
		return "", errors.NotFoundf("role package %s has no entry for %s", pkg, key)
	}
	return r, nil
}

// RegisterPropertyPackage stores a property bundle under its name.
func (c *Catalog) RegisterPropertyPackage(p *entities.PropertyPackage) error {
	if p == nil || p.Name == "" {
		return errors.InvalidArgument("property package with a name is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.properties[p.Name]; ok {
		return errors.AlreadyExists("property package already registered: " + p.Name)
	}
	c.properties[p.Name] = p
	return nil
}

// Properties returns the named property bundle.
func (c *Catalog) Properties(name string) (map[string]any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.properties[name]
	if !ok {
		return nil, errors.NotFoundf("unknown property package: %s", name)
	}
	return p.Properties, nil
}

// RegisterPackage validates and stores a tile config package. Malformed
// packages are rejected here, at create time, so they never reach the
// solver.
func (c *Catalog) RegisterPackage(p *entities.TileConfigPackage) error {
	if p == nil {
		return errors.InvalidArgument("package is required")
	}
	if err := p.Validate(); err != nil {
		return errors.InvalidArgument(err.Error())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.packages[p.Name]; ok {
		return errors.AlreadyExists("package already registered: " + p.Name)
	}
	c.packages[p.Name] = p
	return nil
}

// Package returns the named tile config package.
func (c *Catalog) Package(name string) (*entities.TileConfigPackage, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.packages[name]
	if !ok {
		return nil, errors.NotFoundf("unknown package: %s", name)
	}
	return p, nil
}

// PackageNames lists registered tile config packages in sorted order.
func (c *Catalog) PackageNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.packages))
	for name := range c.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
