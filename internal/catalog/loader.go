package catalog

import (
	"gopkg.in/yaml.v3"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
)

// structureDoc is the YAML shape of a catalog structure.
type structureDoc struct {
	Name   string            `yaml:"name"`
	Type   entities.TileType `yaml:"type"`
	Edges  map[string]string `yaml:"edges"`
	Layers [][][]int         `yaml:"layers"`
}

// catalogDoc is the YAML shape of a full catalog data file.
type catalogDoc struct {
	Structures       []structureDoc               `yaml:"structures"`
	WeightPackages   []entities.WeightPackage     `yaml:"weight_packages"`
	RolePackages     []entities.RolePackage       `yaml:"role_packages"`
	PropertyPackages []entities.PropertyPackage   `yaml:"property_packages"`
	TilePackages     []entities.TileConfigPackage `yaml:"tile_packages"`
}

// LoadYAML parses catalog data and registers everything it contains.
// Data is treated as untrusted: structures and packages are validated
// before registration and the first failure aborts the load.
func LoadYAML(c *Catalog, data []byte) error {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.InvalidArgumentf("failed to parse catalog data: %v", err)
	}

	for i := range doc.Structures {
		s, err := doc.Structures[i].toStructure()
		if err != nil {
			return err
		}
		if err := c.RegisterStructure(s); err != nil {
			return err
		}
	}
	for i := range doc.WeightPackages {
		if err := c.RegisterWeightPackage(&doc.WeightPackages[i]); err != nil {
			return err
		}
	}
	for i := range doc.RolePackages {
		if err := c.RegisterRolePackage(&doc.RolePackages[i]); err != nil {
			return err
		}
	}
	for i := range doc.PropertyPackages {
		if err := c.RegisterPropertyPackage(&doc.PropertyPackages[i]); err != nil {
			return err
		}
	}
	for i := range doc.TilePackages {
		if err := c.RegisterPackage(&doc.TilePackages[i]); err != nil {
			return err
		}
	}
	return nil
}

func (d *structureDoc) toStructure() (*entities.Structure, error) {
	s := &entities.Structure{
		Name: d.Name,
		Type: d.Type,
	}

	for dir, key := range map[entities.Direction]string{
		entities.North: "north",
		entities.East:  "east",
		entities.South: "south",
		entities.West:  "west",
	} {
		pattern, ok := d.Edges[key]
		if !ok {
			return nil, errors.InvalidArgumentf("structure %q: missing %s edge", d.Name, key)
		}
		s.Edges[dir] = entities.EdgePattern(pattern)
	}

	if len(d.Layers) != entities.StructureLayers {
		return nil, errors.InvalidArgumentf("structure %q: expected %d layers, got %d",
			d.Name, entities.StructureLayers, len(d.Layers))
	}
	for l, layer := range d.Layers {
		if len(layer) != entities.EdgePatternLength {
			return nil, errors.InvalidArgumentf("structure %q: layer %d has %d rows",
				d.Name, l, len(layer))
		}
		for r, row := range layer {
			if len(row) != entities.EdgePatternLength {
				return nil, errors.InvalidArgumentf("structure %q: layer %d row %d has %d cells",
					d.Name, l, r, len(row))
			}
			for col, v := range row {
				s.Layers[l][r][col] = v
			}
		}
	}

	if err := s.Validate(); err != nil {
		return nil, errors.InvalidArgument(err.Error())
	}
	return s, nil
}
