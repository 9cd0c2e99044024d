package entities

import "fmt"

// VoidCell marks a grid cell no prototype was assigned to. Prototype ids
// start at zero, so the void id sits outside their range.
const VoidCell = -1

// Dims is the requested volume of a generation attempt.
type Dims struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Volume returns the total cell count.
func (d Dims) Volume() int {
	return d.X * d.Y * d.Z
}

// Validate rejects non-positive dimensions.
func (d Dims) Validate() error {
	if d.X <= 0 || d.Y <= 0 || d.Z <= 0 {
		return fmt.Errorf("dims must be positive: got %dx%dx%d", d.X, d.Y, d.Z)
	}
	return nil
}

// Index returns the flat-grid index of (x, y, z). Layout is x-fastest,
// then y, then z, matching the renderer's expectations.
func (d Dims) Index(x, y, z int) int {
	return z*d.X*d.Y + y*d.X + x
}

// Contains reports whether the coordinate lies within the volume.
func (d Dims) Contains(x, y, z int) bool {
	return x >= 0 && x < d.X && y >= 0 && y < d.Y && z >= 0 && z < d.Z
}
