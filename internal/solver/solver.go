// Package solver defines the narrow capability contract under which the
// generation orchestrator consumes an externally supplied solver, and a
// deterministic fallback synthesizer for factories that expose no usable
// instance API. Solver internals (entropy heuristics, contradiction
// recovery) are deliberately outside this contract.
package solver

import (
	"math/rand"

	"github.com/dungeonforge/dungeon-api/internal/entities"
)

// Capability is the closed set of solver API shapes the orchestrator can
// drive. It is determined exactly once, at construction.
type Capability int

const (
	// CapabilityOneShot marks legacy solvers whose Run call performs a
	// complete generation.
	CapabilityOneShot Capability = iota
	// CapabilityIncremental marks solvers driven by Expand once, then
	// Step until done.
	CapabilityIncremental
	// CapabilityFactoryOnly marks registration-only factories with no
	// usable instance; the fallback synthesizer produces the grid.
	CapabilityFactoryOnly
)

// String returns the capability name.
func (c Capability) String() string {
	switch c {
	case CapabilityOneShot:
		return "one_shot"
	case CapabilityIncremental:
		return "incremental"
	case CapabilityFactoryOnly:
		return "factory_only"
	default:
		return "unknown"
	}
}

// Setup carries everything a factory needs to construct a solver.
type Setup struct {
	Prototypes []*entities.ResolvedPrototype
	Dims       entities.Dims
	RNG        *rand.Rand
}

// Factory constructs a solver instance. A registration-only factory may
// return a nil instance; the orchestrator then falls back to internal
// synthesis.
type Factory func(setup *Setup) (any, error)

// OneShot is a complete-generation solver. Run either finishes the whole
// grid (returning true) or reports that the grid is already populated on
// the instance.
type OneShot interface {
	Run() (bool, error)
}

// Incremental is a stepwise solver: Expand is called once with the
// requested volume, then Step repeatedly until it returns true.
type Incremental interface {
	Expand(origin, dims entities.Dims) error
	Step() (bool, error)
}

// Readout is an optional capability: a sparse mapping from "x,y,z" keys
// to prototype ids covering a subset of the requested volume.
type Readout interface {
	Readout() map[string]int
}

// GridReader is an optional capability: a pre-existing dense grid on the
// instance.
type GridReader interface {
	Grid() []int
}

// Progressive is an optional capability the orchestrator uses for stall
// detection: any change in the reported value counts as forward progress.
type Progressive interface {
	Progress() int
}

// Classify determines the capability of a constructed instance. The
// priority order is fixed: a solver exposing both Run and Step is driven
// through Run.
func Classify(instance any) Capability {
	if instance == nil {
		return CapabilityFactoryOnly
	}
	if _, ok := instance.(OneShot); ok {
		return CapabilityOneShot
	}
	if _, ok := instance.(Incremental); ok {
		return CapabilityIncremental
	}
	return CapabilityFactoryOnly
}
