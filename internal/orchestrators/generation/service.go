// Package generation implements the solver-agnostic generation
// orchestrator: it adapts heterogeneous solver APIs, runs a cooperative
// bounded step loop, and extracts a dense voxel grid on success.
package generation

import (
	"context"
	"time"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/solver"
)

// Defaults applied to zero-valued generate inputs.
const (
	DefaultYieldEvery   = 250
	DefaultMaxSteps     = 100_000
	DefaultMaxYields    = 1_000
	DefaultStallTimeout = 5 * time.Second
)

// Service defines the generation interface.
type Service interface {
	// Generate drives one attempt to completion. Cancellation is
	// cooperative: the context is polled at yield boundaries, so
	// cancellation latency is bounded by YieldEvery steps. A failed or
	// aborted attempt's partial solver state is discarded, never
	// resumed; retries are the caller's responsibility.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// GenerateInput describes one generation attempt. It is consumed exactly
// once; issue a fresh input (and a fresh solver via the factory) per
// attempt.
type GenerateInput struct {
	SolverFactory solver.Factory
	Prototypes    []*entities.ResolvedPrototype
	Dims          entities.Dims

	// Seed drives the attempt's rng; identical seeds reproduce the
	// fallback synthesizer exactly.
	Seed int64

	// YieldEvery is the step interval between scheduler yields.
	YieldEvery int

	// MaxSteps bounds the total step count.
	MaxSteps int

	// MaxYields bounds the total yield count.
	MaxYields int

	// StallTimeout bounds wall-clock time since the last observed
	// forward progress, not since attempt start, so a slow but
	// progressing generation is never penalized.
	StallTimeout time.Duration
}

// GenerateOutput is produced only on a terminal success transition. The
// flat grid always has length Dims.Volume(); Grid3D is indexed [z][y][x].
type GenerateOutput struct {
	Grid   []int
	Grid3D [][][]int

	AttemptID  string
	Capability solver.Capability
	Steps      int
	Yields     int
}

// Scheduler decides when the step loop hands control back to the host
// and performs the hand-off. Between yields, stepping is synchronous and
// uninterruptible.
type Scheduler interface {
	// ShouldYield reports whether the loop should yield after the given
	// number of completed steps.
	ShouldYield(steps int) bool

	// Yield gives up one scheduling quantum, returning early if the
	// context is done.
	Yield(ctx context.Context) error
}
