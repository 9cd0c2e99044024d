package generation

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
	"github.com/dungeonforge/dungeon-api/internal/pkg/clock"
	"github.com/dungeonforge/dungeon-api/internal/pkg/idgen"
	"github.com/dungeonforge/dungeon-api/internal/solver"
)

// attemptState tracks an attempt through its lifecycle. Transitions are
// one way: created -> constructing -> running -> succeeded | failed.
type attemptState string

const (
	stateCreated      attemptState = "created"
	stateConstructing attemptState = "constructing"
	stateRunning      attemptState = "running"
	stateSucceeded    attemptState = "succeeded"
	stateFailed       attemptState = "failed"
)

// Config holds the generation orchestrator's dependencies.
type Config struct {
	Clock       clock.Clock
	IDGenerator idgen.Generator

	// Scheduler overrides the default step scheduler. When nil each
	// attempt gets a StepScheduler built from its YieldEvery.
	Scheduler Scheduler
}

// Validate ensures required dependencies are set.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the generation Service.
type Orchestrator struct {
	clock     clock.Clock
	idGen     idgen.Generator
	scheduler Scheduler
}

// NewOrchestrator creates a generation orchestrator with the given config.
func NewOrchestrator(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Orchestrator{
		clock:     cfg.Clock,
		idGen:     cfg.IDGenerator,
		scheduler: cfg.Scheduler,
	}, nil
}

// Ensure Orchestrator implements Service
var _ Service = (*Orchestrator)(nil)

// Generate implements Service.
func (o *Orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if err := validateGenerateInput(input); err != nil {
		return nil, err
	}
	applyDefaults(input)

	attemptID := o.idGen.Generate()
	slog.Debug("generation attempt created",
		"attempt_id", attemptID,
		"state", string(stateCreated),
		"dims", input.Dims,
		"prototypes", len(input.Prototypes),
	)

	rng := rand.New(rand.NewSource(input.Seed))
	instance, err := input.SolverFactory(&solver.Setup{
		Prototypes: input.Prototypes,
		Dims:       input.Dims,
		RNG:        rng,
	})
	if err != nil {
		return nil, o.fail(attemptID, stateConstructing, errors.WrapWithCode(err, errors.CodeInternal, "solver construction failed"))
	}

	capability := solver.Classify(instance)
	scheduler := o.scheduler
	if scheduler == nil {
		scheduler = NewStepScheduler(input.YieldEvery)
	}

	run := &attempt{
		input:     input,
		instance:  instance,
		scheduler: scheduler,
		clock:     o.clock,
	}

	var grid []int
	switch capability {
	case solver.CapabilityOneShot:
		grid, err = run.runOneShot(ctx)
	case solver.CapabilityIncremental:
		grid, err = run.runIncremental(ctx)
	case solver.CapabilityFactoryOnly:
		grid, err = run.runSynthesized(ctx, rng)
	default:
		err = errors.Internalf("unhandled solver capability %q", capability)
	}
	if err != nil {
		return nil, o.fail(attemptID, stateRunning, err)
	}

	slog.Info("generation attempt succeeded",
		"attempt_id", attemptID,
		"state", string(stateSucceeded),
		"capability", capability.String(),
		"steps", run.steps,
		"yields", run.yields,
	)

	return &GenerateOutput{
		Grid:       grid,
		Grid3D:     Grid3D(grid, input.Dims),
		AttemptID:  attemptID,
		Capability: capability,
		Steps:      run.steps,
		Yields:     run.yields,
	}, nil
}

func (o *Orchestrator) fail(attemptID string, from attemptState, err error) error {
	slog.Warn("generation attempt failed",
		"attempt_id", attemptID,
		"state", string(stateFailed),
		"from_state", string(from),
		"error", err.Error(),
	)
	return err
}

func validateGenerateInput(input *GenerateInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.SolverFactory == nil {
		vb.RequiredField("SolverFactory")
	}
	if len(input.Prototypes) == 0 {
		vb.RequiredField("Prototypes")
	}
	if err := input.Dims.Validate(); err != nil {
		vb.InvalidField("Dims", err.Error())
	}
	return vb.Build()
}

func applyDefaults(input *GenerateInput) {
	if input.YieldEvery <= 0 {
		input.YieldEvery = DefaultYieldEvery
	}
	if input.MaxSteps <= 0 {
		input.MaxSteps = DefaultMaxSteps
	}
	if input.MaxYields <= 0 {
		input.MaxYields = DefaultMaxYields
	}
	if input.StallTimeout <= 0 {
		input.StallTimeout = DefaultStallTimeout
	}
}

// attempt carries the mutable state of one running generation.
type attempt struct {
	input     *GenerateInput
	instance  any
	scheduler Scheduler
	clock     clock.Clock

	steps  int
	yields int
}

func (a *attempt) runOneShot(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Aborted("generation aborted before solver run")
	}

	inst := a.instance.(solver.OneShot)
	done, err := inst.Run()
	a.steps = 1
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "solver run failed")
	}
	// A false result means the solver left its grid on the instance
	// rather than signaling completion; extract either way.
	_ = done

	return ExtractGrid(a.instance, a.input.Dims, len(a.input.Prototypes))
}

func (a *attempt) runIncremental(ctx context.Context) ([]int, error) {
	inst := a.instance.(solver.Incremental)
	if err := inst.Expand(entities.Dims{}, a.input.Dims); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "solver expand failed")
	}

	lastProgress := a.clock.Now()
	lastObserved, observable := readProgress(a.instance)

	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.Abortedf("generation aborted after %d steps", a.steps)
		}

		done, err := inst.Step()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "solver step failed")
		}
		a.steps++
		if done {
			break
		}
		if a.steps >= a.input.MaxSteps {
			return nil, errors.ResourceExhaustedf("iteration cap reached after %d steps", a.steps)
		}

		if observable {
			if current, _ := readProgress(a.instance); current != lastObserved {
				lastObserved = current
				lastProgress = a.clock.Now()
			}
		}

		if !a.scheduler.ShouldYield(a.steps) {
			continue
		}
		a.yields++
		if a.yields >= a.input.MaxYields {
			return nil, errors.ResourceExhaustedf("yield cap reached after %d yields", a.yields)
		}
		if err := a.scheduler.Yield(ctx); err != nil {
			return nil, errors.Abortedf("generation aborted during yield after %d steps", a.steps)
		}
		if elapsed := a.clock.Now().Sub(lastProgress); elapsed > a.input.StallTimeout {
			return nil, errors.DeadlineExceededf("generation stalled for %s with no progress", elapsed.Round(time.Millisecond))
		}
	}

	return ExtractGrid(a.instance, a.input.Dims, len(a.input.Prototypes))
}

func (a *attempt) runSynthesized(ctx context.Context, rng *rand.Rand) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Aborted("generation aborted before synthesis")
	}
	return solver.Synthesize(a.input.Prototypes, a.input.Dims, rng), nil
}

// readProgress reports the solver's progress counter when it exposes one.
func readProgress(instance any) (int, bool) {
	p, ok := instance.(solver.Progressive)
	if !ok {
		return 0, false
	}
	return p.Progress(), true
}
