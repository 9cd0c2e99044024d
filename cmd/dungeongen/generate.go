package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dungeonforge/dungeon-api/internal/ascii"
	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/orchestrators/generation"
	"github.com/dungeonforge/dungeon-api/internal/orchestrators/tileset"
	"github.com/dungeonforge/dungeon-api/internal/pkg/clock"
	"github.com/dungeonforge/dungeon-api/internal/pkg/idgen"
	"github.com/dungeonforge/dungeon-api/internal/solver"
)

var (
	genPackage      string
	genDims         []int
	genSeed         int64
	genMaxSteps     int
	genStallTimeout time.Duration
	genShowLegend   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a dungeon layout from a tile package",
	Long: `Generate resolves the named tile configuration package, runs a
generation attempt over the requested volume, and prints the result as
per-layer ASCII floor plans.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genPackage, "package", "standard", "tile configuration package to resolve")
	generateCmd.Flags().IntSliceVar(&genDims, "dims", []int{8, 8, 1}, "volume as x,y,z")
	generateCmd.Flags().Int64Var(&genSeed, "seed", time.Now().UnixNano(), "generation seed")
	generateCmd.Flags().IntVar(&genMaxSteps, "max-steps", 0, "iteration cap (0 uses the default)")
	generateCmd.Flags().DurationVar(&genStallTimeout, "stall-timeout", 0, "stall timeout (0 uses the default)")
	generateCmd.Flags().BoolVar(&genShowLegend, "legend", false, "print the symbol legend")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if len(genDims) != 3 {
		return fmt.Errorf("--dims needs exactly three values, got %d", len(genDims))
	}
	dims := entities.Dims{X: genDims[0], Y: genDims[1], Z: genDims[2]}

	cat, err := buildCatalog()
	if err != nil {
		return err
	}
	compiler, err := buildCompiler(cat)
	if err != nil {
		return err
	}

	resolved, err := compiler.Resolve(ctx, &tileset.ResolveInput{
		PackageName: genPackage,
	})
	if err != nil {
		return err
	}

	validated, err := compiler.Validate(ctx, &tileset.ValidateInput{
		Prototypes: resolved.Prototypes,
	})
	if err != nil {
		return err
	}
	for _, warning := range validated.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}
	if !validated.IsValid {
		for _, e := range validated.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		return fmt.Errorf("package %q failed validation", genPackage)
	}

	generator, err := generation.NewOrchestrator(&generation.Config{
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID("attempt"),
	})
	if err != nil {
		return err
	}

	output, err := generator.Generate(ctx, &generation.GenerateInput{
		// A registration-only factory selects the built-in synthesizer;
		// plug a real solver in here to drive it instead.
		SolverFactory: func(setup *solver.Setup) (any, error) { return nil, nil },
		Prototypes:    resolved.Prototypes,
		Dims:          dims,
		Seed:          genSeed,
		MaxSteps:      genMaxSteps,
		StallTimeout:  genStallTimeout,
	})
	if err != nil {
		return err
	}

	rendered, err := ascii.Render(output.Grid3D, resolved.Prototypes)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	if genShowLegend {
		fmt.Println()
		fmt.Println(ascii.Legend())
	}
	fmt.Fprintf(os.Stderr, "attempt %s: %d prototypes, seed %d\n",
		output.AttemptID, len(resolved.Prototypes), genSeed)

	return nil
}
