package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dungeonforge/dungeon-api/internal/orchestrators/tileset"
)

var validateCmd = &cobra.Command{
	Use:   "validate [package...]",
	Short: "Validate tile packages for connectivity problems",
	Long: `Validate resolves each named package (every registered package when
none are given) and reports structural errors and isolation warnings.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cat, err := buildCatalog()
	if err != nil {
		return err
	}
	compiler, err := buildCompiler(cat)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = cat.PackageNames()
	}

	failed := 0
	for _, name := range names {
		resolved, err := compiler.Resolve(ctx, &tileset.ResolveInput{PackageName: name})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: resolve failed: %v\n", name, err)
			failed++
			continue
		}

		result, err := compiler.Validate(ctx, &tileset.ValidateInput{Prototypes: resolved.Prototypes})
		if err != nil {
			return err
		}

		for _, w := range result.Warnings {
			fmt.Printf("%s: warning: %s\n", name, w)
		}
		for _, e := range result.Errors {
			fmt.Printf("%s: error: %s\n", name, e)
		}
		if result.IsValid {
			fmt.Printf("%s: ok (%d prototypes)\n", name, len(resolved.Prototypes))
		} else {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d package(s) failed validation", failed)
	}
	return nil
}
