package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dungeonforge/dungeon-api/internal/entities"
	"github.com/dungeonforge/dungeon-api/internal/errors"
	"github.com/dungeonforge/dungeon-api/internal/orchestrators/tileset"
	"github.com/dungeonforge/dungeon-api/internal/repositories/tilesets"
)

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Inspect and store tile configuration packages",
}

var packagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog and stored packages",
	RunE:  runPackagesList,
}

var packagesStatsCmd = &cobra.Command{
	Use:   "stats <package> [package]",
	Short: "Show tileset statistics, or compare two packages",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runPackagesStats,
}

var packagesPushCmd = &cobra.Command{
	Use:   "push <package>",
	Short: "Store a catalog package in the configured repository",
	Args:  cobra.ExactArgs(1),
	RunE:  runPackagesPush,
}

func init() {
	packagesCmd.AddCommand(packagesListCmd)
	packagesCmd.AddCommand(packagesStatsCmd)
	packagesCmd.AddCommand(packagesPushCmd)
}

func runPackagesList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cat, err := buildCatalog()
	if err != nil {
		return err
	}
	names := cat.PackageNames()
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("catalog: %s\n", name)
	}

	repo, err := buildRepository()
	if err != nil {
		return err
	}
	stored, err := repo.List(ctx, tilesets.ListInput{})
	if err != nil {
		return err
	}
	for _, name := range stored.Names {
		fmt.Printf("stored:  %s\n", name)
	}
	return nil
}

func runPackagesStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cat, err := buildCatalog()
	if err != nil {
		return err
	}
	compiler, err := buildCompiler(cat)
	if err != nil {
		return err
	}

	resolve := func(name string) (*tileset.ResolveOutput, error) {
		return compiler.Resolve(ctx, &tileset.ResolveInput{PackageName: name})
	}

	first, err := resolve(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		stats, err := compiler.Stats(ctx, &tileset.StatsInput{Prototypes: first.Prototypes})
		if err != nil {
			return err
		}
		fmt.Println(stats.Stats.String())
		return nil
	}

	second, err := resolve(args[1])
	if err != nil {
		return err
	}
	diff, err := compiler.Compare(ctx, &tileset.CompareInput{
		A: first.Prototypes,
		B: second.Prototypes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s:\n%s\n\n%s:\n%s\n\n", args[0], diff.A.String(), args[1], diff.B.String())
	types := make([]string, 0, len(diff.TypeDelta))
	for tileType := range diff.TypeDelta {
		types = append(types, string(tileType))
	}
	sort.Strings(types)
	for _, tileType := range types {
		fmt.Printf("delta %s: %+d\n", tileType, diff.TypeDelta[entities.TileType(tileType)])
	}
	fmt.Printf("delta average weight: %+.2f\n", diff.AverageWeightDelta)
	fmt.Printf("shared edge patterns: %v\n", diff.SharedEdgePatterns)
	return nil
}

func runPackagesPush(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cat, err := buildCatalog()
	if err != nil {
		return err
	}
	pkg, err := cat.Package(args[0])
	if err != nil {
		if errors.IsNotFound(err) {
			return fmt.Errorf("package %q is not in the catalog", args[0])
		}
		return err
	}

	repo, err := buildRepository()
	if err != nil {
		return err
	}
	saved, err := repo.Save(ctx, tilesets.SaveInput{Package: pkg})
	if err != nil {
		return err
	}

	fmt.Printf("stored %s at %s\n", saved.Stored.Package.Name, saved.Stored.SavedAt.Format("2006-01-02 15:04:05"))
	return nil
}
