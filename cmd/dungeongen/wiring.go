package main

import (
	"os"

	"github.com/dungeonforge/dungeon-api/internal/catalog"
	"github.com/dungeonforge/dungeon-api/internal/orchestrators/tileset"
	"github.com/dungeonforge/dungeon-api/internal/pkg/clock"
	redisclient "github.com/dungeonforge/dungeon-api/internal/redis"
	"github.com/dungeonforge/dungeon-api/internal/repositories/tilesets"
)

var (
	catalogFiles []string
	redisAddr    string
)

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&catalogFiles, "catalog", nil,
		"additional catalog YAML files loaded over the builtin content")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "",
		"redis address for package storage (empty uses in-memory storage)")
}

// buildCatalog loads builtin content plus any extra catalog files.
func buildCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Builtin()
	if err != nil {
		return nil, err
	}
	for _, path := range catalogFiles {
		data, err := os.ReadFile(path) // #nosec G304 -- operator-provided path
		if err != nil {
			return nil, err
		}
		if err := catalog.LoadYAML(cat, data); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// buildCompiler wires a constraint compiler over the catalog with a
// fresh cache.
func buildCompiler(cat *catalog.Catalog) (tileset.Service, error) {
	return tileset.NewOrchestrator(&tileset.Config{
		Structures: cat,
		Metadata:   cat,
		Packages:   cat,
		Cache:      tileset.NewCache(),
	})
}

// buildRepository returns redis-backed storage when an address is
// configured, in-memory storage otherwise.
func buildRepository() (tilesets.Repository, error) {
	clk := clock.New()
	if redisAddr == "" {
		return tilesets.NewMemoryRepository(clk)
	}

	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, err
	}
	return tilesets.NewRedisRepository(&tilesets.Config{
		Client: client,
		Clock:  clk,
	})
}
