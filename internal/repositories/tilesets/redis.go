package tilesets

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/dungeonforge/dungeon-api/internal/errors"
	"github.com/dungeonforge/dungeon-api/internal/pkg/clock"
	redisclient "github.com/dungeonforge/dungeon-api/internal/redis"
)

const (
	// Key pattern: tileset_package:{name}
	packageKeyPrefix = "tileset_package:"
	// Set of all stored package names, kept in lockstep with the
	// per-package keys.
	packageIndexKey = "tileset_packages"

	errPackageNil = "package cannot be nil"
	errNameEmpty  = "package name cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for tile packages
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save stores a package, replacing any previous revision by name
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Package == nil {
		return nil, errors.InvalidArgument(errPackageNil)
	}
	if err := input.Package.Validate(); err != nil {
		return nil, errors.InvalidArgumentf("invalid package: %s", err.Error())
	}

	stored := &StoredPackage{
		Package: input.Package,
		SavedAt: r.clock.Now(),
	}
	payload, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal package %q", input.Package.Name)
	}

	key := r.buildKey(input.Package.Name)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, payload, 0)
	pipe.SAdd(ctx, packageIndexKey, input.Package.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store package %q in Redis", input.Package.Name)
	}

	return &SaveOutput{Stored: stored}, nil
}

// Get retrieves a package by name
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	payload, err := r.client.Get(ctx, r.buildKey(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("tileset package %q not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get package %q from Redis", input.Name)
	}

	var stored StoredPackage
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal package %q", input.Name)
	}

	// The record bypassed our write path if this fails.
	if stored.Package == nil {
		return nil, errors.Internalf("stored package %q has no payload", input.Name)
	}
	if err := stored.Package.Validate(); err != nil {
		return nil, errors.Internalf("stored package %q is corrupt: %s", input.Name, err.Error())
	}
	if stored.Package.Name != input.Name {
		return nil, errors.Internalf("stored package %q holds data for %q", input.Name, stored.Package.Name)
	}

	return &GetOutput{Stored: &stored}, nil
}

// List returns the names of all stored packages
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, packageIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list packages from Redis")
	}
	sort.Strings(names)
	return &ListOutput{Names: names}, nil
}

// Delete removes a stored package
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, r.buildKey(input.Name))
	pipe.SRem(ctx, packageIndexKey, input.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete package %q from Redis", input.Name)
	}

	return &DeleteOutput{Deleted: del.Val() > 0}, nil
}

func (r *redisRepository) buildKey(name string) string {
	return fmt.Sprintf("%s%s", packageKeyPrefix, name)
}
