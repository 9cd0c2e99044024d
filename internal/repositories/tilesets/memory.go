package tilesets

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/dungeonforge/dungeon-api/internal/errors"
	"github.com/dungeonforge/dungeon-api/internal/pkg/clock"
)

// memoryRepository is an in-process Repository for tests and single-node
// tooling. Records are stored as serialized copies so callers cannot
// mutate stored state through retained pointers.
type memoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	data  map[string][]byte
}

// NewMemoryRepository creates an in-memory repository
func NewMemoryRepository(clk clock.Clock) (Repository, error) {
	if clk == nil {
		return nil, errors.InvalidArgument("clock is required")
	}
	return &memoryRepository{
		clock: clk,
		data:  make(map[string][]byte),
	}, nil
}

var _ Repository = (*memoryRepository)(nil)

// Save stores a package, replacing any previous revision by name
func (r *memoryRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
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

	r.mu.Lock()
	r.data[input.Package.Name] = payload
	r.mu.Unlock()

	return &SaveOutput{Stored: stored}, nil
}

// Get retrieves a package by name
func (r *memoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	r.mu.RLock()
	payload, ok := r.data[input.Name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("tileset package %q not found", input.Name)
	}

	var stored StoredPackage
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal package %q", input.Name)
	}
	return &GetOutput{Stored: &stored}, nil
}

// List returns the names of all stored packages
func (r *memoryRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	names := make([]string, 0, len(r.data))
	for name := range r.data {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return &ListOutput{Names: names}, nil
}

// Delete removes a stored package
func (r *memoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	r.mu.Lock()
	_, existed := r.data[input.Name]
	delete(r.data, input.Name)
	r.mu.Unlock()

	return &DeleteOutput{Deleted: existed}, nil
}
