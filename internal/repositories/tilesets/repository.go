// Package tilesets provides repository interfaces and types for persisted
// tile configuration packages.
package tilesets

import (
	"context"
	"time"

	"github.com/dungeonforge/dungeon-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=tilesetsmock github.com/dungeonforge/dungeon-api/internal/repositories/tilesets Repository

// StoredPackage is a tile configuration package together with its
// persistence metadata.
type StoredPackage struct {
	// Package is the stored configuration. It is validated on save and
	// again on load, so a record tampered with at rest never reaches
	// the compiler.
	Package *entities.TileConfigPackage `json:"package"`

	// SavedAt is when this revision was written.
	SavedAt time.Time `json:"saved_at"`
}

// SaveInput contains parameters for saving a package
type SaveInput struct {
	Package *entities.TileConfigPackage
}

// SaveOutput contains the result of saving a package
type SaveOutput struct {
	Stored *StoredPackage
}

// GetInput contains parameters for retrieving a package by name
type GetInput struct {
	Name string
}

// GetOutput contains the result of retrieving a package
type GetOutput struct {
	Stored *StoredPackage
}

// ListInput contains parameters for listing stored package names
type ListInput struct{}

// ListOutput contains the stored package names in sorted order
type ListOutput struct {
	Names []string
}

// DeleteInput contains parameters for deleting a package
type DeleteInput struct {
	Name string
}

// DeleteOutput contains the result of deleting a package
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the interface for tile configuration package storage
type Repository interface {
	// Save stores a package, replacing any previous revision by name
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a package by name
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns the names of all stored packages
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a stored package
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
