// Package builds persists saved generals
package builds

//go:generate mockgen -destination=mock/mock_repository.go -package=buildsmock github.com/KirkDiggler/general-configurator/internal/repositories/builds Repository

import (
	"context"

	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/errors"
)

const (
	errBuildNil      = "build cannot be nil"
	errBuildIDEmpty  = "build ID cannot be empty"
	errOwnerIDEmpty  = "owner ID cannot be empty"
	errBuildNotFound = "build with ID %s not found"
	errBuildExists   = "build with ID %s already exists"
)

// Repository stores builds keyed by ID and indexed by owner
type Repository interface {
	// Create stores a new build
	// Returns errors.InvalidArgument for a nil build or empty IDs
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a build by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the build doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns an owner's builds, oldest first
	// Returns errors.InvalidArgument for an empty owner ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a build
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the build doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a build
type CreateInput struct {
	Build *entities.Build
}

// CreateOutput defines the output for creating a build
type CreateOutput struct {
	Build *entities.Build
}

// GetInput defines the input for getting a build
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a build
type GetOutput struct {
	Build *entities.Build
}

// ListInput defines the input for listing an owner's builds
type ListInput struct {
	OwnerID string
}

// ListOutput defines the output for listing builds
type ListOutput struct {
	Builds []*entities.Build
}

// DeleteInput defines the input for deleting a build
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a build
type DeleteOutput struct{}

func validateBuild(b *entities.Build) error {
	if b == nil {
		return errors.InvalidArgument(errBuildNil)
	}
	if b.ID == "" {
		return errors.InvalidArgument(errBuildIDEmpty)
	}
	if b.OwnerID == "" {
		return errors.InvalidArgument(errOwnerIDEmpty)
	}
	return nil
}
