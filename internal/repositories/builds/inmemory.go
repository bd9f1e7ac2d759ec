package builds

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/errors"
)

// InMemoryRepository keeps builds in process memory
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Build
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates an empty in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.Build),
	}
}

// Create stores a copy of the build
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateBuild(input.Build); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Build.ID]; exists {
		return nil, errors.AlreadyExistsf(errBuildExists, input.Build.ID)
	}
	r.store[input.Build.ID] = copyBuild(input.Build)

	return &CreateOutput{Build: copyBuild(input.Build)}, nil
}

// Get retrieves a build by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf(errBuildNotFound, input.ID)
	}
	return &GetOutput{Build: copyBuild(b)}, nil
}

// List returns the owner's builds, oldest first
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Build, 0)
	for _, b := range r.store {
		if b.OwnerID == input.OwnerID {
			out = append(out, copyBuild(b))
		}
	}
	sortBuilds(out)
	return &ListOutput{Builds: out}, nil
}

// Delete removes a build
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf(errBuildNotFound, input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

func copyBuild(b *entities.Build) *entities.Build {
	c := *b
	c.Slots = append([]entities.BuildSlot(nil), b.Slots...)
	if b.Animal != nil {
		animal := *b.Animal
		c.Animal = &animal
	}
	return &c
}

// sortBuilds orders by creation time, then ID
func sortBuilds(builds []*entities.Build) {
	sort.Slice(builds, func(i, j int) bool {
		if !builds[i].CreatedAt.Equal(builds[j].CreatedAt) {
			return builds[i].CreatedAt.Before(builds[j].CreatedAt)
		}
		return builds[i].ID < builds[j].ID
	})
}
