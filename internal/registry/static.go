// Package registry holds the built-in destination data and an in-memory
// DestinationRepo over it.
package registry

import (
	"context"
	"fmt"

	"github.com/pkordes/wanderwise/backend/internal/domain"
	"github.com/pkordes/wanderwise/backend/internal/repo"
)

// Static is an immutable, in-memory destination registry.
// Every read returns clones, so callers can never mutate the registry.
type Static struct {
	list []domain.Destination
	byID map[string]int
}

// NewStatic validates dests and builds a registry over a private copy.
// Returns domain.ErrValidation for invalid or duplicate destinations.
func NewStatic(dests []domain.Destination) (*Static, error) {
	s := &Static{
		list: make([]domain.Destination, 0, len(dests)),
		byID: make(map[string]int, len(dests)),
	}
	for _, d := range dests {
		if err := domain.ValidateDestination(d); err != nil {
			return nil, fmt.Errorf("registry.NewStatic: %w", err)
		}
		if _, dup := s.byID[d.ID]; dup {
			return nil, fmt.Errorf("registry.NewStatic: %w: duplicate destination id %q", domain.ErrValidation, d.ID)
		}
		s.byID[d.ID] = len(s.list)
		s.list = append(s.list, d.Clone())
	}
	return s, nil
}

// MustBaguio returns a Static over the built-in Baguio sample data.
// The sample data is known-valid, so a failure here is a programming error.
func MustBaguio() *Static {
	s, err := NewStatic(Baguio())
	if err != nil {
		panic(err)
	}
	return s
}

// List returns every destination in registry order.
func (s *Static) List(_ context.Context) ([]domain.Destination, error) {
	out := make([]domain.Destination, len(s.list))
	for i, d := range s.list {
		out[i] = d.Clone()
	}
	return out, nil
}

// GetByID returns one destination or domain.ErrNotFound.
func (s *Static) GetByID(_ context.Context, id string) (domain.Destination, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Destination{}, fmt.Errorf("registry.Static.GetByID: %w", domain.ErrNotFound)
	}
	return s.list[i].Clone(), nil
}

var _ repo.DestinationRepo = (*Static)(nil)
