package service

import (
	"context"
	"fmt"

	"github.com/pkordes/wanderwise/backend/internal/domain"
	"github.com/pkordes/wanderwise/backend/internal/repo"
)

// PreferenceService reads and changes the theme preference.
type PreferenceService struct {
	prefs repo.PreferenceRepo
}

// NewPreferenceService constructs a PreferenceService.
func NewPreferenceService(prefs repo.PreferenceRepo) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

// Theme returns the current theme.
func (s *PreferenceService) Theme(ctx context.Context) (domain.Theme, error) {
	t, err := s.prefs.Theme(ctx)
	if err != nil {
		return "", fmt.Errorf("service.PreferenceService.Theme: %w", err)
	}
	return t, nil
}

// SetTheme parses and stores raw.
// Returns domain.ErrValidation for values other than "light" and "dark".
func (s *PreferenceService) SetTheme(ctx context.Context, raw string) (domain.Theme, error) {
	t, err := domain.ParseTheme(raw)
	if err != nil {
		return "", err
	}
	if err := s.prefs.SetTheme(ctx, t); err != nil {
		return "", fmt.Errorf("service.PreferenceService.SetTheme: %w", err)
	}
	return t, nil
}

// ToggleTheme flips the stored theme and returns the new value. Concurrent
// toggles each flip the theme once.
func (s *PreferenceService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	next, err := s.prefs.ToggleTheme(ctx)
	if err != nil {
		return "", fmt.Errorf("service.PreferenceService.ToggleTheme: %w", err)
	}
	return next, nil
}
