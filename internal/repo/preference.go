package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/wanderwise/backend/internal/domain"
)

// ThemeKey is the KVStore key holding the theme preference string.
const ThemeKey = "theme"

// PreferenceRepo persists user interface preferences.
type PreferenceRepo interface {
	// Theme returns the stored theme, or domain.ThemeLight when none is stored.
	Theme(ctx context.Context) (domain.Theme, error)

	// SetTheme stores t.
	SetTheme(ctx context.Context, t domain.Theme) error

	// ToggleTheme atomically flips the stored theme and returns the new one.
	ToggleTheme(ctx context.Context) (domain.Theme, error)
}

type kvPreferenceRepo struct {
	kv  KVStore
	log *slog.Logger
}

// NewPreferenceRepo constructs a PreferenceRepo over kv.
func NewPreferenceRepo(kv KVStore, log *slog.Logger) PreferenceRepo {
	if log == nil {
		log = slog.Default()
	}
	return &kvPreferenceRepo{kv: kv, log: log}
}

func (r *kvPreferenceRepo) Theme(ctx context.Context) (domain.Theme, error) {
	v, ok, err := r.kv.Get(ctx, ThemeKey)
	if err != nil {
		return "", fmt.Errorf("repo.PreferenceRepo.Theme: %w", err)
	}
	if !ok {
		return domain.ThemeLight, nil
	}
	return r.parse(ctx, v), nil
}

// parse maps a stored value to a theme. Unknown values read as light.
func (r *kvPreferenceRepo) parse(ctx context.Context, v string) domain.Theme {
	t, err := domain.ParseTheme(v)
	if err != nil {
		r.log.WarnContext(ctx, "ignoring unknown stored theme", "value", v)
		return domain.ThemeLight
	}
	return t
}

func (r *kvPreferenceRepo) SetTheme(ctx context.Context, t domain.Theme) error {
	if err := r.kv.Set(ctx, ThemeKey, string(t)); err != nil {
		return fmt.Errorf("repo.PreferenceRepo.SetTheme: %w", err)
	}
	return nil
}

func (r *kvPreferenceRepo) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	var next domain.Theme
	err := r.kv.Update(ctx, ThemeKey, func(v string, ok bool) (string, error) {
		cur := domain.ThemeLight
		if ok {
			cur = r.parse(ctx, v)
		}
		next = cur.Toggle()
		return string(next), nil
	})
	if err != nil {
		return "", fmt.Errorf("repo.PreferenceRepo.ToggleTheme: %w", err)
	}
	return next, nil
}
