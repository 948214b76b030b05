package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderwise/backend/internal/domain"
	"github.com/pkordes/wanderwise/backend/internal/handler"
)

func TestGetTheme_200(t *testing.T) {
	d := newDeps()
	d.prefs.theme = func(_ context.Context) (domain.Theme, error) { return domain.ThemeLight, nil }

	rec := do(t, d.router(), http.MethodGet, "/preferences/theme", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"theme":"light"}`, rec.Body.String())
}

func TestPutTheme_200(t *testing.T) {
	d := newDeps()
	d.prefs.setTheme = func(_ context.Context, raw string) (domain.Theme, error) {
		return domain.ParseTheme(raw)
	}

	rec := do(t, d.router(), http.MethodPut, "/preferences/theme", map[string]string{"theme": "dark"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ThemeDark, decode[handler.ThemeBody](t, rec).Theme)
}

func TestPutTheme_422_Unknown(t *testing.T) {
	d := newDeps()
	d.prefs.setTheme = func(_ context.Context, raw string) (domain.Theme, error) {
		return "", fmt.Errorf("%w: unknown theme %q (want light or dark)", domain.ErrValidation, raw)
	}

	rec := do(t, d.router(), http.MethodPut, "/preferences/theme", map[string]string{"theme": "sepia"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode[handler.ErrorResponse](t, rec)
	assert.Equal(t, `unknown theme "sepia" (want light or dark)`, body.Error.Message)
}

func TestToggleTheme_200(t *testing.T) {
	d := newDeps()
	d.prefs.toggleTheme = func(_ context.Context) (domain.Theme, error) { return domain.ThemeDark, nil }

	rec := do(t, d.router(), http.MethodPost, "/preferences/theme/toggle", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ThemeDark, decode[handler.ThemeBody](t, rec).Theme)
}
