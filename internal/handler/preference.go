package handler

import (
	"net/http"

	"github.com/pkordes/wanderwise/backend/internal/domain"
)

// ThemeBody is the request and response body of the theme routes.
type ThemeBody struct {
	Theme domain.Theme `json:"theme"`
}

// GetTheme handles GET /preferences/theme.
func (s *Server) GetTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.prefs.Theme(r.Context())
	if err != nil {
		s.respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, ThemeBody{Theme: t})
}

// PutTheme handles PUT /preferences/theme.
func (s *Server) PutTheme(w http.ResponseWriter, r *http.Request) {
	var body ThemeBody
	if !decodeBody(w, r, &body) {
		return
	}

	t, err := s.prefs.SetTheme(r.Context(), string(body.Theme))
	if err != nil {
		s.respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, ThemeBody{Theme: t})
}

// ToggleTheme handles POST /preferences/theme/toggle.
func (s *Server) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	t, err := s.prefs.ToggleTheme(r.Context())
	if err != nil {
		s.respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, ThemeBody{Theme: t})
}
