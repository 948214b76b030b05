package handler

import (
	"net/http"

	"github.com/pkordes/wanderwise/backend/internal/controller"
	"github.com/pkordes/wanderwise/backend/internal/domain"
)

// ModeRequest is the body of PUT /sessions/{sessionId}/mode.
type ModeRequest struct {
	Mode string `json:"mode"`
}

// SelectionRequest is the body of PUT /sessions/{sessionId}/selection.
type SelectionRequest struct {
	DestinationID string `json:"destination_id"`
}

// CreateSession handles POST /sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	c := s.sessions.Create()
	st, err := c.State(r.Context())
	if err != nil {
		s.respondError(w, r, err, "")
		return
	}
	w.Header().Set("Location", "/sessions/"+c.ID().String())
	writeJSON(w, http.StatusCreated, st)
}

// GetSession handles GET /sessions/{sessionId}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	c, ok := s.session(w, r)
	if !ok {
		return
	}
	st, err := c.State(r.Context())
	if err != nil {
		s.respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// DeleteSession handles DELETE /sessions/{sessionId}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "sessionId")
	if err != nil {
		s.writeParamError(w, r, err)
		return
	}
	if err := s.sessions.Delete(id); err != nil {
		s.respondError(w, r, err, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetSessionMode handles PUT /sessions/{sessionId}/mode.
func (s *Server) SetSessionMode(w http.ResponseWriter, r *http.Request) {
	c, ok := s.session(w, r)
	if !ok {
		return
	}
	var body ModeRequest
	if !decodeBody(w, r, &body) {
		return
	}

	st, err := c.SetMode(r.Context(), domain.Mode(body.Mode))
	if err != nil {
		s.respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// SelectDestination handles PUT /sessions/{sessionId}/selection.
func (s *Server) SelectDestination(w http.ResponseWriter, r *http.Request) {
	c, ok := s.session(w, r)
	if !ok {
		return
	}
	var body SelectionRequest
	if !decodeBody(w, r, &body) {
		return
	}

	st, err := c.SelectDestination(r.Context(), body.DestinationID)
	if err != nil {
		s.respondError(w, r, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// CloseDetail handles DELETE /sessions/{sessionId}/selection.
func (s *Server) CloseDetail(w http.ResponseWriter, r *http.Request) {
	c, ok := s.session(w, r)
	if !ok {
		return
	}
	st, err := c.CloseDetail(r.Context())
	if err != nil {
		s.respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// SubmitSessionComment handles POST /sessions/{sessionId}/comments.
// 201 when the comment was added, 200 when a blank field made it a no-op.
func (s *Server) SubmitSessionComment(w http.ResponseWriter, r *http.Request) {
	c, ok := s.session(w, r)
	if !ok {
		return
	}
	var body CommentRequest
	if !decodeBody(w, r, &body) {
		return
	}

	res, err := c.SubmitComment(r.Context(), body.Name, body.Text)
	if err != nil {
		s.respondError(w, r, err, "destination not found")
		return
	}
	status := http.StatusOK
	if res.Added {
		status = http.StatusCreated
	}
	writeJSON(w, status, res)
}

// ToggleSessionTheme handles POST /sessions/{sessionId}/theme/toggle.
func (s *Server) ToggleSessionTheme(w http.ResponseWriter, r *http.Request) {
	c, ok := s.session(w, r)
	if !ok {
		return
	}
	t, err := c.ToggleTheme(r.Context())
	if err != nil {
		s.respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, ThemeBody{Theme: t})
}

// session resolves the {sessionId} path parameter. It writes the error
// response itself and returns false when there is no such session.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*controller.Controller, bool) {
	id, err := pathUUID(r, "sessionId")
	if err != nil {
		s.writeParamError(w, r, err)
		return nil, false
	}
	c, err := s.sessions.Get(id)
	if err != nil {
		s.respondError(w, r, err, "session not found")
		return nil, false
	}
	return c, true
}
