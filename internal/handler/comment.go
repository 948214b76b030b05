package handler

import (
	"net/http"

	"github.com/pkordes/wanderwise/backend/internal/domain"
)

// CommentRequest is the body of both comment submission routes.
type CommentRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// CommentsResponse is the body of GET /destinations/{id}/comments.
type CommentsResponse struct {
	Data       []domain.Comment  `json:"data"`
	Pagination domain.Pagination `json:"pagination"`
}

// ListComments handles GET /destinations/{id}/comments.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathString(r, "id")
	if err != nil {
		s.writeParamError(w, r, err)
		return
	}

	params, err := queryPage(r)
	if err != nil {
		s.writeParamError(w, r, err)
		return
	}

	comments, err := s.comments.List(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err, "destination not found")
		return
	}
	page, pg := domain.Paginate(comments, params)
	writeJSON(w, http.StatusOK, CommentsResponse{Data: page, Pagination: pg})
}

// AddComment handles POST /destinations/{id}/comments.
func (s *Server) AddComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathString(r, "id")
	if err != nil {
		s.writeParamError(w, r, err)
		return
	}
	var body CommentRequest
	if !decodeBody(w, r, &body) {
		return
	}

	c, err := s.comments.Add(r.Context(), id, body.Name, body.Text)
	if err != nil {
		s.respondError(w, r, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}
