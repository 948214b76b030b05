package handler

import (
	"net/http"

	"github.com/pkordes/wanderwise/backend/internal/domain"
)

// ListResponse wraps collection responses.
type ListResponse[T any] struct {
	Data []T `json:"data"`
}

// MarkersResponse is the body of GET /markers.
type MarkersResponse struct {
	Mode domain.Mode     `json:"mode"`
	Data []domain.Marker `json:"data"`
}

// GetMapConfig handles GET /map.
func (s *Server) GetMapConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.maps.Config())
}

// ListDestinations handles GET /destinations.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	dests, err := s.maps.ListDestinations(r.Context())
	if err != nil {
		s.respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, ListResponse[domain.Destination]{Data: dests})
}

// GetDestination handles GET /destinations/{id}?mode=.
// Returns the detail panel: score, strain, recommendation, chart and comments.
func (s *Server) GetDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathString(r, "id")
	if err != nil {
		s.writeParamError(w, r, err)
		return
	}
	mode, err := queryMode(r)
	if err != nil {
		s.writeParamError(w, r, err)
		return
	}

	detail, err := s.maps.Detail(r.Context(), id, mode)
	if err != nil {
		s.respondError(w, r, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// GetChart handles GET /destinations/{id}/chart?mode=.
func (s *Server) GetChart(w http.ResponseWriter, r *http.Request) {
	id, err := pathString(r, "id")
	if err != nil {
		s.writeParamError(w, r, err)
		return
	}
	mode, err := queryMode(r)
	if err != nil {
		s.writeParamError(w, r, err)
		return
	}

	series, err := s.maps.Chart(r.Context(), id, mode)
	if err != nil {
		s.respondError(w, r, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, series)
}

// ListMarkers handles GET /markers?mode=.
func (s *Server) ListMarkers(w http.ResponseWriter, r *http.Request) {
	mode, err := queryMode(r)
	if err != nil {
		s.writeParamError(w, r, err)
		return
	}

	markers, err := s.maps.Markers(r.Context(), mode)
	if err != nil {
		s.respondError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, MarkersResponse{Mode: mode, Data: markers})
}
