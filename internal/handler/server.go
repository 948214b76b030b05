// Package handler implements the HTTP handlers for the WanderWise API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, destination.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/wanderwise/backend/internal/controller"
	"github.com/pkordes/wanderwise/backend/internal/domain"
	"github.com/pkordes/wanderwise/backend/internal/metrics"
)

// MapServicer defines the read operations the map handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the registry or the store.
type MapServicer interface {
	Config() domain.MapConfig
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
	GetDestination(ctx context.Context, id string) (domain.Destination, error)
	Markers(ctx context.Context, mode domain.Mode) ([]domain.Marker, error)
	Chart(ctx context.Context, id string, mode domain.Mode) (domain.ChartSeries, error)
	Detail(ctx context.Context, id string, mode domain.Mode) (domain.DestinationDetail, error)
}

// CommentServicer defines the comment operations.
type CommentServicer interface {
	Add(ctx context.Context, destinationID, name, text string) (domain.Comment, error)
	List(ctx context.Context, destinationID string) ([]domain.Comment, error)
}

// PreferenceServicer defines the theme preference operations.
type PreferenceServicer interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, raw string) (domain.Theme, error)
	ToggleTheme(ctx context.Context) (domain.Theme, error)
}

// SessionStore is the table of UI controller sessions.
type SessionStore interface {
	Create() *controller.Controller
	Get(id uuid.UUID) (*controller.Controller, error)
	Delete(id uuid.UUID) error
}

// Server holds the dependencies shared by every handler.
type Server struct {
	maps     MapServicer
	comments CommentServicer
	prefs    PreferenceServicer
	sessions SessionStore

	log            *slog.Logger
	metrics        *metrics.Metrics
	commentLimiter func(http.Handler) http.Handler
	openAPI        []byte
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithLogger sets the logger used for unexpected errors.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithMetrics records request metrics and serves them at /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithCommentLimiter wraps both comment submission routes in mw.
func WithCommentLimiter(mw func(http.Handler) http.Handler) Option {
	return func(s *Server) { s.commentLimiter = mw }
}

// WithOpenAPI serves doc at /openapi.yaml.
func WithOpenAPI(doc []byte) Option {
	return func(s *Server) { s.openAPI = doc }
}

// NewServer constructs the Server with all its dependencies.
func NewServer(maps MapServicer, comments CommentServicer, prefs PreferenceServicer, sessions SessionStore, opts ...Option) *Server {
	s := &Server{
		maps:     maps,
		comments: comments,
		prefs:    prefs,
		sessions: sessions,
		log:      slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// Routes builds the chi router for every endpoint.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	limited := func(h http.HandlerFunc) http.Handler {
		if s.commentLimiter == nil {
			return h
		}
		return s.commentLimiter(h)
	}

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Get("/map", s.GetMapConfig)
	r.Get("/markers", s.ListMarkers)
	r.Get("/markers.css", s.GetMarkerStylesheet)

	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", s.ListDestinations)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetDestination)
			r.Get("/chart", s.GetChart)
			r.Get("/comments", s.ListComments)
			r.Method(http.MethodPost, "/comments", limited(s.AddComment))
		})
	})

	r.Route("/preferences/theme", func(r chi.Router) {
		r.Get("/", s.GetTheme)
		r.Put("/", s.PutTheme)
		r.Post("/toggle", s.ToggleTheme)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.CreateSession)
		r.Route("/{sessionId}", func(r chi.Router) {
			r.Get("/", s.GetSession)
			r.Delete("/", s.DeleteSession)
			r.Put("/mode", s.SetSessionMode)
			r.Put("/selection", s.SelectDestination)
			r.Delete("/selection", s.CloseDetail)
			r.Method(http.MethodPost, "/comments", limited(s.SubmitSessionComment))
			r.Post("/theme/toggle", s.ToggleSessionTheme)
		})
	})

	return r
}
