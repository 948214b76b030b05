package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderwise/backend/internal/controller"
	"github.com/pkordes/wanderwise/backend/internal/domain"
	"github.com/pkordes/wanderwise/backend/internal/handler"
	"github.com/pkordes/wanderwise/backend/internal/registry"
)

// mockMapServicer is a test double for handler.MapServicer.
// Set only the method fields your test needs.
type mockMapServicer struct {
	listDestinations func(ctx context.Context) ([]domain.Destination, error)
	getDestination   func(ctx context.Context, id string) (domain.Destination, error)
	markers          func(ctx context.Context, mode domain.Mode) ([]domain.Marker, error)
	chart            func(ctx context.Context, id string, mode domain.Mode) (domain.ChartSeries, error)
	detail           func(ctx context.Context, id string, mode domain.Mode) (domain.DestinationDetail, error)
}

func (m *mockMapServicer) Config() domain.MapConfig {
	return registry.BaguioMap()
}
func (m *mockMapServicer) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return m.listDestinations(ctx)
}
func (m *mockMapServicer) GetDestination(ctx context.Context, id string) (domain.Destination, error) {
	return m.getDestination(ctx, id)
}
func (m *mockMapServicer) Markers(ctx context.Context, mode domain.Mode) ([]domain.Marker, error) {
	return m.markers(ctx, mode)
}
func (m *mockMapServicer) Chart(ctx context.Context, id string, mode domain.Mode) (domain.ChartSeries, error) {
	return m.chart(ctx, id, mode)
}
func (m *mockMapServicer) Detail(ctx context.Context, id string, mode domain.Mode) (domain.DestinationDetail, error) {
	return m.detail(ctx, id, mode)
}

// mockCommentServicer is a test double for handler.CommentServicer.
type mockCommentServicer struct {
	add  func(ctx context.Context, destinationID, name, text string) (domain.Comment, error)
	list func(ctx context.Context, destinationID string) ([]domain.Comment, error)
}

func (m *mockCommentServicer) Add(ctx context.Context, destinationID, name, text string) (domain.Comment, error) {
	return m.add(ctx, destinationID, name, text)
}
func (m *mockCommentServicer) List(ctx context.Context, destinationID string) ([]domain.Comment, error) {
	return m.list(ctx, destinationID)
}

// mockPreferenceServicer is a test double for handler.PreferenceServicer.
type mockPreferenceServicer struct {
	theme       func(ctx context.Context) (domain.Theme, error)
	setTheme    func(ctx context.Context, raw string) (domain.Theme, error)
	toggleTheme func(ctx context.Context) (domain.Theme, error)
}

func (m *mockPreferenceServicer) Theme(ctx context.Context) (domain.Theme, error) {
	return m.theme(ctx)
}
func (m *mockPreferenceServicer) SetTheme(ctx context.Context, raw string) (domain.Theme, error) {
	return m.setTheme(ctx, raw)
}
func (m *mockPreferenceServicer) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	return m.toggleTheme(ctx)
}

// compile-time checks: the mocks satisfy both the handler and the
// controller dependency interfaces.
var (
	_ handler.MapServicer        = (*mockMapServicer)(nil)
	_ handler.CommentServicer    = (*mockCommentServicer)(nil)
	_ handler.PreferenceServicer = (*mockPreferenceServicer)(nil)
	_ controller.MapReader       = (*mockMapServicer)(nil)
	_ controller.Commenter       = (*mockCommentServicer)(nil)
	_ controller.ThemeToggler    = (*mockPreferenceServicer)(nil)
	_ handler.SessionStore       = (*controller.Sessions)(nil)
)

// ---- helpers ---------------------------------------------------------------

// deps bundles the mocks a test configures before building the router.
type deps struct {
	maps     *mockMapServicer
	comments *mockCommentServicer
	prefs    *mockPreferenceServicer
	sessions *controller.Sessions
}

func newDeps() *deps {
	d := &deps{
		maps:     &mockMapServicer{},
		comments: &mockCommentServicer{},
		prefs:    &mockPreferenceServicer{},
	}
	d.sessions = controller.NewSessions(d.maps, d.comments, d.prefs, nil)
	return d
}

// router wires a Server with the mocks exactly as main.go wires it.
func (d *deps) router(opts ...handler.Option) http.Handler {
	opts = append([]handler.Option{handler.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return handler.NewServer(d.maps, d.comments, d.prefs, d.sessions, opts...).Routes()
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[handler.ErrorResponse](t, rec).Error.Code
}

func burnham() domain.Destination {
	return registry.Baguio()[0]
}
