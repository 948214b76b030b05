package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderwise/backend/internal/domain"
	"github.com/pkordes/wanderwise/backend/internal/handler"
	"github.com/pkordes/wanderwise/backend/internal/metrics"
	"github.com/pkordes/wanderwise/backend/internal/registry"
)

// ---- GET /map --------------------------------------------------------------

func TestGetMapConfig_200(t *testing.T) {
	rec := do(t, newDeps().router(), http.MethodGet, "/map", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	cfg := decode[domain.MapConfig](t, rec)
	assert.Equal(t, 13, cfg.Zoom)
	assert.Equal(t, "Tourist Destinations", cfg.OverlayName)
	assert.Len(t, cfg.TileLayers, 2)
}

// ---- GET /destinations -----------------------------------------------------

func TestListDestinations_200(t *testing.T) {
	d := newDeps()
	d.maps.listDestinations = func(_ context.Context) ([]domain.Destination, error) {
		return registry.Baguio(), nil
	}

	rec := do(t, d.router(), http.MethodGet, "/destinations", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[handler.ListResponse[domain.Destination]](t, rec)
	require.Len(t, body.Data, 5)
	assert.Equal(t, "Burnham Park", body.Data[0].Name)
	assert.Equal(t, "High (~2,000/day)", body.Data[0].Crowd)
}

func TestListDestinations_500(t *testing.T) {
	d := newDeps()
	d.maps.listDestinations = func(_ context.Context) ([]domain.Destination, error) {
		return nil, errors.New("db down")
	}

	rec := do(t, d.router(), http.MethodGet, "/destinations", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", errorCode(t, rec))
}

// ---- GET /destinations/{id} ------------------------------------------------

func TestGetDestination_200_DefaultMode(t *testing.T) {
	d := newDeps()
	var gotMode domain.Mode
	d.maps.detail = func(_ context.Context, id string, mode domain.Mode) (domain.DestinationDetail, error) {
		gotMode = mode
		return domain.DestinationDetail{Destination: burnham(), Score: domain.Score{DestinationID: id, Rounded: 27, Level: domain.LevelHigh}}, nil
	}

	rec := do(t, d.router(), http.MethodGet, "/destinations/burnham", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ModeTime, gotMode)
	body := decode[domain.DestinationDetail](t, rec)
	assert.Equal(t, "burnham", body.Score.DestinationID)
	assert.Equal(t, domain.LevelHigh, body.Score.Level)
}

func TestGetDestination_PassesMode(t *testing.T) {
	d := newDeps()
	var gotMode domain.Mode
	d.maps.detail = func(_ context.Context, _ string, mode domain.Mode) (domain.DestinationDetail, error) {
		gotMode = mode
		return domain.DestinationDetail{}, nil
	}

	rec := do(t, d.router(), http.MethodGet, "/destinations/burnham?mode=month", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ModeMonth, gotMode)
}

func TestGetDestination_422_UnknownMode(t *testing.T) {
	d := newDeps()

	rec := do(t, d.router(), http.MethodGet, "/destinations/burnham?mode=week", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}

func TestGetDestination_404(t *testing.T) {
	d := newDeps()
	d.maps.detail = func(_ context.Context, id string, _ domain.Mode) (domain.DestinationDetail, error) {
		return domain.DestinationDetail{}, fmt.Errorf("service.MapService.Detail: %w", domain.ErrNotFound)
	}

	rec := do(t, d.router(), http.MethodGet, "/destinations/atlantis", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[handler.ErrorResponse](t, rec)
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "destination not found", body.Error.Message)
}

// ---- GET /destinations/{id}/chart ------------------------------------------

func TestGetChart_200(t *testing.T) {
	d := newDeps()
	d.maps.chart = func(_ context.Context, id string, mode domain.Mode) (domain.ChartSeries, error) {
		assert.Equal(t, "wright", id)
		assert.Equal(t, domain.ModeDay, mode)
		return domain.ChartSeries{Label: "Daily (last 30 days) Visitors", Data: make([]int64, 30)}, nil
	}

	rec := do(t, d.router(), http.MethodGet, "/destinations/wright/chart?mode=day", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[domain.ChartSeries](t, rec)
	assert.Equal(t, "Daily (last 30 days) Visitors", body.Label)
	assert.Len(t, body.Data, 30)
}

// ---- GET /markers ----------------------------------------------------------

func TestListMarkers_200(t *testing.T) {
	d := newDeps()
	d.maps.markers = func(_ context.Context, mode domain.Mode) ([]domain.Marker, error) {
		return []domain.Marker{{DestinationID: "burnham", Score: domain.Score{Mode: mode}}}, nil
	}

	rec := do(t, d.router(), http.MethodGet, "/markers?mode=day", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[handler.MarkersResponse](t, rec)
	assert.Equal(t, domain.ModeDay, body.Mode)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "burnham", body.Data[0].DestinationID)
}

func TestListMarkers_422_UnknownMode(t *testing.T) {
	rec := do(t, newDeps().router(), http.MethodGet, "/markers?mode=yearly", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- metrics ---------------------------------------------------------------

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	d := newDeps()
	d.maps.chart = func(_ context.Context, _ string, _ domain.Mode) (domain.ChartSeries, error) {
		return domain.ChartSeries{}, nil
	}
	m := metrics.New(prometheus.NewRegistry())
	h := d.router(handler.WithMetrics(m))

	do(t, h, http.MethodGet, "/destinations/burnham/chart", nil)
	do(t, h, http.MethodGet, "/destinations/wright/chart", nil)

	assert.Equal(t, 2.0, promtest.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/destinations/{id}/chart", "200")))

	rec := do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wanderwise_http_requests_total")
}
