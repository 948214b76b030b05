package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/wanderwise/backend/internal/domain"
	"github.com/pkordes/wanderwise/backend/internal/registry"
	"github.com/pkordes/wanderwise/backend/internal/repo"
	"github.com/pkordes/wanderwise/backend/internal/service"
)

var june30 = func() time.Time { return time.Date(2025, 6, 30, 10, 0, 0, 0, time.UTC) }

func newMapService(t *testing.T) (*service.MapService, repo.CommentRepo) {
	t.Helper()
	comments := repo.NewCommentRepo(repo.NewMemoryKVStore(), june30, nil)
	return service.NewMapService(registry.BaguioMap(), registry.MustBaguio(), comments, june30), comments
}

func TestMapService_Markers(t *testing.T) {
	svc, _ := newMapService(t)

	markers, err := svc.Markers(context.Background(), domain.ModeMonth)

	require.NoError(t, err)
	require.Len(t, markers, 5)
	assert.Equal(t, "burnham", markers[0].DestinationID)
	assert.Equal(t, domain.ModeMonth, markers[0].Score.Mode)
}

func TestMapService_Detail(t *testing.T) {
	svc, comments := newMapService(t)
	ctx := context.Background()
	_, err := comments.Append(ctx, "burnham", "Ana", "Boats!")
	require.NoError(t, err)

	got, err := svc.Detail(ctx, "burnham", domain.ModeTime)

	require.NoError(t, err)
	assert.Equal(t, "Burnham Park", got.Destination.Name)
	assert.Equal(t, 27, got.Score.Rounded)
	assert.Equal(t, domain.LevelHigh, got.Score.Level)
	assert.Equal(t, "Strain: 27% (High (~2,000/day))", got.Strain.Text)
	assert.Equal(t, "#e67e22", got.Strain.Color)
	assert.NotEmpty(t, got.Recommendation)
	assert.Equal(t, "Hourly Visitors", got.Chart.Label)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Boats!", got.Comments[0].Text)
}

func TestMapService_Detail_notFound(t *testing.T) {
	svc, _ := newMapService(t)

	_, err := svc.Detail(context.Background(), "atlantis", domain.ModeTime)

	require.ErrorIs(t, err, domain.ErrNotFound)
}

// TestMapService_modeSwitchDoesNotMutate checks that scoring the same
// destination in every mode leaves the registry data untouched.
func TestMapService_modeSwitchDoesNotMutate(t *testing.T) {
	svc, _ := newMapService(t)
	ctx := context.Background()

	before, err := svc.ListDestinations(ctx)
	require.NoError(t, err)

	seen := map[domain.Mode]float64{}
	for _, m := range domain.Modes {
		d, err := svc.Detail(ctx, "wright", m)
		require.NoError(t, err)
		d.Chart.Data[0] = -1
		seen[m] = d.Score.Percent
	}

	after, err := svc.ListDestinations(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.NotEqual(t, seen[domain.ModeTime], seen[domain.ModeMonth])
}

func TestMapService_Score(t *testing.T) {
	svc, _ := newMapService(t)

	s, err := svc.Score(context.Background(), "botanical", domain.ModeDay)

	require.NoError(t, err)
	assert.Equal(t, "botanical", s.DestinationID)
	assert.Equal(t, domain.LevelLow, s.Level)
}

func TestMapService_Chart(t *testing.T) {
	svc, _ := newMapService(t)

	s, err := svc.Chart(context.Background(), "johnhay", domain.ModeDay)

	require.NoError(t, err)
	assert.Equal(t, "6/1", s.Labels[0])
	assert.Equal(t, "6/30", s.Labels[29])
}

func TestMapService_ListDestinations_nilBecomesEmpty(t *testing.T) {
	dests := &mockDestinationRepo{
		list: func(context.Context) ([]domain.Destination, error) { return nil, nil },
	}
	svc := service.NewMapService(registry.BaguioMap(), dests, nil, nil)

	got, err := svc.ListDestinations(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMapService_Markers_repoError(t *testing.T) {
	dests := &mockDestinationRepo{
		list: func(context.Context) ([]domain.Destination, error) { return nil, errors.New("db down") },
	}
	svc := service.NewMapService(registry.BaguioMap(), dests, nil, nil)

	_, err := svc.Markers(context.Background(), domain.ModeTime)

	require.Error(t, err)
	assert.ErrorContains(t, err, "db down")
}

func TestMapService_Config(t *testing.T) {
	svc, _ := newMapService(t)
	cfg := svc.Config()
	assert.Equal(t, 13, cfg.Zoom)
	assert.Equal(t, 15, cfg.FocusZoom)
	assert.Len(t, cfg.TileLayers, 2)
}
