// Package service contains the business logic for the WanderWise API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No storage code lives here; services depend on repo interfaces.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/wanderwise/backend/internal/chart"
	"github.com/pkordes/wanderwise/backend/internal/crowd"
	"github.com/pkordes/wanderwise/backend/internal/domain"
	"github.com/pkordes/wanderwise/backend/internal/marker"
	"github.com/pkordes/wanderwise/backend/internal/repo"
)

// MapService answers every read the map makes: the registry, scores,
// markers, charts and the detail panel.
type MapService struct {
	cfg      domain.MapConfig
	dests    repo.DestinationRepo
	comments repo.CommentRepo
	now      func() time.Time
}

// NewMapService constructs a MapService. now drives the daily chart labels;
// nil means time.Now.
func NewMapService(cfg domain.MapConfig, dests repo.DestinationRepo, comments repo.CommentRepo, now func() time.Time) *MapService {
	if now == nil {
		now = time.Now
	}
	return &MapService{cfg: cfg, dests: dests, comments: comments, now: now}
}

// Config returns the static map setup.
func (s *MapService) Config() domain.MapConfig {
	return s.cfg
}

// ListDestinations returns every destination in registry order.
// Always returns a non-nil slice.
func (s *MapService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	dests, err := s.dests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.MapService.ListDestinations: %w", err)
	}
	if dests == nil {
		return []domain.Destination{}, nil
	}
	return dests, nil
}

// GetDestination returns one destination.
// Returns domain.ErrNotFound if it does not exist.
func (s *MapService) GetDestination(ctx context.Context, id string) (domain.Destination, error) {
	d, err := s.dests.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("service.MapService.GetDestination: %w", err)
	}
	return d, nil
}

// Markers renders one marker per destination for mode.
func (s *MapService) Markers(ctx context.Context, mode domain.Mode) ([]domain.Marker, error) {
	all, err := s.ListDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.MapService.Markers: %w", err)
	}
	return marker.Render(all, mode), nil
}

// Score returns a destination's crowd score for mode.
// Returns domain.ErrNotFound if the destination does not exist.
func (s *MapService) Score(ctx context.Context, id string, mode domain.Mode) (domain.Score, error) {
	d, all, err := s.withAll(ctx, id)
	if err != nil {
		return domain.Score{}, fmt.Errorf("service.MapService.Score: %w", err)
	}
	return crowd.Score(d, all, mode), nil
}

// Chart returns the chart dataset for a destination in mode.
// Returns domain.ErrNotFound if the destination does not exist.
func (s *MapService) Chart(ctx context.Context, id string, mode domain.Mode) (domain.ChartSeries, error) {
	d, err := s.dests.GetByID(ctx, id)
	if err != nil {
		return domain.ChartSeries{}, fmt.Errorf("service.MapService.Chart: %w", err)
	}
	return chart.Series(d, mode, s.now()), nil
}

// Detail assembles the detail panel for a destination in mode: score,
// strain banner, recommendation, chart and comments.
// Returns domain.ErrNotFound if the destination does not exist.
func (s *MapService) Detail(ctx context.Context, id string, mode domain.Mode) (domain.DestinationDetail, error) {
	d, all, err := s.withAll(ctx, id)
	if err != nil {
		return domain.DestinationDetail{}, fmt.Errorf("service.MapService.Detail: %w", err)
	}
	comments, err := s.comments.ListByDestination(ctx, id)
	if err != nil {
		return domain.DestinationDetail{}, fmt.Errorf("service.MapService.Detail: %w", err)
	}
	return s.detailFor(d, all, mode, comments), nil
}

// detailFor builds a detail panel from already loaded data.
func (s *MapService) detailFor(d domain.Destination, all []domain.Destination, mode domain.Mode, comments []domain.Comment) domain.DestinationDetail {
	score := crowd.Score(d, all, mode)
	if comments == nil {
		comments = []domain.Comment{}
	}
	return domain.DestinationDetail{
		Destination:    d,
		Score:          score,
		Strain:         crowd.StrainFor(d, score),
		Recommendation: crowd.Recommendation(score.Level),
		Chart:          chart.Series(d, mode, s.now()),
		Comments:       comments,
	}
}

// withAll loads the destination and the full registry it is scored against.
func (s *MapService) withAll(ctx context.Context, id string) (domain.Destination, []domain.Destination, error) {
	d, err := s.dests.GetByID(ctx, id)
	if err != nil {
		return domain.Destination{}, nil, err
	}
	all, err := s.dests.List(ctx)
	if err != nil {
		return domain.Destination{}, nil, err
	}
	return d, all, nil
}
