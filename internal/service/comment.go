package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/wanderwise/backend/internal/domain"
	"github.com/pkordes/wanderwise/backend/internal/metrics"
	"github.com/pkordes/wanderwise/backend/internal/repo"
)

// CommentService validates and records visitor comments.
type CommentService struct {
	dests    repo.DestinationRepo
	comments repo.CommentRepo
	metrics  *metrics.Metrics
}

// NewCommentService constructs a CommentService. m may be nil.
func NewCommentService(dests repo.DestinationRepo, comments repo.CommentRepo, m *metrics.Metrics) *CommentService {
	return &CommentService{dests: dests, comments: comments, metrics: m}
}

// Add trims name and text, checks the destination exists, then appends.
// Returns domain.ErrValidation if either field is blank and
// domain.ErrNotFound if the destination does not exist.
func (s *CommentService) Add(ctx context.Context, destinationID, name, text string) (domain.Comment, error) {
	name, text, err := validateComment(name, text)
	if err != nil {
		return domain.Comment{}, err
	}
	if _, err := s.dests.GetByID(ctx, destinationID); err != nil {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Add: %w", err)
	}
	c, err := s.comments.Append(ctx, destinationID, name, text)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("service.CommentService.Add: %w", err)
	}
	s.metrics.CommentAdded(destinationID)
	return c, nil
}

// List returns a destination's comments oldest first.
// Returns domain.ErrNotFound if the destination does not exist.
func (s *CommentService) List(ctx context.Context, destinationID string) ([]domain.Comment, error) {
	if _, err := s.dests.GetByID(ctx, destinationID); err != nil {
		return nil, fmt.Errorf("service.CommentService.List: %w", err)
	}
	comments, err := s.comments.ListByDestination(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("service.CommentService.List: %w", err)
	}
	if comments == nil {
		return []domain.Comment{}, nil
	}
	return comments, nil
}

// validateComment enforces the comment form rules:
//   - Name and text are trimmed of surrounding whitespace.
//   - Neither may be empty after trimming.
func validateComment(name, text string) (string, string, error) {
	name = strings.TrimSpace(name)
	text = strings.TrimSpace(text)
	if name == "" {
		return "", "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if text == "" {
		return "", "", fmt.Errorf("%w: text is required", domain.ErrValidation)
	}
	return name, text, nil
}
