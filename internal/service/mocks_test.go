package service_test

import (
	"context"

	"github.com/pkordes/wanderwise/backend/internal/domain"
	"github.com/pkordes/wanderwise/backend/internal/repo"
)

// ---- mock repos ------------------------------------------------------------

// mockDestinationRepo is a hand-written test double for repo.DestinationRepo.
type mockDestinationRepo struct {
	list    func(ctx context.Context) ([]domain.Destination, error)
	getByID func(ctx context.Context, id string) (domain.Destination, error)
}

func (m *mockDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	return m.list(ctx)
}
func (m *mockDestinationRepo) GetByID(ctx context.Context, id string) (domain.Destination, error) {
	return m.getByID(ctx, id)
}

// mockCommentRepo is a hand-written test double for repo.CommentRepo.
type mockCommentRepo struct {
	append            func(ctx context.Context, destinationID, name, text string) (domain.Comment, error)
	listByDestination func(ctx context.Context, destinationID string) ([]domain.Comment, error)
}

func (m *mockCommentRepo) Append(ctx context.Context, destinationID, name, text string) (domain.Comment, error) {
	return m.append(ctx, destinationID, name, text)
}
func (m *mockCommentRepo) ListByDestination(ctx context.Context, destinationID string) ([]domain.Comment, error) {
	return m.listByDestination(ctx, destinationID)
}

// mockPreferenceRepo is a hand-written test double for repo.PreferenceRepo.
type mockPreferenceRepo struct {
	theme       func(ctx context.Context) (domain.Theme, error)
	setTheme    func(ctx context.Context, t domain.Theme) error
	toggleTheme func(ctx context.Context) (domain.Theme, error)
}

func (m *mockPreferenceRepo) Theme(ctx context.Context) (domain.Theme, error) {
	return m.theme(ctx)
}
func (m *mockPreferenceRepo) SetTheme(ctx context.Context, t domain.Theme) error {
	return m.setTheme(ctx, t)
}
func (m *mockPreferenceRepo) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	return m.toggleTheme(ctx)
}

// compile-time checks
var (
	_ repo.DestinationRepo = (*mockDestinationRepo)(nil)
	_ repo.CommentRepo     = (*mockCommentRepo)(nil)
	_ repo.PreferenceRepo  = (*mockPreferenceRepo)(nil)
)
