package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/wanderwise/backend/internal/domain"
)

func intPtr(n int) *int { return &n }

func TestNewPageParams(t *testing.T) {
	tests := []struct {
		name        string
		page, limit *int
		want        domain.PageParams
	}{
		{"defaults", nil, nil, domain.PageParams{Page: 1, Limit: 20}},
		{"explicit", intPtr(3), intPtr(5), domain.PageParams{Page: 3, Limit: 5}},
		{"non-positive falls back", intPtr(0), intPtr(-1), domain.PageParams{Page: 1, Limit: 20}},
		{"limit capped", nil, intPtr(500), domain.PageParams{Page: 1, Limit: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NewPageParams(tt.page, tt.limit))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got, pg := domain.Paginate(items, domain.PageParams{Page: 2, Limit: 2})
	assert.Equal(t, []int{3, 4}, got)
	assert.Equal(t, domain.Pagination{Page: 2, Limit: 2, Total: 5}, pg)

	got, _ = domain.Paginate(items, domain.PageParams{Page: 3, Limit: 2})
	assert.Equal(t, []int{5}, got)

	got, pg = domain.Paginate(items, domain.PageParams{Page: 9, Limit: 2})
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 5, pg.Total)
}

func TestPaginate_ReturnsCopy(t *testing.T) {
	items := []string{"a", "b"}

	got, _ := domain.Paginate(items, domain.NewPageParams(nil, nil))
	got[0] = "z"

	assert.Equal(t, "a", items[0])
}
