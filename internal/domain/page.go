package domain

// Page size bounds for paginated listings.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageParams selects one page of a list. Page is 1-indexed.
// Limit is capped at MaxPageLimit by NewPageParams.
type PageParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// Pagination describes the page that was returned.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// NewPageParams builds a PageParams from optional HTTP query params.
// Nil or non-positive values fall back to page 1 and DefaultPageLimit.
func NewPageParams(page, limit *int) PageParams {
	p := PageParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Bounds returns the half-open index range [start, end) of this page in a
// list of n items. Pages past the end give an empty range.
func (p PageParams) Bounds(n int) (start, end int) {
	start = min((p.Page-1)*p.Limit, n)
	end = min(start+p.Limit, n)
	return start, end
}

// Paginate returns the page of items selected by p and its description.
// The returned slice is never nil.
func Paginate[T any](items []T, p PageParams) ([]T, Pagination) {
	start, end := p.Bounds(len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, Pagination{Page: p.Page, Limit: p.Limit, Total: len(items)}
}
