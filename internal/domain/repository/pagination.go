package repository

const (
	// DefaultPageSize is used when a caller does not ask for a page size.
	DefaultPageSize = 20
	// MaxPageSize caps any page size.
	MaxPageSize = 100
)

// Pagination is a 1-based page request.
type Pagination struct {
	Page  int
	Limit int
}

// NewPagination normalises page and limit to their defaults and bounds.
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return Pagination{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.Size()
}

// Size returns the normalised limit.
func (p Pagination) Size() int {
	if p.Limit < 1 {
		return DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		return MaxPageSize
	}

	return p.Limit
}
