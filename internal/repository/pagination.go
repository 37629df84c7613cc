package repository

import "github.com/soundwave-labs/soundwave/internal/domain"

// paginate normalizes a 1-indexed page/limit pair into a LIMIT/OFFSET pair,
// applying the shared defaults for zero or negative inputs.
func paginate(page, limit int) (int, int) {
	if page < 1 {
		page = domain.DefaultPageIndex
	}
	if limit < 1 {
		limit = domain.DefaultPageSize
	}
	return limit, (page - 1) * limit
}
