package domain

// List pagination is 1-indexed: page 1 is the first page. Callers passing
// zero values get these defaults, consistently across all entities.
const (
	DefaultPageIndex = 1
	DefaultPageSize  = 20
)
