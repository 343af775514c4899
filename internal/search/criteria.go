package search

import "real-estate-listings/internal/models"

const (
	DefaultPerPage = 12
	MaxPerPage     = 100
)

// Sort keys accepted by the list endpoint.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// Criteria is the structured set of optional filters, sort key and
// pagination parameters for a property search. Optional numeric bounds are
// pointers so that "not supplied" and "zero" stay distinguishable.
type Criteria struct {
	Query string

	MinPrice *int
	MaxPrice *int

	MinBedrooms  *int
	MaxBedrooms  *int
	MinBathrooms *float64
	MaxBathrooms *float64

	City         string
	State        string
	Zipcode      string
	PropertyType string

	Sort    string
	Page    int
	PerPage int
}

// Normalize clamps pagination to sane bounds and falls back to the default
// sort for unknown keys. Called once before the criteria reach the store.
func (c *Criteria) Normalize() {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PerPage < 1 {
		c.PerPage = DefaultPerPage
	}
	if c.PerPage > MaxPerPage {
		c.PerPage = MaxPerPage
	}
	switch c.Sort {
	case SortPriceAsc, SortPriceDesc, SortNewest:
	default:
		c.Sort = SortNewest
	}
}

// Offset returns the row offset for the normalized page window.
func (c *Criteria) Offset() int {
	return (c.Page - 1) * c.PerPage
}

// Result is an ordered page of properties plus pagination metadata.
// Pages is ceil(Total/PerPage) and is 0 for an empty result set.
type Result struct {
	Items   []models.Property `json:"items"`
	Page    int               `json:"page"`
	Pages   int               `json:"pages"`
	Total   int64             `json:"total"`
	PerPage int               `json:"per_page"`
}

// PageCount computes the total page count for a match count and page size.
func PageCount(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
