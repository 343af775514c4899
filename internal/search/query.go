package search

import (
	"strings"

	"gorm.io/gorm"

	"real-estate-listings/internal/models"
)

// Columns matched by the free-text query, OR-combined into one clause.
var textSearchColumns = []string{"title", "description", "address", "city", "state", "zip_code"}

// Apply composes the filter predicates of c onto a property query. All
// supplied criteria are AND-combined; the free-text sub-predicates are
// OR-combined first. The listable-status predicate is always applied and is
// not user-controllable.
func Apply(db *gorm.DB, c Criteria) *gorm.DB {
	query := db.Model(&models.Property{}).Where("status IN ?", statusValues())

	if text := strings.TrimSpace(c.Query); text != "" {
		pattern := likePattern(text)
		clauses := make([]string, len(textSearchColumns))
		args := make([]interface{}, len(textSearchColumns))
		for i, col := range textSearchColumns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		query = query.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}

	// Range bounds are inclusive on both ends.
	if c.MinPrice != nil {
		query = query.Where("price >= ?", *c.MinPrice)
	}
	if c.MaxPrice != nil {
		query = query.Where("price <= ?", *c.MaxPrice)
	}
	if c.MinBedrooms != nil {
		query = query.Where("bedrooms >= ?", *c.MinBedrooms)
	}
	if c.MaxBedrooms != nil {
		query = query.Where("bedrooms <= ?", *c.MaxBedrooms)
	}
	if c.MinBathrooms != nil {
		query = query.Where("bathrooms >= ?", *c.MinBathrooms)
	}
	if c.MaxBathrooms != nil {
		query = query.Where("bathrooms <= ?", *c.MaxBathrooms)
	}

	// City and state match as case-insensitive substrings, zipcode and
	// property type as exact values.
	if c.City != "" {
		query = query.Where("LOWER(city) LIKE ?", likePattern(c.City))
	}
	if c.State != "" {
		query = query.Where("LOWER(state) LIKE ?", likePattern(c.State))
	}
	if c.Zipcode != "" {
		query = query.Where("LOWER(zip_code) = ?", strings.ToLower(c.Zipcode))
	}
	if c.PropertyType != "" {
		query = query.Where("property_type = ?", c.PropertyType)
	}

	return query
}

// Order applies the sort key with an id tiebreaker so that equal-priced
// rows keep a reproducible order across repeated requests.
func Order(db *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case SortPriceAsc:
		return db.Order("price ASC, id ASC")
	case SortPriceDesc:
		return db.Order("price DESC, id ASC")
	default:
		return db.Order("created_at DESC, id DESC")
	}
}

func statusValues() []string {
	values := make([]string, len(models.ListableStatuses))
	for i, s := range models.ListableStatuses {
		values[i] = string(s)
	}
	return values
}

func likePattern(text string) string {
	return "%" + strings.ToLower(strings.TrimSpace(text)) + "%"
}
