package persistence

import (
	"strings"

	"github.com/campaign/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// sortColumns maps the sort keys a list endpoint accepts to table columns.
// Anything not listed falls back to the default column, so user input
// never reaches ORDER BY.
type sortColumns map[string]string

var (
	productSort = sortColumns{
		"created_at": "created_at",
		"updated_at": "updated_at",
		"name":       "name",
		"codebar":    "barcode",
		"barcode":    "barcode",
	}
	campaignSort = sortColumns{
		"created_at": "created_at",
		"updated_at": "updated_at",
		"name":       "name",
	}
	userSort = sortColumns{
		"created_at": "created_at",
		"updated_at": "updated_at",
		"email":      "email",
	}
)

// column resolves key, or returns fallback when key is not sortable
func (s sortColumns) column(key, fallback string) string {
	if col, ok := s[strings.ToLower(strings.TrimSpace(key))]; ok {
		return col
	}
	return fallback
}

// sortDirection normalizes dir to ASC or DESC, defaulting to ASC
func sortDirection(dir string) string {
	if strings.EqualFold(strings.TrimSpace(dir), "desc") {
		return "DESC"
	}
	return "ASC"
}

// applyFilter pages query and orders it by a whitelisted column. The id
// tiebreaker keeps pages stable when the sort column has duplicates.
func applyFilter(query *gorm.DB, filter shared.Filter, sortable sortColumns, fallback string) *gorm.DB {
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query.Order(sortable.column(filter.OrderBy, fallback) + " " + sortDirection(filter.OrderDir) + ", id ASC")
}
