package shared

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 50,
		OrderBy:  "created_at",
		OrderDir: "asc",
	}
}

// Offset returns the row offset of the requested page
func (f Filter) Offset() int {
	if f.Page <= 1 || f.PageSize <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}
