package pagination

// PageSize is the single posts-per-page constant used by every feed query.
const PageSize = 10

// Page describes one clamped page over a total item count.
type Page struct {
	Number   int   `json:"page"`
	NumPages int   `json:"num_pages"`
	Total    int64 `json:"total"`
	HasPrev  bool  `json:"has_previous"`
	HasNext  bool  `json:"has_next"`
}

// Clamp resolves a requested page number against total, snapping out-of-range
// requests to the nearest valid page. An empty result set still has one page.
func Clamp(requested int, total int64) Page {
	numPages := int((total + PageSize - 1) / PageSize)
	if numPages < 1 {
		numPages = 1
	}
	n := requested
	if n < 1 {
		n = 1
	}
	if n > numPages {
		n = numPages
	}
	return Page{
		Number:   n,
		NumPages: numPages,
		Total:    total,
		HasPrev:  n > 1,
		HasNext:  n < numPages,
	}
}

// Offset is the row offset of the page.
func (p Page) Offset() int { return (p.Number - 1) * PageSize }
