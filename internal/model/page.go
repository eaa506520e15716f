package model

// rows-per-page choices offered by the paginator
var rowsPerPageOptions = [...]int{5, 10, 25, 50}

// RowsPerPageOptions returns the paginator's rows-per-page choices. The
// slice is a fresh copy on every call.
func RowsPerPageOptions() []int {
	out := make([]int, len(rowsPerPageOptions))
	copy(out, rowsPerPageOptions[:])
	return out
}

const (
	// DefaultRowsPerPage is the paginator's initial choice
	DefaultRowsPerPage = 5

	// FirstPage is the 1-based index of the first API page
	FirstPage = 1
)

// IsValidRowsPerPage reports whether n is one of RowsPerPageOptions
func IsValidRowsPerPage(n int) bool {
	for _, opt := range rowsPerPageOptions {
		if opt == n {
			return true
		}
	}
	return false
}

// Pagination mirrors the "pagination" block of the artworks API response
type Pagination struct {
	Total       int `json:"total" yaml:"total"`
	Limit       int `json:"limit" yaml:"limit"`
	Offset      int `json:"offset" yaml:"offset"`
	TotalPages  int `json:"total_pages" yaml:"total_pages"`
	CurrentPage int `json:"current_page" yaml:"current_page"`
}

// Known reports whether the API sent a usable page count
func (p Pagination) Known() bool {
	return p.TotalPages > 0
}

// HasNext reports whether a page after page exists. With an unknown page
// count it always returns true.
func (p Pagination) HasNext(page int) bool {
	if !p.Known() {
		return true
	}
	return page < p.TotalPages
}

// HasPrev reports whether a page before page exists
func (p Pagination) HasPrev(page int) bool {
	return page > FirstPage
}

// Page is one decoded response of the artworks endpoint
type Page struct {
	Pagination Pagination `json:"pagination"`
	Data       []Artwork  `json:"data"`
}
