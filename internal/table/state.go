package table

import (
	"github.com/ytget/artwork-browser/internal/model"
)

// ViewState is a point-in-time copy of the component state
type ViewState struct {
	Page        int // 1-based page last requested
	Records     []model.Artwork
	Selected    []model.Artwork
	Loading     bool
	RowsPerPage int
	Mode        model.SelectionMode
	Pagination  model.Pagination
}

// Status maps the loading flag onto the load cycle
func (s ViewState) Status() model.LoadStatus {
	if s.Loading {
		return model.LoadStatusLoading
	}
	return model.LoadStatusIdle
}

// PageIndex returns the zero-based page index the paginator shows
func (s ViewState) PageIndex() int {
	return s.Page - 1
}

// VisibleRecords returns the records the table shows: the first
// RowsPerPage records of the loaded page
func (s ViewState) VisibleRecords() []model.Artwork {
	if s.RowsPerPage <= 0 || len(s.Records) <= s.RowsPerPage {
		return s.Records
	}
	return s.Records[:s.RowsPerPage]
}

// IsSelected reports whether a record with id is in the selection
func (s ViewState) IsSelected(id int) bool {
	return containsID(s.Selected, id)
}

// clone deep-copies slices so callers cannot mutate component state
func (s ViewState) clone() ViewState {
	s.Records = model.CloneArtworks(s.Records)
	s.Selected = model.CloneArtworks(s.Selected)
	return s
}

// ToggleSelection returns selected with record added, or removed when a
// record with the same ID is already present. selected is not modified.
func ToggleSelection(selected []model.Artwork, record model.Artwork) []model.Artwork {
	out := make([]model.Artwork, 0, len(selected)+1)
	found := false
	for _, a := range selected {
		if a.ID == record.ID {
			found = true
			continue
		}
		out = append(out, a)
	}
	if !found {
		out = append(out, record)
	}
	return out
}

// SelectRecords returns selected extended with every record not already in it
func SelectRecords(selected, records []model.Artwork) []model.Artwork {
	out := model.CloneArtworks(selected)
	if out == nil {
		out = []model.Artwork{}
	}
	for _, r := range records {
		if !containsID(out, r.ID) {
			out = append(out, r)
		}
	}
	return out
}

// DeselectRecords returns selected without any of records
func DeselectRecords(selected, records []model.Artwork) []model.Artwork {
	out := make([]model.Artwork, 0, len(selected))
	for _, a := range selected {
		if !containsID(records, a.ID) {
			out = append(out, a)
		}
	}
	return out
}

// AllSelected reports whether records is non-empty and fully selected
func (s ViewState) AllSelected(records []model.Artwork) bool {
	if len(records) == 0 {
		return false
	}
	for _, r := range records {
		if !containsID(s.Selected, r.ID) {
			return false
		}
	}
	return true
}

func containsID(records []model.Artwork, id int) bool {
	for _, a := range records {
		if a.ID == id {
			return true
		}
	}
	return false
}
