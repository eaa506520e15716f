package model

// LoadStatus is the state of the table's page-load cycle
type LoadStatus string

const (
	// LoadStatusIdle means no fetch is outstanding
	LoadStatusIdle LoadStatus = "Idle"

	// LoadStatusLoading means a fetch is outstanding; previous rows stay visible
	LoadStatusLoading LoadStatus = "Loading"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsLoading returns true while a fetch is outstanding
func (ls LoadStatus) IsLoading() bool {
	return ls == LoadStatusLoading
}

// SelectionMode chooses how row taps change the selection. Checkboxes are
// rendered in both modes.
type SelectionMode string

const (
	// SelectionRowClick replaces the selection with the tapped row
	SelectionRowClick SelectionMode = "row-click"

	// SelectionCheckbox toggles the tapped row in and out of the selection
	SelectionCheckbox SelectionMode = "checkbox"
)

// String returns the string representation of SelectionMode
func (sm SelectionMode) String() string {
	return string(sm)
}

// IsMultiple returns true when row taps accumulate a multi-row selection
func (sm SelectionMode) IsMultiple() bool {
	return sm == SelectionCheckbox
}
