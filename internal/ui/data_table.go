package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/artwork-browser/internal/model"
	"github.com/ytget/artwork-browser/internal/table"
)

// Selector applies selection changes to the component's current state.
// *table.ArtworkTable implements it.
type Selector interface {
	OnSelectionChange(selected []model.Artwork)
	ToggleRecord(record model.Artwork)
	SelectRecords(records []model.Artwork)
	DeselectRecords(records []model.Artwork)
}

// DataTable renders the visible artworks with a leading checkbox column.
// It never mutates selection itself; every change goes through the selector
// and comes back with the next SetState.
type DataTable struct {
	table        *widget.Table
	localization *Localization
	state        table.ViewState
	selector     Selector
}

// NewDataTable creates the table widget
func NewDataTable(localization *Localization, selector Selector) *DataTable {
	dt := &DataTable{
		localization: localization,
		selector:     selector,
	}

	dt.table = widget.NewTable(dt.length, dt.createCell, dt.updateCell)
	dt.table.ShowHeaderRow = true
	dt.table.CreateHeader = dt.createCell
	dt.table.UpdateHeader = dt.updateHeader
	dt.table.OnSelected = dt.onCellSelected

	dt.table.SetColumnWidth(0, table.SelectionColumnWidth)
	total := table.TotalWeight()
	for i, c := range table.Columns {
		dt.table.SetColumnWidth(i+1, TableContentWidth*c.Weight/total)
	}

	return dt
}

// Widget returns the canvas object to place in a layout
func (dt *DataTable) Widget() fyne.CanvasObject {
	return dt.table
}

// SetState replaces the rendered state. Must be called on the UI goroutine.
func (dt *DataTable) SetState(state table.ViewState) {
	dt.state = state
	dt.table.Refresh()
}

// Refresh redraws headers and cells, e.g. after a language change
func (dt *DataTable) Refresh() {
	dt.table.Refresh()
}

func (dt *DataTable) length() (int, int) {
	return len(dt.state.VisibleRecords()), len(table.Columns) + 1
}

// createCell builds a template holding both a checkbox and a label; only one
// of them is shown depending on the column.
func (dt *DataTable) createCell() fyne.CanvasObject {
	check := widget.NewCheck("", nil)
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis
	return container.NewStack(check, label)
}

func cellParts(obj fyne.CanvasObject) (*widget.Check, *widget.Label) {
	stack := obj.(*fyne.Container)
	return stack.Objects[0].(*widget.Check), stack.Objects[1].(*widget.Label)
}

func (dt *DataTable) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	check, label := cellParts(obj)

	rows := dt.state.VisibleRecords()
	if id.Row < 0 || id.Row >= len(rows) {
		check.Hide()
		label.SetText("")
		return
	}
	record := rows[id.Row]

	if id.Col == 0 {
		label.Hide()
		setChecked(check, dt.state.IsSelected(record.ID), func(bool) {
			dt.selector.ToggleRecord(record)
		})
		check.Show()
		return
	}

	check.Hide()
	label.TextStyle = fyne.TextStyle{}
	label.SetText(table.Columns[id.Col-1].Value(record))
	label.Show()
}

func (dt *DataTable) updateHeader(id widget.TableCellID, obj fyne.CanvasObject) {
	check, label := cellParts(obj)

	if id.Col == 0 {
		label.Hide()
		visible := dt.state.VisibleRecords()
		setChecked(check, dt.state.AllSelected(visible), func(checked bool) {
			if checked {
				dt.selector.SelectRecords(visible)
				return
			}
			dt.selector.DeselectRecords(visible)
		})
		check.Show()
		return
	}

	if id.Col < 1 || id.Col > len(table.Columns) {
		check.Hide()
		label.SetText("")
		return
	}

	column := table.Columns[id.Col-1]
	check.Hide()
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.SetText(dt.localization.GetColumnHeader(column.Field, column.Header))
	label.Show()
}

// onCellSelected handles a tap on a data cell. Row-click mode replaces the
// selection with the tapped row; checkbox mode toggles it.
func (dt *DataTable) onCellSelected(id widget.TableCellID) {
	defer dt.table.UnselectAll()

	rows := dt.state.VisibleRecords()
	if id.Col == 0 || id.Row < 0 || id.Row >= len(rows) {
		return
	}
	record := rows[id.Row]

	if dt.state.Mode.IsMultiple() {
		dt.selector.ToggleRecord(record)
		return
	}
	dt.selector.OnSelectionChange([]model.Artwork{record})
}

// setChecked updates a recycled checkbox without firing its previous handler
func setChecked(check *widget.Check, checked bool, onChanged func(bool)) {
	check.OnChanged = nil
	check.SetChecked(checked)
	check.OnChanged = onChanged
}
