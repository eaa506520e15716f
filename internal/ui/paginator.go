package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/artwork-browser/internal/model"
	"github.com/ytget/artwork-browser/internal/table"
)

// Paginator shows first/prev/next/last controls, the current page and the
// rows-per-page choice. Page turns are reported as zero-based indexes.
type Paginator struct {
	localization *Localization
	state        table.ViewState

	onPageTurn   func(pageIndex int)
	onRowsChange func(rows int)

	firstBtn    *widget.Button
	prevBtn     *widget.Button
	nextBtn     *widget.Button
	lastBtn     *widget.Button
	pageLabel   *widget.Label
	rowsLabel   *widget.Label
	rowsSelect  *widget.Select
	rowsWrapper *fyne.Container

	container *fyne.Container
}

// NewPaginator creates a paginator bound to the given callbacks
func NewPaginator(localization *Localization, onPageTurn func(int), onRowsChange func(int)) *Paginator {
	p := &Paginator{
		localization: localization,
		onPageTurn:   onPageTurn,
		onRowsChange: onRowsChange,
	}
	p.createUI()
	return p
}

func (p *Paginator) createUI() {
	p.firstBtn = widget.NewButton(IconFirstPage, func() { p.turn(0) })
	p.prevBtn = widget.NewButton(IconPrevPage, func() { p.turn(p.state.PageIndex() - 1) })
	p.nextBtn = widget.NewButton(IconNextPage, func() { p.turn(p.state.PageIndex() + 1) })
	p.lastBtn = widget.NewButton(IconLastPage, func() {
		if p.state.Pagination.Known() {
			p.turn(p.state.Pagination.TotalPages - 1)
		}
	})
	for _, b := range []*widget.Button{p.firstBtn, p.prevBtn, p.nextBtn, p.lastBtn} {
		b.Importance = widget.LowImportance
	}

	p.pageLabel = widget.NewLabel("")
	p.pageLabel.Alignment = fyne.TextAlignCenter

	choices := model.RowsPerPageOptions()
	options := make([]string, 0, len(choices))
	for _, r := range choices {
		options = append(options, strconv.Itoa(r))
	}
	p.rowsSelect = widget.NewSelect(options, nil)
	p.rowsSelect.OnChanged = p.onRowsSelected
	p.rowsLabel = widget.NewLabel("")
	p.rowsWrapper = container.NewGridWrap(fyne.NewSize(RowsSelectWidth, p.rowsSelect.MinSize().Height), p.rowsSelect)

	pageBox := container.NewGridWrap(fyne.NewSize(PageLabelMinWidth, p.pageLabel.MinSize().Height), p.pageLabel)

	p.container = container.NewHBox(
		layout.NewSpacer(),
		p.firstBtn,
		p.prevBtn,
		pageBox,
		p.nextBtn,
		p.lastBtn,
		widget.NewSeparator(),
		p.rowsLabel,
		p.rowsWrapper,
		layout.NewSpacer(),
	)

	p.RefreshTexts()
	p.Update(table.ViewState{Page: model.FirstPage, RowsPerPage: model.DefaultRowsPerPage})
}

// Container returns the paginator's layout
func (p *Paginator) Container() fyne.CanvasObject {
	return p.container
}

// Update renders state. Must be called on the UI goroutine.
func (p *Paginator) Update(state table.ViewState) {
	p.state = state
	p.pageLabel.SetText(p.pageText())

	setEnabled(p.firstBtn, state.Page > model.FirstPage)
	setEnabled(p.prevBtn, state.Pagination.HasPrev(state.Page))
	setEnabled(p.nextBtn, state.Pagination.HasNext(state.Page))
	setEnabled(p.lastBtn, state.Pagination.Known() && state.Page < state.Pagination.TotalPages)

	rows := strconv.Itoa(state.RowsPerPage)
	if p.rowsSelect.Selected != rows {
		handler := p.rowsSelect.OnChanged
		p.rowsSelect.OnChanged = nil
		p.rowsSelect.SetSelected(rows)
		p.rowsSelect.OnChanged = handler
	}
}

// RefreshTexts re-reads localized labels
func (p *Paginator) RefreshTexts() {
	p.rowsLabel.SetText(p.localization.GetText(KeyRowsPerPage))
	p.pageLabel.SetText(p.pageText())
}

func (p *Paginator) pageText() string {
	page := p.state.Page
	if page < model.FirstPage {
		page = model.FirstPage
	}
	if p.state.Pagination.Known() {
		return fmt.Sprintf(p.localization.GetText(KeyPageOf), page, p.state.Pagination.TotalPages)
	}
	return fmt.Sprintf(p.localization.GetText(KeyPage), page)
}

func (p *Paginator) turn(pageIndex int) {
	if pageIndex < 0 || p.onPageTurn == nil {
		return
	}
	p.onPageTurn(pageIndex)
}

func (p *Paginator) onRowsSelected(value string) {
	rows, err := strconv.Atoi(value)
	if err != nil || p.onRowsChange == nil {
		return
	}
	p.onRowsChange(rows)
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}
