package table

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ytget/artwork-browser/internal/artic"
	"github.com/ytget/artwork-browser/internal/model"
)

// ErrInvalidRowsPerPage is returned by SetRowsPerPage for values outside
// model.RowsPerPageOptions
var ErrInvalidRowsPerPage = errors.New("rows per page must be one of 5, 10, 25, 50")

// Option configures an ArtworkTable at construction
type Option func(*ArtworkTable)

// WithSelectionMode fixes the selection mode for the table's lifetime
func WithSelectionMode(mode model.SelectionMode) Option {
	return func(t *ArtworkTable) {
		t.state.Mode = mode
	}
}

// WithRowsPerPage sets the initial rows-per-page choice. Invalid values
// keep model.DefaultRowsPerPage.
func WithRowsPerPage(rows int) Option {
	return func(t *ArtworkTable) {
		if model.IsValidRowsPerPage(rows) {
			t.state.RowsPerPage = rows
		}
	}
}

// WithStaleResponses controls what happens when an older request completes
// after a newer one was issued. With allow=false (default) the older response
// is discarded. With allow=true whichever response completes last is shown.
func WithStaleResponses(allow bool) Option {
	return func(t *ArtworkTable) {
		t.allowStale = allow
	}
}

// ArtworkTable owns the view state of the artworks table
type ArtworkTable struct {
	fetcher artic.Fetcher

	mu         sync.Mutex
	state      ViewState
	issued     uint64 // sequence number of the latest LoadPage
	allowStale bool
	onUpdate   func(ViewState) // callback for UI updates

	ctx     context.Context
	cancel  context.CancelFunc
	pending sync.WaitGroup
}

// New creates a table bound to fetcher. No request is issued until Mount or
// OnPageTurn is called.
func New(fetcher artic.Fetcher, opts ...Option) *ArtworkTable {
	ctx, cancel := context.WithCancel(context.Background())
	t := &ArtworkTable{
		fetcher: fetcher,
		state: ViewState{
			Page:        model.FirstPage,
			RowsPerPage: model.DefaultRowsPerPage,
			Mode:        model.SelectionRowClick,
		},
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetUpdateCallback sets the callback invoked after every state change
func (t *ArtworkTable) SetUpdateCallback(callback func(ViewState)) {
	t.mu.Lock()
	t.onUpdate = callback
	t.mu.Unlock()
}

// State returns a copy of the current view state
func (t *ArtworkTable) State() ViewState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.clone()
}

// Mount loads the current page in the background, the way the table does
// when it is first shown
func (t *ArtworkTable) Mount() {
	t.OnPageTurn(t.State().PageIndex())
}

// LoadPage fetches the 1-based page n and replaces the loaded records with
// the response. The loading flag is cleared when the call returns, whether
// or not the fetch succeeded; on failure the previous records stay in place
// and the fetch error is returned.
func (t *ArtworkTable) LoadPage(ctx context.Context, n int) (err error) {
	if n < model.FirstPage {
		return fmt.Errorf("load page %d: %w", n, artic.ErrInvalidPage)
	}

	t.mu.Lock()
	t.issued++
	seq := t.issued
	t.state.Page = n
	t.state.Loading = true
	snapshot, callback := t.state.clone(), t.onUpdate
	t.mu.Unlock()

	notify(callback, snapshot)

	var page *model.Page
	defer func() {
		t.finish(seq, n, page, err)
	}()

	page, err = t.fetcher.FetchPage(ctx, n)
	return err
}

// finish applies a completed fetch. Responses superseded by a newer
// LoadPage are dropped unless stale responses are allowed.
func (t *ArtworkTable) finish(seq uint64, n int, page *model.Page, err error) {
	t.mu.Lock()
	if seq != t.issued && !t.allowStale {
		latest := t.state.Page
		t.mu.Unlock()
		log.Debug().
			Int("page", n).
			Int("latest_page", latest).
			Bool("failed", err != nil).
			Msg("Discarding superseded artworks response")
		return
	}

	if err == nil && page != nil {
		t.state.Records = model.CloneArtworks(page.Data)
		t.state.Pagination = page.Pagination
	}
	t.state.Loading = false
	snapshot, callback := t.state.clone(), t.onUpdate
	t.mu.Unlock()

	notify(callback, snapshot)
}

// OnPageTurn handles a paginator event. pageIndex is zero-based; the page
// loaded is pageIndex+1. Fetch errors are logged and otherwise ignored.
func (t *ArtworkTable) OnPageTurn(pageIndex int) {
	page := pageIndex + 1

	t.pending.Add(1)
	go func() {
		defer t.pending.Done()

		if err := t.LoadPage(t.ctx, page); err != nil {
			log.Error().Err(err).Int("page", page).Msg("Failed to load artworks page")
		}
	}()
}

// OnSelectionChange replaces the selection with exactly selected
func (t *ArtworkTable) OnSelectionChange(selected []model.Artwork) {
	t.mu.Lock()
	t.state.Selected = model.CloneArtworks(selected)
	if t.state.Selected == nil {
		t.state.Selected = []model.Artwork{}
	}
	snapshot, callback := t.state.clone(), t.onUpdate
	t.mu.Unlock()

	notify(callback, snapshot)
}

// ToggleRecord adds record to the selection, or removes it when a record
// with the same ID is already selected
func (t *ArtworkTable) ToggleRecord(record model.Artwork) {
	t.updateSelection(func(selected []model.Artwork) []model.Artwork {
		return ToggleSelection(selected, record)
	})
}

// SelectRecords adds every record not already selected
func (t *ArtworkTable) SelectRecords(records []model.Artwork) {
	t.updateSelection(func(selected []model.Artwork) []model.Artwork {
		return SelectRecords(selected, records)
	})
}

// DeselectRecords removes records from the selection
func (t *ArtworkTable) DeselectRecords(records []model.Artwork) {
	t.updateSelection(func(selected []model.Artwork) []model.Artwork {
		return DeselectRecords(selected, records)
	})
}

// updateSelection applies a change to the current selection under the lock,
// so consecutive changes never work from an outdated copy
func (t *ArtworkTable) updateSelection(apply func([]model.Artwork) []model.Artwork) {
	t.mu.Lock()
	t.state.Selected = apply(t.state.Selected)
	snapshot, callback := t.state.clone(), t.onUpdate
	t.mu.Unlock()

	notify(callback, snapshot)
}

// SetRowsPerPage changes how many rows the table shows. It never issues a
// request.
func (t *ArtworkTable) SetRowsPerPage(rows int) error {
	if !model.IsValidRowsPerPage(rows) {
		return fmt.Errorf("%w: got %d", ErrInvalidRowsPerPage, rows)
	}

	t.mu.Lock()
	t.state.RowsPerPage = rows
	snapshot, callback := t.state.clone(), t.onUpdate
	t.mu.Unlock()

	notify(callback, snapshot)
	return nil
}

// Wait blocks until every page turn issued so far has completed
func (t *ArtworkTable) Wait() {
	t.pending.Wait()
}

// Close cancels in-flight page turns and waits for them to return
func (t *ArtworkTable) Close() {
	t.cancel()
	t.pending.Wait()
}

func notify(callback func(ViewState), state ViewState) {
	if callback != nil {
		callback(state)
	}
}
