package table

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/ytget/artwork-browser/internal/artic"
	"github.com/ytget/artwork-browser/internal/model"
)

// fakeFetcher serves canned pages and records every requested page number.
// When gates is set for a page, the fetch blocks until the gate is closed.
type fakeFetcher struct {
	mu     sync.Mutex
	pages  map[int]*model.Page
	errs   map[int]error
	gates  map[int]chan struct{}
	calls  []int
	called chan int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		pages:  make(map[int]*model.Page),
		errs:   make(map[int]error),
		gates:  make(map[int]chan struct{}),
		called: make(chan int, 16),
	}
}

func (f *fakeFetcher) FetchPage(ctx context.Context, page int) (*model.Page, error) {
	f.mu.Lock()
	f.calls = append(f.calls, page)
	gate := f.gates[page]
	p, err := f.pages[page], f.errs[page]
	f.mu.Unlock()

	f.called <- page

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, &artic.FetchError{Page: page, RequestID: "test", Err: err}
	}
	return p, nil
}

func (f *fakeFetcher) Calls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.calls...)
}

func pageOf(ids ...int) *model.Page {
	p := &model.Page{
		Pagination: model.Pagination{Total: 100, Limit: 12, TotalPages: 9},
		Data:       []model.Artwork{},
	}
	for _, id := range ids {
		p.Data = append(p.Data, model.Artwork{
			ID:            id,
			Title:         "Artwork",
			PlaceOfOrigin: "France",
			ArtistDisplay: "Artist",
			DateStart:     1900,
			DateEnd:       1901,
		})
	}
	return p
}

func waitCalled(t *testing.T, f *fakeFetcher, page int) {
	t.Helper()
	select {
	case got := <-f.called:
		if got != page {
			t.Fatalf("Expected fetch of page %d, got %d", page, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Timed out waiting for fetch of page %d", page)
	}
}

func TestNew_Defaults(t *testing.T) {
	tbl := New(newFakeFetcher())
	defer tbl.Close()

	s := tbl.State()
	if s.Page != model.FirstPage {
		t.Errorf("Expected page %d, got %d", model.FirstPage, s.Page)
	}
	if s.RowsPerPage != model.DefaultRowsPerPage {
		t.Errorf("Expected rows per page %d, got %d", model.DefaultRowsPerPage, s.RowsPerPage)
	}
	if s.Mode != model.SelectionRowClick {
		t.Errorf("Expected row-click selection mode, got %s", s.Mode)
	}
	if s.Loading {
		t.Error("Expected loading to be false before any fetch")
	}
	if len(s.Records) != 0 || len(s.Selected) != 0 {
		t.Error("Expected no records and no selection")
	}
}

func TestNew_Options(t *testing.T) {
	tests := []struct {
		name         string
		opts         []Option
		expectedRows int
		expectedMode model.SelectionMode
	}{
		{"checkbox mode", []Option{WithSelectionMode(model.SelectionCheckbox)}, 5, model.SelectionCheckbox},
		{"valid rows", []Option{WithRowsPerPage(25)}, 25, model.SelectionRowClick},
		{"invalid rows ignored", []Option{WithRowsPerPage(7)}, 5, model.SelectionRowClick},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := New(newFakeFetcher(), tt.opts...)
			defer tbl.Close()

			s := tbl.State()
			if s.RowsPerPage != tt.expectedRows {
				t.Errorf("expected rows %d, got %d", tt.expectedRows, s.RowsPerPage)
			}
			if s.Mode != tt.expectedMode {
				t.Errorf("expected mode %s, got %s", tt.expectedMode, s.Mode)
			}
		})
	}
}

func TestLoadPage_ReplacesRecords(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 2, 3)
	f.pages[3] = pageOf(7, 8)

	tbl := New(f)
	defer tbl.Close()

	if err := tbl.LoadPage(context.Background(), 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	<-f.called

	if err := tbl.LoadPage(context.Background(), 3); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	<-f.called

	s := tbl.State()
	if !reflect.DeepEqual(s.Records, f.pages[3].Data) {
		t.Errorf("Expected records of page 3, got %+v", s.Records)
	}
	if s.Page != 3 {
		t.Errorf("Expected page 3, got %d", s.Page)
	}
	if s.Pagination.TotalPages != 9 {
		t.Errorf("Expected pagination to be stored, got %+v", s.Pagination)
	}
	if s.Loading {
		t.Error("Expected loading to be false after load")
	}

	if calls := f.Calls(); !reflect.DeepEqual(calls, []int{1, 3}) {
		t.Errorf("Expected exactly one request per load, got %v", calls)
	}
}

func TestLoadPage_Idempotent(t *testing.T) {
	f := newFakeFetcher()
	f.pages[2] = pageOf(4, 5, 6)

	tbl := New(f)
	defer tbl.Close()

	if err := tbl.LoadPage(context.Background(), 2); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	<-f.called
	first := tbl.State().Records

	if err := tbl.LoadPage(context.Background(), 2); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	<-f.called
	second := tbl.State().Records

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical record sets, got %+v and %+v", first, second)
	}
}

func TestLoadPage_FailureKeepsStaleRecords(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 2)
	f.errs[2] = errors.New("connection reset")

	tbl := New(f)
	defer tbl.Close()

	if err := tbl.LoadPage(context.Background(), 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	<-f.called
	before := tbl.State().Records

	err := tbl.LoadPage(context.Background(), 2)
	<-f.called
	if err == nil {
		t.Fatal("Expected fetch error, got nil")
	}

	var fetchErr *artic.FetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("Expected *artic.FetchError, got %T", err)
	}

	s := tbl.State()
	if !reflect.DeepEqual(s.Records, before) {
		t.Errorf("Expected records unchanged after failure, got %+v", s.Records)
	}
	if s.Loading {
		t.Error("Expected loading to be false after failure")
	}
}

func TestLoadPage_InvalidPage(t *testing.T) {
	f := newFakeFetcher()
	tbl := New(f)
	defer tbl.Close()

	for _, n := range []int{0, -3} {
		err := tbl.LoadPage(context.Background(), n)
		if !errors.Is(err, artic.ErrInvalidPage) {
			t.Errorf("LoadPage(%d): expected ErrInvalidPage, got %v", n, err)
		}
	}

	if calls := f.Calls(); len(calls) != 0 {
		t.Errorf("Expected no requests, got %v", calls)
	}
	if tbl.State().Loading {
		t.Error("Expected loading to stay false")
	}
}

func TestLoadPage_LoadingTransitions(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1)

	tbl := New(f)
	defer tbl.Close()

	var mu sync.Mutex
	var statuses []model.LoadStatus
	tbl.SetUpdateCallback(func(s ViewState) {
		mu.Lock()
		statuses = append(statuses, s.Status())
		mu.Unlock()
	})

	if err := tbl.LoadPage(context.Background(), 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	<-f.called

	mu.Lock()
	defer mu.Unlock()
	expected := []model.LoadStatus{model.LoadStatusLoading, model.LoadStatusIdle}
	if !reflect.DeepEqual(statuses, expected) {
		t.Errorf("Expected status sequence %v, got %v", expected, statuses)
	}
}

func TestLoadPage_PreviousRowsVisibleWhileLoading(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 2)
	f.pages[2] = pageOf(3, 4)
	f.gates[2] = make(chan struct{})

	tbl := New(f)
	defer tbl.Close()

	if err := tbl.LoadPage(context.Background(), 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	<-f.called

	done := make(chan error, 1)
	go func() { done <- tbl.LoadPage(context.Background(), 2) }()
	waitCalled(t, f, 2)

	s := tbl.State()
	if !s.Loading {
		t.Error("Expected loading while page 2 is outstanding")
	}
	if s.Page != 2 {
		t.Errorf("Expected page number 2 while loading, got %d", s.Page)
	}
	if !reflect.DeepEqual(s.Records, f.pages[1].Data) {
		t.Errorf("Expected page 1 rows to stay visible, got %+v", s.Records)
	}

	close(f.gates[2])
	if err := <-done; err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := tbl.State().Records; !reflect.DeepEqual(got, f.pages[2].Data) {
		t.Errorf("Expected page 2 rows, got %+v", got)
	}
}

func TestOnPageTurn_ConvertsZeroBasedIndex(t *testing.T) {
	tests := []struct {
		pageIndex    int
		expectedPage int
	}{
		{0, 1},
		{1, 2},
		{4, 5},
	}

	for _, test := range tests {
		f := newFakeFetcher()
		f.pages[test.expectedPage] = pageOf(test.expectedPage * 10)

		tbl := New(f)
		tbl.OnPageTurn(test.pageIndex)
		tbl.Wait()

		calls := f.Calls()
		if !reflect.DeepEqual(calls, []int{test.expectedPage}) {
			t.Errorf("OnPageTurn(%d): expected request for page %d, got %v", test.pageIndex, test.expectedPage, calls)
		}
		if got := tbl.State().Page; got != test.expectedPage {
			t.Errorf("OnPageTurn(%d): expected page %d, got %d", test.pageIndex, test.expectedPage, got)
		}
		tbl.Close()
	}
}

func TestOnPageTurn_SwallowsErrors(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1)
	f.errs[2] = errors.New("timeout")

	tbl := New(f)
	defer tbl.Close()

	tbl.Mount()
	tbl.Wait()
	tbl.OnPageTurn(1)
	tbl.Wait()

	s := tbl.State()
	if s.Loading {
		t.Error("Expected loading to be false after failed page turn")
	}
	if !reflect.DeepEqual(s.Records, f.pages[1].Data) {
		t.Errorf("Expected page 1 records after failed page turn, got %+v", s.Records)
	}
	if s.Page != 2 {
		t.Errorf("Expected page number 2 after page turn, got %d", s.Page)
	}
}

func TestOnSelectionChange(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 2, 3)

	tbl := New(f)
	defer tbl.Close()

	if err := tbl.LoadPage(context.Background(), 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	<-f.called
	records := tbl.State().Records

	tests := []struct {
		name     string
		selected []model.Artwork
	}{
		{"single row", records[1:2]},
		{"subset", []model.Artwork{records[0], records[2]}},
		{"full set", records},
		{"empty clears", []model.Artwork{}},
		{"nil clears", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl.OnSelectionChange(tt.selected)

			got := tbl.State().Selected
			if len(got) != len(tt.selected) {
				t.Fatalf("expected %d selected, got %d", len(tt.selected), len(got))
			}
			for i := range got {
				if got[i] != tt.selected[i] {
					t.Errorf("selection %d: expected %+v, got %+v", i, tt.selected[i], got[i])
				}
			}
		})
	}
}

func TestOnSelectionChange_CopiesInput(t *testing.T) {
	tbl := New(newFakeFetcher())
	defer tbl.Close()

	selected := []model.Artwork{{ID: 1, Title: "One"}}
	tbl.OnSelectionChange(selected)
	selected[0].Title = "Mutated"

	if got := tbl.State().Selected[0].Title; got != "One" {
		t.Errorf("Expected stored selection to be a copy, got title %q", got)
	}
}

func TestOnSelectionChange_SurvivesPageChange(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 2)
	f.pages[2] = pageOf(3, 4)

	tbl := New(f)
	defer tbl.Close()

	if err := tbl.LoadPage(context.Background(), 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	<-f.called
	tbl.OnSelectionChange(tbl.State().Records[:1])

	if err := tbl.LoadPage(context.Background(), 2); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	<-f.called

	s := tbl.State()
	if len(s.Selected) != 1 || s.Selected[0].ID != 1 {
		t.Errorf("Expected selection from page 1 to be kept, got %+v", s.Selected)
	}
}

func TestToggleRecord_ConsecutiveToggles(t *testing.T) {
	tbl := New(newFakeFetcher())
	defer tbl.Close()

	var updates int
	tbl.SetUpdateCallback(func(ViewState) { updates++ })

	// two toggles with no state read in between must both apply
	tbl.ToggleRecord(model.Artwork{ID: 1})
	tbl.ToggleRecord(model.Artwork{ID: 2})

	if got := idsOf(tbl.State().Selected); !sameIDs(got, []int{1, 2}) {
		t.Errorf("Expected selection [1 2], got %v", got)
	}
	if updates != 2 {
		t.Errorf("Expected 2 updates, got %d", updates)
	}

	tbl.ToggleRecord(model.Artwork{ID: 1})
	if got := idsOf(tbl.State().Selected); !sameIDs(got, []int{2}) {
		t.Errorf("Expected selection [2], got %v", got)
	}
}

func TestSelectAndDeselectRecords(t *testing.T) {
	tbl := New(newFakeFetcher())
	defer tbl.Close()

	tbl.OnSelectionChange(artworks(9))
	tbl.SelectRecords(artworks(1, 2))
	tbl.SelectRecords(artworks(2, 3))

	if got := idsOf(tbl.State().Selected); !sameIDs(got, []int{9, 1, 2, 3}) {
		t.Errorf("Expected selection [9 1 2 3], got %v", got)
	}

	tbl.DeselectRecords(artworks(1, 2, 3))
	if got := idsOf(tbl.State().Selected); !sameIDs(got, []int{9}) {
		t.Errorf("Expected selection [9], got %v", got)
	}
}

func TestSetRowsPerPage(t *testing.T) {
	f := newFakeFetcher()
	tbl := New(f)
	defer tbl.Close()

	if err := tbl.SetRowsPerPage(25); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := tbl.State().RowsPerPage; got != 25 {
		t.Errorf("Expected rows per page 25, got %d", got)
	}
	if calls := f.Calls(); len(calls) != 0 {
		t.Errorf("Changing rows per page should not fetch, got %v", calls)
	}

	err := tbl.SetRowsPerPage(12)
	if !errors.Is(err, ErrInvalidRowsPerPage) {
		t.Errorf("Expected ErrInvalidRowsPerPage, got %v", err)
	}
	if got := tbl.State().RowsPerPage; got != 25 {
		t.Errorf("Invalid value should not change rows per page, got %d", got)
	}
}

// overlapping issues page 1 then page 2, and lets page 2 finish first
func overlapping(t *testing.T, opts ...Option) (*ArtworkTable, *fakeFetcher) {
	t.Helper()

	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 2)
	f.pages[2] = pageOf(3, 4)
	f.gates[1] = make(chan struct{})

	tbl := New(f, opts...)

	done1 := make(chan error, 1)
	go func() { done1 <- tbl.LoadPage(context.Background(), 1) }()
	waitCalled(t, f, 1)

	if err := tbl.LoadPage(context.Background(), 2); err != nil {
		t.Fatalf("Expected no error for page 2, got %v", err)
	}
	waitCalled(t, f, 2)

	close(f.gates[1])
	if err := <-done1; err != nil {
		t.Fatalf("Expected no error for page 1, got %v", err)
	}
	return tbl, f
}

func TestOverlappingLoads_DiscardsStaleResponse(t *testing.T) {
	tbl, f := overlapping(t)
	defer tbl.Close()

	s := tbl.State()
	if !reflect.DeepEqual(s.Records, f.pages[2].Data) {
		t.Errorf("Expected most recently requested page 2, got %+v", s.Records)
	}
	if s.Page != 2 {
		t.Errorf("Expected page 2, got %d", s.Page)
	}
	if s.Loading {
		t.Error("Expected loading to be false")
	}
}

func TestOverlappingLoads_LastResponseWinsWhenStaleAllowed(t *testing.T) {
	tbl, f := overlapping(t, WithStaleResponses(true))
	defer tbl.Close()

	s := tbl.State()
	if !reflect.DeepEqual(s.Records, f.pages[1].Data) {
		t.Errorf("Expected last-resolving page 1 data, got %+v", s.Records)
	}
	if s.Page != 2 {
		t.Errorf("Expected page number 2, got %d", s.Page)
	}
}

func TestOverlappingLoads_StaysLoadingUntilLatestCompletes(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1)
	f.pages[2] = pageOf(2)
	f.gates[2] = make(chan struct{})

	tbl := New(f)
	defer tbl.Close()

	done2 := make(chan error, 1)
	go func() {
		// page 2 is issued after page 1 below has started
		<-f.called
		done2 <- tbl.LoadPage(context.Background(), 2)
	}()

	go func() { _ = tbl.LoadPage(context.Background(), 1) }()

	// wait until page 2 is in flight
	deadline := time.After(2 * time.Second)
	for {
		calls := f.Calls()
		if len(calls) == 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("Timed out waiting for both requests, got %v", calls)
		case <-time.After(10 * time.Millisecond):
		}
	}
	<-f.called

	// page 1 may have completed by now, but page 2 is still outstanding
	time.Sleep(20 * time.Millisecond)
	if !tbl.State().Loading {
		t.Error("Expected loading while the latest request is outstanding")
	}

	close(f.gates[2])
	if err := <-done2; err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if tbl.State().Loading {
		t.Error("Expected loading to be false after latest request")
	}
}

func TestClose_CancelsInFlightPageTurn(t *testing.T) {
	f := newFakeFetcher()
	f.gates[1] = make(chan struct{})

	tbl := New(f)
	tbl.OnPageTurn(0)
	waitCalled(t, f, 1)

	tbl.Close()

	if tbl.State().Loading {
		t.Error("Expected loading to be cleared after cancel")
	}
}
