package artic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPage is returned for page numbers below model.FirstPage
	ErrInvalidPage = errors.New("page number must be at least 1")

	// ErrMissingData is returned when the response has no "data" array
	ErrMissingData = errors.New("response has no data array")
)

// StatusError reports a non-2xx response from the API
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("artworks API returned status %d: %s", e.StatusCode, e.Body)
}

// FetchError wraps every network, status and decode failure of a page fetch
type FetchError struct {
	Page      int
	RequestID string
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch artworks page %d (request %s): %v", e.Page, e.RequestID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
