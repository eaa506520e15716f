package artic

import (
	"context"

	"github.com/ytget/artwork-browser/internal/model"
)

// Fetcher defines the interface for loading one page of artworks.
type Fetcher interface {
	// FetchPage loads the 1-based page n. Errors are *FetchError.
	FetchPage(ctx context.Context, page int) (*model.Page, error)
}
