package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ytget/artwork-browser/internal/model"
)

// API constants
const (
	DefaultBaseURL = "https://api.artic.edu/api/v1"
	DefaultTimeout = 30 * time.Second

	ArtworksPath   = "/artworks"
	PageQueryParam = "page"
)

// Response handling limits
const (
	MaxResponseBytes = 10 << 20
	MaxErrorBodyLen  = 256
)

// Client fetches artwork pages over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new artworks API client. An empty baseURL falls back
// to DefaultBaseURL; a non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request timeout
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// PageURL builds the request URL for the 1-based page n
func (c *Client) PageURL(page int) string {
	return fmt.Sprintf("%s%s?%s=%d", c.baseURL, ArtworksPath, PageQueryParam, page)
}

// FetchPage loads one page of artworks
func (c *Client) FetchPage(ctx context.Context, page int) (*model.Page, error) {
	requestID := uuid.NewString()

	if page < model.FirstPage {
		return nil, &FetchError{Page: page, RequestID: requestID, Err: ErrInvalidPage}
	}

	pageURL := c.PageURL(page)

	log.Debug().
		Str("request_id", requestID).
		Str("url", pageURL).
		Int("page", page).
		Msg("Fetching artworks page")

	result, err := c.fetch(ctx, pageURL)
	if err != nil {
		return nil, &FetchError{Page: page, RequestID: requestID, Err: err}
	}

	log.Debug().
		Str("request_id", requestID).
		Int("page", page).
		Int("records", len(result.Data)).
		Int("total_pages", result.Pagination.TotalPages).
		Msg("Artworks page fetched")

	return result, nil
}

// fetch performs the request and decodes the body
func (c *Client) fetch(ctx context.Context, pageURL string) (*model.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", pageURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), MaxErrorBodyLen)}
	}

	var result model.Page
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode artworks response: %w", err)
	}

	// a missing or null data array is a failure, an empty one is a valid page
	if result.Data == nil {
		return nil, ErrMissingData
	}

	return &result, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
