// Package openlibrary fetches book metadata from the Open Library books API
// and normalizes it into Monograph records.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/gmoura/cita/internal/record"
)

const (
	// BaseURL is the Open Library API base URL.
	BaseURL = "https://openlibrary.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit follows the Open Library guidance for bulk clients.
	RateLimit = 3.0
)

// Client is a rate-limited HTTP client for the Open Library books API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	log        zerolog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new Open Library API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetBookRaw fetches the raw envelope entry for an ISBN, suitable for debug
// dumps. The envelope is keyed "ISBN:<isbn>"; a missing key means Open
// Library has no record.
func (c *Client) GetBookRaw(ctx context.Context, isbn string) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("bibkeys", "ISBN:"+isbn)
	q.Set("jscmd", "details")
	q.Set("format", "json")
	u := c.baseURL + "/api/books?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug().Str("isbn", isbn).Str("url", u).Msg("fetching book metadata")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching book metadata: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().Int("status", resp.StatusCode).Msg("openlibrary response")

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, ISBN: isbn}
	}

	var envelope map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	raw, ok := envelope["ISBN:"+isbn]
	if !ok || len(raw) == 0 {
		return nil, ErrNotFound
	}
	return raw, nil
}

// GetBook fetches and normalizes the book record for an ISBN.
func (c *Client) GetBook(ctx context.Context, isbn string) (record.Monograph, error) {
	raw, err := c.GetBookRaw(ctx, isbn)
	if err != nil {
		return record.Monograph{}, err
	}

	var entry bookEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return record.Monograph{}, fmt.Errorf("decoding book entry: %w", err)
	}
	return normalizeBook(entry, isbn)
}
