package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Crossref REST API base URL.
	BaseURL = "https://api.crossref.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps well inside the Crossref polite-pool guidance.
	RateLimit = 5.0

	// userAgent identifies the tool to the API. A mailto contact is
	// appended when configured, which routes requests to the polite pool.
	userAgent = "cita/1.0 (https://github.com/gmoura/cita)"
)

// Client is a rate-limited HTTP client for the Crossref works API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
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

// WithMailto sets the polite-pool contact address sent with each request.
func WithMailto(mailto string) ClientOption {
	return func(c *Client) {
		c.mailto = mailto
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(log zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new Crossref API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
		log:        zerolog.Nop(),
	}

	// Check for polite-pool contact in environment
	if mailto := os.Getenv("CITA_MAILTO"); mailto != "" {
		c.mailto = mailto
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetWork fetches the raw work message for a DOI. The returned bytes are
// the undecoded "message" object of the API envelope, suitable for debug
// dumps or permissive passthrough.
func (c *Client) GetWork(ctx context.Context, doi string) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/works/%s", c.baseURL, url.PathEscape(doi))
	if c.mailto != "" {
		u += "?mailto=" + url.QueryEscape(c.mailto)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.log.Debug().Str("doi", doi).Str("url", u).Msg("fetching work metadata")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching work metadata: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().Int("status", resp.StatusCode).Msg("crossref response")

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, DOI: doi}
	}

	var env workEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(env.Message) == 0 {
		return nil, fmt.Errorf("%w: envelope has no message object", ErrInvalidResponse)
	}
	return env.Message, nil
}

// Resolve fetches and normalizes the work for a DOI with strict dispatch:
// an unrecognized work type fails with UnsupportedTypeError.
func (c *Client) Resolve(ctx context.Context, doi string) (*Work, error) {
	message, err := c.GetWork(ctx, doi)
	if err != nil {
		return nil, err
	}
	return Normalize(message)
}

// ResolvePermissive fetches and normalizes the work for a DOI with
// permissive dispatch: an unrecognized work type yields the raw message.
func (c *Client) ResolvePermissive(ctx context.Context, doi string) (*Work, error) {
	message, err := c.GetWork(ctx, doi)
	if err != nil {
		return nil, err
	}
	return NormalizePermissive(message)
}
