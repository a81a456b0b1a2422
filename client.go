package arxiv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	apiBaseURL = "https://export.arxiv.org/api/query"

	// DefaultTimeout bounds one API request. Retries are a caller concern.
	DefaultTimeout = 15 * time.Second

	// apiRequestInterval follows the arXiv API usage guideline of one
	// request every three seconds.
	apiRequestInterval = 3 * time.Second
)

// Client fetches feed text from the arXiv API and runs it through the
// parse+normalize pipeline. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithRateInterval sets the minimum interval between API requests.
func WithRateInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// NewClient creates an arXiv API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Every(apiRequestInterval), 1),
		baseURL:    apiBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs a query against the arXiv API and returns the normalized
// result set in feed order. Entries that fail validation are skipped;
// one bad entry never blocks the result set.
func (c *Client) Search(ctx context.Context, q Query) ([]*Paper, error) {
	body, err := c.fetch(ctx, q.Encode())
	if err != nil {
		return nil, err
	}

	entries, err := ParseFeed(body)
	if err != nil {
		return nil, err
	}

	papers, _ := NormalizeAll(entries)
	return papers, nil
}

// Get fetches a single paper by its canonical identifier. A lookup that
// yields zero entries returns ErrNotFound.
func (c *Client) Get(ctx context.Context, id string) (*Paper, error) {
	params := url.Values{}
	params.Set("id_list", id)

	body, err := c.fetch(ctx, params.Encode())
	if err != nil {
		return nil, err
	}

	entries, err := ParseFeed(body)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return NormalizeEntry(entries[0])
}

func (c *Client) fetch(ctx context.Context, rawQuery string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	reqURL := c.baseURL + "?" + rawQuery
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: http %s", ErrNetwork, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}
	return body, nil
}
