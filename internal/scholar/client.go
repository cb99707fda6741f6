// Copyright Niklas Bubeck, 2026. All rights reserved.

// Package scholar fetches an author profile from the Semantic Scholar graph
// API and normalizes it into a types.ProfileSnapshot.
package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/nbubeck/scholar-page/internal/httputil"
	"github.com/nbubeck/scholar-page/pkg/types"
)

// DefaultAPIBase is the Semantic Scholar author endpoint.
const DefaultAPIBase = "https://api.semanticscholar.org/graph/v1/author"

// authorFields is the field set requested per fetch: identity, aggregate
// stats, and per-paper metadata. Requesting a fixed set keeps the response
// shape stable.
const authorFields = "name,affiliations,homepage,paperCount,citationCount,hIndex," +
	"papers.title,papers.authors,papers.venue,papers.year,papers.citationCount," +
	"papers.url,papers.openAccessPdf,papers.paperId"

// APIError reports a failed Semantic Scholar request: either a non-2xx
// status or an unparseable body.
type APIError struct {
	// StatusCode is the HTTP status, 0 for parse failures.
	StatusCode int

	// Parse is true when the response body could not be decoded.
	Parse bool

	Err error
}

func (e *APIError) Error() string {
	if e.Parse {
		return fmt.Sprintf("semantic scholar: parsing response: %v", e.Err)
	}
	return fmt.Sprintf("semantic scholar: HTTP %d", e.StatusCode)
}

func (e *APIError) Unwrap() error { return e.Err }

// Client fetches author profiles from the Semantic Scholar API. The zero
// value is not usable; construct with NewClient.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	apiKey     string
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithAPIKey sets the x-api-key header for authenticated requests.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL sets a custom author endpoint (for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a Semantic Scholar client from cfg. Keyed clients get a
// higher courtesy rate limit than unkeyed ones.
func NewClient(cfg types.ScholarConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = types.DefaultTimeout
	}

	rps := 1.0
	if cfg.APIKey != "" {
		rps = 10.0
	}

	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    httputil.NewCourtesyLimiter(rps),
		baseURL:    DefaultAPIBase,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// rawAuthor mirrors the author endpoint response. Any field may be absent;
// absence is not an error.
type rawAuthor struct {
	Name          string           `json:"name"`
	Affiliations  []rawAffiliation `json:"affiliations"`
	Homepage      string           `json:"homepage"`
	PaperCount    int              `json:"paperCount"`
	CitationCount int              `json:"citationCount"`
	HIndex        int              `json:"hIndex"`
	Papers        []rawPaper       `json:"papers"`
}

type rawAffiliation struct {
	Name string `json:"name"`
}

type rawPaper struct {
	Title         string           `json:"title"`
	Authors       []rawPaperAuthor `json:"authors"`
	Venue         string           `json:"venue"`
	Year          int              `json:"year"`
	CitationCount int              `json:"citationCount"`
	URL           string           `json:"url"`
	OpenAccessPdf *rawOpenAccess   `json:"openAccessPdf"`
	PaperID       string           `json:"paperId"`
}

type rawPaperAuthor struct {
	Name     string `json:"name"`
	AuthorID string `json:"authorId"`
}

type rawOpenAccess struct {
	URL string `json:"url"`
}

// FetchAuthor issues one GET for authorID and returns the normalized
// snapshot. A non-2xx status or undecodable body fails with *APIError;
// transport failures are returned wrapped.
func (c *Client) FetchAuthor(ctx context.Context, authorID string) (types.ProfileSnapshot, error) {
	if authorID == "" {
		return types.ProfileSnapshot{}, fmt.Errorf("author ID is empty")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return types.ProfileSnapshot{}, err
	}

	reqURL := fmt.Sprintf("%s/%s?fields=%s", c.baseURL, url.PathEscape(authorID), url.QueryEscape(authorFields))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return types.ProfileSnapshot{}, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return types.ProfileSnapshot{}, fmt.Errorf("semantic scholar request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.ProfileSnapshot{}, &APIError{StatusCode: resp.StatusCode}
	}

	var raw rawAuthor
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return types.ProfileSnapshot{}, &APIError{Parse: true, Err: err}
	}

	return normalize(raw, time.Now()), nil
}
