// Package http provides an HTTP-based implementation of camdict.Fetcher
// that queries the Cambridge English-Chinese (Traditional) dictionary.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/is3ka1/camdict"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultBaseURL is the direct-search endpoint. It redirects to the entry
// page when the word exists and to the spellcheck page otherwise.
const DefaultBaseURL = "https://dictionary.cambridge.org/zht/%E6%90%9C%E7%B4%A2/direct/"

// Dataset selects the English-Chinese (Traditional) dictionary.
const Dataset = "english-chinese-traditional"

// DefaultUserAgent is sent with every request; the site rejects unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:71.0) Gecko/20100101 Firefox/71.0"

// Ensure Fetcher implements camdict.Fetcher at compile time.
var _ camdict.Fetcher = (*Fetcher)(nil)

// Fetcher looks up words by issuing a GET to the direct-search endpoint and
// following redirects. It is safe for concurrent use.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL sets the search endpoint. Used to point the fetcher at a test server.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = u
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit limits requests to rps per second with no bursting.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithHTTPClient replaces the underlying client. The client's own Timeout
// is used and WithTimeout has no effect.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the lookup page for word. The returned Response carries the
// URL the request resolved to after redirects; non-2xx statuses are not errors.
func (f *Fetcher) Fetch(ctx context.Context, word string) (*camdict.Response, error) {
	reqURL, err := f.queryURL(word)
	if err != nil {
		return nil, err
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &camdict.Response{
		URL:        resp.Request.URL.String(),
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

func (f *Fetcher) queryURL(word string) (string, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return "", camdict.Errorf(camdict.EINVALID, "invalid base URL: %v", err)
	}
	u.RawQuery = url.Values{
		"datasetsearch": {Dataset},
		"q":             {word},
	}.Encode()
	return u.String(), nil
}
