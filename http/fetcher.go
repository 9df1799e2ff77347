// Package http provides an HTTP-based implementation of webscrape.Fetcher
// and webscrape.Downloader. Pages are fetched as served; no JavaScript is
// executed.
package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/webscrape"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodyBytes caps a single response body.
const DefaultMaxBodyBytes = 32 << 20

// Ensure Fetcher implements webscrape.Fetcher and webscrape.Downloader at compile time.
var (
	_ webscrape.Fetcher    = (*Fetcher)(nil)
	_ webscrape.Downloader = (*Fetcher)(nil)
)

// Fetcher retrieves pages and raw resources using HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	maxBody   int64
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

// WithUserAgent overrides the User-Agent header.
// Defaults to webscrape.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodyBytes caps how many bytes of a response body are read.
// Larger responses fail with EFETCH. A non-positive n removes the cap.
// Defaults to DefaultMaxBodyBytes.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBody = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: webscrape.DefaultUserAgent,
		maxBody:   DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// FetchPage retrieves the HTML at url, decoded to UTF-8. The returned
// BaseURL is the origin of url itself, even if the server redirected.
func (f *Fetcher) FetchPage(ctx context.Context, url string) (*webscrape.Page, error) {
	base, err := webscrape.Origin(url)
	if err != nil {
		return nil, err
	}

	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := f.readBody(resp.Body, url)
	if err != nil {
		return nil, err
	}

	r, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, webscrape.Errorf(webscrape.EFETCH, "failed to decode %s: %v", url, err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, webscrape.Errorf(webscrape.EFETCH, "failed to decode %s: %v", url, err)
	}

	return &webscrape.Page{
		URL:     url,
		BaseURL: base,
		HTML:    string(body),
	}, nil
}

// Download retrieves the raw body at url along with its declared content type.
func (f *Fetcher) Download(ctx context.Context, url string) (*webscrape.Resource, error) {
	if !webscrape.IsValid(url) {
		return nil, webscrape.Errorf(webscrape.EINVALIDURL, "invalid URL %q", url)
	}

	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := f.readBody(resp.Body, url)
	if err != nil {
		return nil, err
	}

	return &webscrape.Resource{
		URL:         url,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// get issues the request and rejects non-2xx responses. The caller closes
// the body of a successful response.
func (f *Fetcher) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, webscrape.Errorf(webscrape.EINVALIDURL, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, webscrape.Errorf(webscrape.EFETCH, "%v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, webscrape.Errorf(webscrape.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	return resp, nil
}

// readBody reads r up to the configured cap.
func (f *Fetcher) readBody(r io.Reader, url string) ([]byte, error) {
	if f.maxBody <= 0 {
		body, err := io.ReadAll(r)
		if err != nil {
			return nil, webscrape.Errorf(webscrape.EFETCH, "failed to read %s: %v", url, err)
		}
		return body, nil
	}

	body, err := io.ReadAll(io.LimitReader(r, f.maxBody+1))
	if err != nil {
		return nil, webscrape.Errorf(webscrape.EFETCH, "failed to read %s: %v", url, err)
	}
	if int64(len(body)) > f.maxBody {
		return nil, webscrape.Errorf(webscrape.EFETCH, "response from %s exceeds %d bytes", url, f.maxBody)
	}
	return body, nil
}
