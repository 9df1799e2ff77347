package webscrape

import "context"

// Page is a fetched HTML document.
type Page struct {
	// URL is the URL that was requested.
	URL string

	// BaseURL is the scheme://host of the requested URL. Redirects do not
	// change it.
	BaseURL string

	// HTML is the response body decoded to UTF-8.
	HTML string
}

// Fetcher retrieves HTML pages.
type Fetcher interface {
	// FetchPage issues a single GET for url.
	// Returns EINVALIDURL for a malformed url and EFETCH for network
	// failures, timeouts and non-2xx responses.
	FetchPage(ctx context.Context, url string) (*Page, error)
}

// Resource is a downloaded archive candidate.
type Resource struct {
	URL         string
	ContentType string
	Body        []byte
}

// Downloader retrieves raw resources for archiving.
type Downloader interface {
	// Download issues a single GET for url and returns the raw body with the
	// declared content type. Failure modes match Fetcher.FetchPage.
	Download(ctx context.Context, url string) (*Resource, error)
}
