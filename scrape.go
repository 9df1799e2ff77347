package webscrape

import "context"

// ScrapeRequest describes one extraction request.
type ScrapeRequest struct {
	URL      string `json:"url" form:"url"`
	Selector string `json:"selector" form:"selector"`
	Facet    string `json:"facet" form:"facet"`
	Prompt   string `json:"prompt" form:"prompt"`
}

// ScrapeResponse is the outcome of a ScrapeRequest. Failures are reported
// in-band with Success false and a prefixed Error message.
type ScrapeResponse struct {
	Success  bool    `json:"success"`
	Content  any     `json:"content,omitempty"`
	Type     Facet   `json:"type,omitempty"`
	Analysis *string `json:"analysis,omitempty"`
	Error    string  `json:"error,omitempty"`

	// Code is the application error code behind Error.
	Code string `json:"-"`
}

// Scraper fetches a page and extracts the requested facet.
type Scraper interface {
	// Scrape never returns a nil response. Errors are reported in the response.
	Scrape(ctx context.Context, req ScrapeRequest) *ScrapeResponse
}
