// Package scrape provides single-page extraction orchestration. It ties
// fetching, facet extraction and optional summarization together for one
// request.
package scrape

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/webscrape"
)

// Error message prefixes that tell the caller which stage failed.
const (
	PrefixInvalid    = "Invalid request: "
	PrefixScrape     = "Scraping failed: "
	PrefixExtraction = "Extraction failed: "
	PrefixAnalysis   = "AI analysis failed: "
)

// Ensure Service implements webscrape.Scraper at compile time.
var _ webscrape.Scraper = (*Service)(nil)

// Service orchestrates a single scrape request.
type Service struct {
	Fetcher   webscrape.Fetcher
	Extractor webscrape.Extractor

	// Summarizer is optional. Without it, requests carrying a prompt fail
	// at the analysis stage.
	Summarizer webscrape.Summarizer

	Config webscrape.Config
}

// Scrape fetches req.URL, extracts the requested facet and, for the text
// facet with a prompt, attaches an analysis of the extracted text. Stages
// run strictly in sequence and the first failure ends the request.
func (s *Service) Scrape(ctx context.Context, req webscrape.ScrapeRequest) *webscrape.ScrapeResponse {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return failure(PrefixInvalid, webscrape.Errorf(webscrape.EINVALID, "URL is required"))
	}

	facet, err := webscrape.ParseFacet(req.Facet)
	if err != nil {
		return failure(PrefixExtraction, err)
	}

	page, err := s.Fetcher.FetchPage(ctx, url)
	if err != nil {
		return failure(PrefixScrape, err)
	}

	result, err := s.Extractor.Extract(page.HTML, page.BaseURL, facet, strings.TrimSpace(req.Selector))
	if err != nil {
		return failure(PrefixExtraction, err)
	}

	resp := &webscrape.ScrapeResponse{
		Success: true,
		Content: result.Content(),
		Type:    facet,
	}

	prompt := strings.TrimSpace(req.Prompt)
	if facet != webscrape.FacetText || prompt == "" {
		return resp
	}

	analysis, err := s.summarize(ctx, prompt, result.Text)
	if err != nil {
		r := failure(PrefixAnalysis, err)
		r.Code = webscrape.ESUMMARIZE
		return r
	}
	resp.Analysis = &analysis
	return resp
}

func (s *Service) summarize(ctx context.Context, prompt, text string) (string, error) {
	if s.Summarizer == nil {
		return "", webscrape.Errorf(webscrape.ESUMMARIZE, "summarization not configured")
	}
	return s.Summarizer.Summarize(ctx, prompt, webscrape.Truncate(text, s.Config.MaxContentChars))
}

func failure(prefix string, err error) *webscrape.ScrapeResponse {
	return &webscrape.ScrapeResponse{
		Success: false,
		Error:   prefix + detail(err),
		Code:    webscrape.ErrorCode(err),
	}
}

// detail returns the application message, or the raw error text for
// non-application errors.
func detail(err error) string {
	var e *webscrape.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
