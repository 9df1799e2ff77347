package mock

import "github.com/fwojciec/webscrape"

var _ webscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webscrape.Extractor.
type Extractor struct {
	ExtractFn func(html, baseURL string, facet webscrape.Facet, selector string) (*webscrape.ExtractionResult, error)
}

func (e *Extractor) Extract(html, baseURL string, facet webscrape.Facet, selector string) (*webscrape.ExtractionResult, error) {
	return e.ExtractFn(html, baseURL, facet, selector)
}
