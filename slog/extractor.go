package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webscrape"
)

// Ensure LoggingExtractor implements webscrape.Extractor.
var _ webscrape.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of facet and result size.
type LoggingExtractor struct {
	next   webscrape.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next webscrape.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html, baseURL string, facet webscrape.Facet, selector string) (result *webscrape.ExtractionResult, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"base_url", baseURL,
			"facet", string(facet),
			"selector", selector,
			"items", resultSize(result),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, baseURL, facet, selector)
}

// resultSize is the entry count for list facets and the byte length of
// text facets.
func resultSize(r *webscrape.ExtractionResult) int {
	if r == nil {
		return 0
	}
	switch r.Facet {
	case webscrape.FacetLinks:
		return len(r.Links)
	case webscrape.FacetImages:
		return len(r.Images)
	case webscrape.FacetVideos:
		return len(r.Videos)
	default:
		return len(r.Text)
	}
}
