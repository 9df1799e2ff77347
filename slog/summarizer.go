package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webscrape"
)

// Ensure LoggingSummarizer implements webscrape.Summarizer.
var _ webscrape.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   webscrape.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next webscrape.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the outcome.
func (s *LoggingSummarizer) Summarize(ctx context.Context, prompt, content string) (analysis string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"input_bytes", len(content),
			"output_bytes", len(analysis),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, prompt, content)
}
