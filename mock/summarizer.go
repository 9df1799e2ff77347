package mock

import (
	"context"

	"github.com/fwojciec/webscrape"
)

var _ webscrape.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of webscrape.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, prompt, content string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, prompt, content string) (string, error) {
	return s.SummarizeFn(ctx, prompt, content)
}
