package webscrape

import "context"

// Summarizer produces a natural language analysis of extracted content.
type Summarizer interface {
	// Summarize answers prompt about content. Callers are expected to
	// truncate content beforehand.
	Summarize(ctx context.Context, prompt string, content string) (string, error)
}
