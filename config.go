package webscrape

import "time"

// DefaultUserAgent is sent with every outbound request. Some sites refuse
// clients that don't look like a browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultSystemPrompt is the fixed instruction given to the summarizer.
const DefaultSystemPrompt = "You are a helpful AI assistant that analyzes web content. " +
	"Provide a concise summary and key insights about the following content."

// Config holds process-wide settings shared by the scraper components.
type Config struct {
	// MaxContentChars caps how much extracted text is sent for summarization.
	MaxContentChars int

	// SystemPrompt is the summarizer's system instruction.
	SystemPrompt string

	// UserAgent is the User-Agent header for page and resource fetches.
	UserAgent string

	// FetchTimeout bounds every outbound fetch.
	FetchTimeout time.Duration

	// MaxBodyBytes caps each fetched page or archive resource.
	MaxBodyBytes int64
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		MaxContentChars: 15000,
		SystemPrompt:    DefaultSystemPrompt,
		UserAgent:       DefaultUserAgent,
		FetchTimeout:    10 * time.Second,
		MaxBodyBytes:    32 << 20,
	}
}

// Truncate returns at most n runes of s. A non-positive n disables truncation.
func Truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
