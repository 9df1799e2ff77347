package webscrape_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/webscrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := webscrape.Errorf(webscrape.EFETCH, "HTTP %d for %s", 404, "https://example.com")

	assert.Equal(t, webscrape.EFETCH, webscrape.ErrorCode(err))
	assert.Equal(t, "HTTP 404 for https://example.com", webscrape.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch page: %w", webscrape.Errorf(webscrape.EINVALIDURL, "bad"))

	assert.Equal(t, webscrape.EINVALIDURL, webscrape.ErrorCode(err))
	assert.Equal(t, "bad", webscrape.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("boom")

	assert.Equal(t, webscrape.EINTERNAL, webscrape.ErrorCode(err))
	assert.Equal(t, "Internal error.", webscrape.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webscrape.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webscrape.ErrorMessage(nil))
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := webscrape.DefaultConfig()

	assert.Equal(t, 15000, cfg.MaxContentChars)
	assert.Contains(t, cfg.SystemPrompt, "summary and key insights")
	assert.Contains(t, cfg.UserAgent, "Mozilla/5.0")
	assert.Equal(t, "10s", cfg.FetchTimeout.String())
	assert.Equal(t, int64(32<<20), cfg.MaxBodyBytes)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("returns short input unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "hello", webscrape.Truncate("hello", 10))
	})

	t.Run("cuts at rune count", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "hel", webscrape.Truncate("hello", 3))
	})

	t.Run("counts multibyte runes as one character", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "żółw", webscrape.Truncate("żółwie", 4))
	})

	t.Run("non-positive limit disables truncation", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "hello", webscrape.Truncate("hello", 0))
	})
}
