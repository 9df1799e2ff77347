package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/webscrape"
	wshttp "github.com/fwojciec/webscrape/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_FetchPage(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body and origin of requested URL", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := wshttp.NewFetcher()

		page, err := fetcher.FetchPage(context.Background(), server.URL+"/docs/page?x=1")
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", page.HTML)
		assert.Equal(t, server.URL, page.BaseURL)
		assert.Equal(t, server.URL+"/docs/page?x=1", page.URL)
	})

	t.Run("sends browser user agent", func(t *testing.T) {
		t.Parallel()

		got := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.UserAgent()
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := wshttp.NewFetcher()

		_, err := fetcher.FetchPage(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, webscrape.DefaultUserAgent, <-got)
	})

	t.Run("respects custom user agent option", func(t *testing.T) {
		t.Parallel()

		got := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.UserAgent()
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := wshttp.NewFetcher(wshttp.WithUserAgent("test-agent"))

		_, err := fetcher.FetchPage(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "test-agent", <-got)
	})

	t.Run("keeps requested origin after redirect", func(t *testing.T) {
		t.Parallel()

		target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("moved"))
		}))
		defer target.Close()

		origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, target.URL+"/new", http.StatusFound)
		}))
		defer origin.Close()

		fetcher := wshttp.NewFetcher()

		page, err := fetcher.FetchPage(context.Background(), origin.URL+"/old")
		require.NoError(t, err)
		assert.Equal(t, "moved", page.HTML)
		assert.Equal(t, origin.URL, page.BaseURL)
	})

	t.Run("decodes declared charset to UTF-8", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			_, _ = w.Write([]byte("<p>caf\xe9</p>"))
		}))
		defer server.Close()

		fetcher := wshttp.NewFetcher()

		page, err := fetcher.FetchPage(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<p>café</p>", page.HTML)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := wshttp.NewFetcher(wshttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.FetchPage(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, webscrape.EFETCH, webscrape.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := wshttp.NewFetcher()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.FetchPage(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := wshttp.NewFetcher(wshttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.FetchPage(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, webscrape.EFETCH, webscrape.ErrorCode(err))
	})

	t.Run("returns error for non-2xx status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		fetcher := wshttp.NewFetcher()

		_, err := fetcher.FetchPage(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, webscrape.EFETCH, webscrape.ErrorCode(err))
		assert.Contains(t, webscrape.ErrorMessage(err), "404")
	})

	t.Run("accepts non-200 success codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNonAuthoritativeInfo)
			_, _ = w.Write([]byte("cached"))
		}))
		defer server.Close()

		fetcher := wshttp.NewFetcher()

		page, err := fetcher.FetchPage(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "cached", page.HTML)
	})

	t.Run("rejects pages larger than the body cap", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("a", 11)))
		}))
		defer server.Close()

		fetcher := wshttp.NewFetcher(wshttp.WithMaxBodyBytes(10))

		_, err := fetcher.FetchPage(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, webscrape.EFETCH, webscrape.ErrorCode(err))
		assert.Contains(t, webscrape.ErrorMessage(err), "exceeds 10 bytes")
	})

	t.Run("accepts pages exactly at the body cap", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("a", 10)))
		}))
		defer server.Close()

		fetcher := wshttp.NewFetcher(wshttp.WithMaxBodyBytes(10))

		page, err := fetcher.FetchPage(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Len(t, page.HTML, 10)
	})

	t.Run("rejects relative URL before any request", func(t *testing.T) {
		t.Parallel()

		fetcher := wshttp.NewFetcher()

		_, err := fetcher.FetchPage(context.Background(), "/just/a/path")
		require.Error(t, err)
		assert.Equal(t, webscrape.EINVALIDURL, webscrape.ErrorCode(err))
	})
}

func TestFetcher_Download(t *testing.T) {
	t.Parallel()

	t.Run("returns raw body and content type", func(t *testing.T) {
		t.Parallel()

		payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(payload)
		}))
		defer server.Close()

		fetcher := wshttp.NewFetcher()

		res, err := fetcher.Download(context.Background(), server.URL+"/logo.png")
		require.NoError(t, err)
		assert.Equal(t, payload, res.Body)
		assert.Equal(t, "image/png", res.ContentType)
		assert.Equal(t, server.URL+"/logo.png", res.URL)
	})

	t.Run("returns error for server errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		fetcher := wshttp.NewFetcher()

		_, err := fetcher.Download(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, webscrape.EFETCH, webscrape.ErrorCode(err))
		assert.Contains(t, webscrape.ErrorMessage(err), "500")
	})

	t.Run("rejects resources larger than the body cap", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "video/mp4")
			_, _ = w.Write(make([]byte, 4096))
		}))
		defer server.Close()

		fetcher := wshttp.NewFetcher(wshttp.WithMaxBodyBytes(1024))

		res, err := fetcher.Download(context.Background(), server.URL+"/clip.mp4")
		require.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, webscrape.EFETCH, webscrape.ErrorCode(err))
	})

	t.Run("reads any size when the cap is disabled", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(make([]byte, 4096))
		}))
		defer server.Close()

		fetcher := wshttp.NewFetcher(wshttp.WithMaxBodyBytes(0))

		res, err := fetcher.Download(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Len(t, res.Body, 4096)
	})

	t.Run("rejects malformed URL", func(t *testing.T) {
		t.Parallel()

		fetcher := wshttp.NewFetcher()

		_, err := fetcher.Download(context.Background(), "not a url")
		require.Error(t, err)
		assert.Equal(t, webscrape.EINVALIDURL, webscrape.ErrorCode(err))
	})
}
