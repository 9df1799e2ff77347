package zip_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/webscrape/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter(t *testing.T) {
	t.Parallel()

	t.Run("first download starts immediately", func(t *testing.T) {
		t.Parallel()

		limiter := zip.NewHostLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "https://example.com/a.png")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("spaces out downloads from the same host", func(t *testing.T) {
		t.Parallel()

		limiter := zip.NewHostLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "https://example.com/a.png"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "https://EXAMPLE.com/b.png")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("hosts are limited independently", func(t *testing.T) {
		t.Parallel()

		limiter := zip.NewHostLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "https://example.com/a.png"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "https://cdn.example.net/a.png")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("URLs without a host are not limited", func(t *testing.T) {
		t.Parallel()

		limiter := zip.NewHostLimiter(1)

		start := time.Now()
		for range 3 {
			require.NoError(t, limiter.Wait(context.Background(), "relative/path.png"))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("returns error when context ends first", func(t *testing.T) {
		t.Parallel()

		limiter := zip.NewHostLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "https://example.com/a"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "https://example.com/b"))
	})

	t.Run("concurrent waiters all proceed", func(t *testing.T) {
		t.Parallel()

		limiter := zip.NewHostLimiter(100)

		var wg sync.WaitGroup
		var completed atomic.Int32
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Wait(context.Background(), "https://example.com/x") == nil {
					completed.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(5), completed.Load())
	})
}
