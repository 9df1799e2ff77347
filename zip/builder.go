// Package zip builds webscrape.Archive values from downloaded resources and
// serializes them as zip files.
package zip

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webscrape"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of simultaneous downloads per archive.
const DefaultConcurrency = 4

// Ensure Builder implements webscrape.ArchiveBuilder at compile time.
var _ webscrape.ArchiveBuilder = (*Builder)(nil)

// Builder downloads resources and collects the successful ones into an archive.
type Builder struct {
	Downloader webscrape.Downloader

	// Concurrency limits simultaneous downloads. Defaults to DefaultConcurrency.
	Concurrency int

	// RequestsPerSecond, when positive, limits downloads per host within a
	// single BuildArchive call.
	RequestsPerSecond float64

	// Logger receives one record per member. Defaults to discarding.
	Logger *slog.Logger
}

// NewBuilder creates a Builder with default settings.
func NewBuilder(d webscrape.Downloader) *Builder {
	return &Builder{Downloader: d}
}

// BuildArchive downloads every URL and returns the successful ones, named
// file_<n><ext> by the order in which they completed. A failed download is
// logged and skipped. If ctx is cancelled the partial archive is discarded.
func (b *Builder) BuildArchive(ctx context.Context, urls []string) (*webscrape.Archive, error) {
	if len(urls) == 0 {
		return nil, webscrape.Errorf(webscrape.ENOURLS, "no URLs provided")
	}

	logger := b.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var limiter *HostLimiter
	if b.RequestsPerSecond > 0 {
		limiter = NewHostLimiter(b.RequestsPerSecond)
	}

	var (
		mu       sync.Mutex
		archive  = &webscrape.Archive{Members: []*webscrape.ArchiveMember{}}
		g        errgroup.Group
		position int
	)
	g.SetLimit(concurrency)

	for _, u := range urls {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := b.download(ctx, limiter, u)
			if err != nil {
				logger.Warn("archive member skipped",
					"url", u,
					"err", webscrape.Errorf(webscrape.EMEMBER, "%s: %s", u, webscrape.ErrorMessage(err)),
				)
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			position++
			member := &webscrape.ArchiveMember{
				Name:        fmt.Sprintf("file_%d%s", position, Extension(res.ContentType)),
				URL:         res.URL,
				ContentType: res.ContentType,
				Checksum:    strconv.FormatUint(xxhash.Sum64(res.Body), 16),
				Body:        res.Body,
			}
			archive.Members = append(archive.Members, member)
			logger.Info("archive member added",
				"url", u,
				"name", member.Name,
				"bytes", len(member.Body),
				"checksum", member.Checksum,
			)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return archive, nil
}

func (b *Builder) download(ctx context.Context, limiter *HostLimiter, rawURL string) (*webscrape.Resource, error) {
	if limiter != nil {
		if err := limiter.Wait(ctx, rawURL); err != nil {
			return nil, err
		}
	}
	return b.Downloader.Download(ctx, rawURL)
}
