package mock

import (
	"context"

	"github.com/fwojciec/webscrape"
)

var _ webscrape.ArchiveBuilder = (*ArchiveBuilder)(nil)

// ArchiveBuilder is a mock implementation of webscrape.ArchiveBuilder.
type ArchiveBuilder struct {
	BuildArchiveFn func(ctx context.Context, urls []string) (*webscrape.Archive, error)
}

func (b *ArchiveBuilder) BuildArchive(ctx context.Context, urls []string) (*webscrape.Archive, error) {
	return b.BuildArchiveFn(ctx, urls)
}
