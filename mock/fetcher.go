package mock

import (
	"context"

	"github.com/fwojciec/webscrape"
)

var _ webscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webscrape.Fetcher.
type Fetcher struct {
	FetchPageFn func(ctx context.Context, url string) (*webscrape.Page, error)
}

func (f *Fetcher) FetchPage(ctx context.Context, url string) (*webscrape.Page, error) {
	return f.FetchPageFn(ctx, url)
}

var _ webscrape.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of webscrape.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) (*webscrape.Resource, error)
}

func (d *Downloader) Download(ctx context.Context, url string) (*webscrape.Resource, error) {
	return d.DownloadFn(ctx, url)
}
