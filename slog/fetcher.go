// Package slog provides logging decorators for webscrape services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webscrape"
)

// Ensure LoggingFetcher implements webscrape.Fetcher.
var _ webscrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with request logging.
type LoggingFetcher struct {
	next   webscrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next webscrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchPage delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) FetchPage(ctx context.Context, url string) (page *webscrape.Page, err error) {
	defer func(begin time.Time) {
		var n int
		if page != nil {
			n = len(page.HTML)
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchPage(ctx, url)
}

// Ensure LoggingDownloader implements webscrape.Downloader.
var _ webscrape.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with debug logging.
type LoggingDownloader struct {
	next   webscrape.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next webscrape.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the outcome.
func (d *LoggingDownloader) Download(ctx context.Context, url string) (res *webscrape.Resource, err error) {
	defer func(begin time.Time) {
		var n int
		var contentType string
		if res != nil {
			n = len(res.Body)
			contentType = res.ContentType
		}
		d.logger.Debug("download",
			"url", url,
			"content_type", contentType,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, url)
}
