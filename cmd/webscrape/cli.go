package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/webscrape"
	wsgin "github.com/fwojciec/webscrape/gin"
	"github.com/fwojciec/webscrape/zip"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Scraper  webscrape.Scraper
	Archives *zip.Builder
	Server   *wsgin.Server
	Now      func() time.Time
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key; enables prompt analysis"`
	GeminiModel  string `name:"gemini-model" env:"GEMINI_MODEL" default:"gemini-2.5-flash" help:"Gemini model used for analysis"`
	Verbose      bool   `short:"v" help:"Enable debug logging"`

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API"`
	Scrape  ScrapeCmd  `cmd:"" help:"Scrape a single page and print the result as JSON"`
	Archive ArchiveCmd `cmd:"" help:"Download resources into a zip archive"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8000" env:"WEBSCRAPE_ADDR" help:"Listen address"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Facet    string `short:"t" default:"text" enum:"text,links,images,videos,markdown" help:"Content to extract (${enum})"`
	Selector string `short:"s" help:"CSS selector restricting text and markdown extraction"`
	Prompt   string `short:"p" help:"Question to ask about the extracted text"`
}

// ArchiveCmd is the "archive" subcommand.
type ArchiveCmd struct {
	URLs        []string `arg:"" name:"url" help:"Resource URLs"`
	Output      string   `short:"o" help:"Output zip path (default: generated name)"`
	ContentType string   `name:"content-type" default:"files" help:"Label used in the generated file name"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent download limit"`
	Rate        float64  `short:"r" help:"Requests per second per host (0 = unlimited)"`
}
