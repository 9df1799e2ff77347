package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webscrape"
	"github.com/fwojciec/webscrape/gemini"
	wsgin "github.com/fwojciec/webscrape/gin"
	"github.com/fwojciec/webscrape/goquery"
	"github.com/fwojciec/webscrape/htmltomarkdown"
	wshttp "github.com/fwojciec/webscrape/http"
	"github.com/fwojciec/webscrape/scrape"
	wsslog "github.com/fwojciec/webscrape/slog"
	"github.com/fwojciec/webscrape/zip"
	"github.com/gin-gonic/gin"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config holds service defaults. Set before calling Run().
	Config webscrape.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Config: webscrape.DefaultConfig(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    time.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webscrape"),
		kong.Description("Scrape web pages and archive their resources."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webscrape --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := m.wire(ctx, cli, deps); err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// wire builds the production services into deps.
func (m *Main) wire(ctx context.Context, cli *CLI, deps *Dependencies) error {
	cfg := m.Config
	logger := deps.Logger

	fetcher := wshttp.NewFetcher(
		wshttp.WithTimeout(cfg.FetchTimeout),
		wshttp.WithUserAgent(cfg.UserAgent),
		wshttp.WithMaxBodyBytes(cfg.MaxBodyBytes),
	)

	svc := &scrape.Service{
		Fetcher:   wsslog.NewLoggingFetcher(fetcher, logger),
		Extractor: wsslog.NewLoggingExtractor(goquery.NewExtractor(htmltomarkdown.NewConverter()), logger),
		Config:    cfg,
	}

	if cli.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		svc.Summarizer = wsslog.NewLoggingSummarizer(gemini.NewSummarizer(client, cli.GeminiModel, cfg.SystemPrompt), logger)
	}
	deps.Scraper = svc

	archives := zip.NewBuilder(wsslog.NewLoggingDownloader(fetcher, logger))
	archives.Logger = logger
	deps.Archives = archives

	deps.Server = wsgin.NewServer(deps.Scraper, deps.Archives, logger)
	return nil
}
