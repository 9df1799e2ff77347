// Package gin exposes webscrape services over HTTP using gin-gonic/gin.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/webscrape"
	"github.com/gin-gonic/gin"
)

// Server timeouts.
const (
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 2 * time.Minute
	DefaultShutdownTimeout = 10 * time.Second
)

// Server routes scrape and download requests to webscrape services.
type Server struct {
	Scraper  webscrape.Scraper
	Archives webscrape.ArchiveBuilder
	Logger   *slog.Logger

	// Now returns the current time. Used to name archive downloads.
	Now func() time.Time

	// ShutdownTimeout bounds graceful shutdown once the serving context ends.
	ShutdownTimeout time.Duration

	router *gin.Engine
}

// NewServer creates a Server and registers its routes.
func NewServer(scraper webscrape.Scraper, archives webscrape.ArchiveBuilder, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		Scraper:         scraper,
		Archives:        archives,
		Logger:          logger,
		Now:             time.Now,
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	router := gin.New()
	// Recovery runs first so panics in later middleware are caught.
	router.Use(Recovery(logger))
	router.Use(RequestID())
	router.Use(Logger(logger))

	router.GET("/healthz", s.handleHealth)
	router.POST("/scrape", s.handleScrape)
	router.POST("/download", s.handleDownload)

	s.router = router
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully, waiting up to ShutdownTimeout for in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("http server started", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.Logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
