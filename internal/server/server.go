// Package server exposes the keep-alive HTTP endpoint hosting platforms probe.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RootBody is the fixed response of GET /
const RootBody = "Bot is running!"

// ShutdownTimeout bounds how long Run waits for open requests
const ShutdownTimeout = 5 * time.Second

// Stats reports the number of running downloads
type Stats interface {
	ActiveCount() int
}

// Server is the keep-alive HTTP server
type Server struct {
	httpServer *http.Server
	stats      Stats
	logger     *log.Logger
}

// New creates a server listening on addr; stats may be nil
func New(addr string, stats Stats, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{stats: stats, logger: logger}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the router
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("keep-alive server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("keep-alive server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("keep-alive shutdown: %w", err)
	}
	return nil
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/healthz", s.handleHealth)
	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(RootBody))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	active := 0
	if s.stats != nil {
		active = s.stats.ActiveCount()
	}
	_, _ = fmt.Fprintf(w, "ok active=%d\n", active)
}
