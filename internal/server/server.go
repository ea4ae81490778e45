package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"periscope/internal/logging"
	"periscope/internal/state"
	"periscope/internal/version"
)

// Server is the periscope HTTP service.
type Server struct {
	listen    string
	store     *state.Store
	logger    *slog.Logger
	startedAt time.Time

	workers chan struct{}
}

// New creates a service bound to listen, reading from store.
func New(listen string, store *state.Store, logger *slog.Logger) *Server {
	return &Server{
		listen: listen,
		store:  store,
		logger: logging.NewComponentLogger(logger, "server"),
	}
}

// Run starts the service and blocks until ctx is cancelled or the
// listener fails. A workers value of zero sizes the query pool from the
// CPU count.
func (s *Server) Run(ctx context.Context, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	s.workers = make(chan struct{}, workers)
	s.startedAt = time.Now()

	srv := &http.Server{
		Addr:         s.listen,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("service starting",
		logging.String("listen", s.listen),
		logging.Int("workers", workers),
		logging.String("version", version.Version))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("service shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Get("/api/health", s.handleHealth)
	r.Get("/api/devices", s.handleDevices)
	r.Get("/api/devices/{id}", s.handleDevice)
	r.Post("/api/query", s.handleQuery)
	return r
}

// acquireWorker blocks until a query worker slot is free or ctx ends.
func (s *Server) acquireWorker(ctx context.Context) error {
	select {
	case s.workers <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) releaseWorker() { <-s.workers }
