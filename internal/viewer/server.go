package viewer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/frcpath/zebraview/internal/pkg/config"
	"github.com/frcpath/zebraview/internal/pkg/field"
	"github.com/frcpath/zebraview/internal/pkg/zebra"
)

// Server exposes one loaded competition index over HTTP. The index is built
// before the server starts and never mutated, so handlers take no locks.
type Server struct {
	data   *zebra.Competitions
	field  *field.Field
	events map[string]EventInfo
}

// NewServer wires a server around loaded data. events may be nil when no
// events file is configured; dropdown labels then fall back to event keys.
func NewServer(data *zebra.Competitions, f *field.Field, events map[string]EventInfo) *Server {
	return &Server{data: data, field: f, events: events}
}

// Router assembles the chi router for the dashboard.
func (s *Server) Router(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	if len(allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/ping", s.handlePing)
	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndexPage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/events", s.handleEvents)
		r.Get("/events/{event}/matches", s.handleEventMatches)
		r.Get("/matches/{key}", s.handleMatch)
		r.Get("/matches/{key}/paths", s.handleMatchPaths)
		r.Get("/field", s.handleField)
	})

	return r
}

// Run serves the dashboard until ctx is canceled.
func Run(ctx context.Context, cfg *config.ViewerConfig, s *Server) error {
	if cfg.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("viewer: read_header_timeout must be specified in config")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Router(cfg.AllowedOrigins),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Viewer listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("viewer: shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("viewer: serve: %w", err)
	}
}
