package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/leminhohoho/movie-lens/api/pkg/metrics"
	"github.com/leminhohoho/movie-lens/api/pkg/utils"
)

// Store is everything the HTTP surface needs from persistence.
type Store interface {
	MovieStore
	DirectorStore
	GenreStore
	Ping(ctx context.Context) error
}

// NewRouter mounts the movie, director and genre resources. m may be nil, in
// which case no metrics are recorded or exposed.
func NewRouter(s Store, logger *slog.Logger, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(logger))
	r.Use(middleware.Recoverer)
	if m != nil {
		r.Use(m.Middleware)
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := s.Ping(r.Context()); err != nil {
			logger.Error("health check failed", "err", err)
			utils.WriteError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/movies", NewMovieHandler(s, logger).Routes)
	r.Route("/directors", NewDirectorHandler(s, logger).Routes)
	r.Route("/genres", NewGenreHandler(s, logger).Routes)

	return r
}

func accessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info(
				"request served",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
