package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mergington/internal/activities/handler"
	"mergington/internal/platform/health"
	"mergington/internal/platform/metrics"
	"mergington/internal/platform/middleware"
)

// NewRouter wires all public endpoints with middleware.
// Business logic lives behind the activities handler; this layer only
// routes, serves the static frontend, and exposes operational endpoints.
func NewRouter(activities *handler.Handler, healthHandler *health.Handler, staticDir string, logger *slog.Logger, m *metrics.Metrics, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(requestTimeout))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}

	// The browser entry point lives under /static; the root just points at it.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
	r.Get("/static/*", fileServer.ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())

	healthHandler.Register(r)
	activities.Register(r)

	return r
}
