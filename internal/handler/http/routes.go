package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/config", func(r chi.Router) {
		r.With(withGZip).Get("/", h.getConfig)
		r.With(withGZip).Get("/content", h.getContent)
		r.With(withGZip).Get("/theme", h.getTheme)
		r.With(withGZip).Get("/theme/{category}", h.getThemeCategory)
		r.With(withGZip).Get("/plugins", h.getPlugins)
		r.With(withReloadRateLimit()).Post("/reload", h.reload)
	})

	router.Get("/api/version/", h.getServerVersion)

	// promhttp negotiates its own compression
	router.Method("GET", "/metrics", promhttp.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
