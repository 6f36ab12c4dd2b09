package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/milica1221/fpl/config"
	"github.com/milica1221/fpl/controller"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/render"
)

func getRouter(cfg *config.Config, ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", standingsHandler(ctrl, render))
	r.Get("/players", playerSearchHandler(ctrl, render))
	r.Get("/healthz", healthHandler(render))

	r.Route("/api", func(r chi.Router) {
		r.Get("/team-details/{entryID:\\d+}", teamDetailsHandler(ctrl, render))
	})

	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("fpl", map[string]string{cfg.AdminUser: cfg.AdminPass}))
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Post("/cache/clear", cacheClearHandler(ctrl, render))
		r.Get("/cache/stats", cacheStatsHandler(ctrl, render))
		r.Post("/refresh", refreshHandler(ctrl, render))
	})

	return r
}
