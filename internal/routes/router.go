package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/afero"

	"infinite-experiment/themecookie/internal/api"
	"infinite-experiment/themecookie/internal/middleware"
)

func RegisterRoutes(deps *api.Dependencies, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.Logging(deps.Log))
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	// Provider queries made out of order panic; answer those with a 500
	r.Use(chimw.Recoverer)

	limiter := middleware.NewRateLimiter(deps.Config.RateLimit.RPS, deps.Config.RateLimit.Burst)

	r.Get("/healthCheck", api.HealthCheckHandler(deps.Resources, deps.Sessions, upSince))
	r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	// Theme stylesheets, served from the same file system they are validated against
	themeFiles := afero.NewHttpFs(deps.Resources.Fs()).Dir(deps.Resources.Root())
	r.Handle(api.ThemesPath+"/*", http.StripPrefix(api.ThemesPath, http.FileServer(themeFiles)))

	// Pages
	r.Get("/", deps.UI.PageHandler)
	r.With(limiter.Middleware).Post(api.EventPath, deps.UI.EventHandler)

	// UI API routes
	r.Route("/ui/api", func(uiApi chi.Router) {
		uiApi.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.Config.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300, // Maximum value not ignored by any of major browsers
		}))
		uiApi.Use(middleware.ThemeMiddleware(deps.Resources))

		uiApi.Get("/theme", deps.Themes.GetPreference)
		uiApi.With(limiter.Middleware).Post("/theme", deps.Themes.SetPreference)
		uiApi.Get("/themes", deps.Themes.ListThemes)
	})

	deps.Log.Infow("Router initialized", "themes_root", deps.Resources.Root())
	return r
}
