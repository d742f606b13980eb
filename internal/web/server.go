package web

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/omarshaarawi/statsboard/internal/config"
)

//go:embed static
var staticFiles embed.FS

func NewRouter(h *Handler, cfg config.Server) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/", h.Index)
	r.Get("/health", h.HealthCheck)

	r.Route("/advanced-stats", func(r chi.Router) {
		r.Get("/", h.AdvancedStats)
		r.Post("/refresh", h.Refresh)
		r.Get("/predictions", h.Predictions)
	})
	r.Get("/dashboard", h.Dashboard)
	r.Post("/update", h.ManualUpdate)

	r.Route("/fragments", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{"GET", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{viewHeader},
			MaxAge:         300,
		}))
		r.Get("/teams", h.TeamsFragment)
		r.Get("/search", h.SearchFragment)
		r.Get("/alerts", h.AlertsFragment)
		r.Delete("/alerts/{id}", h.DismissAlert)
	})

	r.Route("/go", func(r chi.Router) {
		r.Get("/export", h.GoExport)
		r.Get("/compare", h.GoCompare)
		r.Get("/player/{id}", h.GoPlayer)
		r.Get("/team/{id}", h.GoTeam)
	})

	r.Get("/charts/{id}.png", h.ChartPNG)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return r
}
