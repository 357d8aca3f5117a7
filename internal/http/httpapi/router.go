package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"bursana/internal/http/handlers"
	"bursana/internal/middleware"
)

// NewRouter wires the middleware chain and all API routes. The country lookup
// may be nil; locale detection then relies on headers alone.
func NewRouter(app *handlers.App, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.I18N("en", lookup),
		middleware.Logger(app.Logger),
		middleware.CORS(app.Config.AllowedOrigins),
		middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)

	r.Post("/v1/generate", app.Generate)
	r.Get("/v1/credits", app.Credits)
	r.Post("/v1/uploads", app.Upload)
	r.Get("/v1/admin/stats", app.AdminStats)

	r.Route("/v1/generations", func(r chi.Router) {
		r.Get("/", app.GenerationsList)
		r.Delete("/{id}", app.GenerationsDelete)
	})

	// Uploaded source photos are served from local disk under /static.
	if app.Store != nil {
		fileServer := stdhttp.StripPrefix("/static/", stdhttp.FileServer(stdhttp.Dir(app.Store.BasePath())))
		r.Get("/static/*", fileServer.ServeHTTP)
	}

	return r
}
