package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"pomocua-ads/internal/delivery/http/controllers"
	"pomocua-ads/internal/delivery/http/helpers"
	"pomocua-ads/internal/delivery/http/middleware"
	"pomocua-ads/internal/domain"
)

// RouterConfig carries the collaborators of NewRouter.
type RouterConfig struct {
	Logger         *slog.Logger
	Verifier       domain.TokenVerifier
	Accommodations *controllers.AccommodationController
	Transport      *controllers.TransportController
	AllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes, wrapped in
// request ID, logging and CORS middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	secure := middleware.RequireAuth(cfg.Verifier, cfg.Logger)

	// Accommodations
	mux.HandleFunc("GET /api/accommodations", cfg.Accommodations.List)
	mux.HandleFunc("GET /api/accommodations/{id}", cfg.Accommodations.Get)
	mux.HandleFunc("GET /api/accommodations/{region}/{city}", cfg.Accommodations.ListByLocation)
	mux.HandleFunc("POST /api/secure/accommodations", secure(cfg.Accommodations.Create))
	mux.HandleFunc("PUT /api/secure/accommodations/{id}", secure(cfg.Accommodations.Update))
	mux.HandleFunc("DELETE /api/secure/accommodations/{id}", secure(cfg.Accommodations.Delete))

	// Transport
	mux.HandleFunc("GET /api/transport", cfg.Transport.List)
	mux.HandleFunc("GET /api/transport/{id}", cfg.Transport.Get)
	mux.HandleFunc("POST /api/secure/transport", secure(cfg.Transport.Create))
	mux.HandleFunc("PUT /api/secure/transport/{id}", secure(cfg.Transport.Update))
	mux.HandleFunc("DELETE /api/secure/transport/{id}", secure(cfg.Transport.Delete))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	handler = middleware.RequestID(handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	return handler
}
