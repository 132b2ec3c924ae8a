package http

import (
	"log/slog"
	"net/http"

	"eventlisting/internal/delivery/http/controllers"
	"eventlisting/internal/delivery/http/middleware"
	"eventlisting/internal/domain"
	"eventlisting/internal/metrics"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig carries everything NewRouter needs to wire routes and middleware.
type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Verifier       domain.TokenVerifier
	AllowedOrigins []string
	Public         *controllers.PublicEventController
	Private        *controllers.PrivateEventController
}

// NewRouter initializes the HTTP router with all application routes and wraps it
// in the middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	owner := middleware.RequireOwner(cfg.Verifier, cfg.Logger)

	// Public
	mux.HandleFunc("GET /events", cfg.Public.ListEvents)
	mux.HandleFunc("GET /events/{id}", cfg.Public.GetEvent)
	mux.HandleFunc("GET /events/{eventId}/comments", cfg.Public.ListComments)

	// Owner
	mux.HandleFunc("GET /users/{userId}/events", owner(cfg.Private.ListEvents))
	mux.HandleFunc("POST /users/{userId}/events", owner(cfg.Private.CreateEvent))
	mux.HandleFunc("PATCH /users/{userId}/events", owner(cfg.Private.UpdateEvent))
	mux.HandleFunc("GET /users/{userId}/events/{eventId}", owner(cfg.Private.GetEvent))
	mux.HandleFunc("PATCH /users/{userId}/events/{eventId}", owner(cfg.Private.CancelEvent))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", cfg.Metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = middleware.Metrics(cfg.Metrics, mux)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	handler = middleware.RequestID(handler)
	return middleware.CORS(cfg.AllowedOrigins, handler)
}
