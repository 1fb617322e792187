package router

import (
	"net/http"

	"menu-kart/internal/handler"
	"menu-kart/internal/middleware"

	"github.com/rs/zerolog"
)

const itemPath = "/api/sessions/{id}/sections/{sectionId}/items/{itemId}"

// New creates a new HTTP router with all routes and middleware configured.
func New(
	restaurantHandler *handler.RestaurantHandler,
	sessionHandler *handler.SessionHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("GET /api/restaurants", restaurantHandler.List)
	mux.HandleFunc("GET /api/restaurants/{id}", restaurantHandler.Get)

	mux.HandleFunc("POST /api/sessions", sessionHandler.Start)
	mux.HandleFunc("GET /api/sessions/{id}", sessionHandler.View)
	mux.HandleFunc("DELETE /api/sessions/{id}", sessionHandler.End)
	mux.HandleFunc("GET /api/sessions/{id}/cart", sessionHandler.Cart)
	mux.HandleFunc("POST "+itemPath+"/increment", sessionHandler.Increment)
	mux.HandleFunc("POST "+itemPath+"/decrement", sessionHandler.Decrement)
	mux.HandleFunc("POST "+itemPath+"/cart", sessionHandler.AddToCart)

	// Apply middleware in order: Recovery -> CorrelationID -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.CorrelationID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
