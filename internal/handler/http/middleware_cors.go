package http

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// withCORS wraps the router with a permissive CORS policy so that browser
// clients served from any origin can call the API.
func withCORS() func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
}
