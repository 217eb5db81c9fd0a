package mw

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS restricts cross-origin calls to the configured origins (the
// static frontend). adminHeader must be allowed through so browser
// clients can send the caller identity.
func CORS(origins []string, adminHeader string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", adminHeader},
		MaxAge:         300,
	})
}
