package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware with a permissive origin policy; the mobile and web
// clients call the API from arbitrary origins.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}).Handler
}
