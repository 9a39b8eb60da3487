package middleware

import (
	"github.com/go-chi/cors"
)

// NewCORS creates the CORS middleware for the browser frontend. The API is
// unauthenticated, so credentials are not allowed and only the JSON content
// headers are needed.
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept"},
		ExposedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	})
}
