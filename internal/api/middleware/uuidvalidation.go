// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/api/response"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/validation"
)

// ValidateStockIDMiddleware validates that the stockId URL parameter is present
// and is a valid UUID. Returns 400 Bad Request if the ID is missing or invalid.
//
// Example usage in router:
//
//	r.Route("/{stockId}", func(r chi.Router) {
//	    r.Use(middleware.ValidateStockIDMiddleware)
//	    r.Put("/", handler.UpdateStock)
//	    r.Delete("/", handler.DeleteStock)
//	})
func ValidateStockIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stockID := chi.URLParam(r, "stockId")

		if stockID == "" {
			response.RespondError(w, http.StatusBadRequest, "valid stock ID is required", "")
			return
		}

		if err := validation.ValidateUUID(stockID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid stock ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
