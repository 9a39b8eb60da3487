package handlers

import (
	"errors"
	"net/http"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/api/response"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/validation"
)

// respondServiceError maps service-layer errors onto HTTP status codes:
// missing stocks are client errors (404), invariant and validation failures
// are bad requests (400), everything else, including quote and store
// failures, is a server error (500). Prices are never silently defaulted.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	var validationErr *validation.Error

	switch {
	case errors.As(err, &validationErr):
		response.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
	case errors.Is(err, apperrors.ErrStockNotFound):
		response.RespondError(w, http.StatusNotFound, "Stock not found", nil)
	case errors.Is(err, apperrors.ErrInvalidStock):
		response.RespondError(w, http.StatusBadRequest, message, err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, message, err.Error())
	}
}
