package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ndegroot/Stock-Portfolio-Tracker-Backend/internal/apperrors"
)

// Error is a field-keyed validation error. Handlers serialize Fields directly
// into the error response so clients see which field failed and why.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// ValidateUUID checks that an ID is a well-formed UUID.
func ValidateUUID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.ErrEmptyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrInvalidUUID
	}
	return nil
}
