package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrStockNotFound indicates that a stock with the given ID does not exist.
	ErrStockNotFound = errors.New("stock not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidStock indicates that a stock record violates a model invariant,
	// most importantly a buy price that is zero or negative. Gain/loss is
	// computed relative to the buy price, so a non-positive buy price can
	// never be valued.
	ErrInvalidStock = errors.New("invalid stock")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")
)

// Collaborator failure errors represent upstream or infrastructure failures.
var (
	// ErrQuoteUnavailable indicates that the upstream quote source could not
	// produce a usable price for a symbol. Network failures, malformed
	// responses and unknown symbols all surface as this one error; the quote
	// API does not let us tell them apart reliably.
	ErrQuoteUnavailable = errors.New("quote unavailable")

	// ErrStoreUnavailable indicates that the persistence layer is unreachable.
	ErrStoreUnavailable = errors.New("store unavailable")
)
