// Package stores wraps the document store collections behind typed
// accessors. Every method issues exactly one store call; results are
// returned as-is for the handlers to serialize.
package stores

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateTransaction is returned when a payment insert hits the
	// unique transactionId index.
	ErrDuplicateTransaction = errors.New("transaction already recorded")
)
