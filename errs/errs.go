// Package errs defines the error kinds the storefront services surface. Raw
// storage errors are folded into this taxonomy at the operation boundary so
// driver error text never reaches clients.
package errs

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both a missing entity and an ownership mismatch.
	ErrNotFound           = errors.New("not found")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrItemNotAvailable   = errors.New("item not available")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrStorageConflict    = errors.New("storage conflict")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
)

var kinds = []error{
	ErrNotFound,
	ErrInvalidQuantity,
	ErrItemNotAvailable,
	ErrEmptyCart,
	ErrInvalidTransition,
	ErrStorageConflict,
	ErrStorageUnavailable,
	ErrUnauthorized,
}

// Translate maps an arbitrary error onto the taxonomy. Errors already wrapping
// a taxonomy kind pass through unchanged; gorm's record-not-found becomes
// ErrNotFound; anything else is treated as the storage layer being unusable.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return err
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return ErrStorageUnavailable
}
