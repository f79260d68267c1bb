package cart

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable is returned when the ledger file does not exist or is not writable.
var ErrStorageUnavailable = errors.New("ledger file not found or not writable")

// ErrValidation is the parent of all entry validation errors.
var ErrValidation = errors.New("invalid entry")

// Validation failures, all matching ErrValidation with errors.Is.
var (
	ErrMissingSKU      = fmt.Errorf("%w: no SKU", ErrValidation)
	ErrZeroQuantity    = fmt.Errorf("%w: quantity should be a non zero integer", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: quantity parameter invalid", ErrValidation)
	ErrInvalidPrice    = fmt.Errorf("%w: price parameter invalid", ErrValidation)
	ErrInvalidCurrency = fmt.Errorf("%w: currency parameter invalid", ErrValidation)
)

// Business rule failures of RemoveFromCart.
var (
	ErrSKUNotFound       = errors.New("SKU not found")
	ErrInsufficientStock = errors.New("not enough in stock")
)
