package domain

import "errors"

// Every recoverable failure the tracker can signal. Callers match with
// errors.Is; the CLI maps them to user-visible messages.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("product not found")
	ErrDuplicateSKU      = errors.New("a product with this SKU already exists")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInsufficientStock = errors.New("insufficient stock")
)
