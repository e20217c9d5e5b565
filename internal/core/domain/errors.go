package domain

import "errors"

// Construction errors.
var (
	ErrEmptyName        = errors.New("product name is empty")
	ErrNegativePrice    = errors.New("product price is negative")
	ErrNegativeQuantity = errors.New("product quantity is negative")
	ErrInvalidMaximum   = errors.New("per-order maximum is less than 1")
)

// Purchase errors.
var (
	ErrInvalidQuantity   = errors.New("purchase quantity must be greater than 0")
	ErrInactiveProduct   = errors.New("product is not active")
	ErrInsufficientStock = errors.New("not enough items in stock")
	ErrPurchaseLimit     = errors.New("purchase quantity exceeds per-order maximum")
)
