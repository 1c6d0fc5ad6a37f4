package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already in use")
	ErrUsernameTaken      = errors.New("username already taken")

	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")

	ErrEmptyCart         = errors.New("cart is empty, nothing to order")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrInvalidPayment    = errors.New("invalid payment method")
	ErrNotOrderOwner     = errors.New("order does not belong to this user")
)

// ValidationError carries every problem found in an order payload so callers
// can render all of them at once instead of fixing one at a time.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Errors[0]
}
