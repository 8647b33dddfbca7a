package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgProductNotFound = "product not found"
	ErrMsgPriceNotFound   = "price not found"

	// Checkout errors
	ErrMsgSessionNotFound      = "checkout session not found"
	ErrMsgEmptyCart            = "cart is empty"
	ErrMsgInvalidQuantity      = "invalid quantity"
	ErrMsgShippingRateRequired = "shipping rate is required"

	// Provider errors
	ErrMsgProviderUnavailable = "payment provider unavailable"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrProductNotFound = errors.New(ErrMsgProductNotFound)
	ErrPriceNotFound   = errors.New(ErrMsgPriceNotFound)

	ErrSessionNotFound      = errors.New(ErrMsgSessionNotFound)
	ErrEmptyCart            = errors.New(ErrMsgEmptyCart)
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)
	ErrShippingRateRequired = errors.New(ErrMsgShippingRateRequired)

	ErrProviderUnavailable = errors.New(ErrMsgProviderUnavailable)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
