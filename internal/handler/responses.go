package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/northshoreshop/storefront/internal/domain"
	"github.com/northshoreshop/storefront/internal/logger"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Headers are already sent, so encode failures can only be logged
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeResponseFailed, "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteResponseFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped user message
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		log.Error(action, "error", err, "status", statusCode)
	} else {
		log.Warn(action, "error", err, "status", statusCode)
	}
	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgProductNotFoundError = "Product not found"
	ErrMsgPriceNotFoundError   = "This product is not available for purchase"
	ErrMsgSessionNotFoundError = "Checkout session not found"
	ErrMsgEmptyCartError       = "Your cart is empty"
	ErrMsgQuantityError        = "Each item quantity must be between 1 and 99"
	ErrMsgShippingRateError    = "Please choose a shipping option"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError     = "Payments are temporarily unavailable. Please try again later."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon. Unrecognized errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, ErrMsgProductNotFoundError
	case errors.Is(err, domain.ErrPriceNotFound):
		return http.StatusNotFound, ErrMsgPriceNotFoundError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest, ErrMsgEmptyCartError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgQuantityError
	case errors.Is(err, domain.ErrShippingRateRequired):
		return http.StatusBadRequest, ErrMsgShippingRateError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrProviderUnavailable):
		return http.StatusBadGateway, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
