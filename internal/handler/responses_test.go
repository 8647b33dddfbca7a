package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/northshoreshop/storefront/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, ErrMsgProductNotFoundError},
		{"wrapped price not found", fmt.Errorf("%w: price_1", domain.ErrPriceNotFound), http.StatusNotFound, ErrMsgPriceNotFoundError},
		{"session not found", domain.ErrSessionNotFound, http.StatusNotFound, ErrMsgSessionNotFoundError},
		{"empty cart", domain.ErrEmptyCart, http.StatusBadRequest, ErrMsgEmptyCartError},
		{"invalid quantity", fmt.Errorf("%w: 120", domain.ErrInvalidQuantity), http.StatusBadRequest, ErrMsgQuantityError},
		{"shipping rate required", domain.ErrShippingRateRequired, http.StatusBadRequest, ErrMsgShippingRateError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
		{"provider unavailable", fmt.Errorf("create session: %w", domain.ErrProviderUnavailable), http.StatusBadGateway, ErrMsgUnavailableError},
		{"database", domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unknown", errors.New("pq: relation does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	respondJSON(rec, http.StatusCreated, DataResponse{Message: "ok", Data: []int{1, 2}})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok","data":[1,2]}`, rec.Body.String())
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	respondError(rec, http.StatusBadGateway, ErrMsgUnavailableError)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"`+ErrMsgUnavailableError+`"}`, rec.Body.String())
}
