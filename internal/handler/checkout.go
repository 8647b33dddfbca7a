package handler

import (
	"net/http"
	"strings"

	"github.com/northshoreshop/storefront/internal/checkout"
	"github.com/northshoreshop/storefront/internal/currency"
	"github.com/northshoreshop/storefront/internal/domain"
	"github.com/northshoreshop/storefront/internal/logger"
)

// CheckoutSessionView is a checkout session with its total rendered for display
type CheckoutSessionView struct {
	*domain.CheckoutSession
	DisplayTotal        string `json:"display_total,omitempty"`
	DisplayShippingCost string `json:"display_shipping_cost,omitempty"`
}

// HandleCreateCheckoutSession starts a hosted checkout for the posted cart
// @Summary Create checkout session
// @Description Converts the cart into a checkout session; redirect the shopper to the returned session
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body domain.CheckoutRequest true "Cart details and shipping rate"
// @Success 200 {object} domain.CheckoutSession
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/checkout_sessions/cart [post]
func HandleCreateCheckoutSession(svc checkout.Service, publicBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req domain.CheckoutRequest
		if err := DecodeAndValidateRequest(r, w, &req, ActionCreateCheckoutSession); err != nil {
			return
		}

		origin := strings.TrimSuffix(r.Header.Get("Origin"), "/")
		if origin == "" {
			log.Debug(LogMsgOriginFallback, "public_base_url", publicBaseURL)
			origin = publicBaseURL
		}

		session, err := svc.CreateSession(r.Context(), req, origin)
		if err != nil {
			respondServiceError(w, r, ActionCreateCheckoutSession, err)
			return
		}

		log.Info(LogMsgCheckoutSessionCreate, "session_id", session.ID, "items", len(req.CartDetails))
		respondJSON(w, http.StatusOK, session)
	}
}

// HandleGetCheckoutSession returns a checkout session for the result page
// @Summary Get checkout session
// @Tags checkout
// @Produce json
// @Param id path string true "Checkout session ID"
// @Success 200 {object} CheckoutSessionView
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/checkout_sessions/{id} [get]
func HandleGetCheckoutSession(svc checkout.Service, formatter *currency.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}

		session, err := svc.GetSession(r.Context(), sessionID)
		if err != nil {
			respondServiceError(w, r, ActionGetCheckoutSession, err)
			return
		}

		view := CheckoutSessionView{CheckoutSession: session}
		if session.AmountTotal != nil {
			view.DisplayTotal = formatter.FormatProviderAmount(*session.AmountTotal, session.Currency)
		}
		if session.ShippingCost != nil {
			view.DisplayShippingCost = formatter.FormatProviderAmount(*session.ShippingCost, session.Currency)
		}

		logger.FromContext(r.Context()).Info(LogMsgCheckoutSessionFetch, "session_id", session.ID, "status", session.Status)
		respondJSON(w, http.StatusOK, view)
	}
}
