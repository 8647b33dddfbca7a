package handler

import (
	"net/http"

	"github.com/northshoreshop/storefront/internal/catalog"
	"github.com/northshoreshop/storefront/internal/currency"
	"github.com/northshoreshop/storefront/internal/domain"
	"github.com/northshoreshop/storefront/internal/logger"
)

// ShippingRateView is a shipping option as shown in the cart
type ShippingRateView struct {
	domain.ShippingRate
	DisplayAmount string `json:"display_amount,omitempty"`
}

// HandleListShippingRates lists the active shipping options
// @Summary List shipping rates
// @Tags checkout
// @Produce json
// @Success 200 {array} ShippingRateView
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/shipping-rates [get]
func HandleListShippingRates(svc catalog.Service, formatter *currency.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rates, err := svc.ListShippingRates(r.Context())
		if err != nil {
			respondServiceError(w, r, ActionListShippingRates, err)
			return
		}

		views := make([]ShippingRateView, 0, len(rates))
		for _, rate := range rates {
			view := ShippingRateView{ShippingRate: rate}
			if rate.Amount != nil {
				view.DisplayAmount = formatter.FormatProviderAmount(*rate.Amount, rate.Currency)
			}
			views = append(views, view)
		}

		logger.FromContext(r.Context()).Info(LogMsgShippingRatesListed, "count", len(views))
		respondJSON(w, http.StatusOK, views)
	}
}
