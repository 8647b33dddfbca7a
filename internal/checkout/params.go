package checkout

import (
	"fmt"
	"slices"
	"strings"

	"github.com/northshoreshop/storefront/internal/domain"
)

// validateRequest checks the cart before anything is sent to the provider
func validateRequest(req domain.CheckoutRequest) error {
	if len(req.CartDetails) == 0 {
		return domain.ErrEmptyCart
	}
	if req.ShippingRate == nil || strings.TrimSpace(req.ShippingRate.ID) == "" {
		return domain.ErrShippingRateRequired
	}
	for key, entry := range req.CartDetails {
		if priceID(key, entry) == "" {
			return fmt.Errorf(ErrMsgMissingPriceID, domain.ErrInvalidInput)
		}
		if entry.Quantity < MinLineQuantity || entry.Quantity > MaxLineQuantity {
			return fmt.Errorf(ErrMsgInvalidQuantityFmt, entry.Quantity, priceID(key, entry),
				MinLineQuantity, MaxLineQuantity, domain.ErrInvalidQuantity)
		}
	}
	return nil
}

// priceID prefers the entry's own id and falls back to its cart key
func priceID(key string, entry domain.CartEntry) string {
	if entry.ID != "" {
		return entry.ID
	}
	return key
}

// buildLineItems converts cart entries to provider line items ordered by price id
func buildLineItems(cart map[string]domain.CartEntry) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(cart))
	for key, entry := range cart {
		items = append(items, domain.LineItem{
			Price:    priceID(key, entry),
			Quantity: entry.Quantity,
		})
	}
	slices.SortFunc(items, func(a, b domain.LineItem) int {
		return strings.Compare(a.Price, b.Price)
	})
	return items
}

// buildSizeMetadata maps product id to the chosen size for every entry that
// carries both
func buildSizeMetadata(cart map[string]domain.CartEntry) map[string]string {
	metadata := make(map[string]string)
	for _, entry := range cart {
		size := entry.ProductData.ShirtSize
		productID := entry.ProductData.ProductID
		if size != "" && productID != "" {
			metadata[productID] = size
		}
	}
	return metadata
}

// buildParams assembles the full provider request for a validated cart
func buildParams(req domain.CheckoutRequest, origin string, allowedCountries []string) domain.CheckoutSessionParams {
	origin = strings.TrimRight(origin, "/")
	return domain.CheckoutSessionParams{
		LineItems:        buildLineItems(req.CartDetails),
		ShippingRate:     req.ShippingRate.ID,
		Metadata:         buildSizeMetadata(req.CartDetails),
		SuccessURL:       origin + SuccessPath,
		CancelURL:        origin + CancelPath,
		Mode:             domain.CheckoutModePayment,
		AllowedCountries: allowedCountries,
	}
}
