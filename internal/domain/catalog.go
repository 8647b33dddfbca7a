package domain

// PriceType discriminates one-time prices from subscription prices
type PriceType string

const (
	PriceTypeOneTime   PriceType = "one_time"
	PriceTypeRecurring PriceType = "recurring"
)

// Price is a purchasable amount for a product as reported by the payment provider.
// UnitAmount is expressed in minor currency units and is nil when the provider
// does not carry a fixed amount (tiered or customer-chosen pricing).
type Price struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product"`
	UnitAmount *int64    `json:"unit_amount"`
	Currency   string    `json:"currency"`
	Type       PriceType `json:"type"`
}

// Product is a sellable item as reported by the payment provider
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Active         bool              `json:"active"`
	Images         []string          `json:"images"`
	DefaultPriceID string            `json:"default_price"`
	Metadata       map[string]string `json:"metadata"`
	TaxCode        *string           `json:"tax_code"`
	URL            *string           `json:"url"`
}

// ShippingRate is an active shipping option offered at checkout
type ShippingRate struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Amount      *int64 `json:"amount"`
	Currency    string `json:"currency"`
}
