package domain

import "time"

// CheckoutMode is the provider's checkout session mode
type CheckoutMode string

const (
	CheckoutModePayment CheckoutMode = "payment"
)

// CheckoutSessionPlaceholder is substituted by the provider with the session id
const CheckoutSessionPlaceholder = "{CHECKOUT_SESSION_ID}"

// LineItem is a price and quantity sent to the provider
type LineItem struct {
	Price    string `json:"price"`
	Quantity int64  `json:"quantity"`
}

// CheckoutSessionParams is the request shape for creating a hosted checkout session
type CheckoutSessionParams struct {
	LineItems        []LineItem        `json:"line_items"`
	ShippingRate     string            `json:"shipping_rate"`
	Metadata         map[string]string `json:"metadata"`
	SuccessURL       string            `json:"success_url"`
	CancelURL        string            `json:"cancel_url"`
	Mode             CheckoutMode      `json:"mode"`
	AllowedCountries []string          `json:"allowed_countries,omitempty"`
	IdempotencyKey   string            `json:"-"`
}

// Address is a postal address attached to a checkout session
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// ShippingDetails is who and where a completed order ships to
type ShippingDetails struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

// CheckoutSession is the provider's checkout session as seen by the storefront
type CheckoutSession struct {
	ID              string            `json:"id"`
	URL             string            `json:"url,omitempty"`
	Status          string            `json:"status"`
	PaymentStatus   string            `json:"payment_status"`
	AmountTotal     *int64            `json:"amount_total,omitempty"`
	Currency        string            `json:"currency,omitempty"`
	CustomerEmail   string            `json:"customer_email,omitempty"`
	ShippingDetails *ShippingDetails  `json:"shipping_details,omitempty"`
	ShippingCost    *int64            `json:"shipping_cost,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// Checkout session status values reported by the provider
const (
	CheckoutStatusOpen     = "open"
	CheckoutStatusComplete = "complete"
	CheckoutStatusExpired  = "expired"
)

// OrderRecord is a checkout session kept in the order ledger
type OrderRecord struct {
	SessionID    string            `json:"session_id" db:"session_id"`
	ShippingRate string            `json:"shipping_rate" db:"shipping_rate"`
	LineItems    []LineItem        `json:"line_items" db:"line_items"`
	Metadata     map[string]string `json:"metadata" db:"metadata"`
	AmountTotal  *int64            `json:"amount_total,omitempty" db:"amount_total"`
	Currency     string            `json:"currency" db:"currency"`
	Status       string            `json:"status" db:"status"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" db:"updated_at"`
}
