package domain

// CartEntry is one line of the client-side cart, keyed by price id in the cart store
type CartEntry struct {
	ID          string          `json:"id" validate:"required,max=255"`
	Name        string          `json:"name"`
	Quantity    int64           `json:"quantity" validate:"min=1,max=99"`
	Price       int64           `json:"price" validate:"min=0"`
	Currency    string          `json:"currency" validate:"omitempty,len=3"`
	ProductData CartProductData `json:"product_data"`
}

// CartProductData is the product context the cart keeps next to a line
type CartProductData struct {
	ProductID    string `json:"productId,omitempty"`
	ProductImage string `json:"productImage,omitempty"`
	ShirtSize    string `json:"shirtSize,omitempty"`
}

// ShippingRateRef identifies the shipping rate chosen in the cart
type ShippingRateRef struct {
	ID     string `json:"id" validate:"required"`
	Amount *int64 `json:"amount,omitempty"`
}

// CheckoutRequest is the body posted by the cart page to start a checkout
type CheckoutRequest struct {
	CartDetails  map[string]CartEntry `json:"cartDetails" validate:"required,min=1,dive"`
	ShippingRate *ShippingRateRef     `json:"shippingRate" validate:"required"`
}
