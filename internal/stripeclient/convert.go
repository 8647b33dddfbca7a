package stripeclient

import (
	"github.com/stripe/stripe-go/v76"

	"github.com/northshoreshop/storefront/internal/domain"
)

// toDomainPrice maps a provider price. UnitAmount is only meaningful for
// per-unit prices with a fixed amount; tiered and customer-chosen prices
// carry no amount.
func toDomainPrice(p *stripe.Price) domain.Price {
	price := domain.Price{
		ID:       p.ID,
		Currency: string(p.Currency),
		Type:     domain.PriceType(p.Type),
	}
	if p.Product != nil {
		price.ProductID = p.Product.ID
	}
	if p.BillingScheme != stripe.PriceBillingSchemeTiered && p.CustomUnitAmount == nil {
		amount := p.UnitAmount
		price.UnitAmount = &amount
	}
	return price
}

func toDomainProduct(p *stripe.Product) domain.Product {
	product := domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Active:      p.Active,
		Images:      p.Images,
		Metadata:    p.Metadata,
	}
	if p.DefaultPrice != nil {
		product.DefaultPriceID = p.DefaultPrice.ID
	}
	if p.TaxCode != nil && p.TaxCode.ID != "" {
		taxCode := p.TaxCode.ID
		product.TaxCode = &taxCode
	}
	if p.URL != "" {
		url := p.URL
		product.URL = &url
	}
	return product
}

func toDomainShippingRate(r *stripe.ShippingRate) domain.ShippingRate {
	rate := domain.ShippingRate{
		ID:          r.ID,
		DisplayName: r.DisplayName,
	}
	if r.FixedAmount != nil {
		amount := r.FixedAmount.Amount
		rate.Amount = &amount
		rate.Currency = string(r.FixedAmount.Currency)
	}
	return rate
}

func toDomainSession(s *stripe.CheckoutSession) *domain.CheckoutSession {
	session := &domain.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		Status:        string(s.Status),
		PaymentStatus: string(s.PaymentStatus),
		Currency:      string(s.Currency),
		CustomerEmail: s.CustomerEmail,
		Metadata:      s.Metadata,
	}

	amountTotal := s.AmountTotal
	session.AmountTotal = &amountTotal

	if session.CustomerEmail == "" && s.CustomerDetails != nil {
		session.CustomerEmail = s.CustomerDetails.Email
	}

	if s.ShippingCost != nil {
		cost := s.ShippingCost.AmountTotal
		session.ShippingCost = &cost
	}

	if s.ShippingDetails != nil {
		details := &domain.ShippingDetails{Name: s.ShippingDetails.Name}
		if a := s.ShippingDetails.Address; a != nil {
			details.Address = domain.Address{
				Line1:      a.Line1,
				Line2:      a.Line2,
				City:       a.City,
				State:      a.State,
				PostalCode: a.PostalCode,
				Country:    a.Country,
			}
		}
		session.ShippingDetails = details
	}

	return session
}

// toSessionParams builds the provider request, adding the fixed options every
// storefront session uses.
func toSessionParams(p domain.CheckoutSessionParams) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode:                     stripe.String(string(p.Mode)),
		SubmitType:               stripe.String(string(stripe.CheckoutSessionSubmitTypePay)),
		PaymentMethodTypes:       stripe.StringSlice([]string{paymentMethodCard}),
		BillingAddressCollection: stripe.String(billingAddressCollection),
		AutomaticTax: &stripe.CheckoutSessionAutomaticTaxParams{
			Enabled: stripe.Bool(true),
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}

	for _, item := range p.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Price:    stripe.String(item.Price),
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	if p.ShippingRate != "" {
		params.ShippingOptions = []*stripe.CheckoutSessionShippingOptionParams{
			{ShippingRate: stripe.String(p.ShippingRate)},
		}
	}

	if len(p.AllowedCountries) > 0 {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(p.AllowedCountries),
		}
	}

	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	if p.IdempotencyKey != "" {
		params.SetIdempotencyKey(p.IdempotencyKey)
	}

	return params
}
