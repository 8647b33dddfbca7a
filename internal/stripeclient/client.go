// Package stripeclient adapts the Stripe API to the storefront repositories.
package stripeclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/northshoreshop/storefront/internal/domain"
	"github.com/northshoreshop/storefront/internal/logger"
)

// Client implements repository.Catalog and repository.Checkout against Stripe
type Client struct {
	api *client.API
}

// New creates a client authenticated with the given secret key
func New(secretKey string) *Client {
	return &Client{api: client.New(secretKey, nil)}
}

// NewWithBackends creates a client using custom backends, for pointing at a
// stripe-mock server or a recording proxy
func NewWithBackends(secretKey string, backends *stripe.Backends) *Client {
	return &Client{api: client.New(secretKey, backends)}
}

func singlePage(ctx context.Context, limit int) stripe.ListParams {
	return stripe.ListParams{
		Context: ctx,
		Limit:   stripe.Int64(int64(limit)),
		Single:  true,
	}
}

// ListPrices returns one page of prices
func (c *Client) ListPrices(ctx context.Context, limit int) ([]domain.Price, error) {
	params := &stripe.PriceListParams{ListParams: singlePage(ctx, limit)}

	var prices []domain.Price
	iter := c.api.Prices.List(params)
	for iter.Next() {
		prices = append(prices, toDomainPrice(iter.Price()))
	}
	if err := iter.Err(); err != nil {
		logger.FromContext(ctx).Error(LogMsgListFailed, "resource", "prices", "error", err)
		return nil, wrapError(err, domain.ErrProviderUnavailable)
	}
	return prices, nil
}

// ListProducts returns one page of products
func (c *Client) ListProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	params := &stripe.ProductListParams{ListParams: singlePage(ctx, limit)}

	var products []domain.Product
	iter := c.api.Products.List(params)
	for iter.Next() {
		products = append(products, toDomainProduct(iter.Product()))
	}
	if err := iter.Err(); err != nil {
		logger.FromContext(ctx).Error(LogMsgListFailed, "resource", "products", "error", err)
		return nil, wrapError(err, domain.ErrProviderUnavailable)
	}
	return products, nil
}

// ListShippingRates returns one page of active shipping rates
func (c *Client) ListShippingRates(ctx context.Context, limit int) ([]domain.ShippingRate, error) {
	params := &stripe.ShippingRateListParams{
		ListParams: singlePage(ctx, limit),
		Active:     stripe.Bool(true),
	}

	var rates []domain.ShippingRate
	iter := c.api.ShippingRates.List(params)
	for iter.Next() {
		rates = append(rates, toDomainShippingRate(iter.ShippingRate()))
	}
	if err := iter.Err(); err != nil {
		logger.FromContext(ctx).Error(LogMsgListFailed, "resource", "shipping_rates", "error", err)
		return nil, wrapError(err, domain.ErrProviderUnavailable)
	}
	return rates, nil
}

// GetProduct retrieves a single product
func (c *Client) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	params := &stripe.ProductParams{}
	params.Context = ctx

	p, err := c.api.Products.Get(productID, params)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRetrieveFailed, "product_id", productID, "error", err)
		return nil, wrapError(err, domain.ErrProductNotFound)
	}
	product := toDomainProduct(p)
	return &product, nil
}

// GetPrice retrieves a single price
func (c *Client) GetPrice(ctx context.Context, priceID string) (*domain.Price, error) {
	params := &stripe.PriceParams{}
	params.Context = ctx

	p, err := c.api.Prices.Get(priceID, params)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRetrieveFailed, "price_id", priceID, "error", err)
		return nil, wrapError(err, domain.ErrPriceNotFound)
	}
	price := toDomainPrice(p)
	return &price, nil
}

// CreateSession creates a hosted checkout session
func (c *Client) CreateSession(ctx context.Context, p domain.CheckoutSessionParams) (*domain.CheckoutSession, error) {
	params := toSessionParams(p)
	params.Context = ctx

	s, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgCreateFailed, "line_items", len(p.LineItems), "error", err)
		return nil, wrapError(err, domain.ErrPriceNotFound)
	}
	logger.FromContext(ctx).Info(LogMsgSessionCreated, "session_id", s.ID, "line_items", len(p.LineItems))
	return toDomainSession(s), nil
}

// GetSession retrieves a checkout session by id
func (c *Client) GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := c.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgRetrieveFailed, "session_id", sessionID, "error", err)
		return nil, wrapError(err, domain.ErrSessionNotFound)
	}
	return toDomainSession(s), nil
}

// wrapError classifies a provider error. Missing resources map to notFound,
// rejected requests to domain.ErrInvalidInput, everything else to
// domain.ErrProviderUnavailable.
func wrapError(err error, notFound error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch {
		case stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Code == stripe.ErrorCodeResourceMissing:
			return fmt.Errorf("%w: %s", notFound, stripeErr.Msg)
		case stripeErr.Type == stripe.ErrorTypeInvalidRequest:
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, stripeErr.Msg)
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
}
