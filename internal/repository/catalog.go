package repository

import (
	"context"

	"github.com/northshoreshop/storefront/internal/domain"
)

// Catalog defines read access to the payment provider's product catalog
type Catalog interface {
	// List operations return a single page of at most limit entries
	ListPrices(ctx context.Context, limit int) ([]domain.Price, error)
	ListProducts(ctx context.Context, limit int) ([]domain.Product, error)
	ListShippingRates(ctx context.Context, limit int) ([]domain.ShippingRate, error)

	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	GetPrice(ctx context.Context, priceID string) (*domain.Price, error)
}
