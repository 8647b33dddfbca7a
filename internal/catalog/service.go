// Package catalog serves the storefront inventory assembled from the payment
// provider's prices and products.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/northshoreshop/storefront/internal/domain"
	"github.com/northshoreshop/storefront/internal/inventory"
	"github.com/northshoreshop/storefront/internal/logger"
	"github.com/northshoreshop/storefront/internal/metrics"
	"github.com/northshoreshop/storefront/internal/repository"
)

// Service defines the interface for catalog operations
type Service interface {
	ListInventory(ctx context.Context) ([]domain.InventoryItem, error)
	GetInventoryItem(ctx context.Context, productID string) (*domain.InventoryItem, error)
	ListShippingRates(ctx context.Context) ([]domain.ShippingRate, error)
}

type service struct {
	repo              repository.Catalog
	pageSize          int
	shippingRateLimit int
}

// NewService creates a new catalog service. pageSize bounds the single
// provider page read for prices and products.
func NewService(repo repository.Catalog, pageSize, shippingRateLimit int) Service {
	return &service{
		repo:              repo,
		pageSize:          pageSize,
		shippingRateLimit: shippingRateLimit,
	}
}

func (s *service) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	log := logger.FromContext(ctx)

	prices, err := s.repo.ListPrices(ctx, s.pageSize)
	if err != nil {
		recordProviderError(opListPrices, err)
		return nil, fmt.Errorf(ErrMsgListPricesFailed, err)
	}

	products, err := s.repo.ListProducts(ctx, s.pageSize)
	if err != nil {
		recordProviderError(opListProducts, err)
		return nil, fmt.Errorf(ErrMsgListProductsFailed, err)
	}

	items := inventory.Build(ctx, prices, products)

	metrics.InventoryBuilds.Inc()
	metrics.InventoryItems.Set(float64(len(items)))
	if dropped := len(products) - len(items); dropped > 0 {
		metrics.InventoryDroppedProducts.Add(float64(dropped))
	}

	log.Info(LogMsgInventoryBuilt, "prices", len(prices), "products", len(products), "items", len(items))
	return items, nil
}

func (s *service) GetInventoryItem(ctx context.Context, productID string) (*domain.InventoryItem, error) {
	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		recordProviderError(opGetProduct, err)
		return nil, fmt.Errorf(ErrMsgGetProductFailed, productID, err)
	}

	if product.DefaultPriceID == "" {
		return nil, fmt.Errorf(ErrMsgNoDefaultPriceFmt, productID, domain.ErrPriceNotFound)
	}

	price, err := s.repo.GetPrice(ctx, product.DefaultPriceID)
	if err != nil {
		recordProviderError(opGetPrice, err)
		return nil, fmt.Errorf(ErrMsgGetPriceFailed, product.DefaultPriceID, err)
	}

	items := inventory.Build(ctx, []domain.Price{*price}, []domain.Product{*product})
	if len(items) == 0 {
		return nil, fmt.Errorf(ErrMsgNoDefaultPriceFmt, productID, domain.ErrPriceNotFound)
	}

	logger.FromContext(ctx).Debug(LogMsgInventoryItemLoaded, "product_id", productID, "price_id", price.ID)
	return &items[0], nil
}

func (s *service) ListShippingRates(ctx context.Context) ([]domain.ShippingRate, error) {
	rates, err := s.repo.ListShippingRates(ctx, s.shippingRateLimit)
	if err != nil {
		recordProviderError(opListShippingRates, err)
		return nil, fmt.Errorf(ErrMsgListShippingRatesFailed, err)
	}

	logger.FromContext(ctx).Debug(LogMsgShippingRatesLoaded, "count", len(rates))
	return rates, nil
}

// recordProviderError counts provider failures; not-found lookups are caller
// errors and are not counted.
func recordProviderError(operation string, err error) {
	if errors.Is(err, domain.ErrProviderUnavailable) {
		metrics.ProviderErrors.WithLabelValues(operation).Inc()
	}
}
