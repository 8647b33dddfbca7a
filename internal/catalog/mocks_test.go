package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/northshoreshop/storefront/internal/domain"
)

// MockRepository implements repository.Catalog for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListPrices(ctx context.Context, limit int) ([]domain.Price, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Price), args.Error(1)
}

func (m *MockRepository) ListProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockRepository) ListShippingRates(ctx context.Context, limit int) ([]domain.ShippingRate, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShippingRate), args.Error(1)
}

func (m *MockRepository) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockRepository) GetPrice(ctx context.Context, priceID string) (*domain.Price, error) {
	args := m.Called(ctx, priceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Price), args.Error(1)
}
