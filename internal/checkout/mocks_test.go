package checkout

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/northshoreshop/storefront/internal/domain"
)

// MockProvider implements repository.Checkout for testing
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) CreateSession(ctx context.Context, params domain.CheckoutSessionParams) (*domain.CheckoutSession, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutSession), args.Error(1)
}

func (m *MockProvider) GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutSession), args.Error(1)
}

// MockOrders implements repository.Orders for testing
type MockOrders struct {
	mock.Mock
}

func (m *MockOrders) RecordSession(ctx context.Context, record *domain.OrderRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOrders) UpdateSessionStatus(ctx context.Context, sessionID, status string, amountTotal *int64) error {
	args := m.Called(ctx, sessionID, status, amountTotal)
	return args.Error(0)
}

func (m *MockOrders) GetSession(ctx context.Context, sessionID string) (*domain.OrderRecord, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderRecord), args.Error(1)
}

// MockNotifier implements Notifier for testing
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifySessionCreated(ctx context.Context, session *domain.CheckoutSession, params domain.CheckoutSessionParams) error {
	args := m.Called(ctx, session, params)
	return args.Error(0)
}
