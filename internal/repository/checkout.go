package repository

import (
	"context"

	"github.com/northshoreshop/storefront/internal/domain"
)

// Checkout defines the payment provider's hosted checkout session operations
type Checkout interface {
	CreateSession(ctx context.Context, params domain.CheckoutSessionParams) (*domain.CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error)
}
