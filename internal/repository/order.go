package repository

import (
	"context"

	"github.com/northshoreshop/storefront/internal/domain"
)

// Orders defines the interface for the checkout session ledger
type Orders interface {
	RecordSession(ctx context.Context, record *domain.OrderRecord) error
	UpdateSessionStatus(ctx context.Context, sessionID, status string, amountTotal *int64) error
	GetSession(ctx context.Context, sessionID string) (*domain.OrderRecord, error)
}
