package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northshoreshop/storefront/internal/domain"
)

// OrderRepository implements repository.Orders
type OrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository creates a new order ledger repository
func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// RecordSession inserts a checkout session, replacing any earlier record for
// the same session id
func (r *OrderRepository) RecordSession(ctx context.Context, record *domain.OrderRecord) error {
	lineItems, err := json.Marshal(nonNilLineItems(record.LineItems))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeLineItems, err)
	}
	metadata, err := json.Marshal(nonNilMetadata(record.Metadata))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeMetadata, err)
	}

	query := `
		INSERT INTO checkout_sessions (session_id, shipping_rate, line_items, metadata, amount_total, currency, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_id) DO UPDATE
		SET shipping_rate = EXCLUDED.shipping_rate,
		    line_items = EXCLUDED.line_items,
		    metadata = EXCLUDED.metadata,
		    amount_total = EXCLUDED.amount_total,
		    currency = EXCLUDED.currency,
		    status = EXCLUDED.status,
		    updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query,
		record.SessionID,
		record.ShippingRate,
		lineItems,
		metadata,
		record.AmountTotal,
		record.Currency,
		record.Status,
	)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrDatabaseError, ErrMsgRecordSession, record.SessionID, err)
	}
	return nil
}

// UpdateSessionStatus sets the status of a recorded session. A nil amount
// keeps the stored total.
func (r *OrderRepository) UpdateSessionStatus(ctx context.Context, sessionID, status string, amountTotal *int64) error {
	query := `
		UPDATE checkout_sessions
		SET status = $2, amount_total = COALESCE($3, amount_total), updated_at = NOW()
		WHERE session_id = $1
	`
	tag, err := r.db.Exec(ctx, query, sessionID, status, amountTotal)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrDatabaseError, ErrMsgUpdateSession, sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	return nil
}

// GetSession retrieves a recorded session
func (r *OrderRepository) GetSession(ctx context.Context, sessionID string) (*domain.OrderRecord, error) {
	query := `
		SELECT session_id, shipping_rate, line_items, metadata, amount_total, currency, status, created_at, updated_at
		FROM checkout_sessions
		WHERE session_id = $1
	`
	var (
		record    domain.OrderRecord
		lineItems []byte
		metadata  []byte
	)
	err := r.db.QueryRow(ctx, query, sessionID).Scan(
		&record.SessionID,
		&record.ShippingRate,
		&lineItems,
		&metadata,
		&record.AmountTotal,
		&record.Currency,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrDatabaseError, ErrMsgGetSession, sessionID, err)
	}

	if err := json.Unmarshal(lineItems, &record.LineItems); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeLineItems, err)
	}
	if err := json.Unmarshal(metadata, &record.Metadata); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeMetadata, err)
	}
	return &record, nil
}

func nonNilLineItems(items []domain.LineItem) []domain.LineItem {
	if items == nil {
		return []domain.LineItem{}
	}
	return items
}

func nonNilMetadata(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
