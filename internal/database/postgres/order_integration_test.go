package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northshoreshop/storefront/internal/domain"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	terminate := func() {}
	if !testing.Short() {
		pool, stop, err := startTestDatabase(context.Background())
		if err != nil {
			fmt.Printf("WARNING: integration database unavailable: %v\n", err)
		}
		testPool = pool
		terminate = stop
	}

	code := m.Run()
	terminate()
	os.Exit(code)
}

func newOrderRepo(t *testing.T) *OrderRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	return NewOrderRepository(testPool)
}

func amount(v int64) *int64 { return &v }

func TestOrderRepository_RecordAndGet(t *testing.T) {
	repo := newOrderRepo(t)
	ctx := context.Background()

	record := &domain.OrderRecord{
		SessionID:    "cs_record_get",
		ShippingRate: "shr_1",
		LineItems:    []domain.LineItem{{Price: "price_a", Quantity: 2}},
		Metadata:     map[string]string{"prod_a": "m"},
		Currency:     "usd",
		Status:       domain.CheckoutStatusOpen,
	}
	require.NoError(t, repo.RecordSession(ctx, record))

	got, err := repo.GetSession(ctx, "cs_record_get")
	require.NoError(t, err)
	assert.Equal(t, "shr_1", got.ShippingRate)
	assert.Equal(t, record.LineItems, got.LineItems)
	assert.Equal(t, record.Metadata, got.Metadata)
	assert.Nil(t, got.AmountTotal)
	assert.Equal(t, domain.CheckoutStatusOpen, got.Status)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestOrderRepository_RecordIsUpsert(t *testing.T) {
	repo := newOrderRepo(t)
	ctx := context.Background()

	record := &domain.OrderRecord{SessionID: "cs_upsert", Status: domain.CheckoutStatusOpen}
	require.NoError(t, repo.RecordSession(ctx, record))

	record.AmountTotal = amount(4200)
	record.LineItems = []domain.LineItem{{Price: "price_b", Quantity: 1}}
	require.NoError(t, repo.RecordSession(ctx, record))

	got, err := repo.GetSession(ctx, "cs_upsert")
	require.NoError(t, err)
	require.NotNil(t, got.AmountTotal)
	assert.Equal(t, int64(4200), *got.AmountTotal)
	assert.Len(t, got.LineItems, 1)
	assert.Empty(t, got.Metadata)
}

func TestOrderRepository_UpdateSessionStatus(t *testing.T) {
	repo := newOrderRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordSession(ctx, &domain.OrderRecord{
		SessionID:   "cs_status",
		Status:      domain.CheckoutStatusOpen,
		AmountTotal: amount(1000),
	}))

	require.NoError(t, repo.UpdateSessionStatus(ctx, "cs_status", domain.CheckoutStatusComplete, nil))
	got, err := repo.GetSession(ctx, "cs_status")
	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutStatusComplete, got.Status)
	assert.Equal(t, int64(1000), *got.AmountTotal, "Nil amount keeps stored total")

	require.NoError(t, repo.UpdateSessionStatus(ctx, "cs_status", domain.CheckoutStatusComplete, amount(1500)))
	got, err = repo.GetSession(ctx, "cs_status")
	require.NoError(t, err)
	assert.Equal(t, int64(1500), *got.AmountTotal)
	assert.True(t, !got.UpdatedAt.Before(got.CreatedAt))
}

func TestOrderRepository_NotFound(t *testing.T) {
	repo := newOrderRepo(t)
	ctx := context.Background()

	_, err := repo.GetSession(ctx, "cs_missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	err = repo.UpdateSessionStatus(ctx, "cs_missing", domain.CheckoutStatusExpired, nil)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
