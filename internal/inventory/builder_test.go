package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northshoreshop/storefront/internal/domain"
)

func amount(v int64) *int64 { return &v }

func price(id string, unit *int64) domain.Price {
	return domain.Price{ID: id, UnitAmount: unit, Currency: "usd", Type: domain.PriceTypeOneTime}
}

func product(id, defaultPrice string, md map[string]string) domain.Product {
	return domain.Product{
		ID:             id,
		Name:           "Name " + id,
		Description:    "Description " + id,
		Active:         true,
		Images:         []string{"https://i.imgur.com/" + id + ".jpg"},
		DefaultPriceID: defaultPrice,
		Metadata:       md,
	}
}

func ids(items []domain.InventoryItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestBuild_EndToEnd(t *testing.T) {
	prices := []domain.Price{
		price("price_1", amount(1300)),
		price("price_2", amount(6400)),
	}
	products := []domain.Product{
		product("prod_B", "price_2", map[string]string{"shirt": `["m","l"]`}),
		product("prod_A", "price_1", map[string]string{}),
	}

	items := Build(context.Background(), prices, products)

	require.Len(t, items, 2)
	assert.Equal(t, []string{"prod_A", "prod_B"}, ids(items))
	assert.Equal(t, int64(1300), *items[0].Price)
	assert.Equal(t, int64(6400), *items[1].Price)
	assert.Nil(t, items[0].Metadata.Sizes)
	assert.Equal(t, []string{"m", "l"}, items[1].Metadata.Sizes)
}

func TestBuild_CopiesProductAndPriceFields(t *testing.T) {
	taxCode := "txcd_99999999"
	url := "https://northshore.shop/p/1"
	p := product("prod_1", "price_1", nil)
	p.TaxCode = &taxCode
	p.URL = &url
	pr := domain.Price{ID: "price_1", UnitAmount: amount(2500), Currency: "usd", Type: domain.PriceTypeRecurring}

	items := Build(context.Background(), []domain.Price{pr}, []domain.Product{p})

	require.Len(t, items, 1)
	item := items[0]
	assert.Equal(t, p.ID, item.ID)
	assert.Equal(t, p.Name, item.Name)
	assert.Equal(t, p.Description, item.Description)
	assert.Equal(t, p.Images, item.Images)
	assert.True(t, item.Active)
	assert.Equal(t, "usd", item.Currency)
	assert.Equal(t, "price_1", item.PriceID)
	assert.Equal(t, domain.PriceTypeRecurring, item.Type)
	assert.Equal(t, &taxCode, item.TaxCode)
	assert.Equal(t, &url, item.URL)
}

func TestBuild_DropsProductsWithoutMatchingPrice(t *testing.T) {
	prices := []domain.Price{price("price_1", amount(100))}
	products := []domain.Product{
		product("prod_1", "price_1", nil),
		product("prod_2", "price_missing", nil),
		product("prod_3", "", nil),
	}

	items := Build(context.Background(), prices, products)

	require.Len(t, items, 1)
	assert.Equal(t, "prod_1", items[0].ID)
}

func TestBuild_EmptyInputs(t *testing.T) {
	assert.Empty(t, Build(context.Background(), nil, nil))
	assert.Empty(t, Build(context.Background(), []domain.Price{price("p", amount(1))}, nil))
	assert.Empty(t, Build(context.Background(), nil, []domain.Product{product("x", "p", nil)}))
}

func TestBuild_FirstMatchingPriceWins(t *testing.T) {
	prices := []domain.Price{
		price("price_1", amount(100)),
		price("price_1", amount(999)),
	}

	items := Build(context.Background(), prices, []domain.Product{product("prod_1", "price_1", nil)})

	require.Len(t, items, 1)
	assert.Equal(t, int64(100), *items[0].Price)
}

func TestBuild_SharedPriceProducesOneItemPerProduct(t *testing.T) {
	prices := []domain.Price{price("price_1", amount(100))}
	products := []domain.Product{
		product("prod_1", "price_1", nil),
		product("prod_2", "price_1", nil),
	}

	items := Build(context.Background(), prices, products)

	assert.Equal(t, []string{"prod_1", "prod_2"}, ids(items))
}

func TestBuild_SortOrder(t *testing.T) {
	prices := []domain.Price{
		price("p_500", amount(500)),
		price("p_nil_a", nil),
		price("p_100", amount(100)),
		price("p_nil_b", nil),
		price("p_300", amount(300)),
		price("p_100_dup", amount(100)),
	}
	products := []domain.Product{
		product("a", "p_500", nil),
		product("b", "p_nil_a", nil),
		product("c", "p_100", nil),
		product("d", "p_nil_b", nil),
		product("e", "p_300", nil),
		product("f", "p_100_dup", nil),
	}

	items := Build(context.Background(), prices, products)

	// Equal prices keep input order; unpriced items go last in input order.
	assert.Equal(t, []string{"c", "f", "e", "a", "b", "d"}, ids(items))

	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1].Price, items[i].Price
		if prev != nil && cur != nil {
			assert.LessOrEqual(t, *prev, *cur)
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	prices := []domain.Price{
		price("p1", amount(700)),
		price("p2", nil),
		price("p3", amount(200)),
	}
	products := []domain.Product{
		product("a", "p1", map[string]string{"shirt": `["s"]`, "color": "black"}),
		product("b", "p2", nil),
		product("c", "p3", map[string]string{"shirt": "not-json"}),
	}

	first := Build(context.Background(), prices, products)
	second := Build(context.Background(), prices, products)

	assert.Equal(t, first, second)
}

func TestBuild_SizeMetadata(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]string
		expected []string
	}{
		{name: "Sizes array", metadata: map[string]string{"shirt": `["s","m","l"]`}, expected: []string{"s", "m", "l"}},
		{name: "Empty array", metadata: map[string]string{"shirt": "[]"}, expected: nil},
		{name: "Absent key", metadata: map[string]string{}, expected: nil},
		{name: "Nil metadata", metadata: nil, expected: nil},
		{name: "Empty string", metadata: map[string]string{"shirt": ""}, expected: nil},
		{name: "Malformed JSON", metadata: map[string]string{"shirt": "not-json"}, expected: nil},
		{name: "Wrong JSON type", metadata: map[string]string{"shirt": `{"s":true}`}, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Build(context.Background(),
				[]domain.Price{price("p", amount(1))},
				[]domain.Product{product("x", "p", tt.metadata)})

			require.Len(t, items, 1)
			assert.Equal(t, tt.expected, items[0].Metadata.Sizes)
		})
	}
}

func TestBuild_MalformedSizesLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	assert.NotPanics(t, func() {
		Build(context.Background(),
			[]domain.Price{price("p", amount(1))},
			[]domain.Product{product("x", "p", map[string]string{"shirt": "not-json"})})
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, LogMsgSizeDecodeFailed, entry["msg"])
	assert.Equal(t, "x", entry["product_id"])
}

func TestBuild_TypedMetadataAndExtras(t *testing.T) {
	md := map[string]string{
		"event_id":       "evt_42",
		"processing_fee": "150",
		"venue_id":       "not-a-number",
		"color":          "black",
	}

	items := Build(context.Background(),
		[]domain.Price{price("p", amount(1))},
		[]domain.Product{product("x", "p", md)})

	require.Len(t, items, 1)
	got := items[0].Metadata
	assert.Equal(t, "evt_42", got.EventID)
	require.NotNil(t, got.ProcessingFee)
	assert.Equal(t, int64(150), *got.ProcessingFee)
	assert.Nil(t, got.VenueID)
	assert.Equal(t, map[string]string{"color": "black", "venue_id": "not-a-number"}, got.Extra)
}

func TestInventoryItemJSON(t *testing.T) {
	items := Build(context.Background(),
		[]domain.Price{price("p", amount(1300))},
		[]domain.Product{product("x", "p", map[string]string{"shirt": `["m"]`, "color": "black"})})
	require.Len(t, items, 1)

	raw, err := json.Marshal(items[0])
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "p", decoded["priceId"])
	assert.Equal(t, float64(1300), decoded["price"])

	md, ok := decoded["metadata"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"m"}, md["shirt"])
	assert.Equal(t, "black", md["color"])
}
