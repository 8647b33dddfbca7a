package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/northshoreshop/storefront/internal/currency"
	"github.com/northshoreshop/storefront/internal/domain"
	"github.com/northshoreshop/storefront/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockCatalogService, *mocks.MockCheckoutService) {
	catalogSvc := mocks.NewMockCatalogService(t)
	checkoutSvc := mocks.NewMockCheckoutService(t)
	router := NewRouter(Dependencies{
		Catalog:       catalogSvc,
		Checkout:      checkoutSvc,
		Formatter:     currency.NewFormatter(currency.DefaultZeroDecimalCurrencies),
		PublicBaseURL: "https://shop.example",
	})
	return router, catalogSvc, checkoutSvc
}

func TestRouter_Products(t *testing.T) {
	router, catalogSvc, _ := newTestRouter(t)
	price := int64(1500)
	catalogSvc.On("ListInventory", mock.Anything).Return([]domain.InventoryItem{
		{ID: "prod_1", PriceID: "price_1", Price: &price, Currency: "usd"},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 1)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestRouter_ProductByID(t *testing.T) {
	router, catalogSvc, _ := newTestRouter(t)
	catalogSvc.On("GetInventoryItem", mock.Anything, "prod_42").Return(nil, domain.ErrProductNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/products/prod_42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_ShippingRates(t *testing.T) {
	router, catalogSvc, _ := newTestRouter(t)
	catalogSvc.On("ListShippingRates", mock.Anything).Return([]domain.ShippingRate{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/shipping-rates", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CheckoutSessions(t *testing.T) {
	router, _, checkoutSvc := newTestRouter(t)
	checkoutSvc.On("CreateSession", mock.Anything, mock.Anything, "https://shop.example").
		Return(&domain.CheckoutSession{ID: "cs_1", Status: domain.CheckoutStatusOpen}, nil)
	checkoutSvc.On("GetSession", mock.Anything, "cs_1").
		Return(&domain.CheckoutSession{ID: "cs_1", Status: domain.CheckoutStatusComplete}, nil)

	body := `{"cartDetails":{"price_1":{"id":"price_1","quantity":1}},"shippingRate":{"id":"shr_1"}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/checkout_sessions/cart", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/checkout_sessions/cs_1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"complete"`)
}

func TestRouter_RejectsOversizedBody(t *testing.T) {
	router, _, _ := newTestRouter(t)

	body := `{"cartDetails":{"price_1":{"id":"price_1","name":"` + strings.Repeat("x", MaxRequestBodyBytes) + `","quantity":1}}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/checkout_sessions/cart", strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRouter_HealthAndVersion(t *testing.T) {
	router, _, _ := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/version"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_Metrics(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/v1/products", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
