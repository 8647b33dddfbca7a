package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/northshoreshop/storefront/internal/currency"
)

func newTestFormatter() *currency.Formatter {
	return currency.NewFormatter(currency.DefaultZeroDecimalCurrencies)
}

// withURLParam attaches a chi route parameter to the request
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func int64Ptr(v int64) *int64 {
	return &v
}
