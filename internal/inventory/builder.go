// Package inventory joins provider prices to provider products and produces the
// display-ready inventory the storefront renders.
package inventory

import (
	"context"
	"encoding/json"
	"slices"
	"strconv"

	"github.com/northshoreshop/storefront/internal/domain"
	"github.com/northshoreshop/storefront/internal/logger"
)

// Build joins each product to the price referenced by its default price and
// returns the resulting items sorted by ascending price.
//
// Products without a matching price are dropped. Items whose price has no
// amount sort after every priced item and keep their relative input order.
// Build never fails: malformed metadata degrades the affected field only.
func Build(ctx context.Context, prices []domain.Price, products []domain.Product) []domain.InventoryItem {
	items := make([]domain.InventoryItem, 0, len(products))

	for _, product := range products {
		price, ok := findPrice(prices, product.DefaultPriceID)
		if !ok {
			continue
		}

		items = append(items, domain.InventoryItem{
			ID:          product.ID,
			Active:      product.Active,
			Currency:    price.Currency,
			Description: product.Description,
			Images:      product.Images,
			Metadata:    normalizeMetadata(ctx, product),
			Name:        product.Name,
			Price:       price.UnitAmount,
			PriceID:     price.ID,
			TaxCode:     product.TaxCode,
			Type:        price.Type,
			URL:         product.URL,
		})
	}

	slices.SortStableFunc(items, compareByPrice)
	return items
}

// findPrice returns the first price with the given id. Input sizes are bounded
// by one provider page, so a linear scan is used instead of an index.
func findPrice(prices []domain.Price, id string) (domain.Price, bool) {
	if id == "" {
		return domain.Price{}, false
	}
	for _, p := range prices {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Price{}, false
}

// compareByPrice orders priced items ascending and pushes unpriced items last
func compareByPrice(a, b domain.InventoryItem) int {
	switch {
	case a.Price == nil && b.Price == nil:
		return 0
	case a.Price == nil:
		return 1
	case b.Price == nil:
		return -1
	case *a.Price < *b.Price:
		return -1
	case *a.Price > *b.Price:
		return 1
	default:
		return 0
	}
}

func normalizeMetadata(ctx context.Context, product domain.Product) domain.ProductMetadata {
	var md domain.ProductMetadata
	extra := func(key, value string) {
		if md.Extra == nil {
			md.Extra = make(map[string]string)
		}
		md.Extra[key] = value
	}

	for key, value := range product.Metadata {
		switch key {
		case domain.MetadataKeySizes:
			md.Sizes = decodeSizes(ctx, product.ID, value)
		case domain.MetadataKeyEventID:
			md.EventID = value
		case domain.MetadataKeyProcessingFee:
			if md.ProcessingFee = parseInt(ctx, product.ID, key, value); md.ProcessingFee == nil {
				extra(key, value)
			}
		case domain.MetadataKeyVenueID:
			if md.VenueID = parseInt(ctx, product.ID, key, value); md.VenueID == nil {
				extra(key, value)
			}
		default:
			extra(key, value)
		}
	}

	return md
}

// decodeSizes parses the JSON array stored under the sizes key.
// An empty array is reported as nil, the same as an absent key.
func decodeSizes(ctx context.Context, productID, raw string) []string {
	if raw == "" {
		return nil
	}

	var sizes []string
	if err := json.Unmarshal([]byte(raw), &sizes); err != nil {
		logger.FromContext(ctx).Warn(LogMsgSizeDecodeFailed,
			"product_id", productID,
			"value", raw,
			"error", err)
		return nil
	}

	if len(sizes) == 0 {
		return nil
	}
	return sizes
}

func parseInt(ctx context.Context, productID, key, raw string) *int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgMetadataParseFailed,
			"product_id", productID,
			"key", key,
			"error", err)
		return nil
	}
	return &n
}
