package inventory

import (
	"github.com/northshoreshop/storefront/internal/domain"
)

// ToCartEntry builds the entry the client-side cart store adds for an item.
// The entry is keyed by price id; size is recorded only when the item offers it.
func ToCartEntry(item domain.InventoryItem, size string) domain.CartEntry {
	entry := domain.CartEntry{
		ID:       item.PriceID,
		Name:     item.Name,
		Quantity: 1,
		Currency: item.Currency,
		ProductData: domain.CartProductData{
			ProductID: item.ID,
		},
	}
	if item.Price != nil {
		entry.Price = *item.Price
	}
	if len(item.Images) > 0 {
		entry.ProductData.ProductImage = item.Images[0]
	}
	if size != "" && item.Metadata.HasSize(size) {
		entry.ProductData.ShirtSize = size
	}
	return entry
}
