package handler

import (
	"net/http"
	"strings"

	"github.com/northshoreshop/storefront/internal/catalog"
	"github.com/northshoreshop/storefront/internal/currency"
	"github.com/northshoreshop/storefront/internal/domain"
	"github.com/northshoreshop/storefront/internal/inventory"
	"github.com/northshoreshop/storefront/internal/logger"
)

// DefaultSizeIndex selects the size preselected on a product page (M)
const DefaultSizeIndex = 2

// ProductView is an inventory item with its price rendered for display
type ProductView struct {
	domain.InventoryItem
	DisplayPrice string `json:"display_price,omitempty"`
}

// SizeOption is one entry of a product page's size selector
type SizeOption struct {
	Name    string `json:"name"`
	InStock bool   `json:"in_stock"`
}

// ProductDetailView is a product page: the item, its size selector, and the
// cart entry the page adds for the selected size
type ProductDetailView struct {
	ProductView
	SizeOptions  []SizeOption     `json:"size_options,omitempty"`
	SelectedSize string           `json:"selected_size,omitempty"`
	CartEntry    domain.CartEntry `json:"cart_entry"`
}

// HandleListProducts lists the storefront inventory
// @Summary List products
// @Description Products joined with their default prices, cheapest first
// @Tags catalog
// @Produce json
// @Success 200 {array} ProductView
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/products [get]
func HandleListProducts(svc catalog.Service, formatter *currency.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListInventory(r.Context())
		if err != nil {
			respondServiceError(w, r, ActionListProducts, err)
			return
		}

		views := make([]ProductView, 0, len(items))
		for _, item := range items {
			views = append(views, newProductView(item, formatter))
		}

		logger.FromContext(r.Context()).Info(LogMsgInventoryListed, "count", len(views))
		respondJSON(w, http.StatusOK, views)
	}
}

// HandleGetProduct returns one product page
// @Summary Get product
// @Description One product with its display price, size options and the cart entry for the selected size
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Param size query string false "Selected size (defaults to M when the product has sizes)"
// @Success 200 {object} ProductDetailView
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/products/{id} [get]
func HandleGetProduct(svc catalog.Service, formatter *currency.Formatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}

		item, err := svc.GetInventoryItem(r.Context(), productID)
		if err != nil {
			respondServiceError(w, r, ActionGetProduct, err)
			return
		}

		view := ProductDetailView{ProductView: newProductView(*item, formatter)}
		if item.Metadata.Sizes != nil {
			view.SizeOptions = sizeOptions(item.Metadata)
			view.SelectedSize = strings.ToUpper(GetOptionalQueryParam(r, "size", domain.SizeOptions[DefaultSizeIndex]))
		}
		view.CartEntry = inventory.ToCartEntry(*item, view.SelectedSize)

		logger.FromContext(r.Context()).Info(LogMsgInventoryItemFetched, "product_id", productID)
		respondJSON(w, http.StatusOK, view)
	}
}

func newProductView(item domain.InventoryItem, formatter *currency.Formatter) ProductView {
	view := ProductView{InventoryItem: item}
	if item.Price != nil {
		view.DisplayPrice = formatter.FormatProviderAmount(*item.Price, item.Currency)
	}
	return view
}

// sizeOptions lists every size label in display order, marking those the product stocks
func sizeOptions(metadata domain.ProductMetadata) []SizeOption {
	options := make([]SizeOption, 0, len(domain.SizeOptions))
	for _, size := range domain.SizeOptions {
		options = append(options, SizeOption{
			Name:    strings.ToUpper(size),
			InStock: metadata.HasSize(size),
		})
	}
	return options
}
