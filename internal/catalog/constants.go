package catalog

// Error messages
const (
	ErrMsgListPricesFailed        = "failed to list prices: %w"
	ErrMsgListProductsFailed      = "failed to list products: %w"
	ErrMsgListShippingRatesFailed = "failed to list shipping rates: %w"
	ErrMsgGetProductFailed        = "failed to get product %s: %w"
	ErrMsgGetPriceFailed          = "failed to get price %s: %w"
	ErrMsgNoDefaultPriceFmt       = "product %s has no default price: %w"
)

// Log messages
const (
	LogMsgInventoryBuilt      = "Inventory built"
	LogMsgInventoryItemLoaded = "Inventory item loaded"
	LogMsgShippingRatesLoaded = "Shipping rates loaded"
)

// Provider operation names used as metric labels
const (
	opListPrices        = "list_prices"
	opListProducts      = "list_products"
	opListShippingRates = "list_shipping_rates"
	opGetProduct        = "get_product"
	opGetPrice          = "get_price"
)
