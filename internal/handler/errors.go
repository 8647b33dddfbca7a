package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgRequestTooLarge       = "Request body too large"
)

// Log messages
const (
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
	LogMsgReadinessFailed      = "Readiness check failed"

	LogMsgInventoryListed       = "Inventory listed"
	LogMsgInventoryItemFetched  = "Inventory item retrieved"
	LogMsgShippingRatesListed   = "Shipping rates listed"
	LogMsgCheckoutSessionCreate = "Checkout session created"
	LogMsgCheckoutSessionFetch  = "Checkout session retrieved"
	LogMsgOriginFallback        = "Request has no Origin header, using public base URL"
)

// Action names used in logs and decode errors
const (
	ActionListProducts          = "List products"
	ActionGetProduct            = "Get product"
	ActionListShippingRates     = "List shipping rates"
	ActionCreateCheckoutSession = "Create checkout session"
	ActionGetCheckoutSession    = "Get checkout session"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseFailed = "database connection failed"
	HealthMsgNoDatabase     = "order ledger disabled"
)
