package notify

// Embed appearance
const (
	DefaultUsername = "Storefront"
	EmbedTitle      = "🛒 New checkout session"
	EmbedColor      = 0x2ecc71 // Green
	EmbedFooter     = "Storefront checkout"

	FieldItems    = "Items"
	FieldSizes    = "Sizes"
	FieldTotal    = "Total"
	FieldShipping = "Shipping rate"
)

// Log messages
const (
	LogMsgNotificationSent = "Order notification sent"
)
