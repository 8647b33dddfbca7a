package stripeclient

// Fixed checkout session options
const (
	paymentMethodCard        = "card"
	billingAddressCollection = "auto"
)

// Log messages
const (
	LogMsgListFailed     = "Stripe list request failed"
	LogMsgRetrieveFailed = "Stripe retrieve request failed"
	LogMsgSessionCreated = "Stripe checkout session created"
	LogMsgCreateFailed   = "Stripe checkout session create failed"
)
