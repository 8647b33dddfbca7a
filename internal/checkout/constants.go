package checkout

import (
	"time"

	"github.com/northshoreshop/storefront/internal/domain"
)

// Cart limits
const (
	MinLineQuantity = 1
	MaxLineQuantity = 99
)

// Redirect paths appended to the request origin
const (
	SuccessPath = "/result?session_id=" + domain.CheckoutSessionPlaceholder
	CancelPath  = "/cart"
)

// Session cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// Error messages
const (
	ErrMsgInvalidQuantityFmt    = "quantity %d for price %s must be between %d and %d: %w"
	ErrMsgMissingPriceID        = "cart entry has no price id: %w"
	ErrMsgCreateSessionFailed   = "failed to create checkout session: %w"
	ErrMsgGetSessionFailed      = "failed to get checkout session %s: %w"
	ErrMsgMissingSessionID      = "session id is required: %w"
	ErrMsgShutdownFailed        = "checkout shutdown: %w"
	ErrMsgMissingOrigin         = "request origin is required: %w"
	ErrMsgNotificationJobFailed = "notify session %s: %w"
)

// Log messages
const (
	LogMsgSessionCreated        = "Checkout session created"
	LogMsgRecordSessionFailed   = "Failed to record checkout session"
	LogMsgUpdateStatusFailed    = "Failed to update checkout session status"
	LogMsgNotificationDropped   = "Order notification dropped"
	LogMsgSessionCacheHit       = "Checkout session served from cache"
	LogMsgSessionStatusRecorded = "Checkout session status recorded"
)

// Provider operation names used as metric labels
const (
	opCreateSession = "create_session"
	opGetSession    = "get_session"
)
