package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertHighRate = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderForwardedFor    = "X-Forwarded-For"
	HeaderRequestID       = "X-Request-ID"
	HeaderContentType     = "X-Content-Type-Options"
	HeaderFrameOptions    = "X-Frame-Options"
	HeaderXSSProtection   = "X-XSS-Protection"
	HeaderReferrerPolicy  = "Referrer-Policy"
	HeaderAuthorization   = "Authorization"
	HeaderCookie          = "Cookie"
	HeaderStripeSignature = "Stripe-Signature"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Headers whose values never reach the logs
var SensitiveHeaders = []string{
	HeaderAuthorization,
	HeaderCookie,
	HeaderStripeSignature,
}

// Paths that are neither logged nor counted against the rate limit
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Request limits
const (
	MaxRequestBodyBytes = 1 << 20

	RateLimitWindow      = 5 * time.Minute
	RateLimitMaxRequests = 1000
	// Log every Nth blocked request to avoid log spam
	RateLimitLogEvery = 100

	ReadHeaderTimeout = 5 * time.Second
)
