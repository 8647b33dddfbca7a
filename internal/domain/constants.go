package domain

// Product metadata keys with a defined meaning
const (
	// MetadataKeySizes holds a JSON-encoded array of size labels, e.g. ["s","m","l"]
	MetadataKeySizes         = "shirt"
	MetadataKeyEventID       = "event_id"
	MetadataKeyProcessingFee = "processing_fee"
	MetadataKeyVenueID       = "venue_id"
)

// Size labels offered on product pages, in display order
var SizeOptions = []string{"xs", "s", "m", "l", "xl", "xxl"}

// Provider limits
const (
	// MaxProviderPageSize is the largest page the provider's list endpoints return
	MaxProviderPageSize = 100
)
