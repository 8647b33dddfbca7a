package inventory

// Log messages
const (
	LogMsgSizeDecodeFailed    = "Failed to decode size list in product metadata"
	LogMsgMetadataParseFailed = "Ignoring non-numeric product metadata value"
)
