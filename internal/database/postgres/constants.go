package postgres

// Error Messages - Order Ledger
const (
	ErrMsgFailedToEncodeLineItems = "failed to encode line items"
	ErrMsgFailedToEncodeMetadata  = "failed to encode metadata"
	ErrMsgFailedToDecodeLineItems = "failed to decode line items"
	ErrMsgFailedToDecodeMetadata  = "failed to decode metadata"
	ErrMsgRecordSession           = "record session"
	ErrMsgUpdateSession           = "update session"
	ErrMsgGetSession              = "get session"
)

// Test container settings
const (
	TestPostgresImage    = "postgres:15-alpine"
	TestDatabaseName     = "testdb"
	TestDatabaseUser     = "testuser"
	TestDatabasePassword = "testpass"
)
