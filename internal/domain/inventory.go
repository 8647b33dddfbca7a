package domain

import (
	"encoding/json"
	"strings"
)

// InventoryItem is the display-ready join of a Product and its default Price.
// Items are rebuilt on every request and never mutated after construction.
type InventoryItem struct {
	ID          string          `json:"id"`
	Active      bool            `json:"active"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
	Metadata    ProductMetadata `json:"metadata"`
	Name        string          `json:"name"`
	Price       *int64          `json:"price"`
	PriceID     string          `json:"priceId"`
	TaxCode     *string         `json:"tax_code"`
	Type        PriceType       `json:"type"`
	URL         *string         `json:"url,omitempty"`
}

// ProductMetadata is the normalized form of a product's free-form metadata.
// Keys with a known meaning are decoded into typed fields; every other key is
// carried through unchanged in Extra.
type ProductMetadata struct {
	// Sizes holds the size labels decoded from the JSON array stored under
	// MetadataKeySizes. Nil when the key is absent, malformed or an empty array.
	Sizes         []string          `json:"shirt"`
	EventID       string            `json:"event_id,omitempty"`
	ProcessingFee *int64            `json:"processing_fee,omitempty"`
	VenueID       *int64            `json:"venue_id,omitempty"`
	Extra         map[string]string `json:"-"`
}

// HasSize reports whether the given size label is offered, ignoring case
func (m ProductMetadata) HasSize(size string) bool {
	for _, s := range m.Sizes {
		if strings.EqualFold(s, size) {
			return true
		}
	}
	return false
}

// MarshalJSON flattens Extra next to the typed fields so clients see the same
// keys the provider stored.
func (m ProductMetadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(m.Extra)+4)
	for k, v := range m.Extra {
		out[k] = v
	}
	out[MetadataKeySizes] = m.Sizes
	if m.EventID != "" {
		out[MetadataKeyEventID] = m.EventID
	}
	if m.ProcessingFee != nil {
		out[MetadataKeyProcessingFee] = *m.ProcessingFee
	}
	if m.VenueID != nil {
		out[MetadataKeyVenueID] = *m.VenueID
	}
	return json.Marshal(out)
}
