// Package ingest implements the CSV ingestion pipeline: format
// detection, filename metadata extraction, encoding-tolerant parsing,
// and the per-format category extractors.
package ingest

// Format identifies the purpose of an uploaded POS CSV export.
type Format int

const (
	// FormatUnknown means no detector could classify the file.
	FormatUnknown Format = iota
	// FormatDailySales is the per-day cafe sales export.
	FormatDailySales
	// FormatParty is the party-room transaction export.
	FormatParty
	// FormatProductSales is the per-product, tax-rate-bucketed export.
	FormatProductSales
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatDailySales:
		return "daily-sales"
	case FormatParty:
		return "party"
	case FormatProductSales:
		return "product-sales"
	default:
		return "unknown"
	}
}
