package ingest

import "strings"

// Column layouts for the three known POS export formats. The POS
// vendor documents its exports by spreadsheet column letter, so the
// indices below are fixed positions, not header-driven lookups.

// dailyColumns: the daily-sales export keeps the date in column A,
// net sales in B, guest count in K and average spend in L.
var dailyColumns = struct {
	Date     int
	Sales    int
	Guests   int
	AvgSpend int
}{
	Date:     0,
	Sales:    1,
	Guests:   10,
	AvgSpend: 11,
}

// partyColumns: the party-room transaction export carries one row per
// transaction with the timestamp in column B, headcount in E and the
// billed amount in J.
var partyColumns = struct {
	MinFields int
	Date      int
	Sales     int
	Guests    int
}{
	MinFields: 10,
	Date:      1,
	Sales:     9,
	Guests:    4,
}

// productColumns: the per-product export is very wide; product code is
// in column AG, display name in AH, sales amount in AP and the tax
// rate in AS.
var productColumns = struct {
	MinFields int
	Code      int
	Name      int
	Sales     int
	TaxRate   int
}{
	MinFields: 45,
	Code:      32,
	Name:      33,
	Sales:     41,
	TaxRate:   44,
}

// field returns the trimmed cell at idx, or "" when the row is too
// short.
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
