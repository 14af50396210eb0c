// Package model defines the core domain types for the WALD sales pipeline.
package model

import (
	"strconv"
	"strings"
)

// DailyEntry holds one calendar day's metrics for a single category at
// one store. Date is a day-of-month label such as "1日".
type DailyEntry struct {
	Date     string  `json:"date"`
	Sales    float64 `json:"sales"`
	Guests   int     `json:"guests"`
	AvgSpend float64 `json:"avgSpend"`
}

// DayNumber returns the numeric day parsed from a day label like "15日".
// Labels without a leading number yield 0.
func DayNumber(date string) int {
	digits := strings.TrimRight(date, "日")
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// CategoryData is one category's full month: the daily series plus
// totals derived from it.
type CategoryData struct {
	Daily       []DailyEntry `json:"daily"`
	TotalSales  float64      `json:"totalSales"`
	TotalGuests int          `json:"totalGuests"`
	AvgSpend    float64      `json:"avgSpend"`
}

// Recompute re-derives TotalSales, TotalGuests and AvgSpend from the
// daily list. AvgSpend is 0 when there are no guests.
func (c *CategoryData) Recompute() {
	var sales float64
	var guests int
	for _, d := range c.Daily {
		sales += d.Sales
		guests += d.Guests
	}
	c.TotalSales = sales
	c.TotalGuests = guests
	if guests > 0 {
		c.AvgSpend = sales / float64(guests)
	} else {
		c.AvgSpend = 0
	}
}

// TaxRateTotals accumulates sales and tax at the two Japanese
// consumption tax rates.
type TaxRateTotals struct {
	Sales10 float64 `json:"sales10"`
	Tax10   float64 `json:"tax10"`
	Sales8  float64 `json:"sales8"`
	Tax8    float64 `json:"tax8"`
}

// ProductSales groups tax-rate totals into the three product buckets.
type ProductSales struct {
	Sandwiches TaxRateTotals `json:"sandwiches"`
	Drinks     TaxRateTotals `json:"drinks"`
	Other      TaxRateTotals `json:"other"`
}

// Report is one month's (possibly partial) report for one store. Each
// category slot is optional; a nil slot means no file has contributed
// data for it yet.
type Report struct {
	Month        string        `json:"month,omitempty"`
	StoreID      string        `json:"storeId,omitempty"`
	Cafe         *CategoryData `json:"cafe,omitempty"`
	Party3F      *CategoryData `json:"party3F,omitempty"`
	Party4F      *CategoryData `json:"party4F,omitempty"`
	ProductSales *ProductSales `json:"productSales,omitempty"`
}

// IsEmpty reports whether no category slot carries data.
func (r *Report) IsEmpty() bool {
	return r.Cafe == nil && r.Party3F == nil && r.Party4F == nil && r.ProductSales == nil
}
