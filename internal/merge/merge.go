// Package merge implements the aggregation rules that fold newly
// parsed report fragments into previously stored ones.
package merge

import (
	"sort"

	"github.com/waldcafe/wald/internal/model"
)

// Category unions two monthly category series keyed by day. The
// incoming entry fully replaces the existing entry for a shared date
// (last write wins at day granularity); the result is sorted by
// numeric day and its totals are recomputed from the unioned list.
func Category(existing, incoming *model.CategoryData) *model.CategoryData {
	if incoming == nil {
		return existing
	}
	if existing == nil {
		merged := *incoming
		merged.Recompute()
		return &merged
	}

	byDate := make(map[string]model.DailyEntry, len(existing.Daily)+len(incoming.Daily))
	for _, d := range existing.Daily {
		byDate[d.Date] = d
	}
	for _, d := range incoming.Daily {
		byDate[d.Date] = d
	}

	daily := make([]model.DailyEntry, 0, len(byDate))
	for _, d := range byDate {
		daily = append(daily, d)
	}
	sort.Slice(daily, func(i, j int) bool {
		return model.DayNumber(daily[i].Date) < model.DayNumber(daily[j].Date)
	})

	merged := &model.CategoryData{Daily: daily}
	merged.Recompute()
	return merged
}

// Products sums two product-sales fragments bucket by bucket, rate by
// rate. Unlike category data, tax-bucket values accumulate.
func Products(existing, incoming *model.ProductSales) *model.ProductSales {
	if incoming == nil {
		return existing
	}
	if existing == nil {
		merged := *incoming
		return &merged
	}

	return &model.ProductSales{
		Sandwiches: addTotals(existing.Sandwiches, incoming.Sandwiches),
		Drinks:     addTotals(existing.Drinks, incoming.Drinks),
		Other:      addTotals(existing.Other, incoming.Other),
	}
}

func addTotals(a, b model.TaxRateTotals) model.TaxRateTotals {
	return model.TaxRateTotals{
		Sales10: a.Sales10 + b.Sales10,
		Tax10:   a.Tax10 + b.Tax10,
		Sales8:  a.Sales8 + b.Sales8,
		Tax8:    a.Tax8 + b.Tax8,
	}
}

// Reports folds an incoming fragment into an existing one, slot by
// slot. Slots absent from the incoming fragment keep their existing
// value unchanged.
func Reports(existing, incoming *model.Report) *model.Report {
	if existing == nil {
		existing = &model.Report{}
	}
	merged := *existing
	if incoming == nil {
		return &merged
	}

	if incoming.Cafe != nil {
		merged.Cafe = Category(existing.Cafe, incoming.Cafe)
	}
	if incoming.Party3F != nil {
		merged.Party3F = Category(existing.Party3F, incoming.Party3F)
	}
	if incoming.Party4F != nil {
		merged.Party4F = Category(existing.Party4F, incoming.Party4F)
	}
	if incoming.ProductSales != nil {
		merged.ProductSales = Products(existing.ProductSales, incoming.ProductSales)
	}
	return &merged
}
