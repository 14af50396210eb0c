package sheets

import "github.com/waldcafe/wald/internal/model"

// prepareSummaryData lays out one merged summary as spreadsheet rows:
// a title, one daily section per category, then the product tax-rate
// breakdown.
func prepareSummaryData(summary *model.Report) [][]any {
	values := [][]any{
		{"WALD売上レポート", summary.Month},
		{},
	}

	categories := []struct {
		data  *model.CategoryData
		label string
	}{
		{summary.Cafe, "カフェ"},
		{summary.Party3F, "3Fパーティー"},
		{summary.Party4F, "4Fパーティー"},
	}

	for _, category := range categories {
		if category.data == nil {
			continue
		}
		values = append(values,
			[]any{category.label},
			[]any{"日付", "売上", "客数", "客単価"},
		)
		for _, day := range category.data.Daily {
			values = append(values, []any{day.Date, day.Sales, day.Guests, day.AvgSpend})
		}
		values = append(values,
			[]any{"合計", category.data.TotalSales, category.data.TotalGuests, category.data.AvgSpend},
			[]any{},
		)
	}

	if products := summary.ProductSales; products != nil {
		values = append(values,
			[]any{"商品別売上"},
			[]any{"区分", "10%売上", "10%税額", "8%売上", "8%税額"},
			productRow("サンドイッチ", products.Sandwiches),
			productRow("ドリンク", products.Drinks),
			productRow("その他", products.Other),
		)
	}

	return values
}

func productRow(label string, totals model.TaxRateTotals) []any {
	return []any{label, totals.Sales10, totals.Tax10, totals.Sales8, totals.Tax8}
}
