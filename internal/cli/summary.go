package cli

import (
	"fmt"
	"strings"

	"github.com/waldcafe/wald/internal/model"
)

// RenderSummary renders one merged report as styled terminal output.
func RenderSummary(summary *model.Report) string {
	if summary == nil || summary.IsEmpty() {
		return SubtleStyle.Render("データがありません")
	}

	var b strings.Builder
	b.WriteString(FormatTitle("売上サマリー " + summary.Month))
	b.WriteString("\n\n")

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
		b.WriteString(BoldStyle.Render(category.label))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  売上 %s円  客数 %d人  客単価 %s円\n",
			formatYen(category.data.TotalSales),
			category.data.TotalGuests,
			formatYen(category.data.AvgSpend)))
	}

	if products := summary.ProductSales; products != nil {
		b.WriteString(BoldStyle.Render("商品別売上"))
		b.WriteString("\n")
		b.WriteString(renderProductLine("サンドイッチ", products.Sandwiches))
		b.WriteString(renderProductLine("ドリンク", products.Drinks))
		b.WriteString(renderProductLine("その他", products.Other))
	}

	return b.String()
}

func renderProductLine(label string, totals model.TaxRateTotals) string {
	return fmt.Sprintf("  %s: 10%% %s円 / 8%% %s円\n",
		label, formatYen(totals.Sales10), formatYen(totals.Sales8))
}

// formatYen renders an amount with thousands separators and no
// decimal tail for whole yen.
func formatYen(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	whole := int64(v)
	s := fmt.Sprintf("%d", whole)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")

	if frac := v - float64(whole); frac >= 0.005 {
		out = fmt.Sprintf("%s.%02d", out, int(frac*100+0.5))
	}
	if neg {
		out = "-" + out
	}
	return out
}
