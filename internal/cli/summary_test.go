package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/waldcafe/wald/internal/model"
)

func TestFormatYen(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"small", 950, "950"},
		{"thousands", 12345, "12,345"},
		{"millions", 1234567, "1,234,567"},
		{"fractional", 1250.5, "1,250.50"},
		{"negative", -4200, "-4,200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatYen(tt.in))
		})
	}
}

func TestRenderSummary(t *testing.T) {
	cafe := &model.CategoryData{Daily: []model.DailyEntry{
		{Date: "1日", Sales: 12345, Guests: 10, AvgSpend: 1234.5},
	}}
	cafe.Recompute()

	out := RenderSummary(&model.Report{
		Month: "2025年1月",
		Cafe:  cafe,
		ProductSales: &model.ProductSales{
			Drinks: model.TaxRateTotals{Sales10: 4500},
		},
	})

	assert.Contains(t, out, "2025年1月")
	assert.Contains(t, out, "カフェ")
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "ドリンク")
	assert.NotContains(t, out, "3Fパーティー")
}

func TestRenderSummaryEmpty(t *testing.T) {
	out := RenderSummary(&model.Report{})
	assert.Contains(t, out, "データがありません")
}
