package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waldcafe/wald/internal/model"
)

func dailyRow(date, sales, guests, avgSpend string) []string {
	row := make([]string, 12)
	row[dailyColumns.Date] = date
	row[dailyColumns.Sales] = sales
	row[dailyColumns.Guests] = guests
	row[dailyColumns.AvgSpend] = avgSpend
	return row
}

func TestExtractDailySales(t *testing.T) {
	rows := [][]string{
		dailyRow("2024/3/1", "¥1,000", "2", "500"),
		dailyRow("", "9999", "9", "1"),
		dailyRow("合計", "4000", "7", "571"),
		dailyRow("3/3", "3,000", "5", "600"),
		dailyRow("notadate", "123", "1", "123"),
	}

	report := ExtractDailySales(rows)
	require.NotNil(t, report.Cafe)

	cafe := report.Cafe
	require.Len(t, cafe.Daily, 2)
	assert.Equal(t, model.DailyEntry{Date: "1日", Sales: 1000, Guests: 2, AvgSpend: 500}, cafe.Daily[0])
	assert.Equal(t, model.DailyEntry{Date: "3日", Sales: 3000, Guests: 5, AvgSpend: 600}, cafe.Daily[1])
	assert.Equal(t, 4000.0, cafe.TotalSales)
	assert.Equal(t, 7, cafe.TotalGuests)
	assert.InDelta(t, 4000.0/7.0, cafe.AvgSpend, 1e-9)
}

func TestExtractDailySalesShortRows(t *testing.T) {
	// Rows narrower than the guest/avg columns coerce to zero instead
	// of aborting the file.
	report := ExtractDailySales([][]string{{"2024/3/5", "1500"}})
	require.NotNil(t, report.Cafe)
	require.Len(t, report.Cafe.Daily, 1)
	assert.Equal(t, model.DailyEntry{Date: "5日", Sales: 1500, Guests: 0, AvgSpend: 0}, report.Cafe.Daily[0])
}

func partyRow(date, sales, guests string) []string {
	row := make([]string, partyColumns.MinFields)
	row[partyColumns.Date] = date
	row[partyColumns.Sales] = sales
	row[partyColumns.Guests] = guests
	return row
}

func TestExtractParty(t *testing.T) {
	rows := [][]string{
		partyRow("2024/3/10 18:00", "10,000", "4"),
		partyRow("2024/3/10 20:00", "5,000", "2"),
		partyRow("2024/3/2 19:00", "8,000", "3"),
		// Partial date: skipped.
		partyRow("3/15", "9,999", "9"),
		// Too short: skipped.
		{"x", "2024/3/4"},
	}

	report := ExtractParty(rows, "取引_CPT_2024.csv")
	require.NotNil(t, report.Party3F)
	assert.Nil(t, report.Party4F)

	party := report.Party3F
	require.Len(t, party.Daily, 2)
	// Days sorted ascending regardless of input order.
	assert.Equal(t, "2日", party.Daily[0].Date)
	assert.Equal(t, 8000.0, party.Daily[0].Sales)
	assert.Equal(t, 3, party.Daily[0].Guests)
	// Two transactions on the 10th sum, not replace.
	assert.Equal(t, "10日", party.Daily[1].Date)
	assert.Equal(t, 15000.0, party.Daily[1].Sales)
	assert.Equal(t, 6, party.Daily[1].Guests)

	assert.Equal(t, 23000.0, party.TotalSales)
	assert.Equal(t, 9, party.TotalGuests)
}

func TestExtractPartyRoomRouting(t *testing.T) {
	rows := [][]string{partyRow("2024/3/1 12:00", "1000", "1")}

	assert.NotNil(t, ExtractParty(rows, "取引_CPT_2024.csv").Party3F)
	assert.NotNil(t, ExtractParty(rows, "取引_DPT_2024.csv").Party4F)

	neither := ExtractParty(rows, "取引_2024.csv")
	assert.True(t, neither.IsEmpty())
}

func productRow(code, name, sales, taxRate string) []string {
	row := make([]string, productColumns.MinFields)
	row[productColumns.Code] = code
	row[productColumns.Name] = name
	row[productColumns.Sales] = sales
	row[productColumns.TaxRate] = taxRate
	return row
}

func TestExtractProductSales(t *testing.T) {
	rows := [][]string{
		// Master-table name wins: 1001 is a sandwich.
		productRow("1001", "ﾊﾑﾁｰｽﾞ", "1,200", "8"),
		// 2001 is a drink at 10%.
		productRow("2001", "", "500", "10"),
		// Unknown code falls back to the row's own name.
		productRow("9999", "特製サンドセット", "800", "8"),
		// Unrecognized tax rate defaults into the 10% slot.
		productRow("3001", "", "400", "5"),
		// Blank code: skipped.
		productRow("", "ゴーストレコード", "99,999", "10"),
		// Too short: skipped.
		{"1001", "x"},
	}

	report := ExtractProductSales(rows)
	require.NotNil(t, report.ProductSales)
	ps := report.ProductSales

	assert.Equal(t, 2000.0, ps.Sandwiches.Sales8)
	assert.Equal(t, 0.0, ps.Sandwiches.Sales10)
	assert.Equal(t, 500.0, ps.Drinks.Sales10)
	assert.Equal(t, 400.0, ps.Other.Sales10)
	assert.Equal(t, 0.0, ps.Other.Sales8)
}

func TestClassifyProduct(t *testing.T) {
	tests := []struct {
		name string
		want productBucket
	}{
		{"たまごサンドイッチ", bucketSandwiches},
		{"野菜バゲットサンド", bucketSandwiches},
		{"ブレンドコーヒー", bucketDrinks},
		{"グラスワイン", bucketDrinks},
		{"本日のケーキ", bucketOther},
		{"", bucketOther},
		// Sandwiches match before drinks.
		{"コーヒーサンド", bucketSandwiches},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyProduct(tt.name))
		})
	}
}
