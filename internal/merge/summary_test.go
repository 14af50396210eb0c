package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waldcafe/wald/internal/model"
)

func monthly(month string, reports ...model.StoreReport) model.MonthlyData {
	return model.MonthlyData{Month: month, Stores: reports}
}

func storeReport(storeID string, data model.Report) model.StoreReport {
	return model.StoreReport{Store: model.Store{ID: storeID}, Data: data}
}

func TestSummarySingleMonthSingleStore(t *testing.T) {
	data := []model.MonthlyData{
		monthly("2025年1月", storeReport("ebisu", model.Report{
			Cafe: category(model.DailyEntry{Date: "1日", Sales: 100, Guests: 2, AvgSpend: 50}),
		})),
	}

	got := Summary(data, []string{"2025年1月"}, []string{"ebisu"})
	assert.Equal(t, "2025年1月", got.Month)
	require.NotNil(t, got.Cafe)
	assert.Equal(t, 100.0, got.Cafe.TotalSales)
}

func TestSummaryRangeLabelAndCrossMonthMerge(t *testing.T) {
	data := []model.MonthlyData{
		monthly("2025年1月", storeReport("ebisu", model.Report{
			Cafe: category(model.DailyEntry{Date: "1日", Sales: 100, Guests: 1, AvgSpend: 100}),
		})),
		monthly("2025年2月", storeReport("ebisu", model.Report{
			Cafe: category(model.DailyEntry{Date: "2日", Sales: 200, Guests: 2, AvgSpend: 100}),
		})),
	}

	got := Summary(data, []string{"2025年1月", "2025年2月"}, []string{"ebisu"})
	assert.Equal(t, "2025年1月 - 2025年2月", got.Month)
	require.NotNil(t, got.Cafe)
	assert.Equal(t, 300.0, got.Cafe.TotalSales)
	assert.Equal(t, 3, got.Cafe.TotalGuests)
}

func TestSummaryFiltersUnselectedStores(t *testing.T) {
	data := []model.MonthlyData{
		monthly("2025年1月",
			storeReport("ebisu", model.Report{
				Cafe: category(model.DailyEntry{Date: "1日", Sales: 100, Guests: 1, AvgSpend: 100}),
			}),
			storeReport("shibuya", model.Report{
				Cafe: category(model.DailyEntry{Date: "1日", Sales: 900, Guests: 9, AvgSpend: 100}),
			}),
		),
	}

	got := Summary(data, []string{"2025年1月"}, []string{"ebisu"})
	require.NotNil(t, got.Cafe)
	assert.Equal(t, 100.0, got.Cafe.TotalSales)
}

func TestSummaryNoMatchIsEmpty(t *testing.T) {
	data := []model.MonthlyData{
		monthly("2025年1月", storeReport("ebisu", model.Report{})),
	}

	got := Summary(data, []string{"2024年12月"}, []string{"ebisu"})
	assert.True(t, got.IsEmpty())
	assert.Empty(t, got.Month)
}
