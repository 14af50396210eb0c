package merge

import (
	"fmt"

	"github.com/waldcafe/wald/internal/model"
)

// Summary merges the stored data of the selected months and stores
// into one display fragment. The result's month label is the single
// selected month, or a "first - last" range when several are
// selected. Nothing matching the selection yields an empty fragment.
func Summary(monthly []model.MonthlyData, selectedMonths, selectedStores []string) *model.Report {
	monthSet := toSet(selectedMonths)
	storeSet := toSet(selectedStores)

	summary := &model.Report{}
	matched := false

	for _, monthData := range monthly {
		if !monthSet[monthData.Month] {
			continue
		}
		for _, storeReport := range monthData.Stores {
			if !storeSet[storeReport.Store.ID] {
				continue
			}
			matched = true
			summary = Reports(summary, &model.Report{
				Cafe:         storeReport.Data.Cafe,
				Party3F:      storeReport.Data.Party3F,
				Party4F:      storeReport.Data.Party4F,
				ProductSales: storeReport.Data.ProductSales,
			})
		}
	}

	if !matched {
		return &model.Report{}
	}

	summary.Month = rangeLabel(selectedMonths)
	return summary
}

func rangeLabel(months []string) string {
	switch len(months) {
	case 0:
		return ""
	case 1:
		return months[0]
	default:
		return fmt.Sprintf("%s - %s", months[0], months[len(months)-1])
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
