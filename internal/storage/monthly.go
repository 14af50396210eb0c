package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/waldcafe/wald/internal/model"
)

// ListMonthlyData assembles every stored month across all stores,
// sorted chronologically by the parsed month label.
func (s *SQLiteStorage) ListMonthlyData(ctx context.Context) ([]model.MonthlyData, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.month, r.payload, r.file_count, r.last_updated,
		       st.id, st.name, st.code
		FROM store_reports r
		JOIN stores st ON st.id = r.store_id
		ORDER BY st.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byMonth := make(map[string]*model.MonthlyData)
	for rows.Next() {
		var (
			month   string
			payload string
			report  model.StoreReport
		)
		err := rows.Scan(
			&month,
			&payload,
			&report.FileCount,
			&report.LastUpdated,
			&report.Store.ID,
			&report.Store.Name,
			&report.Store.Code,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		if err := json.Unmarshal([]byte(payload), &report.Data); err != nil {
			return nil, fmt.Errorf("failed to decode stored report: %w", err)
		}

		history, err := s.uploadHistory(ctx, month, report.Store.ID)
		if err != nil {
			return nil, err
		}
		report.UploadHistory = history

		monthData, ok := byMonth[month]
		if !ok {
			monthData = &model.MonthlyData{Month: month}
			byMonth[month] = monthData
		}
		monthData.Stores = append(monthData.Stores, report)
		monthData.TotalFileCount += report.FileCount
		if report.LastUpdated.After(monthData.LastUpdated) {
			monthData.LastUpdated = report.LastUpdated
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}

	monthly := make([]model.MonthlyData, 0, len(byMonth))
	for _, monthData := range byMonth {
		monthly = append(monthly, *monthData)
	}
	sort.Slice(monthly, func(i, j int) bool {
		return model.CompareMonthLabels(monthly[i].Month, monthly[j].Month) < 0
	})

	return monthly, nil
}
