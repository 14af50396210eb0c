package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/waldcafe/wald/internal/model"
)

var (
	fullDateRe    = regexp.MustCompile(`\d{4}/(\d{1,2})/(\d{1,2})`)
	partialDateRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})`)
)

// dayLabel extracts the day-of-month from a date cell and formats it
// as the canonical "D日" label. It accepts full "YYYY/M/D" dates and
// partial "M/D" dates; anything else yields "".
func dayLabel(raw string) string {
	if m := fullDateRe.FindStringSubmatch(raw); m != nil {
		day, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%d日", day)
	}
	if m := partialDateRe.FindStringSubmatch(raw); m != nil {
		day, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%d日", day)
	}
	return ""
}

// ExtractDailySales converts the data rows of a daily-sales export
// into a cafe fragment. Rows with a blank date, a 合計 (total) marker,
// or no recognizable day are skipped.
func ExtractDailySales(rows [][]string) *model.Report {
	category := &model.CategoryData{}

	for _, row := range rows {
		dateValue := field(row, dailyColumns.Date)
		if dateValue == "" || strings.Contains(dateValue, "合計") {
			continue
		}

		day := dayLabel(dateValue)
		if day == "" {
			continue
		}

		category.Daily = append(category.Daily, model.DailyEntry{
			Date:     day,
			Sales:    ParseNumber(field(row, dailyColumns.Sales)),
			Guests:   ParseCount(field(row, dailyColumns.Guests)),
			AvgSpend: ParseNumber(field(row, dailyColumns.AvgSpend)),
		})
	}

	category.Recompute()
	return &model.Report{Cafe: category}
}
