package ingest

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/waldcafe/wald/internal/model"
)

// Room-code markers embedded in party export filenames. CPT is the
// 3rd-floor party room, DPT the 4th-floor one.
const (
	roomCode3F = "CPT"
	roomCode4F = "DPT"
)

// ExtractParty converts the data rows of a party-room transaction
// export into a party fragment. Multiple transaction rows can fall on
// the same day, so sales and headcounts are summed per day. The
// filename's room-code marker decides which slot the data lands in;
// a file with neither marker contributes nothing.
func ExtractParty(rows [][]string, filename string) *model.Report {
	type dayTotals struct {
		sales  float64
		guests int
	}
	byDay := make(map[int]*dayTotals)

	for _, row := range rows {
		if len(row) < partyColumns.MinFields {
			continue
		}

		// Party rows must carry a full timestamp; partial dates are
		// header noise or subtotal lines.
		m := fullDateRe.FindStringSubmatch(field(row, partyColumns.Date))
		if m == nil {
			continue
		}
		day, _ := strconv.Atoi(m[2])

		totals := byDay[day]
		if totals == nil {
			totals = &dayTotals{}
			byDay[day] = totals
		}
		totals.sales += ParseNumber(field(row, partyColumns.Sales))
		totals.guests += ParseCount(field(row, partyColumns.Guests))
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)

	category := &model.CategoryData{}
	for _, day := range days {
		totals := byDay[day]
		avg := 0.0
		if totals.guests > 0 {
			avg = totals.sales / float64(totals.guests)
		}
		category.Daily = append(category.Daily, model.DailyEntry{
			Date:     fmt.Sprintf("%d日", day),
			Sales:    totals.sales,
			Guests:   totals.guests,
			AvgSpend: avg,
		})
	}
	category.Recompute()

	switch {
	case strings.Contains(filename, roomCode3F):
		return &model.Report{Party3F: category}
	case strings.Contains(filename, roomCode4F):
		return &model.Report{Party4F: category}
	default:
		return &model.Report{}
	}
}
