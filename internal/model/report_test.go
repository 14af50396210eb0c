package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayNumber(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"1日", 1},
		{"15日", 15},
		{"31日", 31},
		{"日", 0},
		{"", 0},
		{"abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, DayNumber(tt.date))
		})
	}
}

func TestCategoryDataRecompute(t *testing.T) {
	tests := []struct {
		name        string
		daily       []DailyEntry
		wantSales   float64
		wantGuests  int
		wantAvg     float64
	}{
		{
			name: "totals derive from daily list",
			daily: []DailyEntry{
				{Date: "1日", Sales: 1000, Guests: 2},
				{Date: "3日", Sales: 3000, Guests: 5},
			},
			wantSales:  4000,
			wantGuests: 7,
			wantAvg:    4000.0 / 7.0,
		},
		{
			name:       "zero guests yields zero average",
			daily:      []DailyEntry{{Date: "1日", Sales: 500, Guests: 0}},
			wantSales:  500,
			wantGuests: 0,
			wantAvg:    0,
		},
		{
			name:       "empty list",
			daily:      nil,
			wantSales:  0,
			wantGuests: 0,
			wantAvg:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CategoryData{Daily: tt.daily, TotalSales: 99, TotalGuests: 99, AvgSpend: 99}
			c.Recompute()
			assert.Equal(t, tt.wantSales, c.TotalSales)
			assert.Equal(t, tt.wantGuests, c.TotalGuests)
			assert.InDelta(t, tt.wantAvg, c.AvgSpend, 1e-9)
			assert.False(t, c.AvgSpend != c.AvgSpend, "AvgSpend must never be NaN")
		})
	}
}

func TestReportIsEmpty(t *testing.T) {
	var r Report
	assert.True(t, r.IsEmpty())

	r.Cafe = &CategoryData{}
	assert.False(t, r.IsEmpty())
}
