package model

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMonthLabel(t *testing.T) {
	assert.Equal(t, "2024年3月", FormatMonthLabel(2024, 3))
	assert.Equal(t, "2024年12月", FormatMonthLabel(2024, 12))
}

func TestParseMonthLabel(t *testing.T) {
	tests := []struct {
		label     string
		wantYear  int
		wantMonth int
		wantOK    bool
	}{
		{"2024年1月", 2024, 1, true},
		{"2023年12月", 2023, 12, true},
		{"2024-01", 0, 0, false},
		{"", 0, 0, false},
		{"2024年月", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			y, m, ok := ParseMonthLabel(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantYear, y)
			assert.Equal(t, tt.wantMonth, m)
		})
	}
}

func TestCompareMonthLabels(t *testing.T) {
	// "2024年10月" must sort after "2024年2月" even though it is
	// lexicographically smaller.
	labels := []string{"2024年10月", "2023年12月", "2024年2月"}
	sort.Slice(labels, func(i, j int) bool {
		return CompareMonthLabels(labels[i], labels[j]) < 0
	})
	assert.Equal(t, []string{"2023年12月", "2024年2月", "2024年10月"}, labels)
}
