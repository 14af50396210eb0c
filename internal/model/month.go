package model

import (
	"fmt"
	"regexp"
	"strconv"
)

var monthLabelRe = regexp.MustCompile(`^(\d{4})年(\d{1,2})月$`)

// FormatMonthLabel renders a year/month pair as the canonical label,
// e.g. FormatMonthLabel(2024, 3) == "2024年3月".
func FormatMonthLabel(year, month int) string {
	return fmt.Sprintf("%d年%d月", year, month)
}

// ParseMonthLabel extracts the year and month from a canonical label.
// It returns ok=false for anything that is not "YYYY年M月".
func ParseMonthLabel(label string) (year, month int, ok bool) {
	m := monthLabelRe.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	return year, month, true
}

// CompareMonthLabels orders two month labels chronologically by their
// parsed year and month, not lexicographically. Unparseable labels
// sort before everything else.
func CompareMonthLabels(a, b string) int {
	ay, am, _ := ParseMonthLabel(a)
	by, bm, _ := ParseMonthLabel(b)
	if ay != by {
		return ay - by
	}
	return am - bm
}
