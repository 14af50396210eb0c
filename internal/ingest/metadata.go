package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/waldcafe/wald/internal/model"
)

var (
	monthUnderscoreRe = regexp.MustCompile(`(\d{4})_(\d{1,2})`)
	monthCompactRe    = regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`)
	monthTimestampRe  = regexp.MustCompile(`取引日時=([0-9]{8})`)
)

// ExtractMonth derives the reporting month label from a filename. The
// patterns are tried in order; the day component of date-like tokens
// is ignored. When nothing matches, the current calendar month is
// returned and derived is false so callers can surface the fallback.
func ExtractMonth(filename string, now time.Time) (label string, derived bool) {
	if m := monthUnderscoreRe.FindStringSubmatch(filename); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return model.FormatMonthLabel(year, month), true
	}

	if m := monthCompactRe.FindStringSubmatch(filename); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return model.FormatMonthLabel(year, month), true
	}

	if m := monthTimestampRe.FindStringSubmatch(norm.NFKC.String(filename)); m != nil {
		year, _ := strconv.Atoi(m[1][:4])
		month, _ := strconv.Atoi(m[1][4:6])
		return model.FormatMonthLabel(year, month), true
	}

	return model.FormatMonthLabel(now.Year(), int(now.Month())), false
}

// storeCodePatterns are tried in order; the first capture wins.
// Examples: "SHIBUYA_2024_01.csv" → SHIBUYA, "渋谷店_2024_01.csv" → 渋谷店.
var storeCodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([A-Z]+)_`),
	regexp.MustCompile(`^([^_]+)_`),
	regexp.MustCompile(`^([^0-9]+)`),
}

// ExtractStoreCode derives the store code from a filename, uppercased.
// An empty string means no pattern matched and the caller must require
// an explicit store selection.
func ExtractStoreCode(filename string) string {
	for _, pattern := range storeCodePatterns {
		if m := pattern.FindStringSubmatch(filename); m != nil && m[1] != "" {
			return strings.ToUpper(m[1])
		}
	}
	return ""
}
