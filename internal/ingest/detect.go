package ingest

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// filenameDetector pairs a name with a predicate that either claims a
// format or has no opinion. Detectors run in a fixed priority order;
// the first claim wins.
type filenameDetector struct {
	name   string
	detect func(filename string) (Format, bool)
}

var (
	dailySalesNameRe  = regexp.MustCompile(`^日別売上\(年月：\d{4}_\d{2}\)\.csv$`)
	productSalesNameRe = regexp.MustCompile(`取引データ[\(（]取引日時=`)
)

var filenameDetectors = []filenameDetector{
	{
		name: "daily-sales-filename",
		detect: func(filename string) (Format, bool) {
			if dailySalesNameRe.MatchString(filename) {
				return FormatDailySales, true
			}
			return FormatUnknown, false
		},
	},
	{
		name: "party-filename",
		detect: func(filename string) (Format, bool) {
			if strings.Contains(filename, "取引") &&
				(strings.Contains(filename, "CPT") || strings.Contains(filename, "DPT")) &&
				strings.HasSuffix(strings.ToLower(filename), ".csv") {
				return FormatParty, true
			}
			return FormatUnknown, false
		},
	},
	{
		name: "product-sales-filename",
		detect: func(filename string) (Format, bool) {
			// POS exports arrive with full-width or half-width parens
			// depending on the terminal, so match on the NFKC form.
			if productSalesNameRe.MatchString(norm.NFKC.String(filename)) {
				return FormatProductSales, true
			}
			return FormatUnknown, false
		},
	},
}

// DetectByFilename classifies a CSV by its filename alone.
func DetectByFilename(filename string) Format {
	for _, d := range filenameDetectors {
		if format, ok := d.detect(filename); ok {
			return format
		}
	}
	return FormatUnknown
}

// DetectByHeader classifies a CSV by inspecting its header row.
func DetectByHeader(header []string) Format {
	if len(header) == 0 {
		return FormatUnknown
	}

	trimmed := make([]string, len(header))
	for i, h := range header {
		trimmed[i] = strings.TrimSpace(h)
	}

	has := func(label string) bool {
		for _, h := range trimmed {
			if h == label {
				return true
			}
		}
		return false
	}
	hasContaining := func(substr string) bool {
		for _, h := range trimmed {
			if strings.Contains(h, substr) {
				return true
			}
		}
		return false
	}

	switch {
	case has("日付") && has("売上") && has("客数"):
		return FormatDailySales
	case hasContaining("取引") && hasContaining("人数") && hasContaining("金額"):
		return FormatParty
	case hasContaining("商品") && hasContaining("税率"):
		return FormatProductSales
	case len(trimmed) >= productColumns.MinFields:
		// Only the product export is this wide.
		return FormatProductSales
	}
	return FormatUnknown
}

// classifierSampleSize bounds how many rows are sent to the external
// classifier fallback.
const classifierSampleSize = 5

// Detector resolves a file's format through the ordered fallback
// chain: filename, header content, then the external classifier.
type Detector struct {
	classifier Classifier
}

// NewDetector creates a detector. classifier may be nil, in which case
// the external fallback is skipped.
func NewDetector(classifier Classifier) *Detector {
	return &Detector{classifier: classifier}
}

// Detect returns the file's format, or FormatUnknown when every
// strategy is exhausted. Classifier failures downgrade to
// FormatUnknown rather than propagating.
func (d *Detector) Detect(ctx context.Context, filename string, header []string, rows [][]string) Format {
	if format := DetectByFilename(filename); format != FormatUnknown {
		return format
	}

	if format := DetectByHeader(header); format != FormatUnknown {
		slog.Debug("format detected from header content", "file", filename, "format", format)
		return format
	}

	if d.classifier == nil {
		return FormatUnknown
	}

	sample := make([][]string, 0, classifierSampleSize)
	sample = append(sample, header)
	for _, row := range rows {
		if len(sample) >= classifierSampleSize {
			break
		}
		sample = append(sample, row)
	}

	format, err := d.classifier.ClassifyFormat(ctx, sample)
	if err != nil {
		slog.Warn("classifier fallback failed", "file", filename, "error", err)
		return FormatUnknown
	}
	return format
}
