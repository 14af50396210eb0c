package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/waldcafe/wald/internal/ingest"
)

const classifySystemPrompt = "あなたは飲食店のPOSレジが出力するCSVファイルの種類を判定する分類器です。" +
	"回答は「日別売上」「パーティー売上」「商品別売上」「不明」のいずれか一語のみで回答してください。" +
	"説明や前置きは不要です。"

// FormatClassifier asks an LLM to identify a CSV format from a sample
// of its rows. It is the last link in the detection chain, so every
// failure mode is soft: an error or an unrecognized answer both come
// back as FormatUnknown to the caller.
type FormatClassifier struct {
	client Client
	logger *slog.Logger
}

// NewFormatClassifier creates a classifier backed by the given client.
func NewFormatClassifier(client Client, logger *slog.Logger) *FormatClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &FormatClassifier{client: client, logger: logger}
}

// ClassifyFormat implements ingest.Classifier.
func (f *FormatClassifier) ClassifyFormat(ctx context.Context, rows [][]string) (ingest.Format, error) {
	if len(rows) == 0 {
		return ingest.FormatUnknown, nil
	}

	answer, err := f.client.Complete(ctx, classifySystemPrompt, buildClassifyPrompt(rows))
	if err != nil {
		return ingest.FormatUnknown, fmt.Errorf("classification request failed: %w", err)
	}

	format := parseFormatAnswer(answer)
	f.logger.Debug("classifier answered",
		"answer", strings.TrimSpace(answer),
		"format", format)
	return format, nil
}

func buildClassifyPrompt(rows [][]string) string {
	var b strings.Builder
	b.WriteString("次のCSVサンプル行から、ファイルの種類を判定してください。\n\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}
	return b.String()
}

// parseFormatAnswer maps the model's free-text answer onto a format
// tag. Anything unrecognized is FormatUnknown.
func parseFormatAnswer(answer string) ingest.Format {
	switch {
	case strings.Contains(answer, "日別"):
		return ingest.FormatDailySales
	case strings.Contains(answer, "パーティ"):
		return ingest.FormatParty
	case strings.Contains(answer, "商品"):
		return ingest.FormatProductSales
	default:
		return ingest.FormatUnknown
	}
}
