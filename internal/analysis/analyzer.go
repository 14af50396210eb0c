// Package analysis produces AI-written monthly insight reports from
// stored sales aggregates.
package analysis

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strconv"
	"text/template"

	"github.com/waldcafe/wald/internal/common"
	"github.com/waldcafe/wald/internal/llm"
	"github.com/waldcafe/wald/internal/model"
	"github.com/waldcafe/wald/internal/service"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const systemPrompt = "あなたは飲食店経営の専門家です。回答は必ず有効なJSONオブジェクトのみで、" +
	"説明文やマークダウン記法を含めないでください。"

// Insight is the structured result of one monthly analysis.
type Insight struct {
	Summary         string   `json:"summary"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// Analyzer renders the prompt and interprets the model's answer.
// Failures never touch stored data; the caller just reports them.
type Analyzer struct {
	client llm.Client
	tmpl   *template.Template
	retry  service.RetryOptions
}

// NewAnalyzer creates an analyzer backed by the given client.
func NewAnalyzer(client llm.Client) (*Analyzer, error) {
	funcMap := template.FuncMap{
		"formatAmount": formatAmount,
	}

	tmpl, err := template.New("monthly_insight.tmpl").Funcs(funcMap).ParseFS(templateFS, "templates/monthly_insight.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse analysis template: %w", err)
	}

	return &Analyzer{
		client: client,
		tmpl:   tmpl,
		retry:  service.RetryOptions{MaxAttempts: 3},
	}, nil
}

// promptData is the template input: one report plus display labels.
type promptData struct {
	*model.Report
	Month     string
	StoreName string
}

// Analyze builds the monthly prompt and returns the parsed insight.
func (a *Analyzer) Analyze(ctx context.Context, report *model.Report, month, storeName string) (*Insight, error) {
	if report == nil || report.IsEmpty() {
		return nil, fmt.Errorf("%w: no data for %s", common.ErrAnalysisFailed, month)
	}

	var buf bytes.Buffer
	err := a.tmpl.ExecuteTemplate(&buf, "monthly_insight.tmpl", promptData{
		Report:    report,
		Month:     month,
		StoreName: storeName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build analysis prompt: %w", err)
	}

	var answer string
	err = common.WithRetry(ctx, func() error {
		var completeErr error
		answer, completeErr = a.client.Complete(ctx, systemPrompt, buf.String())
		return completeErr
	}, a.retry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAnalysisFailed, err)
	}

	return parseInsight(answer)
}

// parseInsight decodes the model's JSON answer, tolerating a markdown
// fence around it.
func parseInsight(answer string) (*Insight, error) {
	cleaned := llm.CleanMarkdownWrapper(answer)

	var insight Insight
	if err := json.Unmarshal([]byte(cleaned), &insight); err != nil {
		return nil, fmt.Errorf("%w: unparseable answer: %v", common.ErrAnalysisFailed, err)
	}
	if insight.Summary == "" {
		return nil, fmt.Errorf("%w: answer has no summary", common.ErrAnalysisFailed)
	}
	return &insight, nil
}

// formatAmount renders a yen amount without a decimal tail unless the
// value actually has one.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
