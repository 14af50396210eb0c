package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waldcafe/wald/internal/ingest"
)

type stubClient struct {
	answer string
	err    error
}

func (s *stubClient) Complete(_ context.Context, _, _ string) (string, error) {
	return s.answer, s.err
}

func TestClassifyFormatAnswers(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   ingest.Format
	}{
		{"daily sales", "日別売上", ingest.FormatDailySales},
		{"party", "パーティー売上", ingest.FormatParty},
		{"product sales", "商品別売上", ingest.FormatProductSales},
		{"verbose answer still matches", "このファイルは商品別売上のようです", ingest.FormatProductSales},
		{"unknown", "不明", ingest.FormatUnknown},
		{"unparseable", "I cannot tell", ingest.FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewFormatClassifier(&stubClient{answer: tt.answer}, nil)
			format, err := classifier.ClassifyFormat(context.Background(), [][]string{{"a", "b"}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, format)
		})
	}
}

func TestClassifyFormatClientError(t *testing.T) {
	classifier := NewFormatClassifier(&stubClient{err: errors.New("boom")}, nil)
	format, err := classifier.ClassifyFormat(context.Background(), [][]string{{"a"}})
	assert.Error(t, err)
	assert.Equal(t, ingest.FormatUnknown, format)
}

func TestClassifyFormatEmptySample(t *testing.T) {
	classifier := NewFormatClassifier(&stubClient{answer: "日別売上"}, nil)
	format, err := classifier.ClassifyFormat(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, ingest.FormatUnknown, format)
}

func TestCleanMarkdownWrapper(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"fenced json", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanMarkdownWrapper(tt.content))
		})
	}
}
