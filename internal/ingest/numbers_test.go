package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"¥12,345", 12345},
		{"12345", 12345},
		{"1,234.5", 1234.5},
		{"-500", -500},
		{"", 0},
		{"abc", 0},
		{"¥", 0},
		{"42", 42},
		{"  3,000円 ", 3000},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.raw))
		})
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 12, ParseCount("12人"))
	assert.Equal(t, 0, ParseCount(""))
	assert.Equal(t, 1234, ParseCount("1,234"))
}
