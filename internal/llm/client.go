// Package llm provides AI model access for format classification and
// monthly report analysis.
package llm

import (
	"context"
	"time"
)

// Client defines the interface for LLM providers.
type Client interface {
	// Complete sends one system/user exchange and returns the raw
	// completion text.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config holds provider settings.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}
