package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	wrapped := NewUserError("店舗コードが解決できません", ErrStoreNotResolved)

	assert.Contains(t, wrapped.Error(), "店舗コードが解決できません")
	assert.ErrorIs(t, wrapped, ErrStoreNotResolved)
	assert.Equal(t, "店舗コードが解決できません", UserMessage(wrapped))
}

func TestUserMessageFallback(t *testing.T) {
	err := fmt.Errorf("wrapping: %w", ErrEmptyFile)
	assert.Equal(t, err.Error(), UserMessage(err))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrRateLimit))
	assert.True(t, IsRetryable(&RetryableError{Err: errors.New("boom"), Retryable: true}))
	assert.False(t, IsRetryable(&RetryableError{Err: errors.New("boom"), Retryable: false}))
	assert.False(t, IsRetryable(errors.New("plain")))
}
