// Package storage provides the data persistence layer for the wald application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/waldcafe/wald/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrInvalidStore = errors.New("invalid store")
	ErrInvalidMonth = errors.New("invalid month label")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateStore validates a store record.
func validateStore(store *model.Store) error {
	if store == nil {
		return fmt.Errorf("%w: store", ErrNilParameter)
	}
	if strings.TrimSpace(store.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidStore)
	}
	if strings.TrimSpace(store.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidStore)
	}
	if strings.TrimSpace(store.Code) == "" {
		return fmt.Errorf("%w: missing code", ErrInvalidStore)
	}
	return nil
}

// validateMonth ensures a month label parses as "YYYY年M月".
func validateMonth(month string) error {
	if _, _, ok := model.ParseMonthLabel(month); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return nil
}
