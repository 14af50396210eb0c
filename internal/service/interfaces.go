// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/waldcafe/wald/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Store directory operations
	SaveStore(ctx context.Context, store *model.Store) error
	GetStoreByID(ctx context.Context, id string) (*model.Store, error)
	GetStoreByCode(ctx context.Context, code string) (*model.Store, error)
	ListStores(ctx context.Context) ([]model.Store, error)
	DeleteStore(ctx context.Context, id string) error

	// Monthly aggregate operations. AddOrUpdateReport folds one parsed
	// fragment into the (month, store) aggregate as a single atomic
	// read-merge-write, bumping file counts and timestamps.
	AddOrUpdateReport(ctx context.Context, month, storeID string, fragment *model.Report, filename string) (*model.StoreReport, error)
	GetStoreReport(ctx context.Context, month, storeID string) (*model.StoreReport, error)
	ListMonthlyData(ctx context.Context) ([]model.MonthlyData, error)
	DeleteStoreReport(ctx context.Context, month, storeID string) error
	DeleteAllReports(ctx context.Context) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for external collaborators.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
