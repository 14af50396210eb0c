package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/waldcafe/wald/internal/common"
	"github.com/waldcafe/wald/internal/model"
)

// SaveStore inserts or updates a store directory entry.
func (s *SQLiteStorage) SaveStore(ctx context.Context, store *model.Store) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateStore(store); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO stores (id, name, code)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			code = excluded.code
	`, store.ID, store.Name, store.Code)

	if err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}
	return nil
}

// GetStoreByID retrieves a store by its identifier.
func (s *SQLiteStorage) GetStoreByID(ctx context.Context, id string) (*model.Store, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return s.getStore(ctx, "id = ?", id)
}

// GetStoreByCode retrieves a store by its filename code.
func (s *SQLiteStorage) GetStoreByCode(ctx context.Context, code string) (*model.Store, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(code, "code"); err != nil {
		return nil, err
	}
	return s.getStore(ctx, "code = ?", code)
}

func (s *SQLiteStorage) getStore(ctx context.Context, where string, arg any) (*model.Store, error) {
	var store model.Store

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, code
		FROM stores
		WHERE `+where, arg).Scan(
		&store.ID,
		&store.Name,
		&store.Code,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: store", common.ErrStoreNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	return &store, nil
}

// ListStores retrieves all stores ordered by name.
func (s *SQLiteStorage) ListStores(ctx context.Context) ([]model.Store, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, code
		FROM stores
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stores []model.Store
	for rows.Next() {
		var store model.Store
		if err := rows.Scan(&store.ID, &store.Name, &store.Code); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, store)
	}
	return stores, rows.Err()
}

// DeleteStore removes a store and all reports filed under it.
func (s *SQLiteStorage) DeleteStore(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM upload_history WHERE store_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete upload history: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM store_reports WHERE store_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete store reports: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM stores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", common.ErrStoreNotFound, id)
	}

	return tx.Commit()
}
