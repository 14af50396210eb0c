package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/waldcafe/wald/internal/common"
	"github.com/waldcafe/wald/internal/merge"
	"github.com/waldcafe/wald/internal/model"
)

// AddOrUpdateReport folds one parsed fragment into the (month, store)
// aggregate. The read-merge-write happens inside a single transaction
// so a failed file never leaves a half-updated aggregate behind.
func (s *SQLiteStorage) AddOrUpdateReport(ctx context.Context, month, storeID string, fragment *model.Report, filename string) (*model.StoreReport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	if err := validateString(storeID, "storeID"); err != nil {
		return nil, err
	}
	if fragment == nil {
		return nil, fmt.Errorf("%w: fragment", ErrNilParameter)
	}
	if err := validateString(filename, "filename"); err != nil {
		return nil, err
	}

	store, err := s.GetStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		existing  *model.Report
		fileCount int
	)
	var payload string
	err = tx.QueryRowContext(ctx, `
		SELECT payload, file_count
		FROM store_reports
		WHERE month = ? AND store_id = ?
	`, month, storeID).Scan(&payload, &fileCount)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// First file for this month and store
	case err != nil:
		return nil, fmt.Errorf("failed to read report: %w", err)
	default:
		existing = &model.Report{}
		if err := json.Unmarshal([]byte(payload), existing); err != nil {
			return nil, fmt.Errorf("failed to decode stored report: %w", err)
		}
	}

	merged := merge.Reports(existing, fragment)
	merged.Month = month
	merged.StoreID = storeID

	encoded, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO store_reports (month, store_id, payload, file_count, last_updated)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(month, store_id) DO UPDATE SET
			payload = excluded.payload,
			file_count = store_reports.file_count + 1,
			last_updated = excluded.last_updated
	`, month, storeID, string(encoded), 1, now)
	if err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO upload_history (month, store_id, filename, uploaded_at)
		VALUES (?, ?, ?, ?)
	`, month, storeID, filename, now)
	if err != nil {
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit report: %w", err)
	}

	return s.assembleStoreReport(ctx, month, store)
}

// GetStoreReport retrieves one store's aggregate for a month.
func (s *SQLiteStorage) GetStoreReport(ctx context.Context, month, storeID string) (*model.StoreReport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	if err := validateString(storeID, "storeID"); err != nil {
		return nil, err
	}

	store, err := s.GetStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return s.assembleStoreReport(ctx, month, store)
}

func (s *SQLiteStorage) assembleStoreReport(ctx context.Context, month string, store *model.Store) (*model.StoreReport, error) {
	report := &model.StoreReport{Store: *store}

	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload, file_count, last_updated
		FROM store_reports
		WHERE month = ? AND store_id = ?
	`, month, store.ID).Scan(&payload, &report.FileCount, &report.LastUpdated)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: report for %s %s", common.ErrNotFound, store.ID, month)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), &report.Data); err != nil {
		return nil, fmt.Errorf("failed to decode stored report: %w", err)
	}

	history, err := s.uploadHistory(ctx, month, store.ID)
	if err != nil {
		return nil, err
	}
	report.UploadHistory = history

	return report, nil
}

func (s *SQLiteStorage) uploadHistory(ctx context.Context, month, storeID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT filename
		FROM upload_history
		WHERE month = ? AND store_id = ?
		ORDER BY id
	`, month, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query upload history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var filenames []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan upload history: %w", err)
		}
		filenames = append(filenames, name)
	}
	return filenames, rows.Err()
}

// DeleteStoreReport removes one store's aggregate for a month.
func (s *SQLiteStorage) DeleteStoreReport(ctx context.Context, month, storeID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateMonth(month); err != nil {
		return err
	}
	if err := validateString(storeID, "storeID"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		DELETE FROM store_reports WHERE month = ? AND store_id = ?
	`, month, storeID)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: report for %s %s", common.ErrNotFound, storeID, month)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM upload_history WHERE month = ? AND store_id = ?
	`, month, storeID)
	if err != nil {
		return fmt.Errorf("failed to delete upload history: %w", err)
	}

	return tx.Commit()
}

// DeleteAllReports clears every stored aggregate and its upload
// history. The store directory is left intact.
func (s *SQLiteStorage) DeleteAllReports(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM store_reports`); err != nil {
		return fmt.Errorf("failed to delete reports: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM upload_history`); err != nil {
		return fmt.Errorf("failed to delete upload history: %w", err)
	}

	return tx.Commit()
}
