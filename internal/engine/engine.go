// Package engine orchestrates the CSV ingestion pipeline from raw file
// to stored monthly aggregate.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/waldcafe/wald/internal/common"
	"github.com/waldcafe/wald/internal/ingest"
	"github.com/waldcafe/wald/internal/model"
	"github.com/waldcafe/wald/internal/service"
)

// Engine runs the ingestion pipeline. Files are always processed
// strictly in order, one at a time, so each file's merge result is
// visible to the next.
type Engine struct {
	storage  service.Storage
	detector *ingest.Detector
	clock    func() time.Time
}

// Options controls a single ingestion run.
type Options struct {
	// StoreID pins every file to one store instead of resolving the
	// store from each filename.
	StoreID string
	// DryRun parses and reports without writing anything.
	DryRun bool
}

// FileResult is the outcome for one file. A non-nil Err means the file
// contributed nothing; the rest of the batch is unaffected.
type FileResult struct {
	Err      error
	Report   *model.StoreReport
	Filename string
	Month    string
	StoreID  string
	Format   ingest.Format
	DryRun   bool
}

// New creates an engine. classifier may be nil to disable the AI
// format fallback.
func New(storage service.Storage, classifier ingest.Classifier) *Engine {
	return &Engine{
		storage:  storage,
		detector: ingest.NewDetector(classifier),
		clock:    time.Now,
	}
}

// WithClock overrides the time source. Used by tests and anywhere the
// month fallback has to be deterministic.
func (e *Engine) WithClock(clock func() time.Time) *Engine {
	e.clock = clock
	return e
}

// ProcessFiles ingests the given files sequentially in argument order.
// Per-file failures are recorded in that file's result and never abort
// the batch; only context cancellation stops the loop early.
func (e *Engine) ProcessFiles(ctx context.Context, paths []string, opts Options) []FileResult {
	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		select {
		case <-ctx.Done():
			results = append(results, FileResult{Filename: filepath.Base(path), Err: ctx.Err()})
			return results
		default:
		}
		results = append(results, e.ProcessFile(ctx, path, opts))
	}
	return results
}

// ProcessFile runs one file through the full pipeline: decode, detect,
// extract, resolve the store, then fold into the stored aggregate.
func (e *Engine) ProcessFile(ctx context.Context, path string, opts Options) FileResult {
	filename := filepath.Base(path)
	result := FileResult{Filename: filename, DryRun: opts.DryRun}

	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied import path
	if err != nil {
		result.Err = fmt.Errorf("failed to read file: %w", err)
		return result
	}

	header, rows, err := ingest.DecodeRows(data)
	if err != nil {
		result.Err = err
		return result
	}

	format := e.detector.Detect(ctx, filename, header, rows)
	result.Format = format
	if format == ingest.FormatUnknown {
		result.Err = common.NewUserError(
			"CSVファイルの形式を判別できませんでした: "+filename,
			common.ErrUnknownFormat)
		return result
	}

	month, derived := ingest.ExtractMonth(filename, e.clock())
	if !derived {
		slog.Warn("no month in filename, assuming current month",
			"file", filename, "month", month)
	}
	result.Month = month

	store, err := e.resolveStore(ctx, filename, opts)
	if err != nil {
		result.Err = err
		return result
	}
	result.StoreID = store.ID

	fragment := extract(format, rows, filename)

	slog.Info("parsed file",
		"file", filename,
		"format", format,
		"month", month,
		"store", store.ID)

	if opts.DryRun {
		result.Report = &model.StoreReport{Store: *store, Data: *fragment}
		return result
	}

	report, err := e.storage.AddOrUpdateReport(ctx, month, store.ID, fragment, filename)
	if err != nil {
		result.Err = fmt.Errorf("failed to store report: %w", err)
		return result
	}
	result.Report = report
	return result
}

func (e *Engine) resolveStore(ctx context.Context, filename string, opts Options) (*model.Store, error) {
	if opts.StoreID != "" {
		return e.storage.GetStoreByID(ctx, opts.StoreID)
	}

	code := ingest.ExtractStoreCode(filename)
	if code == "" {
		return nil, common.NewUserError(
			"ファイル名から店舗を特定できませんでした: "+filename,
			common.ErrStoreNotResolved)
	}

	store, err := e.storage.GetStoreByCode(ctx, code)
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("店舗コード %s が登録されていません", code),
			err)
	}
	return store, nil
}

func extract(format ingest.Format, rows [][]string, filename string) *model.Report {
	switch format {
	case ingest.FormatDailySales:
		return ingest.ExtractDailySales(rows)
	case ingest.FormatParty:
		return ingest.ExtractParty(rows, filename)
	case ingest.FormatProductSales:
		return ingest.ExtractProductSales(rows)
	default:
		return &model.Report{}
	}
}
