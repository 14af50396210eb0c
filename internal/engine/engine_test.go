package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waldcafe/wald/internal/common"
	"github.com/waldcafe/wald/internal/ingest"
	"github.com/waldcafe/wald/internal/model"
	"github.com/waldcafe/wald/internal/storage"
)

func createTestEngine(t *testing.T) (*Engine, *storage.SQLiteStorage) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.SaveStore(ctx, &model.Store{ID: "ebisu", Name: "恵比寿店", Code: "EBISU"}))

	engine := New(store, nil).WithClock(func() time.Time {
		return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	})
	return engine, store
}

// writeCSV joins rows into a file. Cell content stays ASCII so the
// bytes survive the Shift_JIS-first decode unchanged.
func writeCSV(t *testing.T, dir, name string, rows ...[]string) string {
	t.Helper()
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, ",")
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0600))
	return path
}

func dailyHeader() []string {
	row := make([]string, 12)
	for i := range row {
		row[i] = "h"
	}
	return row
}

func dailyRow(date, sales, guests, avg string) []string {
	row := make([]string, 12)
	row[0] = date
	row[1] = sales
	row[10] = guests
	row[11] = avg
	return row
}

func partyRow(date, guests, sales string) []string {
	row := make([]string, 10)
	row[1] = date
	row[4] = guests
	row[9] = sales
	return row
}

func TestProcessFileDailySales(t *testing.T) {
	engine, _ := createTestEngine(t)

	path := writeCSV(t, t.TempDir(), "日別売上(年月：2025_01).csv",
		dailyHeader(),
		dailyRow("2025/1/1", "1000", "2", "500"),
		dailyRow("2025/1/3", "3000", "5", "600"),
	)

	result := engine.ProcessFile(context.Background(), path, Options{StoreID: "ebisu"})
	require.NoError(t, result.Err)
	assert.Equal(t, ingest.FormatDailySales, result.Format)
	assert.Equal(t, "2025年1月", result.Month)
	assert.Equal(t, "ebisu", result.StoreID)

	require.NotNil(t, result.Report)
	require.NotNil(t, result.Report.Data.Cafe)
	assert.Equal(t, 4000.0, result.Report.Data.Cafe.TotalSales)
	assert.Equal(t, 7, result.Report.Data.Cafe.TotalGuests)
	assert.Equal(t, 1, result.Report.FileCount)
}

func TestProcessFilesSequentialMerge(t *testing.T) {
	engine, _ := createTestEngine(t)

	first := writeCSV(t, t.TempDir(), "日別売上(年月：2025_01).csv",
		dailyHeader(),
		dailyRow("2025/1/1", "1000", "2", "500"),
		dailyRow("2025/1/3", "3000", "5", "600"),
	)
	second := writeCSV(t, t.TempDir(), "日別売上(年月：2025_01).csv",
		dailyHeader(),
		dailyRow("2025/1/1", "1200", "3", "400"),
		dailyRow("2025/1/5", "500", "1", "500"),
	)

	results := engine.ProcessFiles(context.Background(), []string{first, second}, Options{StoreID: "ebisu"})
	require.Len(t, results, 2)
	require.NoError(t, results[0].Err)
	require.NoError(t, results[1].Err)

	cafe := results[1].Report.Data.Cafe
	require.NotNil(t, cafe)
	require.Len(t, cafe.Daily, 3)

	// Day 1 was re-uploaded and the newer file wins; day 3 survives;
	// day 5 is appended.
	assert.Equal(t, "1日", cafe.Daily[0].Date)
	assert.Equal(t, 1200.0, cafe.Daily[0].Sales)
	assert.Equal(t, 3, cafe.Daily[0].Guests)
	assert.Equal(t, "3日", cafe.Daily[1].Date)
	assert.Equal(t, 3000.0, cafe.Daily[1].Sales)
	assert.Equal(t, "5日", cafe.Daily[2].Date)
	assert.Equal(t, 500.0, cafe.Daily[2].Sales)

	assert.Equal(t, 4700.0, cafe.TotalSales)
	assert.Equal(t, 9, cafe.TotalGuests)
	assert.Equal(t, 2, results[1].Report.FileCount)
}

func TestProcessFileResolvesStoreFromFilename(t *testing.T) {
	engine, _ := createTestEngine(t)

	path := writeCSV(t, t.TempDir(), "EBISU_取引CPT.csv",
		partyRow("h", "h", "h"),
		partyRow("2025/1/15", "4", "8000"),
	)

	result := engine.ProcessFile(context.Background(), path, Options{})
	require.NoError(t, result.Err)
	assert.Equal(t, ingest.FormatParty, result.Format)
	assert.Equal(t, "ebisu", result.StoreID)
	// No month token in the name, so the clock supplies it.
	assert.Equal(t, "2025年3月", result.Month)

	require.NotNil(t, result.Report.Data.Party3F)
	assert.Equal(t, 8000.0, result.Report.Data.Party3F.TotalSales)
}

func TestProcessFileUnknownStoreCode(t *testing.T) {
	engine, _ := createTestEngine(t)

	path := writeCSV(t, t.TempDir(), "GHOST_取引CPT.csv",
		partyRow("h", "h", "h"),
		partyRow("2025/1/15", "4", "8000"),
	)

	result := engine.ProcessFile(context.Background(), path, Options{})
	assert.ErrorIs(t, result.Err, common.ErrStoreNotFound)
}

func TestProcessFileStoreNotResolved(t *testing.T) {
	engine, _ := createTestEngine(t)

	// Leading digit defeats every store code pattern.
	path := writeCSV(t, t.TempDir(), "2024取引CPT.csv",
		partyRow("h", "h", "h"),
		partyRow("2025/1/15", "4", "8000"),
	)

	result := engine.ProcessFile(context.Background(), path, Options{})
	assert.ErrorIs(t, result.Err, common.ErrStoreNotResolved)
}

func TestProcessFileUnknownFormat(t *testing.T) {
	engine, _ := createTestEngine(t)

	path := writeCSV(t, t.TempDir(), "mystery.csv",
		[]string{"a", "b", "c"},
		[]string{"1", "2", "3"},
	)

	result := engine.ProcessFile(context.Background(), path, Options{StoreID: "ebisu"})
	assert.ErrorIs(t, result.Err, common.ErrUnknownFormat)
	assert.NotEmpty(t, common.UserMessage(result.Err))
}

func TestProcessFilesBadFileDoesNotAbortBatch(t *testing.T) {
	engine, _ := createTestEngine(t)

	bad := writeCSV(t, t.TempDir(), "mystery.csv",
		[]string{"a", "b", "c"},
		[]string{"1", "2", "3"},
	)
	good := writeCSV(t, t.TempDir(), "日別売上(年月：2025_01).csv",
		dailyHeader(),
		dailyRow("2025/1/1", "1000", "2", "500"),
	)

	results := engine.ProcessFiles(context.Background(), []string{bad, good}, Options{StoreID: "ebisu"})
	require.Len(t, results, 2)
	assert.Error(t, results[0].Err)
	require.NoError(t, results[1].Err)
	assert.Equal(t, 1, results[1].Report.FileCount)
}

func TestProcessFileDryRun(t *testing.T) {
	engine, store := createTestEngine(t)

	path := writeCSV(t, t.TempDir(), "日別売上(年月：2025_01).csv",
		dailyHeader(),
		dailyRow("2025/1/1", "1000", "2", "500"),
	)

	result := engine.ProcessFile(context.Background(), path, Options{StoreID: "ebisu", DryRun: true})
	require.NoError(t, result.Err)
	assert.True(t, result.DryRun)
	require.NotNil(t, result.Report)
	require.NotNil(t, result.Report.Data.Cafe)

	// Nothing was written.
	_, err := store.GetStoreReport(context.Background(), "2025年1月", "ebisu")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestProcessFileMissingFile(t *testing.T) {
	engine, _ := createTestEngine(t)

	result := engine.ProcessFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), Options{})
	assert.Error(t, result.Err)
}
