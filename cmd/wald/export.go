package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/waldcafe/wald/internal/cli"
	"github.com/waldcafe/wald/internal/config"
	"github.com/waldcafe/wald/internal/merge"
	"github.com/waldcafe/wald/internal/sheets"
)

func exportSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-sheets",
		Short: "Export a merged summary to Google Sheets",
		Long: `Export the merged summary for the selected months and stores to a
Google Sheets spreadsheet. The target spreadsheet is reused when
sheets.spreadsheet_id is configured, otherwise a new one is created.`,
		RunE: runExportSheets,
	}

	cmd.Flags().StringSlice("month", nil, "Month label to include (repeatable, required)")
	cmd.Flags().StringSlice("store", nil, "Store ID to include (repeatable, default: all)")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func runExportSheets(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	sheetsConfig, err := config.LoadSheetsConfig()
	if err != nil {
		return err
	}

	months, _ := cmd.Flags().GetStringSlice("month")
	stores, _ := cmd.Flags().GetStringSlice("store")

	storage, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = storage.Close() }()

	monthly, err := storage.ListMonthlyData(ctx)
	if err != nil {
		return err
	}
	if len(stores) == 0 {
		stores = allStoreIDs(monthly)
	}

	summary := merge.Summary(monthly, months, stores)
	if summary.IsEmpty() {
		return fmt.Errorf("選択した月・店舗にデータがありません")
	}

	writer, err := sheets.NewWriter(ctx, *sheetsConfig, slog.Default())
	if err != nil {
		return err
	}

	if err := writer.Write(ctx, summary); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("Google Sheetsへのエクスポートが完了しました"))
	return nil
}
