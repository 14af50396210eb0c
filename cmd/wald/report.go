package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waldcafe/wald/internal/cli"
	"github.com/waldcafe/wald/internal/merge"
	"github.com/waldcafe/wald/internal/model"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show a merged sales summary",
		Long: `Show the merged sales summary for the selected months and stores.

With no flags the latest stored month across all stores is shown.
Repeat --month or --store to widen the selection; multiple selections
are merged into one cross-month, cross-store summary.`,
		RunE: runReport,
	}

	cmd.Flags().StringSlice("month", nil, "Month label to include, e.g. 2025年1月 (repeatable)")
	cmd.Flags().StringSlice("store", nil, "Store ID to include (repeatable, default: all)")
	cmd.Flags().Bool("json", false, "Print the summary as JSON")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	storage, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = storage.Close() }()

	monthly, err := storage.ListMonthlyData(ctx)
	if err != nil {
		return err
	}
	if len(monthly) == 0 {
		fmt.Println(cli.FormatWarning("データがまだ取り込まれていません"))
		return nil
	}

	months, _ := cmd.Flags().GetStringSlice("month")
	stores, _ := cmd.Flags().GetStringSlice("store")

	if len(months) == 0 {
		// Default to the latest stored month.
		months = []string{monthly[len(monthly)-1].Month}
	}
	if len(stores) == 0 {
		stores = allStoreIDs(monthly)
	}

	summary := merge.Summary(monthly, months, stores)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println(cli.RenderSummary(summary))
	return nil
}

func allStoreIDs(monthly []model.MonthlyData) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, monthData := range monthly {
		for _, storeReport := range monthData.Stores {
			if !seen[storeReport.Store.ID] {
				seen[storeReport.Store.ID] = true
				ids = append(ids, storeReport.Store.ID)
			}
		}
	}
	return ids
}
