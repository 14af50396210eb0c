package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waldcafe/wald/internal/analysis"
	"github.com/waldcafe/wald/internal/cli"
	"github.com/waldcafe/wald/internal/config"
	"github.com/waldcafe/wald/internal/llm"
	"github.com/waldcafe/wald/internal/merge"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "AI analysis of a month's sales",
		Long: `Send one month's merged sales data to the configured AI provider and
print the returned summary, insights, and recommendations.

Analysis never modifies stored data; failures are reported and nothing
else happens.`,
		RunE: runAnalyze,
	}

	cmd.Flags().String("month", "", "Month label, e.g. 2025年1月 (required)")
	cmd.Flags().String("store", "", "Store ID (default: all stores merged)")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	month, _ := cmd.Flags().GetString("month")
	storeID, _ := cmd.Flags().GetString("store")

	llmConfig, err := config.LoadLLMConfig()
	if err != nil {
		return err
	}
	client, err := llm.NewClient(llmConfig)
	if err != nil {
		return err
	}
	analyzer, err := analysis.NewAnalyzer(client)
	if err != nil {
		return err
	}

	storage, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = storage.Close() }()

	monthly, err := storage.ListMonthlyData(ctx)
	if err != nil {
		return err
	}

	var storeName string
	stores := []string{storeID}
	if storeID == "" {
		stores = allStoreIDs(monthly)
	} else if store, lookupErr := storage.GetStoreByID(ctx, storeID); lookupErr == nil {
		storeName = store.Name
	}

	summary := merge.Summary(monthly, []string{month}, stores)
	insight, err := analyzer.Analyze(ctx, summary, month, storeName)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle("AI分析 " + month))
	fmt.Println(insight.Summary)
	if len(insight.Insights) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("インサイト"))
		for _, item := range insight.Insights {
			fmt.Printf("  %s %s\n", cli.ChartIcon, item)
		}
	}
	if len(insight.Recommendations) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("提案"))
		for _, item := range insight.Recommendations {
			fmt.Printf("  - %s\n", item)
		}
	}
	return nil
}
