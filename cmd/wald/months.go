package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waldcafe/wald/internal/cli"
)

func monthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List stored months",
		Long:  `List every stored month in chronological order with its stores and file counts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			fmt.Println(cli.FormatTitle("取込済みの月"))
			for _, monthData := range monthly {
				fmt.Printf("%s  (%dファイル, 更新 %s)\n",
					cli.BoldStyle.Render(monthData.Month),
					monthData.TotalFileCount,
					monthData.LastUpdated.Local().Format("2006-01-02 15:04"))
				for _, storeReport := range monthData.Stores {
					fmt.Printf("  %s  %dファイル\n", storeReport.Store.Name, storeReport.FileCount)
				}
			}
			return nil
		},
	}
}
