package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/waldcafe/wald/internal/cli"
)

func deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete one store's report for a month",
		Long: `Delete the stored aggregate for one (month, store) pair, including
its upload history. Other stores and months are untouched.`,
		RunE: runDelete,
	}

	cmd.Flags().String("month", "", "Month label, e.g. 2025年1月 (required)")
	cmd.Flags().String("store", "", "Store ID (required)")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("store")

	return cmd
}

func runDelete(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	month, _ := cmd.Flags().GetString("month")
	storeID, _ := cmd.Flags().GetString("store")

	storage, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = storage.Close() }()

	if err := storage.DeleteStoreReport(ctx, month, storeID); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s の %s のレポートを削除しました", month, storeID)))
	return nil
}

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored reports",
		Long: `Delete every stored monthly aggregate and its upload history.

The store directory is preserved. This is a destructive operation and
asks for confirmation unless --force is given.`,
		RunE: runReset,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runReset(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		fmt.Print("全ての月次レポートを削除します。よろしいですか？ [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}
		if answer := strings.ToLower(strings.TrimSpace(response)); answer != "y" && answer != "yes" {
			fmt.Println("中止しました")
			return nil
		}
	}

	storage, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = storage.Close() }()

	if err := storage.DeleteAllReports(ctx); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("全てのレポートを削除しました"))
	return nil
}
