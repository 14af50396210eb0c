package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/waldcafe/wald/internal/cli"
	"github.com/waldcafe/wald/internal/model"
)

func storesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stores",
		Short: "Manage the store directory",
	}

	cmd.AddCommand(storesAddCmd())
	cmd.AddCommand(storesListCmd())
	cmd.AddCommand(storesDeleteCmd())

	return cmd
}

func storesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <code>",
		Short: "Register a store",
		Long: `Register a store with its display name and filename code.

The code is the token that associates uploaded CSV filenames with this
store, e.g. code EBISU matches "EBISU_取引CPT.csv".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			storage, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = storage.Close() }()

			id, _ := cmd.Flags().GetString("id")
			if id == "" {
				id = uuid.NewString()
			}

			store := &model.Store{
				ID:   id,
				Name: args[0],
				Code: strings.ToUpper(args[1]),
			}
			if err := storage.SaveStore(ctx, store); err != nil {
				return fmt.Errorf("failed to save store: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("registered %s (code %s, id %s)", store.Name, store.Code, store.ID)))
			return nil
		},
	}

	cmd.Flags().String("id", "", "Explicit store ID (default: random UUID)")
	return cmd
}

func storesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered stores",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			storage, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = storage.Close() }()

			stores, err := storage.ListStores(ctx)
			if err != nil {
				return err
			}
			if len(stores) == 0 {
				fmt.Println(cli.FormatWarning("no stores registered"))
				return nil
			}

			fmt.Println(cli.FormatTitle("店舗一覧"))
			for _, store := range stores {
				fmt.Printf("  %s  %s  (%s)\n", store.Code, store.Name, store.ID)
			}
			return nil
		},
	}
}

func storesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a store and all its reports",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			storage, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = storage.Close() }()

			if err := storage.DeleteStore(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("store deleted"))
			return nil
		},
	}
}
