package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/waldcafe/wald/internal/cli"
	"github.com/waldcafe/wald/internal/common"
	"github.com/waldcafe/wald/internal/config"
	"github.com/waldcafe/wald/internal/engine"
	"github.com/waldcafe/wald/internal/ingest"
	"github.com/waldcafe/wald/internal/llm"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import POS register CSV exports",
		Long: `Import one or more CSV files exported by the POS registers.

Each file's format, reporting month, and store are detected from its
name and contents, then its data is merged into the stored monthly
aggregate. Files are processed strictly in order; a broken file is
reported and skipped without touching the rest of the batch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("store", "", "Pin every file to this store ID instead of resolving from filenames")
	cmd.Flags().Bool("dry-run", false, "Parse and report without saving")

	_ = viper.BindPFlag("import.store", cmd.Flags().Lookup("store"))
	_ = viper.BindPFlag("import.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	paths, err := expandGlobs(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files matched")
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	eng := engine.New(store, buildClassifier())

	opts := engine.Options{
		StoreID: viper.GetString("import.store"),
		DryRun:  viper.GetBool("import.dry_run"),
	}
	if opts.DryRun {
		fmt.Println(cli.FormatWarning("Dry run mode - not saving to database"))
	}

	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing files..."),
	)

	var failures int
	results := make([]engine.FileResult, 0, len(paths))
	for _, path := range paths {
		result := eng.ProcessFile(ctx, path, opts)
		results = append(results, result)
		if result.Err != nil {
			failures++
		}
		_ = bar.Add(1)
	}
	fmt.Println()

	for _, result := range results {
		if result.Err != nil {
			fmt.Println(cli.FormatError(fmt.Sprintf("%s: %s", result.Filename, common.UserMessage(result.Err))))
			continue
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s → %s / %s (%s)",
			result.Filename, result.Month, result.StoreID, result.Format)))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed", failures, len(paths))
	}
	fmt.Println(cli.FormatSuccess("Import complete!"))
	return nil
}

// expandGlobs resolves glob patterns and keeps explicit paths as-is,
// in a stable order.
func expandGlobs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			paths = append(paths, arg)
			continue
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

// buildClassifier wires the AI format fallback when an API key is
// configured. Without one the detector just stops at header checks.
func buildClassifier() ingest.Classifier {
	llmConfig, err := config.LoadLLMConfig()
	if err != nil {
		slog.Debug("AI classifier disabled", "reason", err)
		return nil
	}

	client, err := llm.NewClient(llmConfig)
	if err != nil {
		slog.Warn("failed to create LLM client, AI classifier disabled", "error", err)
		return nil
	}

	return llm.NewFormatClassifier(client, slog.Default())
}
