// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bible-citations/internal/citation"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <file>",
	Short: "Convert references in a markdown document into citation blocks",
	Long: `Rewrite scans a markdown document and replaces references with citation
blocks in the requested version.

  --mode plain    converts plain references such as "John 3:16" or "Ps 23"
  --mode version  re-renders existing citation blocks in another version

References that cannot be resolved are left untouched and reported. The
result is printed to stdout, or written back with --in-place.`,
	Args: cobra.ExactArgs(1),
	RunE: runRewrite,
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := citation.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	engine, logger, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()
	result := engine.RewriteDocument(ctx, string(data), mode, versionOrDefault(cmd, cfg))

	inPlace, _ := cmd.Flags().GetBool("in-place")
	if inPlace {
		if result.Converted() > 0 {
			if err := os.WriteFile(path, []byte(result.Document), info.Mode().Perm()); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
		}
	} else {
		fmt.Fprint(os.Stdout, result.Document)
	}

	for _, f := range result.Failures {
		fmt.Fprintf(os.Stderr, "failed  %s: %v\n", f.Span.Reference, f.Err)
	}

	if skip, _ := cmd.Flags().GetBool("no-index"); !skip && result.Converted() > 0 {
		store, err := openIndex(cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		if _, err := store.RecordAll(ctx, result.Citations, os.Stderr); err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d reference(s) not converted", len(result.Failures))
	}
	return nil
}

func init() {
	rewriteCmd.Flags().String("mode", "plain", "plain (convert plain references) or version (change citation version)")
	rewriteCmd.Flags().String("version", "", "version code, e.g. ESV, KJV, LSG10 (default from config)")
	rewriteCmd.Flags().Bool("in-place", false, "write the result back to the file")
	rewriteCmd.Flags().Bool("no-index", false, "do not record converted citations in the index")

	rootCmd.AddCommand(rewriteCmd)
}
