// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <reference>",
	Short: "Resolve one reference and print its citation block",
	Long: `Resolve parses a reference such as "gen3:14-15||ESV" or "ps23:1-||KJV",
reads the chapter, creates the backing note if needed and prints the
rendered citation block. The citation is recorded in the index unless
--no-index is given.

Spaces in the reference are ignored, so "Gen 3:14-15||ESV" also works.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	engine, logger, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()
	rc, err := engine.ResolveCitation(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, rc.BlockText)

	if skip, _ := cmd.Flags().GetBool("no-index"); skip {
		return nil
	}
	store, err := openIndex(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.Record(ctx, rc)
	return err
}

func init() {
	resolveCmd.Flags().Bool("no-index", false, "do not record the citation in the index")

	rootCmd.AddCommand(resolveCmd)
}
