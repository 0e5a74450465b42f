// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bible-citations/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Convert plain references in notes as they are saved",
	Long: `Watch monitors a directory and, whenever a .md file is created or saved,
converts its plain references into citation blocks in place. Converted
citations are recorded in the index. Stop with Ctrl-C.

The directory defaults to watch.dir from the config, then the notes dir.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	dir := cfg.Watch.Dir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		dir = cfg.Citation.NotesDir
	}
	if dir == "" {
		return fmt.Errorf("no directory to watch: pass one or set watch.dir")
	}

	ver, _ := cmd.Flags().GetString("version")
	if ver == "" {
		ver = cfg.Watch.Version
	}
	if ver == "" {
		ver = cfg.Citation.DefaultVersion
	}

	engine, logger, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, err := openIndex(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watch.New(engine, ver, store, logger).Run(ctx, dir)
}

func init() {
	watchCmd.Flags().String("version", "", "version for converted references (default from config)")

	rootCmd.AddCommand(watchCmd)
}
