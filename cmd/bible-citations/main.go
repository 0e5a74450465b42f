// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bible-citations CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/bible-citations/internal/citation"
	"github.com/pdiddy/bible-citations/internal/index"
	"github.com/pdiddy/bible-citations/internal/logging"
	"github.com/pdiddy/bible-citations/internal/vault"
	"github.com/pdiddy/bible-citations/pkg/types"
)

const appName = "bible-citations"

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the bible-citations CLI.
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Resolve Bible references into citation blocks for markdown notes",
	Long: `bible-citations turns references such as "gen3:14-15||ESV" into quoted
citation blocks built from local chapter files, and rewrites markdown notes
so plain references ("John 3:16") become citation blocks.

Chapter files live under <data-dir>/Bible/<lang>/<VERSION>/by_chapter/.
Each citation gets an empty backing note in <notes-dir>, and every resolved
citation is recorded in a searchable index under <index-dir>.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./bible-citations.yaml or ~/.config/bible-citations/config.yaml)")
	pf.String("data-dir", "data", "directory containing Bible/<lang>/<VERSION>/by_chapter/")
	pf.String("notes-dir", "notes", "directory where backing notes are created")
	pf.String("index-dir", "index", "directory containing citations.db and exports")
	pf.String("log-level", "normal", "diagnostic logging: none, normal or debug")

	viper.BindPFlag("citation.data_dir", pf.Lookup("data-dir"))
	viper.BindPFlag("citation.notes_dir", pf.Lookup("notes-dir"))
	viper.BindPFlag("index.index_dir", pf.Lookup("index-dir"))
	viper.BindPFlag("logging.level", pf.Lookup("log-level"))

	viper.SetDefault("citation.default_version", "ESV")
	viper.SetDefault("index.max_results", 20)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(appName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", appName))
		}
	}

	viper.SetEnvPrefix("BIBLE_CITATIONS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the effective configuration from flags, the
// environment and the config file, in that order of precedence.
func loadConfig() types.Config {
	return types.Config{
		Citation: types.CitationConfig{
			ResourceConfig:   types.ResourceConfig{DataDir: viper.GetString("citation.data_dir")},
			NotesConfig:      types.NotesConfig{NotesDir: viper.GetString("citation.notes_dir")},
			DefaultVersion:   viper.GetString("citation.default_version"),
			FuzzyMaxDistance: viper.GetInt("citation.fuzzy_max_distance"),
		},
		Index: types.IndexConfig{
			IndexDir:   viper.GetString("index.index_dir"),
			MaxResults: viper.GetInt("index.max_results"),
		},
		Logging: types.LoggingConfig{Level: types.LogLevel(viper.GetString("logging.level"))},
		Watch: types.WatchConfig{
			Dir:     viper.GetString("watch.dir"),
			Version: viper.GetString("watch.version"),
		},
	}
}

// buildEngine wires the filesystem vault and logger into a citation engine.
func buildEngine(cfg types.Config) (*citation.Engine, *zap.Logger, error) {
	logger, err := logging.New(cfg.Logging, os.Stderr, appName)
	if err != nil {
		return nil, nil, err
	}
	opts := []citation.Option{citation.WithLogger(logger)}
	if cfg.Citation.FuzzyMaxDistance > 0 {
		opts = append(opts, citation.WithFuzzyMaxDistance(cfg.Citation.FuzzyMaxDistance))
	}
	engine := citation.New(
		vault.NewChapters(cfg.Citation.ResourceConfig),
		vault.NewNotes(cfg.Citation.NotesConfig),
		opts...,
	)
	return engine, logger, nil
}

// versionOrDefault returns the --version flag of cmd, or the configured
// default when the flag is unset.
func versionOrDefault(cmd *cobra.Command, cfg types.Config) string {
	if v, _ := cmd.Flags().GetString("version"); v != "" {
		return v
	}
	return cfg.Citation.DefaultVersion
}

func openIndex(cfg types.Config) (*index.Store, error) {
	return index.NewStore(cfg.Index)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
