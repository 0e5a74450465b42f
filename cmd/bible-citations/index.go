// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bible-citations/internal/index"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Query and export the citation index (retrieve, export)",
	Long: `Index manages the local SQLite index of every citation resolved by
resolve, rewrite and watch. Use subcommands to query it or export it.`,
}

// --- retrieve subcommand ---

var indexRetrieveCmd = &cobra.Command{
	Use:   "retrieve [query]",
	Short: "Query the citation index with full-text search and filters",
	Long: `Retrieve searches recorded citations using FTS5 full-text search over
titles and verse text, structured filters (--version, --book), or both.
Without a query, results are listed in canonical book order.`,
	RunE: runIndexRetrieve,
}

func runIndexRetrieve(cmd *cobra.Command, args []string) error {
	store, err := openIndex(loadConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if all, _ := cmd.Flags().GetBool("all"); opts.IsEmpty() && !all {
		return fmt.Errorf("query or filter required: provide a search query, --version, --book, or --all")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRetrieveOutput(results, jsonOutput)
}

func formatRetrieveOutput(results []index.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-12s  %-24s  %-7s  %s\n",
		"Rank", "ID", "Title", "Version", "Text")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for i, r := range results {
		title := r.Title
		if len(title) > 24 {
			title = title[:21] + "..."
		}
		var text string
		if len(r.Verses) > 0 {
			text = r.Verses[0].Text
		}
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-12s  %-24s  %-7s  %s\n",
			i+1, r.ID, title, r.Version, text)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- export subcommand ---

var indexExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the citation index to YAML or JSON",
	Long: `Export writes the full index (or a filtered subset) to
<index-dir>/export.yaml or export.json. Supports the same filter flags as
retrieve for partial exports.`,
	RunE: runIndexExport,
}

func runIndexExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openIndex(loadConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Println("Exported to", path)
	return nil
}

// --- shared helpers ---

func queryOptsFromFlags(cmd *cobra.Command, args []string) index.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	ver, _ := cmd.Flags().GetString("version")
	book, _ := cmd.Flags().GetString("book")
	limit, _ := cmd.Flags().GetInt("limit")

	return index.QueryOptions{
		Query:      queryText,
		Version:    ver,
		Book:       book,
		MaxResults: limit,
	}
}

func init() {
	// Retrieve flags.
	indexRetrieveCmd.Flags().String("query", "", "full-text search query")
	indexRetrieveCmd.Flags().String("version", "", "filter by version code")
	indexRetrieveCmd.Flags().String("book", "", "filter by book (any name or abbreviation)")
	indexRetrieveCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	indexRetrieveCmd.Flags().Bool("all", false, "list every citation without filters")
	indexRetrieveCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	indexExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	indexExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	indexExportCmd.Flags().String("version", "", "filter by version code for partial export")
	indexExportCmd.Flags().String("book", "", "filter by book for partial export")

	// Wire subcommands.
	indexCmd.AddCommand(indexRetrieveCmd)
	indexCmd.AddCommand(indexExportCmd)

	rootCmd.AddCommand(indexCmd)
}
