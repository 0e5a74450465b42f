// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bible-citations/internal/index"
	"github.com/pdiddy/bible-citations/internal/scan"
)

var tocCmd = &cobra.Command{
	Use:   "toc <file>",
	Short: "Prepend a table linking every citation in a document",
	Long: `Toc collects the backing note of every citation block in a document and
prepends a "| # | Bible Reference |" table of links. Each note appears
once, in order of first use.`,
	Args: cobra.ExactArgs(1),
	RunE: runTOC,
}

func runTOC(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	notes := scan.CitationLinks(string(data))
	out := index.PrependTable(string(data), notes)

	if inPlace, _ := cmd.Flags().GetBool("in-place"); inPlace {
		if len(notes) == 0 {
			fmt.Fprintln(os.Stderr, "no citations found")
			return nil
		}
		return os.WriteFile(path, []byte(out), info.Mode().Perm())
	}
	fmt.Fprint(os.Stdout, out)
	return nil
}

func init() {
	tocCmd.Flags().Bool("in-place", false, "write the result back to the file")

	rootCmd.AddCommand(tocCmd)
}
