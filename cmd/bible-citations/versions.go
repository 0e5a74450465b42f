// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bible-citations/internal/books"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List supported Bible versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		codes := books.Versions()
		if menu, _ := cmd.Flags().GetBool("menu"); menu {
			codes = books.MenuVersions()
		}
		fmt.Fprintf(os.Stdout, "%-8s  %s\n", "Version", "Language")
		for _, code := range codes {
			lang, err := books.Language(code)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%-8s  %s\n", code, lang)
		}
		return nil
	},
}

func init() {
	versionsCmd.Flags().Bool("menu", false, "list only the short menu of common versions")

	rootCmd.AddCommand(versionsCmd)
}
