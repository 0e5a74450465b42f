// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bible-citations/internal/index"
	"github.com/pdiddy/bible-citations/pkg/types"
)

func TestQueryOptsFromFlags(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("query", "", "")
	cmd.Flags().String("version", "", "")
	cmd.Flags().String("book", "", "")
	cmd.Flags().Int("limit", 0, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--version", "kjv", "--book", "Ps", "--limit", "3"}))

	opts := queryOptsFromFlags(cmd, []string{"good", "shepherd"})
	assert.Equal(t, index.QueryOptions{Query: "good shepherd", Version: "kjv", Book: "Ps", MaxResults: 3}, opts)
}

func TestVersionOrDefault(t *testing.T) {
	cfg := types.Config{Citation: types.CitationConfig{DefaultVersion: "ESV"}}

	cmd := &cobra.Command{}
	cmd.Flags().String("version", "", "")
	assert.Equal(t, "ESV", versionOrDefault(cmd, cfg))

	require.NoError(t, cmd.Flags().Parse([]string{"--version", "LSG10"}))
	assert.Equal(t, "LSG10", versionOrDefault(cmd, cfg))
}

func TestTOCInPlaceTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	doc := ">[!bible-meditation-helper-citation] [[John 3.16|John 3:16 | ESV]]\n>**16** For God so loved\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cmd := &cobra.Command{}
	cmd.Flags().Bool("in-place", false, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--in-place"}))
	require.NoError(t, runTOC(cmd, []string{path}))
	require.NoError(t, runTOC(cmd, []string{path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, index.PrependTable(doc, []string{"John 3.16"}), string(data))
}
