// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bible-citations/internal/protect"
)

const placeholdersFile = "placeholders.yaml"

var chunkCmd = &cobra.Command{
	Use:   "chunk <file>",
	Short: "Split a document into protected chunks for an external transform",
	Long: `Chunk replaces citation blocks and wiki links with placeholders, splits the
protected text on sentence boundaries into chunks that fit a token budget
and writes them to <out-dir>/chunk_<n>.md with placeholders.yaml.

After the chunks are transformed (for example, translated), run restore on
the same directory to join them and put the protected text back.`,
	Args: cobra.ExactArgs(1),
	RunE: runChunk,
}

func runChunk(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out-dir")
	maxTokens, _ := cmd.Flags().GetInt("max-tokens")
	margin, _ := cmd.Flags().GetInt("safety-margin")

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	protected, p := protect.Protect(string(data))
	chunks := protect.ChunkByTokens(protected, maxTokens, margin)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	for i, c := range chunks {
		path := filepath.Join(outDir, fmt.Sprintf("chunk_%d.md", i+1))
		if err := os.WriteFile(path, []byte(c), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(os.Stdout, "wrote   %s (~%d tokens)\n", path, protect.EstimateTokens(c))
	}

	state, err := yaml.Marshal(p.Placeholders())
	if err != nil {
		return fmt.Errorf("marshaling placeholders: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, placeholdersFile), state, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%d chunks, %d protected\n", len(chunks), p.Len())
	return nil
}

var restoreCmd = &cobra.Command{
	Use:   "restore <dir>",
	Short: "Join transformed chunks and restore protected text",
	Long: `Restore reads chunk_<n>.md files from a directory written by chunk, joins
them in order and replaces every placeholder with the original citation
block or wiki link. Missing placeholders are reported as an error after the
rest are restored.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func runRestore(cmd *cobra.Command, args []string) error {
	dir := args[0]
	state, err := os.ReadFile(filepath.Join(dir, placeholdersFile))
	if err != nil {
		return err
	}
	var ph protect.Placeholders
	if err := yaml.Unmarshal(state, &ph); err != nil {
		return fmt.Errorf("parsing %s: %w", placeholdersFile, err)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "chunk_*.md"))
	if err != nil {
		return err
	}
	sort.Slice(paths, func(i, j int) bool { return natural.Less(paths[i], paths[j]) })

	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		parts = append(parts, string(data))
	}

	out, err := ph.Protector().Restore(strings.Join(parts, "\n\n"))
	fmt.Fprint(os.Stdout, out)
	return err
}

func init() {
	chunkCmd.Flags().String("out-dir", "chunks", "directory for chunk files and placeholders.yaml")
	chunkCmd.Flags().Int("max-tokens", protect.DefaultMaxTokens, "token budget per chunk")
	chunkCmd.Flags().Int("safety-margin", protect.DefaultSafetyMargin, "tokens held back from each chunk")

	rootCmd.AddCommand(chunkCmd)
	rootCmd.AddCommand(restoreCmd)
}
