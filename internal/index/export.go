// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes the index, or the subset matching opts, to
// indexDir/export.yaml and returns the path.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) (string, error) {
	results, err := s.exportResults(ctx, opts)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.indexDir, "export.yaml")
	data, err := yaml.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the index, or the subset matching opts, to
// indexDir/export.json and returns the path.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) (string, error) {
	results, err := s.exportResults(ctx, opts)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.indexDir, "export.json")
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) exportResults(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	opts.MaxResults = exportLimit
	results, err := s.Retrieve(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	if results == nil {
		results = []QueryResult{}
	}
	return results, nil
}

const tableHeader = "| # | Bible Reference |\n|---|----------------|\n"

// CitationTable renders a markdown table linking each note, numbered from 1.
func CitationTable(notes []string) string {
	var b strings.Builder
	b.WriteString(tableHeader)
	for i, n := range notes {
		fmt.Fprintf(&b, "| %d | [[%s]] |\n", i+1, n)
	}
	return b.String()
}

// PrependTable puts the citation table for notes at the top of doc,
// separated by a blank line. A table already leading doc is replaced, so
// running it again gives the same document. A document without citations
// is returned unchanged.
func PrependTable(doc string, notes []string) string {
	if len(notes) == 0 {
		return doc
	}
	return CitationTable(notes) + "\n" + stripTable(doc)
}

// stripTable removes a leading citation table and the blank line after it.
func stripTable(doc string) string {
	rest, ok := strings.CutPrefix(doc, tableHeader)
	if !ok {
		return doc
	}
	for strings.HasPrefix(rest, "| ") {
		i := strings.IndexByte(rest, '\n')
		if i < 0 {
			return ""
		}
		rest = rest[i+1:]
	}
	return strings.TrimPrefix(rest, "\n")
}
