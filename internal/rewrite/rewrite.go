// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rewrite applies batches of span replacements to a document.
package rewrite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/bible-citations/pkg/types"
)

// Apply replaces each span of doc with its Replacement. Spans are sorted
// by Start and copied forward through a single cursor, so offsets always
// refer to the original document. Spans must lie within doc and must not
// overlap; otherwise Apply fails with types.ErrOverlappingSpans and doc
// is not modified.
func Apply(doc string, spans []types.EditSpan) (string, error) {
	if len(spans) == 0 {
		return doc, nil
	}

	sorted := make([]types.EditSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	if err := validate(len(doc), sorted); err != nil {
		return doc, err
	}

	var b strings.Builder
	b.Grow(len(doc))
	cursor := 0
	for _, s := range sorted {
		b.WriteString(doc[cursor:s.Start])
		b.WriteString(s.Replacement)
		cursor = s.End
	}
	b.WriteString(doc[cursor:])
	return b.String(), nil
}

func validate(size int, sorted []types.EditSpan) error {
	prevEnd := 0
	for i, s := range sorted {
		if s.Start < 0 || s.End < s.Start || s.End > size {
			return fmt.Errorf("%w: span %d-%d outside document of %d bytes", types.ErrOverlappingSpans, s.Start, s.End, size)
		}
		if i > 0 && s.Start < prevEnd {
			return fmt.Errorf("%w: span %d-%d starts before %d", types.ErrOverlappingSpans, s.Start, s.End, prevEnd)
		}
		prevEnd = s.End
	}
	return nil
}

// FitBlock adapts a newline-terminated block so it can replace
// doc[start:end] while keeping the surrounding text intact. The block is
// moved onto its own line when the span starts mid-line, and its final
// newline is dropped when the span is already followed by a line break or
// by the end of the document. In a document with CRLF line endings the
// block's lines end with CRLF too.
func FitBlock(doc string, start, end int, block string) string {
	eol := "\n"
	if strings.Contains(doc, "\r\n") {
		eol = "\r\n"
		block = strings.ReplaceAll(block, "\n", eol)
	}
	if start > 0 && doc[start-1] != '\n' {
		block = eol + block
	}
	if end >= len(doc) || doc[end] == '\n' || doc[end] == '\r' {
		if end > start && doc[end-1] == '\n' {
			// The span swallowed its own line break; keep the block's.
			return block
		}
		block = strings.TrimSuffix(block, eol)
	}
	return block
}
