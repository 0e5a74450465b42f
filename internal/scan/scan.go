// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan finds citation blocks and plain-text references in a
// markdown document.
//
// The document is treated as flat lines plus two constructs: quote-style
// citation blocks and [[wiki links]]. Both scanners return matches with
// byte offsets into the scanned document, ordered by Start and never
// overlapping.
package scan

import (
	"strings"

	"github.com/pdiddy/bible-citations/pkg/types"
)

// Match is one reference found in a document.
type Match struct {
	// Start and End are byte offsets of the matched text, End exclusive.
	Start int
	End   int

	// Reference is the reference without version, e.g. "Genesis 3:14-15".
	Reference string

	// Version is the version recorded in an existing citation block.
	// It is empty for plain-text matches.
	Version string

	// Note is the backing note linked from an existing citation block.
	Note string
}

// Span converts m into an edit span with no replacement yet.
func (m Match) Span() types.EditSpan {
	return types.EditSpan{Start: m.Start, End: m.End, Reference: m.Reference}
}

// line is one physical line of a document without its terminator.
type line struct {
	start int
	text  string
	// next is the offset just past the line terminator.
	next int
}

func splitLines(doc string) []line {
	var lines []line
	for pos := 0; pos < len(doc); {
		end := strings.IndexByte(doc[pos:], '\n')
		if end < 0 {
			lines = append(lines, line{start: pos, text: doc[pos:], next: len(doc)})
			break
		}
		lines = append(lines, line{start: pos, text: doc[pos : pos+end], next: pos + end + 1})
		pos += end + 1
	}
	return lines
}

func isQuote(text string) bool {
	return strings.HasPrefix(strings.TrimLeft(text, " \t"), ">")
}

// isListItem reports whether text is a markdown bullet or numbered item.
func isListItem(text string) bool {
	t := strings.TrimLeft(text, " \t")
	if len(t) >= 2 && strings.ContainsRune("-*+", rune(t[0])) && (t[1] == ' ' || t[1] == '\t') {
		return true
	}
	i := 0
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	return i > 0 && i+1 < len(t) && (t[i] == '.' || t[i] == ')') && t[i+1] == ' '
}

// isHeading reports whether text is an ATX heading: one to six '#'
// followed by a space or the end of the line. "#tag" is not a heading.
func isHeading(text string) bool {
	t := strings.TrimLeft(text, " \t")
	n := 0
	for n < len(t) && t[n] == '#' {
		n++
	}
	return n >= 1 && n <= 6 && (n == len(t) || t[n] == ' ' || t[n] == '\t')
}
