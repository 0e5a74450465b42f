// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"regexp"
	"strings"

	"github.com/pdiddy/bible-citations/internal/render"
)

// markerLine matches the first line of a rendered citation block and
// captures the note name and the link label.
var markerLine = regexp.MustCompile(`^[ \t]*>[ \t]*` + regexp.QuoteMeta(render.CalloutTag) + `[ \t]*\[\[([^\]|]*)\|([^\]]*)\]\]`)

// labelSeparator splits the link label into title and version.
const labelSeparator = " | "

// Citations finds rendered citation blocks: a marker line carrying the
// citation tag and a [[note|label]] link, followed by one or more quoted
// lines. A block's span runs from the start of its marker line through
// the terminator of its last quoted line.
func Citations(doc string) []Match {
	lines := splitLines(doc)
	var matches []Match

	for i := 0; i < len(lines); i++ {
		m := markerLine.FindStringSubmatch(lines[i].text)
		if m == nil {
			continue
		}

		last := i
		for j := i + 1; j < len(lines); j++ {
			if !isQuote(lines[j].text) || markerLine.MatchString(lines[j].text) {
				break
			}
			last = j
		}
		if last == i {
			continue
		}

		title, version := splitLabel(m[2])
		matches = append(matches, Match{
			Start:     lines[i].start,
			End:       lines[last].next,
			Reference: title,
			Version:   version,
			Note:      strings.TrimSpace(m[1]),
		})
		i = last
	}
	return matches
}

// splitLabel splits "Genesis 3:14-15 | ESV" on the last separator.
func splitLabel(label string) (title, version string) {
	idx := strings.LastIndex(label, labelSeparator)
	if idx < 0 {
		return strings.TrimSpace(label), ""
	}
	return strings.TrimSpace(label[:idx]), strings.TrimSpace(label[idx+len(labelSeparator):])
}

// CitationLinks returns the backing note of every citation block in doc,
// in document order, without duplicates.
func CitationLinks(doc string) []string {
	seen := make(map[string]bool)
	var notes []string
	for _, m := range Citations(doc) {
		if m.Note == "" || seen[m.Note] {
			continue
		}
		seen[m.Note] = true
		notes = append(notes, m.Note)
	}
	return notes
}
