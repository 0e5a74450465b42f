// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scripture

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/bible-citations/pkg/types"
)

// verseMarker matches "<n>." at the start of a line.
var verseMarker = regexp.MustCompile(`(?m)^[ \t]*(\d+)\.`)

// ParseChapter splits chapter content into verse records. The first line
// is the chapter header and is discarded. A verse runs from its marker to
// the next marker, so its text may span several physical lines; those are
// joined with single spaces.
func ParseChapter(content string) []types.VerseRecord {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	_, body, ok := strings.Cut(content, "\n")
	if !ok {
		return nil
	}

	locs := verseMarker.FindAllStringSubmatchIndex(body, -1)
	verses := make([]types.VerseRecord, 0, len(locs))
	for i, loc := range locs {
		n, err := strconv.Atoi(body[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		end := len(body)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		verses = append(verses, types.VerseRecord{
			Number: n,
			Text:   joinLines(body[loc[1]:end]),
		})
	}
	return verses
}

func joinLines(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// Extract returns the verses of content selected by req, ascending by
// number:
//
//   - RangeSingle keeps exactly VerseStart.
//   - RangeClosed keeps VerseStart through VerseEnd, both inclusive.
//   - RangeToEnd keeps VerseStart through the last verse present.
//
// An empty selection fails with types.ErrVerseNotFound.
func Extract(content string, req types.ReferenceRequest) ([]types.VerseRecord, error) {
	var selected []types.VerseRecord
	for _, v := range ParseChapter(content) {
		if selects(req, v.Number) {
			selected = append(selected, v)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: %s %d:%d", types.ErrVerseNotFound, req.Book, req.Chapter, req.VerseStart)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Number < selected[j].Number
	})
	return selected, nil
}

func selects(req types.ReferenceRequest, n int) bool {
	switch req.Range {
	case types.RangeClosed:
		return n >= req.VerseStart && n <= req.VerseEnd
	case types.RangeToEnd:
		return n >= req.VerseStart
	}
	return n == req.VerseStart
}
