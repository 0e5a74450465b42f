// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"path"
	"strconv"
)

// RangeKind describes how the upper verse bound of a reference is chosen.
type RangeKind int

const (
	// RangeSingle selects exactly VerseStart ("gen3:14").
	RangeSingle RangeKind = iota

	// RangeClosed selects VerseStart through VerseEnd inclusive ("gen3:14-15").
	RangeClosed

	// RangeToEnd selects VerseStart through the last verse of the chapter
	// ("ps23:1-").
	RangeToEnd
)

func (k RangeKind) String() string {
	switch k {
	case RangeSingle:
		return "single"
	case RangeClosed:
		return "closed"
	case RangeToEnd:
		return "to-end"
	}
	return "RangeKind(" + strconv.Itoa(int(k)) + ")"
}

// ReferenceRequest is one parsed "book chapter:verse(-verse) || version"
// string. Book holds the normalized token as typed (lowercase, no spaces),
// not yet resolved to a canonical book.
type ReferenceRequest struct {
	Book       string    `json:"book" yaml:"book"`
	Chapter    int       `json:"chapter" yaml:"chapter"`
	VerseStart int       `json:"verse_start" yaml:"verse_start"`
	VerseEnd   int       `json:"verse_end,omitempty" yaml:"verse_end,omitempty"`
	Range      RangeKind `json:"range" yaml:"range"`
	Version    string    `json:"version" yaml:"version"`
}

// String formats the request back into the compact input form, which
// parses to an equal request.
func (r ReferenceRequest) String() string {
	verses := strconv.Itoa(r.VerseStart)
	switch r.Range {
	case RangeClosed:
		verses += "-" + strconv.Itoa(r.VerseEnd)
	case RangeToEnd:
		verses += "-"
	}
	return fmt.Sprintf("%s%d:%s||%s", r.Book, r.Chapter, verses, r.Version)
}

// ChapterAddress identifies one per-chapter scripture resource.
type ChapterAddress struct {
	Language   string `json:"language" yaml:"language"`
	Version    string `json:"version" yaml:"version"`
	BookFolder string `json:"book_folder" yaml:"book_folder"`
	Chapter    int    `json:"chapter" yaml:"chapter"`
}

// Path returns the slash-separated location of the resource relative to
// the data directory: Bible/<lang>/<VERSION>/by_chapter/<NN_Book>/Chapter_<CC>.md.
func (a ChapterAddress) Path() string {
	return path.Join("Bible", a.Language, a.Version, "by_chapter", a.BookFolder,
		fmt.Sprintf("Chapter_%02d.md", a.Chapter))
}

// VerseRecord is one numbered verse taken from a chapter resource.
type VerseRecord struct {
	Number int    `json:"number" yaml:"number"`
	Text   string `json:"text" yaml:"text"`
}

// NoteHandle identifies a backing note in the host note store.
type NoteHandle struct {
	// Name is the sanitized note name without extension.
	Name string `json:"name" yaml:"name"`

	// Path is where the store keeps the note. It may be empty for stores
	// that are not file backed.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// RenderedCitation is a fully resolved reference ready to insert into a
// document.
type RenderedCitation struct {
	// Book is the canonical book ID, e.g. "I_John".
	Book         string        `json:"book" yaml:"book"`
	DisplayTitle string        `json:"display_title" yaml:"display_title"`
	Note         NoteHandle    `json:"note" yaml:"note"`
	Version      string        `json:"version" yaml:"version"`
	Verses       []VerseRecord `json:"verses" yaml:"verses"`
	BlockText    string        `json:"block_text" yaml:"block_text"`
}

// EditSpan is one replacement computed over a document. Start and End are
// byte offsets into the scanned document, End exclusive.
type EditSpan struct {
	Start       int    `json:"start" yaml:"start"`
	End         int    `json:"end" yaml:"end"`
	Reference   string `json:"reference" yaml:"reference"`
	Replacement string `json:"replacement,omitempty" yaml:"replacement,omitempty"`
}

// SpanFailure records a span that could not be resolved during a batch
// rewrite. The document text under Span is left unchanged.
type SpanFailure struct {
	Span EditSpan `json:"span" yaml:"span"`
	Err  error    `json:"-" yaml:"-"`
}

func (f SpanFailure) Error() string {
	return fmt.Sprintf("%q at %d-%d: %v", f.Span.Reference, f.Span.Start, f.Span.End, f.Err)
}

func (f SpanFailure) Unwrap() error { return f.Err }
