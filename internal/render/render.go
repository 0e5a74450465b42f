// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns resolved verses into citation titles, backing
// notes and quote-block text.
package render

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/bible-citations/internal/books"
	"github.com/pdiddy/bible-citations/pkg/types"
)

// CalloutTag marks a rendered citation block.
const CalloutTag = "[!bible-meditation-helper-citation]"

// NoteStore gets or creates a backing note by sanitized name. Repeated
// calls with the same name must return the same note and never create a
// second one.
type NoteStore interface {
	EnsureNote(ctx context.Context, name string) (types.NoteHandle, error)
}

// Renderer renders citations and ensures their backing notes exist.
type Renderer struct {
	notes NoteStore
}

// New returns a Renderer that creates backing notes in notes.
func New(notes NoteStore) *Renderer {
	return &Renderer{notes: notes}
}

// Render builds the citation for verses selected from book by req. The
// backing note is requested before the block is assembled, so a store
// failure leaves nothing half rendered.
func (r *Renderer) Render(ctx context.Context, book *books.Book, req types.ReferenceRequest, verses []types.VerseRecord) (*types.RenderedCitation, error) {
	if len(verses) == 0 {
		return nil, fmt.Errorf("%w: nothing to render for %s", types.ErrVerseNotFound, req)
	}

	title := Title(book, req, verses)
	name := SanitizeNoteName(title)

	note, err := r.notes.EnsureNote(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("ensuring note %q: %w", name, err)
	}
	if note.Name == "" {
		note.Name = name
	}

	version := books.NormalizeVersion(req.Version)
	return &types.RenderedCitation{
		Book:         book.ID,
		DisplayTitle: title,
		Note:         note,
		Version:      version,
		Verses:       verses,
		BlockText:    Block(note.Name, title, version, verses),
	}, nil
}

// Title returns "<Book> <chapter>:<start>" for a single verse and
// "<Book> <chapter>:<start>-<end>" otherwise. A to-end range uses the last
// verse actually selected as its end, and so does a closed range that
// runs past the end of the chapter.
func Title(book *books.Book, req types.ReferenceRequest, verses []types.VerseRecord) string {
	start, end := req.VerseStart, req.VerseStart
	last := 0
	if len(verses) > 0 {
		last = verses[len(verses)-1].Number
	}
	switch req.Range {
	case types.RangeClosed:
		end = req.VerseEnd
		if last >= start && last < end {
			end = last
		}
	case types.RangeToEnd:
		if last > 0 {
			end = last
		}
	}

	title := book.DisplayName() + " " + strconv.Itoa(req.Chapter) + ":" + strconv.Itoa(start)
	if end != start {
		title += "-" + strconv.Itoa(end)
	}
	return title
}

var noteNameReplacer = strings.NewReplacer(
	"/", "", "*", "", "?", "", `"`, "", "<", "", ">", "", "|", "",
	":", ".",
)

// SanitizeNoteName makes a title safe for use as a note file name.
func SanitizeNoteName(title string) string {
	return noteNameReplacer.Replace(title)
}

// Block formats the citation block: a marker line linking to the backing
// note, then one quoted line per verse. Every line ends with "\n".
func Block(noteName, title, version string, verses []types.VerseRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, ">%s [[%s|%s | %s]]\n", CalloutTag, noteName, title, version)
	for _, v := range verses {
		fmt.Fprintf(&b, ">**%d** %s\n", v.Number, v.Text)
	}
	return b.String()
}
