// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation resolves Bible references into rendered citation
// blocks and rewrites whole documents.
//
// The Engine owns no host state. Chapter text and backing notes come
// through the scripture.ChapterReader and render.NoteStore it is built
// with, so tests and other hosts can supply their own.
package citation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/bible-citations/internal/books"
	"github.com/pdiddy/bible-citations/internal/reference"
	"github.com/pdiddy/bible-citations/internal/render"
	"github.com/pdiddy/bible-citations/internal/scripture"
	"github.com/pdiddy/bible-citations/pkg/types"
)

// Engine resolves references against injected collaborators. It is not
// safe for concurrent use: backing-note creation is check-then-create.
type Engine struct {
	chapters scripture.ChapterReader
	renderer *render.Renderer
	resolver books.Resolver
	logger   *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostic logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithFuzzyMaxDistance caps the edit distance accepted for misspelled
// book names.
func WithFuzzyMaxDistance(d int) Option {
	return func(e *Engine) { e.resolver.MaxDistance = d }
}

// New returns an Engine reading chapters from chapters and creating
// backing notes in notes.
func New(chapters scripture.ChapterReader, notes render.NoteStore, opts ...Option) *Engine {
	e := &Engine{
		chapters: chapters,
		renderer: render.New(notes),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ResolveCitation parses raw ("gen3:14-15||ESV"), resolves the book,
// reads the chapter and renders the citation. The first failure is
// returned unchanged in kind: types.ErrMissingVersion,
// types.ErrMalformedReference, types.ErrUnknownBook,
// types.ErrUnsupportedVersion, types.ErrChapterNotFound or
// types.ErrVerseNotFound.
func (e *Engine) ResolveCitation(ctx context.Context, raw string) (*types.RenderedCitation, error) {
	req, err := reference.Parse(raw)
	if err != nil {
		return nil, err
	}
	return e.resolve(ctx, req)
}

func (e *Engine) resolve(ctx context.Context, req types.ReferenceRequest) (*types.RenderedCitation, error) {
	book, err := e.resolver.Resolve(req.Book)
	if err != nil {
		return nil, err
	}

	addr, err := scripture.Locate(book, req.Chapter, req.Version)
	if err != nil {
		return nil, err
	}

	content, err := scripture.Fetch(ctx, e.chapters, addr)
	if err != nil {
		return nil, err
	}

	verses, err := scripture.Extract(content, req)
	if err != nil {
		return nil, fmt.Errorf("%s %d: %w", book.DisplayName(), req.Chapter, err)
	}

	rc, err := e.renderer.Render(ctx, book, req, verses)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("resolved citation",
		zap.String("reference", req.String()),
		zap.String("title", rc.DisplayTitle),
		zap.String("path", addr.Path()),
		zap.Int("verses", len(rc.Verses)),
	)
	return rc, nil
}
