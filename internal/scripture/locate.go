// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scripture locates per-chapter scripture resources and extracts
// numbered verses from them.
package scripture

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pdiddy/bible-citations/internal/books"
	"github.com/pdiddy/bible-citations/pkg/types"
)

// ChapterReader reads the raw content of one chapter resource. A missing
// resource is reported with an error wrapping types.ErrChapterNotFound or
// fs.ErrNotExist. Implementations are expected to fail fast.
type ChapterReader interface {
	ReadChapter(ctx context.Context, addr types.ChapterAddress) (string, error)
}

// Locate builds the resource address for a chapter of book in version.
func Locate(book *books.Book, chapter int, version string) (types.ChapterAddress, error) {
	lang, err := books.Language(version)
	if err != nil {
		return types.ChapterAddress{}, err
	}
	return types.ChapterAddress{
		Language:   lang,
		Version:    books.NormalizeVersion(version),
		BookFolder: book.Folder(),
		Chapter:    chapter,
	}, nil
}

// Fetch reads addr through r. Not-found conditions from the reader come
// back as types.ErrChapterNotFound; nothing is retried.
func Fetch(ctx context.Context, r ChapterReader, addr types.ChapterAddress) (string, error) {
	content, err := r.ReadChapter(ctx, addr)
	switch {
	case err == nil:
		return content, nil
	case errors.Is(err, types.ErrChapterNotFound):
		return "", err
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %s", types.ErrChapterNotFound, addr.Path())
	}
	return "", fmt.Errorf("reading %s: %w", addr.Path(), err)
}
