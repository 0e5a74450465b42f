// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vault provides filesystem-backed chapter resources and backing
// notes for the citation engine.
package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pdiddy/bible-citations/pkg/types"
)

const noteExt = ".md"

// Chapters reads chapter resources from a data directory laid out as
// Bible/<lang>/<VERSION>/by_chapter/<NN_Book>/Chapter_<CC>.md.
type Chapters struct {
	dataDir string
}

// NewChapters returns a reader rooted at cfg.DataDir.
func NewChapters(cfg types.ResourceConfig) *Chapters {
	return &Chapters{dataDir: cfg.DataDir}
}

// ReadChapter returns the content of the resource at addr. A missing file
// fails with types.ErrChapterNotFound.
func (c *Chapters) ReadChapter(ctx context.Context, addr types.ChapterAddress) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(c.dataDir, filepath.FromSlash(addr.Path()))
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", types.ErrChapterNotFound, path)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// Notes creates backing notes as empty markdown files in a directory.
type Notes struct {
	dir string
}

// NewNotes returns a note store writing to cfg.NotesDir.
func NewNotes(cfg types.NotesConfig) *Notes {
	return &Notes{dir: cfg.NotesDir}
}

// EnsureNote creates <dir>/<name>.md if it does not exist. An existing
// note is returned as is and never truncated.
func (n *Notes) EnsureNote(ctx context.Context, name string) (types.NoteHandle, error) {
	if err := ctx.Err(); err != nil {
		return types.NoteHandle{}, err
	}
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return types.NoteHandle{}, fmt.Errorf("invalid note name %q", name)
	}

	if err := os.MkdirAll(n.dir, 0o755); err != nil {
		return types.NoteHandle{}, fmt.Errorf("creating notes directory: %w", err)
	}

	path := filepath.Join(n.dir, name+noteExt)
	handle := types.NoteHandle{Name: name, Path: path}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return handle, nil
		}
		return types.NoteHandle{}, fmt.Errorf("creating note %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return types.NoteHandle{}, fmt.Errorf("closing note %s: %w", path, err)
	}
	return handle, nil
}
