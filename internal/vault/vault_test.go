// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vault

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bible-citations/pkg/types"
)

func writeChapter(t *testing.T, dataDir string, addr types.ChapterAddress, content string) {
	t.Helper()
	path := filepath.Join(dataDir, filepath.FromSlash(addr.Path()))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// --- chapters ---

func TestReadChapter(t *testing.T) {
	dataDir := t.TempDir()
	addr := types.ChapterAddress{Language: "en", Version: "ESV", BookFolder: "01_Genesis", Chapter: 1}
	writeChapter(t, dataDir, addr, "Chapter 1\n1. In the beginning\n")

	c := NewChapters(types.ResourceConfig{DataDir: dataDir})
	got, err := c.ReadChapter(context.Background(), addr)
	require.NoError(t, err)
	assert.Equal(t, "Chapter 1\n1. In the beginning\n", got)
}

func TestReadChapterMissing(t *testing.T) {
	c := NewChapters(types.ResourceConfig{DataDir: t.TempDir()})
	_, err := c.ReadChapter(context.Background(), types.ChapterAddress{Language: "en", Version: "ESV", BookFolder: "01_Genesis", Chapter: 2})
	assert.ErrorIs(t, err, types.ErrChapterNotFound)
}

func TestReadChapterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewChapters(types.ResourceConfig{DataDir: t.TempDir()})
	_, err := c.ReadChapter(ctx, types.ChapterAddress{})
	assert.ErrorIs(t, err, context.Canceled)
}

// --- notes ---

func TestEnsureNoteCreatesOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")
	n := NewNotes(types.NotesConfig{NotesDir: dir})

	h, err := n.EnsureNote(context.Background(), "Genesis 3.14-15")
	require.NoError(t, err)
	assert.Equal(t, "Genesis 3.14-15", h.Name)
	assert.Equal(t, filepath.Join(dir, "Genesis 3.14-15.md"), h.Path)

	// Existing content survives a second call.
	require.NoError(t, os.WriteFile(h.Path, []byte("my meditation"), 0o644))
	again, err := n.EnsureNote(context.Background(), "Genesis 3.14-15")
	require.NoError(t, err)
	assert.Equal(t, h, again)

	data, err := os.ReadFile(h.Path)
	require.NoError(t, err)
	assert.Equal(t, "my meditation", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEnsureNoteRejectsPaths(t *testing.T) {
	n := NewNotes(types.NotesConfig{NotesDir: t.TempDir()})
	for _, name := range []string{"", "..", "a/b", filepath.Join("..", "escape")} {
		_, err := n.EnsureNote(context.Background(), name)
		assert.Error(t, err, name)
	}
}
