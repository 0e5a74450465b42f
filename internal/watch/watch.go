// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch rewrites markdown documents in a directory as they are
// saved, converting plain references into citation blocks.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/pdiddy/bible-citations/internal/citation"
	"github.com/pdiddy/bible-citations/pkg/types"
)

// Recorder stores citations produced by a rewrite. index.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, rc *types.RenderedCitation) (string, error)
}

// Watcher converts plain references in .md files under one directory.
type Watcher struct {
	engine   *citation.Engine
	version  string
	recorder Recorder
	logger   *zap.Logger
}

// New returns a Watcher converting references into version. recorder and
// logger may be nil.
func New(engine *citation.Engine, version string, recorder Recorder, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{engine: engine, version: version, recorder: recorder, logger: logger}
}

// Run watches dir until ctx is cancelled. Each created or written .md file
// is passed to HandleFile. Errors on single files are logged, not returned.
func (w *Watcher) Run(ctx context.Context, dir string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	w.logger.Info("watching", zap.String("dir", dir), zap.String("version", w.version))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			if _, err := w.HandleFile(ctx, ev.Name); err != nil {
				w.logger.Warn("rewrite failed", zap.String("path", ev.Name), zap.Error(err))
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", zap.Error(err))
		}
	}
}

// relevant reports whether ev is a create or write of a visible .md file.
func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return false
	}
	base := filepath.Base(ev.Name)
	return !strings.HasPrefix(base, ".") && strings.EqualFold(filepath.Ext(base), ".md")
}

// HandleFile rewrites the document at path and writes it back when at
// least one reference was converted. Writing a converted file triggers
// another event; the second pass finds nothing left to convert.
func (w *Watcher) HandleFile(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	result := w.engine.RewriteDocument(ctx, string(data), citation.ModePlainText, w.version)
	if result.Converted() == 0 || result.Document == string(data) {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(result.Document), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}

	if w.recorder != nil {
		for _, rc := range result.Citations {
			if _, err := w.recorder.Record(ctx, rc); err != nil {
				w.logger.Warn("index record failed", zap.String("title", rc.DisplayTitle), zap.Error(err))
			}
		}
	}
	w.logger.Info("document converted",
		zap.String("path", path),
		zap.Int("converted", result.Converted()),
		zap.Int("failed", len(result.Failures)),
	)
	return true, nil
}
