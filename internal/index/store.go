// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index records resolved citations in a SQLite database with a
// full-text index over verse text, and exports or tabulates them.
package index

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/zeebo/blake3"

	"github.com/pdiddy/bible-citations/internal/books"
	"github.com/pdiddy/bible-citations/pkg/types"
)

const dbFile = "citations.db"

// Store manages the citation index database.
type Store struct {
	db         *sql.DB
	indexDir   string
	maxResults int
	now        func() time.Time
}

// NewStore opens or creates indexDir/citations.db and its schema.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		indexDir:   cfg.IndexDir,
		maxResults: maxResults,
		now:        time.Now,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS citations (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			version TEXT NOT NULL,
			book TEXT NOT NULL,
			book_order INTEGER NOT NULL,
			note TEXT,
			verses TEXT,
			content TEXT NOT NULL,
			recorded_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_version ON citations(version)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_book ON citations(book)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='citations_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE citations_fts USING fts5(title, content, content=citations, content_rowid=rowid)`,
			`CREATE TRIGGER citations_ai AFTER INSERT ON citations BEGIN
				INSERT INTO citations_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
			END`,
			`CREATE TRIGGER citations_ad AFTER DELETE ON citations BEGIN
				INSERT INTO citations_fts(citations_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
			END`,
			`CREATE TRIGGER citations_au AFTER UPDATE ON citations BEGIN
				INSERT INTO citations_fts(citations_fts, rowid, title, content) VALUES('delete', old.rowid, old.title, old.content);
				INSERT INTO citations_fts(rowid, title, content) VALUES (new.rowid, new.title, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// CitationID returns the stable ID of a title in a version: the first 12
// hex characters of the BLAKE3 hash of "title|VERSION".
func CitationID(title, version string) string {
	sum := blake3.Sum256([]byte(title + "|" + books.NormalizeVersion(version)))
	return hex.EncodeToString(sum[:])[:12]
}

// Record upserts rc and returns its ID. Recording the same title and
// version again refreshes the stored verses.
func (s *Store) Record(ctx context.Context, rc *types.RenderedCitation) (string, error) {
	book, ok := books.ByID(rc.Book)
	if !ok {
		return "", fmt.Errorf("%w: %q", types.ErrUnknownBook, rc.Book)
	}

	id := CitationID(rc.DisplayTitle, rc.Version)
	versesJSON, err := json.Marshal(rc.Verses)
	if err != nil {
		return "", fmt.Errorf("marshaling verses: %w", err)
	}

	texts := make([]string, len(rc.Verses))
	for i, v := range rc.Verses {
		texts[i] = v.Text
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO citations (id, title, version, book, book_order, note, verses, content, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, version=excluded.version, book=excluded.book,
			book_order=excluded.book_order, note=excluded.note, verses=excluded.verses,
			content=excluded.content, recorded_at=excluded.recorded_at`,
		id, rc.DisplayTitle, rc.Version, book.ID, book.Order, rc.Note.Name,
		string(versesJSON), strings.Join(texts, " "),
		s.now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("upserting citation %s: %w", rc.DisplayTitle, err)
	}
	return id, nil
}

// RecordSummary holds counts from a batch recording run.
type RecordSummary struct {
	Recorded int
	Failed   int
}

// Total returns the number of citations processed.
func (s RecordSummary) Total() int {
	return s.Recorded + s.Failed
}

// RecordAll records each citation, writing one progress line per citation
// to w. A failing citation is counted and skipped.
func (s *Store) RecordAll(ctx context.Context, citations []*types.RenderedCitation, w io.Writer) (RecordSummary, error) {
	var summary RecordSummary
	for _, rc := range citations {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		id, err := s.Record(ctx, rc)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", rc.DisplayTitle, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(w, "indexed %s (%s) %s\n", rc.DisplayTitle, rc.Version, id)
		summary.Recorded++
	}
	return summary, nil
}
