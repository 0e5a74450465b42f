// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/pdiddy/bible-citations/internal/books"
	"github.com/pdiddy/bible-citations/pkg/types"
)

// QueryOptions holds parameters for index queries.
type QueryOptions struct {
	// Query is an FTS5 full-text search over titles and verse text.
	Query string

	// Version filters by version code.
	Version string

	// Book filters by any alias of a canonical book.
	Book string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Version == "" && q.Book == ""
}

// QueryResult is one recorded citation.
type QueryResult struct {
	ID         string              `json:"id" yaml:"id"`
	Title      string              `json:"title" yaml:"title"`
	Version    string              `json:"version" yaml:"version"`
	Book       string              `json:"book" yaml:"book"`
	Note       string              `json:"note" yaml:"note"`
	Verses     []types.VerseRecord `json:"verses" yaml:"verses"`
	RecordedAt string              `json:"recorded_at" yaml:"recorded_at"`

	bookOrder int
}

// Retrieve queries the index. Full-text queries are ranked by relevance;
// otherwise results are in canonical book order, then naturally ordered
// by title so "Psalms 23:2" sorts before "Psalms 23:10".
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT c.id, c.title, c.version, c.book, c.book_order, c.note, c.verses, c.recorded_at
			FROM citations_fts
			JOIN citations c ON c.rowid = citations_fts.rowid
			WHERE citations_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT c.id, c.title, c.version, c.book, c.book_order, c.note, c.verses, c.recorded_at
			FROM citations c
			WHERE 1=1`)
	}

	if opts.Version != "" {
		qb.WriteString(` AND c.version = ?`)
		args = append(args, books.NormalizeVersion(opts.Version))
	}

	if opts.Book != "" {
		book, err := books.Resolve(opts.Book)
		if err != nil {
			return nil, err
		}
		qb.WriteString(` AND c.book = ?`)
		args = append(args, book.ID)
	}

	if useFTS {
		qb.WriteString(` ORDER BY citations_fts.rank LIMIT ?`)
		args = append(args, maxResults)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying citation index: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr         QueryResult
			note       sql.NullString
			versesJSON sql.NullString
			recorded   sql.NullString
		)
		if err := rows.Scan(&qr.ID, &qr.Title, &qr.Version, &qr.Book, &qr.bookOrder,
			&note, &versesJSON, &recorded); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		qr.Note = note.String
		qr.RecordedAt = recorded.String
		if versesJSON.Valid {
			json.Unmarshal([]byte(versesJSON.String), &qr.Verses)
		}
		results = append(results, qr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !useFTS {
		sortCanonical(results)
		if len(results) > maxResults {
			results = results[:maxResults]
		}
	}
	return results, nil
}

func sortCanonical(results []QueryResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.bookOrder != b.bookOrder {
			return a.bookOrder < b.bookOrder
		}
		if a.Title != b.Title {
			return natural.Less(a.Title, b.Title)
		}
		return a.Version < b.Version
	})
}
