// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/pdiddy/bible-citations/internal/books"
	"github.com/pdiddy/bible-citations/internal/reference"
	"github.com/pdiddy/bible-citations/internal/rewrite"
	"github.com/pdiddy/bible-citations/internal/scan"
	"github.com/pdiddy/bible-citations/pkg/types"
)

// Mode selects what RewriteDocument looks for.
type Mode int

const (
	// ModePlainText converts plain references such as "John 3:16" into
	// citation blocks.
	ModePlainText Mode = iota

	// ModeChangeVersion re-renders existing citation blocks in another
	// version.
	ModeChangeVersion
)

func (m Mode) String() string {
	switch m {
	case ModePlainText:
		return "plain"
	case ModeChangeVersion:
		return "version"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "plain" or "version".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "plain-text", "convert":
		return ModePlainText, nil
	case "version", "change-version":
		return ModeChangeVersion, nil
	}
	return 0, fmt.Errorf("unknown rewrite mode %q: use plain or version", s)
}

// RewriteResult is the outcome of a document pass. Document always holds
// a usable document: spans listed in Failures are byte-identical to the
// input.
type RewriteResult struct {
	Document  string
	Citations []*types.RenderedCitation
	Failures  []types.SpanFailure
}

// Converted returns the number of spans that were replaced.
func (r RewriteResult) Converted() int { return len(r.Citations) }

// HasFailures reports whether any span failed to resolve.
func (r RewriteResult) HasFailures() bool { return len(r.Failures) > 0 }

// Err combines every span failure into one error, or returns nil.
func (r RewriteResult) Err() error {
	var err error
	for _, f := range r.Failures {
		err = multierr.Append(err, f)
	}
	return err
}

// RewriteDocument finds references in doc according to mode, resolves
// each one in version and replaces the ones that resolve. Matches are
// resolved one at a time in document order. A failing match is recorded
// in Failures and left untouched; it never aborts the pass.
func (e *Engine) RewriteDocument(ctx context.Context, doc string, mode Mode, version string) RewriteResult {
	var matches []scan.Match
	switch mode {
	case ModeChangeVersion:
		matches = scan.Citations(doc)
	default:
		matches = scan.PlainReferences(doc, books.Known)
	}

	var (
		result RewriteResult
		spans  []types.EditSpan
	)
	for _, m := range matches {
		span := m.Span()
		rc, err := e.ResolveCitation(ctx, m.Reference+reference.VersionSeparator+version)
		if err != nil {
			e.logger.Warn("citation not converted",
				zap.String("reference", m.Reference),
				zap.Int("start", m.Start),
				zap.Error(err),
			)
			result.Failures = append(result.Failures, types.SpanFailure{Span: span, Err: err})
			continue
		}
		span.Replacement = rewrite.FitBlock(doc, m.Start, m.End, rc.BlockText)
		spans = append(spans, span)
		result.Citations = append(result.Citations, rc)
	}

	out, err := rewrite.Apply(doc, spans)
	if err != nil {
		// Spans from one scan never overlap, so this is a scanner bug.
		e.logger.Error("rewrite aborted", zap.Error(err))
		result.Document = doc
		for _, s := range spans {
			result.Failures = append(result.Failures, types.SpanFailure{Span: s, Err: err})
		}
		result.Citations = nil
		return result
	}

	result.Document = out
	e.logger.Info("document rewritten",
		zap.Stringer("mode", mode),
		zap.String("version", version),
		zap.Int("converted", result.Converted()),
		zap.Int("failed", len(result.Failures)),
	)
	return result
}
