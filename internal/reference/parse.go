// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reference parses raw "book chapter:verse(-verse) || version"
// strings into types.ReferenceRequest values.
package reference

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/pdiddy/bible-citations/internal/books"
	"github.com/pdiddy/bible-citations/pkg/types"
)

// VersionSeparator splits the reference from its version code.
const VersionSeparator = "||"

// body is the reference without its version, after whitespace removal:
// "1john4:7-8", "ps23:1-".
type body struct {
	Book    string `parser:"@Book"`
	Chapter int    `parser:"@Number \":\""`
	Start   int    `parser:"@Number"`
	Dash    bool   `parser:"( @\"-\""`
	End     *int   `parser:"  @Number? )?"`
}

// bodyLexer tokenizes a space-stripped reference body. A book name may
// start with one digit ("1john"), so the chapter is the first number
// after it.
var bodyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Book", Pattern: `\d?[\p{L}\p{M}][\p{L}\p{M}_.]*`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `-`},
})

var bodyParser = participle.MustBuild[body](
	participle.Lexer(bodyLexer),
)

// Parse splits raw into book token, chapter, verse range and version.
//
// The reference ends at the first "||" and the version follows the last
// one. The reference is lowercased and stripped of whitespace before it
// is parsed. A verse segment ending in "-" selects through the end of the
// chapter.
//
// Parse does not resolve the book; an unknown book is reported later by
// the book resolver.
func Parse(raw string) (types.ReferenceRequest, error) {
	first := strings.Index(raw, VersionSeparator)
	if first < 0 {
		return types.ReferenceRequest{}, fmt.Errorf("%w: %q", types.ErrMissingVersion, raw)
	}
	last := strings.LastIndex(raw, VersionSeparator)
	version := books.NormalizeVersion(raw[last+len(VersionSeparator):])
	if version == "" {
		return types.ReferenceRequest{}, fmt.Errorf("%w: %q", types.ErrMissingVersion, raw)
	}

	b, err := bodyParser.ParseString("", strings.ToLower(stripSpace(raw[:first])))
	if err != nil {
		return types.ReferenceRequest{}, malformed(raw, err.Error())
	}

	req := types.ReferenceRequest{
		Book:       b.Book,
		Chapter:    b.Chapter,
		VerseStart: b.Start,
		Version:    version,
	}
	switch {
	case b.End != nil:
		req.Range = types.RangeClosed
		req.VerseEnd = *b.End
	case b.Dash:
		req.Range = types.RangeToEnd
	}

	switch {
	case req.Chapter <= 0:
		return types.ReferenceRequest{}, malformed(raw, "chapter must be positive")
	case req.VerseStart <= 0:
		return types.ReferenceRequest{}, malformed(raw, "verse must be positive")
	case req.Range == types.RangeClosed && req.VerseEnd < req.VerseStart:
		return types.ReferenceRequest{}, malformed(raw, "end verse before start verse")
	}
	return req, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func malformed(raw, reason string) error {
	return fmt.Errorf("%w: %q: %s", types.ErrMalformedReference, raw, reason)
}
