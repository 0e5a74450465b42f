// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// lineLexer tokenizes one document line. Rules are tried in order; Other
// consumes any single character so lexing never fails.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "LinkOpen", Pattern: `\[\[`},
	{Name: "LinkClose", Pattern: `\]\]`},
	{Name: "BracketOpen", Pattern: `\[`},
	{Name: "BracketClose", Pattern: `\]`},
	{Name: "ParenOpen", Pattern: `\(`},
	{Name: "ParenClose", Pattern: `\)`},
	{Name: "Tick", Pattern: "`+"},
	{Name: "Word", Pattern: `\p{L}+`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `[-–]`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "Space", Pattern: `[ \t]+`},
	{Name: "Other", Pattern: `.`},
})

var (
	symbols   = lineLexer.Symbols()
	tLinkOpen = symbols["LinkOpen"]
	tLinkEnd  = symbols["LinkClose"]
	tBrOpen   = symbols["BracketOpen"]
	tBrClose  = symbols["BracketClose"]
	tParOpen  = symbols["ParenOpen"]
	tParClose = symbols["ParenClose"]
	tTick     = symbols["Tick"]
	tWord     = symbols["Word"]
	tNumber   = symbols["Number"]
	tColon    = symbols["Colon"]
	tDash     = symbols["Dash"]
	tDot      = symbols["Dot"]
	tSpace    = symbols["Space"]
)

// connectors may appear lowercase inside a multi-word book name, as in
// "Song of Solomon" or "Cantique des Cantiques".
var connectors = map[string]bool{"of": true, "de": true, "des": true, "du": true}

// PlainReferences finds references not yet converted to citation blocks:
// an optional 1-3 ordinal, a capitalized word sequence, then
// "<chapter>[:<verse>][-<verse>]". Quote lines, list items, rendered
// blocks, headings, inline code and link text or targets are skipped.
//
// known reports whether a book name is an exact alias. The longest known
// suffix of the word sequence is taken as the book; when none is known
// the last word is used so the caller can try a fuzzy match. A candidate
// without a verse is kept only when its book is known, and its reference
// selects the whole chapter ("Psalms 23:1-").
func PlainReferences(doc string, known func(string) bool) []Match {
	var matches []Match
	for _, ln := range splitLines(doc) {
		if isQuote(ln.text) || isListItem(ln.text) || isHeading(ln.text) {
			continue
		}
		for _, m := range scanLine(ln.text, known) {
			m.Start += ln.start
			m.End += ln.start
			matches = append(matches, m)
		}
	}
	return matches
}

func tokenize(text string) []lexer.Token {
	lex, err := lineLexer.LexString("", text)
	if err != nil {
		return nil
	}
	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil
	}
	if n := len(toks); n > 0 && toks[n-1].EOF() {
		toks = toks[:n-1]
	}
	return toks
}

// lineScanner walks the tokens of one line.
type lineScanner struct {
	toks  []lexer.Token
	text  string
	known func(string) bool
}

func scanLine(text string, known func(string) bool) []Match {
	s := &lineScanner{toks: tokenize(text), text: text, known: known}

	var (
		matches []Match
		inLink  bool // [[wiki link]]
		inText  int  // [markdown link text]
		inURL   bool // (url) after link text
		code    string
	)
	for i := 0; i < len(s.toks); {
		tok := s.toks[i]
		switch {
		case code != "":
			if tok.Type == tTick && tok.Value == code {
				code = ""
			}
		case tok.Type == tTick:
			code = tok.Value
		case inURL:
			if tok.Type == tParClose {
				inURL = false
			}
		case tok.Type == tLinkOpen:
			inLink = true
		case tok.Type == tLinkEnd:
			inLink = false
		case tok.Type == tBrOpen:
			inText++
		case tok.Type == tBrClose:
			if inText > 0 {
				inText--
			}
			inURL = inText == 0 && s.is(i+1, tParOpen)
			if inURL {
				i++
			}
		case !inLink && inText == 0 && s.canStart(i):
			if m, next, ok := s.match(i); ok {
				matches = append(matches, m)
				i = next
				continue
			}
		}
		i++
	}
	return matches
}

func (s *lineScanner) is(i int, typ lexer.TokenType) bool {
	return i < len(s.toks) && s.toks[i].Type == typ
}

func (s *lineScanner) offset(i int) int {
	if i >= len(s.toks) {
		return len(s.text)
	}
	return s.toks[i].Pos.Offset
}

// canStart reports whether a reference may begin at token i: a
// capitalized word or a 1-3 ordinal, not glued to a preceding word or
// number.
func (s *lineScanner) canStart(i int) bool {
	if i > 0 && (s.is(i-1, tWord) || s.is(i-1, tNumber)) {
		return false
	}
	tok := s.toks[i]
	switch tok.Type {
	case tWord:
		return capitalized(tok.Value)
	case tNumber:
		return isOrdinal(tok.Value)
	}
	return false
}

// match tries to read one reference starting at token i. It returns the
// match and the index of the first token after it.
func (s *lineScanner) match(i int) (Match, int, bool) {
	j := i
	ordinal := ""
	if s.is(j, tNumber) {
		ordinal = s.toks[j].Value
		j++
		if s.is(j, tSpace) {
			j++
		}
		if !s.is(j, tWord) || !capitalized(s.toks[j].Value) {
			return Match{}, 0, false
		}
	}

	// words[k] is the token index of the k-th word of the book name.
	words := []int{j}
	j++
	for s.is(j, tSpace) && s.is(j+1, tWord) {
		v := s.toks[j+1].Value
		if !capitalized(v) && !connectors[v] {
			break
		}
		words = append(words, j+1)
		j += 2
	}
	// A book name never ends on a connector.
	for len(words) > 1 && connectors[s.toks[words[len(words)-1]].Value] {
		words = words[:len(words)-1]
		j = words[len(words)-1] + 1
	}

	if s.is(j, tDot) {
		j++
	}
	if s.is(j, tSpace) {
		j++
	}
	if !s.is(j, tNumber) {
		return Match{}, 0, false
	}
	chapter := s.toks[j].Value
	j++

	var verses string
	if s.is(j, tColon) && s.is(j+1, tNumber) {
		verses = s.toks[j+1].Value
		j += 2
		switch {
		case s.is(j, tDash) && s.is(j+1, tNumber):
			verses += "-" + s.toks[j+1].Value
			j += 2
		case s.is(j, tDash) && !s.is(j+1, tWord):
			verses += "-"
			j++
		}
	} else if s.is(j, tDash) {
		// Chapter ranges such as "Genesis 3-4" are not references.
		return Match{}, 0, false
	}
	if s.is(j, tWord) || s.is(j, tNumber) {
		return Match{}, 0, false
	}

	start, book, isKnown := s.pickBook(i, ordinal, words)
	if verses == "" {
		if !isKnown {
			return Match{}, 0, false
		}
		verses = "1-"
	}

	return Match{
		Start:     s.offset(start),
		End:       s.offset(j),
		Reference: book + " " + chapter + ":" + verses,
	}, j, true
}

// pickBook chooses the longest suffix of the word sequence that is a
// known book name. The ordinal only attaches to the full sequence.
func (s *lineScanner) pickBook(first int, ordinal string, words []int) (start int, book string, known bool) {
	for k := range words {
		name := s.join(words[k:])
		if k == 0 && ordinal != "" {
			if withOrdinal := ordinal + " " + name; s.known(withOrdinal) {
				return first, withOrdinal, true
			}
		}
		if s.known(name) {
			return words[k], name, true
		}
	}
	last := words[len(words)-1]
	return last, s.toks[last].Value, false
}

func (s *lineScanner) join(words []int) string {
	parts := make([]string, len(words))
	for k, w := range words {
		parts[k] = s.toks[w].Value
	}
	return strings.Join(parts, " ")
}

func capitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

func isOrdinal(v string) bool {
	return v == "1" || v == "2" || v == "3"
}
