// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package books

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// aliases maps a folded key to its book.
	aliases map[string]*Book

	// aliasKeys lists every key once, in canonical book order, and is the
	// fixed iteration order for fuzzy matching.
	aliasKeys []string
)

var (
	romanOrdinals = []string{"", "i", "ii", "iii"}
	wordOrdinals  = []string{"", "first", "second", "third"}
	shortOrdinals = []string{"", "1st", "2nd", "3rd"}
)

// Key folds a surface token into alias-table form: lowercase, accents
// removed, and spaces, dots and underscores dropped. "1 Jean", "1jean" and
// "1 Jéan" share one key.
func Key(token string) string {
	// A chained transformer carries state, so each call builds its own.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, token)
	if err != nil {
		folded = token
	}
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r), r == '.', r == '_':
			return -1
		}
		return unicode.ToLower(r)
	}, folded)
}

// Lookup resolves a token by exact key match only.
func Lookup(token string) (*Book, bool) {
	b, ok := aliases[Key(token)]
	return b, ok
}

// Known reports whether token is an exact alias. It is the predicate the
// plain-text scanner uses to pick a book out of a word sequence.
func Known(token string) bool {
	_, ok := aliases[Key(token)]
	return ok
}

// Aliases returns every alias key in fuzzy-matching order.
func Aliases() []string {
	out := make([]string, len(aliasKeys))
	copy(out, aliasKeys)
	return out
}

func buildAliases() {
	aliases = make(map[string]*Book, len(canon)*8)
	aliasKeys = aliasKeys[:0]

	for i, e := range canon {
		b := canonical[i]
		add(b, e.id)
		add(b, b.DisplayName())
		add(b, e.abbrev)
		add(b, e.french)
		for _, x := range e.extra {
			add(b, x)
		}

		n := ordinalOf(e.id)
		if n == 0 {
			continue
		}
		for _, base := range []string{
			e.id[len(romanOrdinals[n])+1:],
			strings.TrimLeft(e.abbrev, "123"),
			strings.TrimLeft(e.french, "123"),
		} {
			for _, prefix := range []string{strconv.Itoa(n), romanOrdinals[n], wordOrdinals[n], shortOrdinals[n]} {
				add(b, prefix+base)
			}
		}
	}
}

// add registers token for b. The first registration of a key wins, so
// the table stays deterministic even when two spellings collide.
func add(b *Book, token string) {
	k := Key(token)
	if k == "" {
		return
	}
	if _, exists := aliases[k]; exists {
		return
	}
	aliases[k] = b
	aliasKeys = append(aliasKeys, k)
}

// ordinalOf returns 1, 2 or 3 for IDs with a roman ordinal prefix, else 0.
func ordinalOf(id string) int {
	for n := 3; n >= 1; n-- {
		if strings.HasPrefix(id, strings.ToUpper(romanOrdinals[n])+"_") {
			return n
		}
	}
	return 0
}
