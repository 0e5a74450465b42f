// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package books

import (
	"fmt"
	"unicode/utf8"

	"github.com/xrash/smetrics"

	"github.com/pdiddy/bible-citations/pkg/types"
)

// DefaultMaxDistance is the largest edit distance accepted for a fuzzy
// book match.
const DefaultMaxDistance = 2

// MinFuzzyLength is the shortest token tried against the fuzzy matcher.
// Shorter tokens are abbreviations and must match an alias exactly.
const MinFuzzyLength = 5

// Resolver resolves book tokens, falling back to edit distance when the
// exact lookup misses. The zero value uses DefaultMaxDistance.
type Resolver struct {
	// MaxDistance caps the accepted edit distance. A match must also change
	// at most a third of the token, so short tokens need near-exact spelling.
	MaxDistance int
}

// Resolve resolves token with the default Resolver.
func Resolve(token string) (*Book, error) {
	return Resolver{}.Resolve(token)
}

// Resolve returns the book for token. Exact aliases win. Otherwise, for
// tokens of at least MinFuzzyLength characters, the alias with the
// smallest edit distance is used if it is within the threshold and no
// alias of a different book is equally close. Tokens with no acceptable
// match fail with types.ErrUnknownBook.
func (r Resolver) Resolve(token string) (*Book, error) {
	key := Key(token)
	if key == "" {
		return nil, fmt.Errorf("%w: empty book name", types.ErrUnknownBook)
	}
	if b, ok := aliases[key]; ok {
		return b, nil
	}
	if utf8.RuneCountInString(key) < MinFuzzyLength {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownBook, token)
	}

	best, dist, ambiguous := nearest(key)
	if best == nil || ambiguous || !r.accept(key, dist) {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownBook, token)
	}
	return best, nil
}

func (r Resolver) accept(key string, dist int) bool {
	limit := r.MaxDistance
	if limit <= 0 {
		limit = DefaultMaxDistance
	}
	return dist <= limit && dist*3 <= utf8.RuneCountInString(key)
}

// nearest returns the book whose alias is closest to key, the distance,
// and whether an alias of another book is just as close.
func nearest(key string) (*Book, int, bool) {
	var (
		best      *Book
		bestDist  = -1
		ambiguous bool
	)
	for _, k := range aliasKeys {
		d := smetrics.WagnerFischer(key, k, 1, 1, 1)
		switch {
		case bestDist < 0 || d < bestDist:
			best, bestDist, ambiguous = aliases[k], d, false
		case d == bestDist && aliases[k] != best:
			ambiguous = true
		}
	}
	return best, bestDist, ambiguous
}
