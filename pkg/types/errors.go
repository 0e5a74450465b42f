// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Resolution errors. Callers test for them with errors.Is; every producer
// wraps them with the offending input.
var (
	ErrMissingVersion     = errors.New("missing version")
	ErrMalformedReference = errors.New("malformed reference")
	ErrUnknownBook        = errors.New("unknown book")
	ErrUnsupportedVersion = errors.New("unsupported version")
	ErrChapterNotFound    = errors.New("chapter not found")
	ErrVerseNotFound      = errors.New("verse not found")
	ErrOverlappingSpans   = errors.New("overlapping edit spans")
	ErrPlaceholderMissing = errors.New("placeholder missing after transform")
)
