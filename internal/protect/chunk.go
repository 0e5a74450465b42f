// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package protect

import (
	"regexp"
	"strings"
)

const (
	DefaultMaxTokens    = 8192
	DefaultSafetyMargin = 500
)

// sentence matches a run ending in terminal punctuation, or a run of
// newlines.
var sentence = regexp.MustCompile(`[^.!?\n]+[.!?]+|\n+`)

// EstimateTokens approximates a token count at four bytes per token.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// ChunkByTokens splits text into trimmed chunks of whole sentences whose
// estimated size stays within maxTokens-safetyMargin. Non-positive
// arguments use the defaults. Text after the last sentence terminator is
// kept as a final sentence, and a single sentence larger than the budget
// becomes a chunk of its own.
func ChunkByTokens(text string, maxTokens, safetyMargin int) []string {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if safetyMargin < 0 || safetyMargin >= maxTokens {
		safetyMargin = DefaultSafetyMargin
	}
	budget := maxTokens - safetyMargin
	if budget <= 0 {
		budget = maxTokens
	}

	var (
		chunks  []string
		current strings.Builder
		tokens  int
	)
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
		tokens = 0
	}

	for _, s := range sentences(text) {
		n := EstimateTokens(s)
		if tokens > 0 && tokens+n > budget {
			flush()
		}
		current.WriteString(s)
		tokens += n
	}
	flush()
	return chunks
}

func sentences(text string) []string {
	var out []string
	pos := 0
	for _, loc := range sentence.FindAllStringIndex(text, -1) {
		if loc[0] > pos {
			out = append(out, text[pos:loc[0]])
		}
		out = append(out, text[loc[0]:loc[1]])
		pos = loc[1]
	}
	if pos < len(text) {
		out = append(out, text[pos:])
	}
	return out
}
