// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package protect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bible-citations/pkg/types"
)

const block = ">[!bible-meditation-helper-citation] [[Genesis 1.1|Genesis 1:1 | ESV]]\n" +
	">**1** In the beginning God created the heaven and the earth.\n"

// --- placeholders ---

func TestProtectRestoreRoundTrip(t *testing.T) {
	doc := "Intro with [[Some Note]].\n" + block + "Outro [[Other|alias]] end."
	protected, p := Protect(doc)

	assert.Equal(t, 3, p.Len())
	assert.NotContains(t, protected, "[[")
	assert.NotContains(t, protected, "In the beginning")
	assert.Contains(t, protected, "Intro with ")
	assert.Contains(t, protected, "Outro ")

	restored, err := p.Restore(protected)
	require.NoError(t, err)
	assert.Equal(t, doc, restored)
}

func TestRestoreAfterTransform(t *testing.T) {
	doc := "Hello [[Note]].\n" + block
	protected, p := Protect(doc)

	transformed := strings.ReplaceAll(protected, "Hello", "Bonjour")
	restored, err := p.Restore(transformed)
	require.NoError(t, err)
	assert.Equal(t, "Bonjour [[Note]].\n"+block, restored)
}

func TestRestoreMissingPlaceholder(t *testing.T) {
	protected, p := Protect("a [[One]] b [[Two]]")
	require.Equal(t, 2, p.Len())

	mangled := strings.Replace(protected, p.placeholder(1), "", 1)
	restored, err := p.Restore(mangled)
	assert.ErrorIs(t, err, types.ErrPlaceholderMissing)
	assert.Contains(t, restored, "[[One]]")
}

func TestProtectorsDoNotCollide(t *testing.T) {
	_, p1 := Protect("[[a]]")
	_, p2 := Protect("[[a]]")
	assert.NotEqual(t, p1.placeholder(0), p2.placeholder(0))
}

func TestPlaceholdersRebuildProtector(t *testing.T) {
	doc := "See [[Note]] and\n" + block
	protected, p := Protect(doc)

	ph := p.Placeholders()
	assert.Len(t, ph.Saved, 2)

	restored, err := ph.Protector().Restore(protected)
	require.NoError(t, err)
	assert.Equal(t, doc, restored)
}

// --- chunking ---

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
}

func TestChunkByTokensFits(t *testing.T) {
	got := ChunkByTokens("  One sentence. Two sentences!  ", 0, 0)
	assert.Equal(t, []string{"One sentence. Two sentences!"}, got)
}

func TestChunkByTokensSplitsOnSentences(t *testing.T) {
	// Each sentence is 20 bytes, 5 tokens; a budget of 10 holds two.
	s := "aaaaaaaaaaaaaaaaaaa."
	text := strings.Repeat(s, 5)
	got := ChunkByTokens(text, 12, 2)
	assert.Equal(t, []string{s + s, s + s, s}, got)
}

func TestChunkByTokensKeepsTail(t *testing.T) {
	got := ChunkByTokens("First. no terminator", 4, 1)
	assert.Equal(t, []string{"First.", "no terminator"}, got)
}

func TestChunkByTokensOversizedSentence(t *testing.T) {
	long := strings.Repeat("x", 100) + "."
	got := ChunkByTokens("Hi. "+long, 10, 0)
	require.Len(t, got, 2)
	assert.Equal(t, "Hi.", got[0])
	assert.Equal(t, long, got[1])
}
