// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scripture

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bible-citations/internal/books"
	"github.com/pdiddy/bible-citations/pkg/types"
)

const genesis3 = "Chapter 3\n13. ...\n14. And the LORD God said...\n15. And I will put enmity...\n16. ..."

// --- extraction ---

func TestExtractScenario(t *testing.T) {
	req := types.ReferenceRequest{Book: "gen", Chapter: 3, VerseStart: 14, VerseEnd: 15, Range: types.RangeClosed}
	got, err := Extract(genesis3, req)
	require.NoError(t, err)
	assert.Equal(t, []types.VerseRecord{
		{Number: 14, Text: "And the LORD God said..."},
		{Number: 15, Text: "And I will put enmity..."},
	}, got)
}

func TestExtractRangePolicies(t *testing.T) {
	content := "Psalm 23\n1. one\n2. two\n3. three\n4. four\n5. five\n6. six\n"
	tests := []struct {
		name string
		req  types.ReferenceRequest
		want []int
	}{
		{"single", types.ReferenceRequest{VerseStart: 3}, []int{3}},
		{"closed inclusive", types.ReferenceRequest{VerseStart: 2, VerseEnd: 4, Range: types.RangeClosed}, []int{2, 3, 4}},
		{"closed one verse", types.ReferenceRequest{VerseStart: 5, VerseEnd: 5, Range: types.RangeClosed}, []int{5}},
		{"to end", types.ReferenceRequest{VerseStart: 1, Range: types.RangeToEnd}, []int{1, 2, 3, 4, 5, 6}},
		{"to end from middle", types.ReferenceRequest{VerseStart: 5, Range: types.RangeToEnd}, []int{5, 6}},
		{"closed past end", types.ReferenceRequest{VerseStart: 5, VerseEnd: 9, Range: types.RangeClosed}, []int{5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(content, tt.req)
			require.NoError(t, err)
			var nums []int
			for _, v := range got {
				nums = append(nums, v.Number)
			}
			assert.Equal(t, tt.want, nums)
		})
	}
}

func TestExtractClosedCount(t *testing.T) {
	content := "Header\n"
	for i := 1; i <= 30; i++ {
		content += fmt.Sprintf("%d. verse %d\n", i, i)
	}
	for start := 1; start <= 30; start += 7 {
		for end := start; end <= 30; end += 5 {
			req := types.ReferenceRequest{VerseStart: start, VerseEnd: end, Range: types.RangeClosed}
			got, err := Extract(content, req)
			require.NoError(t, err)
			require.Len(t, got, end-start+1)
			for i, v := range got {
				assert.Equal(t, start+i, v.Number)
			}
		}
	}
}

func TestParseChapterMultiline(t *testing.T) {
	content := "Chapter 1\r\n1. In the beginning\r\n   God created\r\n\r\n2. And the earth   \r\n"
	got := ParseChapter(content)
	assert.Equal(t, []types.VerseRecord{
		{Number: 1, Text: "In the beginning God created"},
		{Number: 2, Text: "And the earth"},
	}, got)
}

func TestParseChapterHeaderOnly(t *testing.T) {
	assert.Empty(t, ParseChapter("Chapter 1"))
	assert.Empty(t, ParseChapter(""))
}

func TestExtractVerseNotFound(t *testing.T) {
	_, err := Extract(genesis3, types.ReferenceRequest{VerseStart: 40})
	assert.ErrorIs(t, err, types.ErrVerseNotFound)
}

// --- locating ---

func TestLocate(t *testing.T) {
	b, err := books.Resolve("1 Sam")
	require.NoError(t, err)

	addr, err := Locate(b, 3, "esv")
	require.NoError(t, err)
	assert.Equal(t, types.ChapterAddress{Language: "en", Version: "ESV", BookFolder: "09_I_Samuel", Chapter: 3}, addr)
	assert.Equal(t, "Bible/en/ESV/by_chapter/09_I_Samuel/Chapter_03.md", addr.Path())

	b, err = books.Resolve("Psaumes")
	require.NoError(t, err)
	addr, err = Locate(b, 119, "LSG10")
	require.NoError(t, err)
	assert.Equal(t, "Bible/fr/LSG10/by_chapter/19_Psalms/Chapter_119.md", addr.Path())
}

func TestLocateUnsupportedVersion(t *testing.T) {
	b, _ := books.Resolve("gen")
	_, err := Locate(b, 1, "NOPE")
	assert.ErrorIs(t, err, types.ErrUnsupportedVersion)
}

type stubReader struct {
	content string
	err     error
}

func (s stubReader) ReadChapter(context.Context, types.ChapterAddress) (string, error) {
	return s.content, s.err
}

func TestFetch(t *testing.T) {
	addr := types.ChapterAddress{Language: "en", Version: "ESV", BookFolder: "01_Genesis", Chapter: 3}
	ctx := context.Background()

	got, err := Fetch(ctx, stubReader{content: genesis3}, addr)
	require.NoError(t, err)
	assert.Equal(t, genesis3, got)

	_, err = Fetch(ctx, stubReader{err: fs.ErrNotExist}, addr)
	assert.ErrorIs(t, err, types.ErrChapterNotFound)

	_, err = Fetch(ctx, stubReader{err: fmt.Errorf("%w: x", types.ErrChapterNotFound)}, addr)
	assert.ErrorIs(t, err, types.ErrChapterNotFound)

	boom := errors.New("disk on fire")
	_, err = Fetch(ctx, stubReader{err: boom}, addr)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, types.ErrChapterNotFound)
}
