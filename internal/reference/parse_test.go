// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bible-citations/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want types.ReferenceRequest
	}{
		{
			name: "closed range",
			raw:  "gen3:14-15||ESV",
			want: types.ReferenceRequest{Book: "gen", Chapter: 3, VerseStart: 14, VerseEnd: 15, Range: types.RangeClosed, Version: "ESV"},
		},
		{
			name: "single verse",
			raw:  "John 3:16 || kjv",
			want: types.ReferenceRequest{Book: "john", Chapter: 3, VerseStart: 16, Range: types.RangeSingle, Version: "KJV"},
		},
		{
			name: "to end of chapter",
			raw:  "ps23:1-||KJV",
			want: types.ReferenceRequest{Book: "ps", Chapter: 23, VerseStart: 1, Range: types.RangeToEnd, Version: "KJV"},
		},
		{
			name: "numbered book keeps leading digit",
			raw:  "1 John 4:7-8||ESV",
			want: types.ReferenceRequest{Book: "1john", Chapter: 4, VerseStart: 7, VerseEnd: 8, Range: types.RangeClosed, Version: "ESV"},
		},
		{
			name: "multi-word book with two digit chapter",
			raw:  "Song of Solomon 12:1||NIV",
			want: types.ReferenceRequest{Book: "songofsolomon", Chapter: 12, VerseStart: 1, Version: "NIV"},
		},
		{
			name: "last separator wins",
			raw:  "Genesis 1:1 || ESV||LSG10",
			want: types.ReferenceRequest{Book: "genesis", Chapter: 1, VerseStart: 1, Version: "LSG10"},
		},
		{
			name: "abbreviation with dot",
			raw:  "Gen. 3:1||ESV",
			want: types.ReferenceRequest{Book: "gen.", Chapter: 3, VerseStart: 1, Version: "ESV"},
		},
		{
			name: "accented book",
			raw:  "Genèse 1:1||LSG",
			want: types.ReferenceRequest{Book: "genèse", Chapter: 1, VerseStart: 1, Version: "LSG"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr error
	}{
		{"gen3:14", types.ErrMissingVersion},
		{"gen3:14||", types.ErrMissingVersion},
		{"gen3:14||   ", types.ErrMissingVersion},
		{"gen3||ESV", types.ErrMalformedReference},
		{"gen:3||ESV", types.ErrMalformedReference},
		{"3:16||ESV", types.ErrMalformedReference},
		{"gen3:x||ESV", types.ErrMalformedReference},
		{"gen3a:1||ESV", types.ErrMalformedReference},
		{"gen3:15-14||ESV", types.ErrMalformedReference},
		{"gen3:1-2-||ESV", types.ErrMalformedReference},
		{"gen3:-||ESV", types.ErrMalformedReference},
		{"gen0:1||ESV", types.ErrMalformedReference},
		{"gen3:1:2||ESV", types.ErrMalformedReference},
		{"gen3:0||ESV", types.ErrMalformedReference},
		{"gen3:1-0||ESV", types.ErrMalformedReference},
		{"gen3:99999999999999999999||ESV", types.ErrMalformedReference},
		{"gen#3:1||ESV", types.ErrMalformedReference},
		{"||ESV", types.ErrMalformedReference},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := Parse(tt.raw)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, raw := range []string{"gen3:14-15||ESV", "ps23:1-||KJV", "1john4:7||LSG10"} {
		req, err := Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, req.String())

		again, err := Parse(req.String())
		require.NoError(t, err)
		assert.Equal(t, req, again)
	}
}
