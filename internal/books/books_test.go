// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package books

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/bible-citations/pkg/types"
)

// --- canon table ---

func TestCanonOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 66)
	assert.Equal(t, "Genesis", all[0].ID)
	assert.Equal(t, "Revelation", all[65].ID)
	for i, b := range all {
		assert.Equal(t, i, b.Order, b.ID)
	}
}

func TestFolder(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"Genesis", "01_Genesis"},
		{"I_Samuel", "09_I_Samuel"},
		{"Psalms", "19_Psalms"},
		{"Revelation", "66_Revelation"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			b, ok := ByID(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.want, b.Folder())
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"Genesis", "Genesis"},
		{"I_Samuel", "1 Samuel"},
		{"II_Kings", "2 Kings"},
		{"III_John", "3 John"},
		{"Song_of_Solomon", "Song of Solomon"},
		{"Isaiah", "Isaiah"},
		{"Revelation_(Book)", "Revelation"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, displayName(tt.id))
		})
	}
}

// --- alias lookup ---

func TestKey(t *testing.T) {
	assert.Equal(t, "1john", Key("1 John"))
	assert.Equal(t, "genese", Key("Genèse"))
	assert.Equal(t, "esaie", Key("Ésaïe"))
	assert.Equal(t, "songofsolomon", Key("Song_of_Solomon"))
	assert.Equal(t, "gen", Key("Gen."))
}

func TestResolveExactAliases(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"gen", "Genesis"},
		{"Genesis", "Genesis"},
		{"Genèse", "Genesis"},
		{"genese", "Genesis"},
		{"1 John", "I_John"},
		{"1john", "I_John"},
		{"ijohn", "I_John"},
		{"I John", "I_John"},
		{"First John", "I_John"},
		{"1 Jean", "I_John"},
		{"iiijohn", "III_John"},
		{"Jean", "John"},
		{"ii samuel", "II_Samuel"},
		{"2Sam", "II_Samuel"},
		{"Second Kings", "II_Kings"},
		{"2 Rois", "II_Kings"},
		{"Ps", "Psalms"},
		{"Psaumes", "Psalms"},
		{"Ésaïe", "Isaiah"},
		{"Song of Solomon", "Song_of_Solomon"},
		{"Cantique", "Song_of_Solomon"},
		{"Apocalypse", "Revelation"},
		{"rev", "Revelation"},
		{"Phlm", "Philemon"},
		{"MARC", "Mark"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			b, err := Resolve(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.ID)
		})
	}
}

func TestResolveCaseAndSpaceInsensitive(t *testing.T) {
	var ids []string
	for _, token := range []string{"1 John", "1john", "ijohn", "1 JOHN", " 1  john "} {
		b, err := Resolve(token)
		require.NoError(t, err, token)
		ids = append(ids, b.ID)
	}
	for _, id := range ids {
		assert.Equal(t, "I_John", id)
	}
}

// --- fuzzy matching ---

func TestResolveFuzzy(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"Genisis", "Genesis"},
		{"Levitcus", "Leviticus"},
		{"Revelaton", "Revelation"},
		{"Philipians", "Philippians"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			b, err := Resolve(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.ID)
		})
	}
}

func TestResolveShortAbbreviations(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"Jon", "Jonah"},
		{"Mat", "Matthew"},
		{"Mt", "Matthew"},
		{"Mk", "Mark"},
		{"Mc", "Mark"},
		{"Lk", "Luke"},
		{"Lc", "Luke"},
		{"Jn", "John"},
		{"Gn", "Genesis"},
		{"Rm", "Romans"},
		{"Ac", "Acts"},
		{"Ap", "Revelation"},
		{"1Jn", "I_John"},
		{"Job", "Job"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			b, err := Resolve(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.ID)
		})
	}
}

func TestResolveShortTokensNeverFuzzy(t *testing.T) {
	for _, token := range []string{"Room", "Lab", "Mrak", "Jhon", "Gem"} {
		t.Run(token, func(t *testing.T) {
			b, err := Resolve(token)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, types.ErrUnknownBook)
		})
	}
}

func TestResolveUnknownNeverDefaults(t *testing.T) {
	for _, token := range []string{"Zzq", "xyzzy", "", "Qwertyuiop"} {
		t.Run(token, func(t *testing.T) {
			b, err := Resolve(token)
			assert.Nil(t, b)
			assert.True(t, errors.Is(err, types.ErrUnknownBook), "got %v", err)
		})
	}
}

func TestResolverMaxDistance(t *testing.T) {
	b, err := Resolver{}.Resolve("Genisiss")
	require.NoError(t, err)
	assert.Equal(t, "Genesis", b.ID)

	_, err = Resolver{MaxDistance: 1}.Resolve("Genisiss")
	assert.ErrorIs(t, err, types.ErrUnknownBook)
}

func TestResolveDeterministic(t *testing.T) {
	first, err := Resolve("Genisis")
	require.NoError(t, err)
	for range 10 {
		again, err := Resolve("Genisis")
		require.NoError(t, err)
		assert.Same(t, first, again)
	}
}

func TestAliasKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range Aliases() {
		assert.False(t, seen[k], "duplicate alias %q", k)
		seen[k] = true
	}
	assert.True(t, Known("Gen"))
	assert.False(t, Known("Zzq"))
}

// --- versions ---

func TestLanguage(t *testing.T) {
	tests := []struct {
		code    string
		want    string
		wantErr error
	}{
		{"ESV", "en", nil},
		{"kjv", "en", nil},
		{"LSG10", "fr", nil},
		{"BDS", "fr", nil},
		{"RVR1960", "es", nil},
		{"NVI-PT", "pt", nil},
		{"XYZ", "", types.ErrUnsupportedVersion},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := Language(tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMenuVersionsSupported(t *testing.T) {
	for _, v := range MenuVersions() {
		_, err := Language(v)
		assert.NoError(t, err, v)
	}
	assert.Contains(t, Versions(), "LSG10")
}
