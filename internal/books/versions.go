// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package books

import (
	"fmt"
	"strings"

	"github.com/pdiddy/bible-citations/pkg/types"
)

type versionEntry struct {
	code string
	lang string
}

// versionTable lists each supported translation once with its language.
var versionTable = []versionEntry{
	{"ESV", "en"}, {"NIV", "en"}, {"KJV", "en"}, {"NLT", "en"}, {"NRSV", "en"},
	{"RSV", "en"}, {"NASB", "en"}, {"ASV", "en"}, {"WEB", "en"}, {"BBE", "en"},
	{"DARBY", "en"}, {"HNV", "en"}, {"WBT", "en"}, {"WNT", "en"}, {"YLT", "en"},

	{"RVR1960", "es"}, {"LBLA", "es"}, {"NVI", "es"}, {"RVR1977", "es"},
	{"RVR1995", "es"}, {"TLA", "es"},

	{"ARC", "pt"}, {"ARA", "pt"}, {"NVI-PT", "pt"},

	{"LSG", "fr"}, {"LSG10", "fr"}, {"NEG", "fr"}, {"PDV", "fr"}, {"BDS", "fr"},
}

// menuVersions are the translations offered when the user picks one
// interactively.
var menuVersions = []string{"ESV", "KJV", "LSG10", "BDS"}

var versionLang = func() map[string]string {
	m := make(map[string]string, len(versionTable))
	for _, v := range versionTable {
		m[v.code] = v.lang
	}
	return m
}()

// NormalizeVersion trims and uppercases a version code.
func NormalizeVersion(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Language returns the two-letter language of a version code. Unknown codes
// fail with types.ErrUnsupportedVersion.
func Language(code string) (string, error) {
	lang, ok := versionLang[NormalizeVersion(code)]
	if !ok {
		return "", fmt.Errorf("%w: %q", types.ErrUnsupportedVersion, code)
	}
	return lang, nil
}

// Versions returns every supported version code in table order.
func Versions() []string {
	out := make([]string, len(versionTable))
	for i, v := range versionTable {
		out[i] = v.code
	}
	return out
}

// MenuVersions returns the short list of versions offered for selection.
func MenuVersions() []string {
	out := make([]string, len(menuVersions))
	copy(out, menuVersions)
	return out
}
