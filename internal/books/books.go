// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package books holds the frozen book-name and version tables used to
// resolve a typed book token to one of the 66 canonical books.
//
// The tables are built once during package initialization and never
// mutated, so every exported function is safe for concurrent use.
package books

import (
	"fmt"
	"regexp"
	"strings"
)

// Book is one canonical book of the 66-book canon.
type Book struct {
	// ID is the folder name used by the scripture resources (e.g. "I_Samuel").
	ID string

	// Order is the zero-based canonical position (Genesis=0, Revelation=65).
	Order int
}

// Folder returns the resource folder segment "<NN>_<ID>", where NN is the
// one-based canonical position.
func (b *Book) Folder() string {
	return fmt.Sprintf("%02d_%s", b.Order+1, b.ID)
}

// DisplayName returns the human-readable name used in citation titles.
func (b *Book) DisplayName() string {
	return displayName(b.ID)
}

func (b *Book) String() string { return b.ID }

var (
	ordinalPrefix = regexp.MustCompile(`^(I{1,3})_`)
	disambiguator = regexp.MustCompile(`_?\([^)]*\)$`)
)

// displayName turns a folder ID into a title: "II_Kings" becomes "2 Kings",
// "Song_of_Solomon" becomes "Song of Solomon", and a trailing parenthesised
// disambiguator such as "_(Book)" is dropped.
func displayName(id string) string {
	name := disambiguator.ReplaceAllString(id, "")
	if m := ordinalPrefix.FindStringSubmatch(name); m != nil {
		name = fmt.Sprintf("%d_%s", len(m[1]), name[len(m[0]):])
	}
	return strings.ReplaceAll(name, "_", " ")
}

// entry is one row of the canon table: folder ID, English abbreviation,
// French name, and any extra spellings.
type entry struct {
	id     string
	abbrev string
	french string
	extra  []string
}

var canon = []entry{
	{"Genesis", "Gen", "Genèse", []string{"Gn"}},
	{"Exodus", "Ex", "Exode", []string{"Exod"}},
	{"Leviticus", "Lev", "Lévitique", []string{"Lv"}},
	{"Numbers", "Num", "Nombres", []string{"Nm", "Nb"}},
	{"Deuteronomy", "Deut", "Deutéronome", []string{"Dt"}},
	{"Joshua", "Josh", "Josué", []string{"Jos"}},
	{"Judges", "Judg", "Juges", []string{"Jg", "Jdg"}},
	{"Ruth", "Ruth", "Ruth", []string{"Rt"}},
	{"I_Samuel", "1Sam", "1Samuel", []string{"1Sm"}},
	{"II_Samuel", "2Sam", "2Samuel", []string{"2Sm"}},
	{"I_Kings", "1Kgs", "1Rois", []string{"1Ki"}},
	{"II_Kings", "2Kgs", "2Rois", []string{"2Ki"}},
	{"I_Chronicles", "1Chr", "1Chroniques", []string{"1Ch"}},
	{"II_Chronicles", "2Chr", "2Chroniques", []string{"2Ch"}},
	{"Ezra", "Ezra", "Esdras", []string{"Esd"}},
	{"Nehemiah", "Neh", "Néhémie", nil},
	{"Esther", "Esth", "Esther", nil},
	{"Job", "Job", "Job", []string{"Jb"}},
	{"Psalms", "Ps", "Psaumes", []string{"Psalm", "Psa"}},
	{"Proverbs", "Prov", "Proverbes", []string{"Pr", "Prv"}},
	{"Ecclesiastes", "Eccl", "Ecclésiaste", []string{"Qoheleth", "Ec", "Qo"}},
	{"Song_of_Solomon", "Song", "Cantique", []string{"Song of Songs", "Cantique des Cantiques", "Ct", "Sg"}},
	{"Isaiah", "Isa", "Ésaïe", nil},
	{"Jeremiah", "Jer", "Jérémie", []string{"Jr"}},
	{"Lamentations", "Lam", "Lamentations", []string{"Lm"}},
	{"Ezekiel", "Ezek", "Ézéchiel", []string{"Ez"}},
	{"Daniel", "Dan", "Daniel", []string{"Dn"}},
	{"Hosea", "Hos", "Osée", nil},
	{"Joel", "Joel", "Joël", []string{"Jl"}},
	{"Amos", "Amos", "Amos", nil},
	{"Obadiah", "Obad", "Abdias", []string{"Ob"}},
	{"Jonah", "Jonah", "Jonas", []string{"Jon"}},
	{"Micah", "Mic", "Michée", nil},
	{"Nahum", "Nah", "Nahum", nil},
	{"Habakkuk", "Hab", "Habacuc", nil},
	{"Zephaniah", "Zeph", "Sophonie", nil},
	{"Haggai", "Hag", "Aggée", []string{"Hg"}},
	{"Zechariah", "Zech", "Zacharie", []string{"Za", "Zc"}},
	{"Malachi", "Mal", "Malachie", []string{"Ml"}},
	{"Matthew", "Matt", "Matthieu", []string{"Mt", "Mat"}},
	{"Mark", "Mark", "Marc", []string{"Mk", "Mc", "Mrk"}},
	{"Luke", "Luke", "Luc", []string{"Lk", "Lc"}},
	{"John", "John", "Jean", []string{"Jn", "Jhn"}},
	{"Acts", "Acts", "Actes", []string{"Ac"}},
	{"Romans", "Rom", "Romains", []string{"Rm"}},
	{"I_Corinthians", "1Cor", "1Corinthiens", []string{"1Co"}},
	{"II_Corinthians", "2Cor", "2Corinthiens", []string{"2Co"}},
	{"Galatians", "Gal", "Galates", []string{"Ga"}},
	{"Ephesians", "Eph", "Éphésiens", []string{"Ep"}},
	{"Philippians", "Phil", "Philippiens", []string{"Ph"}},
	{"Colossians", "Col", "Colossiens", nil},
	{"I_Thessalonians", "1Thess", "1Thessaloniciens", []string{"1Th"}},
	{"II_Thessalonians", "2Thess", "2Thessaloniciens", []string{"2Th"}},
	{"I_Timothy", "1Tim", "1Timothée", []string{"1Tm"}},
	{"II_Timothy", "2Tim", "2Timothée", []string{"2Tm"}},
	{"Titus", "Titus", "Tite", []string{"Tt", "Tit"}},
	{"Philemon", "Phlm", "Philémon", []string{"Phm"}},
	{"Hebrews", "Heb", "Hébreux", nil},
	{"James", "Jas", "Jacques", []string{"Jc"}},
	{"I_Peter", "1Pet", "1Pierre", []string{"1Pt"}},
	{"II_Peter", "2Pet", "2Pierre", []string{"2Pt"}},
	{"I_John", "1John", "1Jean", []string{"1Jn"}},
	{"II_John", "2John", "2Jean", []string{"2Jn"}},
	{"III_John", "3John", "3Jean", []string{"3Jn"}},
	{"Jude", "Jude", "Jude", nil},
	{"Revelation", "Rev", "Apocalypse", []string{"Ap", "Rv"}},
}

// canonical holds the 66 books in canonical order.
var canonical []*Book

func init() {
	canonical = make([]*Book, len(canon))
	for i, e := range canon {
		canonical[i] = &Book{ID: e.id, Order: i}
	}
	buildAliases()
}

// All returns the canonical books in order. The returned slice is a copy;
// the books themselves are shared and must not be modified.
func All() []*Book {
	out := make([]*Book, len(canonical))
	copy(out, canonical)
	return out
}

// ByID returns the canonical book with the given folder ID.
func ByID(id string) (*Book, bool) {
	for _, b := range canonical {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}
