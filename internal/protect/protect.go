// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package protect shields rendered citation blocks and wiki links from an
// external text transform, such as machine translation, and restores them
// afterwards.
package protect

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/bible-citations/internal/rewrite"
	"github.com/pdiddy/bible-citations/internal/scan"
	"github.com/pdiddy/bible-citations/pkg/types"
)

var wikiLink = regexp.MustCompile(`\[\[[^\]\n]*\]\]`)

// Protector remembers the constructs replaced by Protect so Restore can
// put them back. Each Protector uses its own nonce, so placeholders from
// different documents never collide.
type Protector struct {
	prefix string
	saved  []string
}

// Protect replaces every citation block and wiki link in text with an
// opaque placeholder and returns the protected text.
func Protect(text string) (string, *Protector) {
	nonce := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	p := &Protector{prefix: "{{BMH-" + nonce + "-"}

	var spans []types.EditSpan
	for _, m := range scan.Citations(text) {
		original := text[m.Start:m.End]
		spans = append(spans, types.EditSpan{
			Start:       m.Start,
			End:         m.End,
			Reference:   m.Reference,
			Replacement: p.hold(strings.TrimSuffix(original, "\n")) + trailingNewline(original),
		})
	}
	// Citation spans come from one scan and never overlap.
	protected, err := rewrite.Apply(text, spans)
	if err != nil {
		protected = text
		p.saved = nil
	}

	protected = wikiLink.ReplaceAllStringFunc(protected, p.hold)
	return protected, p
}

func trailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return "\n"
	}
	return ""
}

func (p *Protector) hold(original string) string {
	p.saved = append(p.saved, original)
	return p.placeholder(len(p.saved) - 1)
}

func (p *Protector) placeholder(i int) string {
	return p.prefix + strconv.Itoa(i) + "}}"
}

// Len returns the number of protected constructs.
func (p *Protector) Len() int { return len(p.saved) }

// Restore puts every protected construct back into text. Placeholders the
// transform dropped or mangled are reported with
// types.ErrPlaceholderMissing; the rest are still restored.
func (p *Protector) Restore(text string) (string, error) {
	var missing []int
	for i := range p.saved {
		ph := p.placeholder(i)
		if !strings.Contains(text, ph) {
			missing = append(missing, i)
			continue
		}
		text = strings.ReplaceAll(text, ph, p.saved[i])
	}
	if len(missing) > 0 {
		return text, fmt.Errorf("%w: %d of %d", types.ErrPlaceholderMissing, len(missing), len(p.saved))
	}
	return text, nil
}

// Placeholders is the serializable state of a Protector, so a document
// protected by one process can be restored by another.
type Placeholders struct {
	Prefix string   `json:"prefix" yaml:"prefix"`
	Saved  []string `json:"saved" yaml:"saved"`
}

// Placeholders returns the state needed to restore text later.
func (p *Protector) Placeholders() Placeholders {
	return Placeholders{Prefix: p.prefix, Saved: append([]string(nil), p.saved...)}
}

// Protector rebuilds the Protector that produced ph.
func (ph Placeholders) Protector() *Protector {
	return &Protector{prefix: ph.Prefix, saved: append([]string(nil), ph.Saved...)}
}
