// Package preprocess normalizes raw summaries before clustering.
//
// Normalization lower-cases the text, strips escape sequences and special
// characters, drops stop words and collapses whitespace. The original text
// (escape sequences removed, trimmed) is kept as the identity of the document.
package preprocess

import (
	"strings"
	"sync"
)

// Pair maps an original document to its normalized form.
type Pair struct {
	Original   string
	Normalized string
}

// Normalizer turns raw documents into ordered (original, normalized) pairs.
// Raw documents that are identical after trimming collapse to one pair.
type Normalizer interface {
	Normalize(raw []string) []Pair
}

// Preprocessor is the default Normalizer.
//
// The zero value is usable and only lower-cases and collapses whitespace.
// The lists are read on first use; changes made afterwards are ignored.
type Preprocessor struct {
	// StopWords are removed as whole tokens.
	StopWords []string
	// SpecialCharacters are removed wherever they occur.
	SpecialCharacters []string
	// EscapeSequences are removed from both the original and normalized text.
	EscapeSequences []string

	once    sync.Once
	stop    map[string]struct{}
	special *strings.Replacer
	escape  *strings.Replacer
}

// New returns a Preprocessor with the default English configuration.
func New() *Preprocessor {
	return NewWith(DefaultStopWords, DefaultSpecialCharacters, DefaultEscapeSequences)
}

// NewWith returns a Preprocessor with custom lists.
func NewWith(stopWords, specialChars, escapes []string) *Preprocessor {
	return &Preprocessor{
		StopWords:         stopWords,
		SpecialCharacters: specialChars,
		EscapeSequences:   escapes,
	}
}

func (p *Preprocessor) build() {
	p.stop = make(map[string]struct{}, len(p.StopWords))
	for _, w := range p.StopWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			p.stop[w] = struct{}{}
		}
	}
	p.special = removal(p.SpecialCharacters, true)
	p.escape = removal(p.EscapeSequences, false)
}

func removal(list []string, lower bool) *strings.Replacer {
	args := make([]string, 0, 2*len(list))
	for _, s := range list {
		if s == "" {
			continue
		}
		if lower {
			s = strings.ToLower(s)
		}
		args = append(args, s, "")
	}
	return strings.NewReplacer(args...)
}

// Normalize implements Normalizer.
func (p *Preprocessor) Normalize(raw []string) []Pair {
	p.once.Do(p.build)

	pairs := make([]Pair, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, doc := range raw {
		original := strings.TrimSpace(p.escape.Replace(doc))
		if _, ok := seen[original]; ok {
			continue
		}
		seen[original] = struct{}{}
		pairs = append(pairs, Pair{Original: original, Normalized: p.NormalizeOne(original)})
	}
	return pairs
}

// NormalizeOne normalizes a single document.
func (p *Preprocessor) NormalizeOne(doc string) string {
	p.once.Do(p.build)

	doc = strings.ToLower(doc)
	doc = p.escape.Replace(doc)
	doc = p.special.Replace(doc)

	tokens := strings.Fields(doc)
	kept := tokens[:0]
	for _, t := range tokens {
		if _, ok := p.stop[t]; ok {
			continue
		}
		kept = append(kept, t)
	}
	return strings.Join(kept, " ")
}

// Identity is a Normalizer that only trims whitespace and deduplicates.
type Identity struct{}

// Normalize implements Normalizer.
func (Identity) Normalize(raw []string) []Pair {
	pairs := make([]Pair, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, doc := range raw {
		doc = strings.TrimSpace(doc)
		if _, ok := seen[doc]; ok {
			continue
		}
		seen[doc] = struct{}{}
		pairs = append(pairs, Pair{Original: doc, Normalized: doc})
	}
	return pairs
}
