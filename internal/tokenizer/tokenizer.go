// Package tokenizer normalizes raw text into the words used for TF-IDF
// scoring.
package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"questions/internal/domain"
	"questions/internal/nlp"
)

var _ domain.Tokenizer = (*Tokenizer)(nil)

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

// Tokenizer lowercases word units and removes punctuation and stopwords.
type Tokenizer struct {
	toolkit *nlp.Toolkit
}

// New creates a tokenizer bound to toolkit.
func New(toolkit *nlp.Toolkit) *Tokenizer {
	return &Tokenizer{toolkit: toolkit}
}

// Tokenize returns the cleaned words of text in order, duplicates kept.
func (t *Tokenizer) Tokenize(text string) []string {
	// a Caser is stateful, so each call gets its own
	lower := cases.Lower(t.toolkit.Language())

	units := t.toolkit.SegmentWords(text)
	out := make([]string, 0, len(units))
	for _, u := range units {
		w := apostrophes.Replace(lower.String(u))
		if isPunctuation(w) || t.toolkit.IsStopword(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Query tokenizes text and collapses duplicates.
func (t *Tokenizer) Query(text string) domain.Query {
	return domain.NewQuery(t.Tokenize(text)...)
}

func isPunctuation(w string) bool {
	for _, r := range w {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
