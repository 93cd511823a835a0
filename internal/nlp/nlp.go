// Package nlp provides the language capabilities the tokenizer and the
// orchestrator depend on: word and sentence segmentation plus a stopword
// lexicon. A Toolkit is created once per process and passed explicitly.
package nlp

import (
	"github.com/Laisky/errors/v2"
	"golang.org/x/text/language"

	"questions/internal/domain"
)

var (
	_ domain.WordSegmenter     = (*Toolkit)(nil)
	_ domain.SentenceSegmenter = (*Toolkit)(nil)
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

// Toolkit bundles the segmenters and the stopword set for one language.
// It is read-only after New and safe for concurrent use.
type Toolkit struct {
	tag       language.Tag
	stopwords map[string]struct{}
}

// New creates a toolkit for the BCP 47 language tag lang.
func New(lang string) (*Toolkit, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, errors.Wrapf(err, "parse language `%s`", lang)
	}
	sw, err := Stopwords(tag)
	if err != nil {
		return nil, err
	}
	return &Toolkit{tag: tag, stopwords: sw}, nil
}

// Language returns the toolkit language.
func (t *Toolkit) Language() language.Tag { return t.tag }

// IsStopword reports whether w (already lowercased) is a stopword.
func (t *Toolkit) IsStopword(w string) bool {
	_, ok := t.stopwords[w]
	return ok
}

// SegmentWords implements domain.WordSegmenter. English clitics are split
// off their words.
func (t *Toolkit) SegmentWords(text string) []string {
	return SplitClitics(SegmentWords(text))
}

// SegmentSentences implements domain.SentenceSegmenter.
func (t *Toolkit) SegmentSentences(text string) []string { return SegmentSentences(text) }
