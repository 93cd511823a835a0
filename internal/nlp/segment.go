package nlp

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// SegmentWords splits text on Unicode word boundaries (UAX #29).
// Whitespace segments are dropped; punctuation segments are kept.
func SegmentWords(text string) []string {
	text = norm.NFC.String(text)
	var (
		words []string
		word  string
		state = -1
	)
	for len(text) > 0 {
		word, text, state = uniseg.FirstWordInString(text, state)
		if strings.TrimFunc(word, unicode.IsSpace) == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}

// SegmentSentences splits text on Unicode sentence boundaries (UAX #29).
// Sentences are trimmed of surrounding whitespace and blank ones dropped.
func SegmentSentences(text string) []string {
	text = norm.NFC.String(text)
	var (
		sentences []string
		sentence  string
		state     = -1
	)
	for len(text) > 0 {
		sentence, text, state = uniseg.FirstSentenceInString(text, state)
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		sentences = append(sentences, sentence)
	}
	return sentences
}
