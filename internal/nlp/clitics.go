package nlp

import (
	"strings"
	"unicode/utf8"
)

// English clitics split off by the Penn Treebank conventions. UAX #29 keeps
// them attached to the preceding word.
var clitics = []string{"n't", "'s", "'re", "'ll", "'d", "'ve", "'m"}

// SplitClitics splits a trailing clitic off each word unit, so "Python's"
// yields "Python" and "'s" and "isn't" yields "is" and "n't". Typographic
// apostrophes are recognized; the clitic keeps its original spelling.
func SplitClitics(units []string) []string {
	if len(units) == 0 {
		return units
	}
	out := make([]string, 0, len(units))
	for _, u := range units {
		stem, clitic := splitClitic(u)
		if stem == "" {
			out = append(out, u)
			continue
		}
		out = append(out, stem, clitic)
	}
	return out
}

func splitClitic(word string) (string, string) {
	runes := []rune(word)
	for _, c := range clitics {
		k := utf8.RuneCountInString(c)
		if len(runes) <= k {
			continue
		}
		suffix := string(runes[len(runes)-k:])
		if foldApostrophes(strings.ToLower(suffix)) == c {
			return string(runes[:len(runes)-k]), suffix
		}
	}
	return "", ""
}

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

func foldApostrophes(s string) string { return apostrophes.Replace(s) }
