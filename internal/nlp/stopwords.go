package nlp

import (
	"bufio"
	"bytes"
	"embed"
	"strings"

	"github.com/Laisky/errors/v2"
	"golang.org/x/text/language"
)

//go:embed stopwords/*.txt
var lexicons embed.FS

// ErrUnsupportedLanguage is returned when no stopword lexicon exists for a language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// lexicon file per base language
var lexiconFiles = map[string]string{
	"en": "stopwords/english.txt",
}

// Stopwords returns the stopword set for tag.
func Stopwords(tag language.Tag) (map[string]struct{}, error) {
	base, _ := tag.Base()
	name, ok := lexiconFiles[base.String()]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedLanguage, "stopwords for `%s`", tag)
	}
	raw, err := lexicons.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "read lexicon `%s`", name)
	}

	words := make(map[string]struct{}, 256)
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "scan lexicon `%s`", name)
	}
	return words, nil
}
