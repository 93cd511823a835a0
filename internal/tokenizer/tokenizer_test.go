package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questions/internal/domain"
	"questions/internal/nlp"
)

func newTokenizer(t *testing.T) *Tokenizer {
	t.Helper()
	tk, err := nlp.New("en")
	require.NoError(t, err)
	return New(tk)
}

func TestTokenize(t *testing.T) {
	tok := newTokenizer(t)

	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercase and stopwords", "The Cat sat on the Mat.", []string{"cat", "sat", "mat"}},
		{"duplicates kept", "Dog, dog and DOG!", []string{"dog", "dog", "dog"}},
		{"typographic apostrophe", "Don’t panic", []string{"n't", "panic"}},
		{"possessive split", "Python's creator was Guido.", []string{"python", "'s", "creator", "guido"}},
		{"negation split", "isn't", []string{"n't"}},
		{"numbers kept", "Python 3 was released in 2008.", []string{"python", "3", "released", "2008"}},
		{"punctuation only", "... !? -- ;", []string{}},
		{"empty", "", []string{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, tok.Tokenize(c.in))
		})
	}
}

func TestQuery(t *testing.T) {
	tok := newTokenizer(t)
	q := tok.Query("What are cats? Cats and dogs!")
	assert.Equal(t, domain.NewQuery("cats", "dogs"), q)
	assert.Empty(t, tok.Query("what is the"))
}
