package domain

// Document represents a single text file loaded into the system.
type Document struct {
	Name string
	Text string
}

// IDFTable maps a word to its inverse document frequency within the
// collection it was computed over.
type IDFTable map[string]float64

// Scored is a ranked collection item.
type Scored struct {
	ID    string
	Score float64
}

// Answer is the outcome of a single query.
type Answer struct {
	Query     string
	Files     []string
	Sentences []string
}

// Stats describes an ingested corpus.
type Stats struct {
	Documents  int
	Vocabulary int
	Tokens     int
}

// WordSegmenter splits text into word units.
type WordSegmenter interface {
	SegmentWords(text string) []string
}

// SentenceSegmenter splits text into sentences without reordering or merging content.
type SentenceSegmenter interface {
	SegmentSentences(text string) []string
}

// Tokenizer turns raw text into the normalized words used for scoring.
type Tokenizer interface {
	Tokenize(text string) []string
	Query(text string) Query
}

// QAService defines the operations exposed by the application core.
type QAService interface {
	Ingest(corpus *Corpus) error
	Answer(query string) (*Answer, error)
	Stats() Stats
	Overview(k int) string
}
