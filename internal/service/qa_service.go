package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Laisky/errors/v2"
	"github.com/sirupsen/logrus"

	"questions/internal/domain"
	"questions/internal/ranking"
)

// ErrNotIngested is returned by Answer before a corpus has been ingested.
var ErrNotIngested = errors.New("no corpus ingested")

// Options sets how many documents and sentences an answer carries.
type Options struct {
	FileMatches     int
	SentenceMatches int
}

var _ domain.QAService = (*QAServiceImpl)(nil)

// QAServiceImpl ranks the documents of an ingested corpus against a query,
// then ranks the sentences of the best documents.
type QAServiceImpl struct {
	tokenizer domain.Tokenizer
	segmenter domain.SentenceSegmenter
	opts      Options
	logger    *logrus.Entry

	mu     sync.RWMutex
	corpus *domain.Corpus
	files  *domain.Collection
	idf    domain.IDFTable
	tokens int
	// documents by distinct word count, largest first
	richest []domain.Scored
}

// NewQAService creates the service. Non-positive match counts default to one.
func NewQAService(tokenizer domain.Tokenizer, segmenter domain.SentenceSegmenter, opts Options, logger *logrus.Entry) *QAServiceImpl {
	if opts.FileMatches <= 0 {
		opts.FileMatches = 1
	}
	if opts.SentenceMatches <= 0 {
		opts.SentenceMatches = 1
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &QAServiceImpl{tokenizer: tokenizer, segmenter: segmenter, opts: opts, logger: logger}
}

// Ingest tokenizes every document and computes the corpus IDF table.
// A later Ingest replaces the previous corpus.
func (s *QAServiceImpl) Ingest(corpus *domain.Corpus) error {
	if corpus.Len() == 0 {
		return errors.Wrap(domain.ErrEmptyCorpus, "ingest")
	}

	files := domain.NewCollection()
	tokens := 0
	richest := make([]domain.Scored, 0, corpus.Len())
	for _, name := range corpus.Names() {
		doc, _ := corpus.Get(name)
		words := s.tokenizer.Tokenize(doc.Text)
		files.Add(name, words)
		tokens += len(words)
		richest = append(richest, domain.Scored{ID: name, Score: float64(distinct(words))})
	}
	sort.SliceStable(richest, func(i, j int) bool { return richest[i].Score > richest[j].Score })
	idf := ranking.ComputeIDF(files)

	s.mu.Lock()
	s.corpus, s.files, s.idf, s.tokens, s.richest = corpus, files, idf, tokens, richest
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"documents":  files.Len(),
		"vocabulary": len(idf),
		"tokens":     tokens,
	}).Info("corpus ingested")
	return nil
}

// Answer returns the best documents and the best sentences inside them.
// Sentence texts are returned verbatim.
func (s *QAServiceImpl) Answer(query string) (*domain.Answer, error) {
	s.mu.RLock()
	corpus, files, idf := s.corpus, s.files, s.idf
	s.mu.RUnlock()
	if files == nil {
		return nil, ErrNotIngested
	}

	q := s.tokenizer.Query(query)
	names, err := ranking.TopFiles(q, files, idf, s.opts.FileMatches)
	if err != nil {
		return nil, errors.Wrap(err, "rank files")
	}

	sentences := s.sentences(corpus, names)
	// sentence IDF is computed over the candidate sentences only
	sentenceIDF := ranking.ComputeIDF(sentences)
	top, err := ranking.TopSentences(q, sentences, sentenceIDF, s.opts.SentenceMatches)
	if err != nil {
		return nil, errors.Wrap(err, "rank sentences")
	}

	s.logger.WithFields(logrus.Fields{
		"query":      query,
		"terms":      len(q),
		"files":      names,
		"candidates": sentences.Len(),
	}).Debug("query answered")
	return &domain.Answer{Query: query, Files: names, Sentences: top}, nil
}

// sentences splits the named documents into passages on newlines, then into
// sentences, keeping only sentences with at least one token.
func (s *QAServiceImpl) sentences(corpus *domain.Corpus, names []string) *domain.Collection {
	out := domain.NewCollection()
	for _, name := range names {
		doc, ok := corpus.Get(name)
		if !ok {
			continue
		}
		for _, passage := range strings.Split(doc.Text, "\n") {
			for _, sentence := range s.segmenter.SegmentSentences(passage) {
				if tokens := s.tokenizer.Tokenize(sentence); len(tokens) > 0 {
					out.Add(sentence, tokens)
				}
			}
		}
	}
	return out
}

// Stats describes the ingested corpus.
func (s *QAServiceImpl) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Stats{Documents: s.files.Len(), Vocabulary: len(s.idf), Tokens: s.tokens}
}

// Overview returns a one-line description of the corpus naming up to k
// documents with the largest vocabulary.
func (s *QAServiceImpl) Overview(k int) string {
	st := s.Stats()
	if st.Documents == 0 {
		return "No corpus loaded."
	}
	line := fmt.Sprintf("%d documents, %d distinct words", st.Documents, st.Vocabulary)

	s.mu.RLock()
	defer s.mu.RUnlock()
	if k > len(s.richest) {
		k = len(s.richest)
	}
	if k <= 0 {
		return line + "."
	}
	names := make([]string, k)
	for i := 0; i < k; i++ {
		names[i] = s.richest[i].ID
	}
	return line + "; richest: " + strings.Join(names, ", ") + "."
}

func distinct(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return len(seen)
}
