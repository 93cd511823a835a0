package domain

import "github.com/Laisky/errors/v2"

// ErrEmptyCorpus is returned when there are no documents to search.
var ErrEmptyCorpus = errors.New("empty corpus")
