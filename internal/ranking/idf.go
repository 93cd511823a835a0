// Package ranking scores documents and sentences against a query using
// TF-IDF statistics.
//
// Every function here is pure: inputs are only read and each call returns
// fresh results, so calls over independent collections may run in parallel.
package ranking

import (
	"math"

	"github.com/Laisky/errors/v2"

	"questions/internal/domain"
)

// ErrInvalidArgument is returned when a caller asks for a non-positive
// number of results.
var ErrInvalidArgument = errors.New("invalid argument")

// ComputeIDF returns the inverse document frequency of every word that
// occurs in at least one item of c: ln(|c| / df(word)).
func ComputeIDF(c *domain.Collection) domain.IDFTable {
	// document frequencies, one presence set per item
	df := make(map[string]int)
	c.Each(func(_ string, tokens []string) {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	})

	n := float64(c.Len())
	idf := make(domain.IDFTable, len(df))
	for term, count := range df {
		idf[term] = math.Log(n / float64(count))
	}
	return idf
}

func checkN(n int) error {
	if n <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "n must be positive, got %d", n)
	}
	return nil
}

func firstN(ranked []domain.Scored, n int) []string {
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = ranked[i].ID
	}
	return out
}
