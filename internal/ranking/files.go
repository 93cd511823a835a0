package ranking

import (
	"sort"

	"questions/internal/domain"
)

// RankFiles scores every document by summed TF-IDF over the query words and
// returns all of them, best first. Exact ties keep collection order.
func RankFiles(query domain.Query, docs *domain.Collection, idf domain.IDFTable) []domain.Scored {
	words := query.Words()
	scores := make([]domain.Scored, 0, docs.Len())
	docs.Each(func(id string, tokens []string) {
		tf := make(map[string]int, len(words))
		for _, tok := range tokens {
			if query.Has(tok) {
				tf[tok]++
			}
		}
		score := 0.0
		for _, w := range words {
			v, ok := idf[w]
			if !ok || tf[w] == 0 {
				continue
			}
			score += float64(tf[w]) * v
		}
		scores = append(scores, domain.Scored{ID: id, Score: score})
	})

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	return scores
}

// TopFiles returns the names of the n documents that best match query.
func TopFiles(query domain.Query, docs *domain.Collection, idf domain.IDFTable, n int) ([]string, error) {
	if err := checkN(n); err != nil {
		return nil, err
	}
	return firstN(RankFiles(query, docs, idf), n), nil
}
