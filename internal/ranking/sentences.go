package ranking

import (
	"sort"

	"questions/internal/domain"
)

type sentenceScore struct {
	domain.Scored
	density float64
}

// RankSentences scores every sentence by the summed IDF of the distinct
// query words it contains and returns them best first. Sentences with equal
// scores are ordered by query term density, the share of the sentence's
// tokens that are query words. Sentences without tokens are skipped.
func RankSentences(query domain.Query, sentences *domain.Collection, idf domain.IDFTable) []domain.Scored {
	words := query.Words()
	scores := make([]sentenceScore, 0, sentences.Len())
	sentences.Each(func(id string, tokens []string) {
		if len(tokens) == 0 {
			return
		}
		present := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if query.Has(tok) {
				present[tok] = struct{}{}
			}
		}
		score := 0.0
		for _, w := range words {
			if _, ok := present[w]; !ok {
				continue
			}
			if v, ok := idf[w]; ok {
				score += v
			}
		}
		scores = append(scores, sentenceScore{
			Scored:  domain.Scored{ID: id, Score: score},
			density: float64(len(present)) / float64(len(tokens)),
		})
	})

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })

	// reorder each run of equal scores by density
	for start := 0; start < len(scores); {
		end := start + 1
		for end < len(scores) && scores[end].Score == scores[start].Score {
			end++
		}
		if end-start > 1 {
			group := scores[start:end]
			sort.SliceStable(group, func(i, j int) bool { return group[i].density > group[j].density })
		}
		start = end
	}

	out := make([]domain.Scored, len(scores))
	for i, s := range scores {
		out[i] = s.Scored
	}
	return out
}

// TopSentences returns the n sentences that best match query.
func TopSentences(query domain.Query, sentences *domain.Collection, idf domain.IDFTable, n int) ([]string, error) {
	if err := checkN(n); err != nil {
		return nil, err
	}
	return firstN(RankSentences(query, sentences, idf), n), nil
}
