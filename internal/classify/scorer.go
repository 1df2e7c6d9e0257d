// internal/classify/scorer.go
package classify

import "strings"

// ScoringMode selects the keyword match strategy.
type ScoringMode string

const (
	// ScoringTokenOverlap scores the fraction of description tokens that
	// match any keyword by two-way substring containment.
	ScoringTokenOverlap ScoringMode = "token-overlap"

	// ScoringPhraseCoverage scores the fraction of keyword phrases whose
	// normalized form occurs in the space-joined token string.
	ScoringPhraseCoverage ScoringMode = "phrase-coverage"
)

// Scorer computes the match ratio of normalized token sequences against one
// keyword set. Keyword phrases are normalized once at construction; Score is
// pure and safe for concurrent use.
type Scorer struct {
	mode       ScoringMode
	normalized []string
	total      int // original phrase count, the phrase-coverage denominator
}

// NewScorer builds a scorer over the raw keyword phrases. An empty keyword
// set is legal and always scores zero.
func NewScorer(mode ScoringMode, keywords []string) *Scorer {
	normalized := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if nk := NormalizePhrase(keyword); nk != "" {
			normalized = append(normalized, nk)
		}
	}

	return &Scorer{
		mode:       mode,
		normalized: normalized,
		total:      len(keywords),
	}
}

// Score returns the match ratio in [0,1]; it is 0 when either the token
// sequence or the keyword set is empty.
func (s *Scorer) Score(tokens []string) float64 {
	if len(tokens) == 0 || s.total == 0 || len(s.normalized) == 0 {
		return 0.0
	}

	if s.mode == ScoringPhraseCoverage {
		return s.phraseCoverage(tokens)
	}
	return s.tokenOverlap(tokens)
}

// tokenOverlap counts tokens that match at least one keyword, each token
// contributing at most one match, over the total token count.
func (s *Scorer) tokenOverlap(tokens []string) float64 {
	matches := 0
	for _, token := range tokens {
		for _, keyword := range s.normalized {
			if strings.Contains(token, keyword) || strings.Contains(keyword, token) {
				matches++
				break
			}
		}
	}

	return float64(matches) / float64(len(tokens))
}

// phraseCoverage counts keyword phrases found in the joined token string
// over the total number of configured phrases.
func (s *Scorer) phraseCoverage(tokens []string) float64 {
	joined := strings.Join(tokens, " ")

	matched := 0
	for _, keyword := range s.normalized {
		if strings.Contains(joined, keyword) {
			matched++
		}
	}

	return float64(matched) / float64(s.total)
}
