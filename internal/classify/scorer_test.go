// internal/classify/scorer_test.go
package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorer_EmptyInputsScoreZero(t *testing.T) {
	tests := []struct {
		name     string
		mode     ScoringMode
		keywords []string
		text     string
	}{
		{name: "token-overlap empty keywords", mode: ScoringTokenOverlap, keywords: nil, text: "biotech research"},
		{name: "token-overlap empty text", mode: ScoringTokenOverlap, keywords: []string{"biotech"}, text: ""},
		{name: "phrase-coverage empty keywords", mode: ScoringPhraseCoverage, keywords: nil, text: "biotech research"},
		{name: "phrase-coverage empty text", mode: ScoringPhraseCoverage, keywords: []string{"biotech"}, text: ""},
		{name: "both sides empty", mode: ScoringTokenOverlap, keywords: nil, text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewScorer(tt.mode, tt.keywords)
			assert.Zero(t, scorer.Score(Normalize(tt.text)))
		})
	}
}

func TestScorer_TokenOverlap_MatchRatio(t *testing.T) {
	scorer := NewScorer(ScoringTokenOverlap, []string{"biotech"})

	// 3 tokens, 1 match
	score := scorer.Score(Normalize("biotech logistics warehouse"))

	assert.InDelta(t, 1.0/3.0, score, 1e-9)
}

func TestScorer_TokenOverlap_TokenCountsOnce(t *testing.T) {
	// Both keywords match the single token; it still counts once.
	scorer := NewScorer(ScoringTokenOverlap, []string{"biotech", "biotechnology"})

	score := scorer.Score(Normalize("biotechnology"))

	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScorer_TokenOverlap_TwoWaySubstring(t *testing.T) {
	scorer := NewScorer(ScoringTokenOverlap, []string{"IP law"})

	// "law" is a substring of the normalized phrase "ip law": 1 of 2 tokens.
	score := scorer.Score(Normalize("law services"))

	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestScorer_PhraseCoverage_FullAndPartial(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		text     string
		expected float64
	}{
		{
			name:     "all phrases covered",
			keywords: []string{"clinical trial", "biotech"},
			text:     "clinical trials in biotech",
			expected: 1.0, // 2/2
		},
		{
			name:     "partial coverage",
			keywords: []string{"clinical trial", "biotech", "vaccine"},
			text:     "clinical trials in biotech",
			expected: 2.0 / 3.0,
		},
		{
			name:     "no coverage",
			keywords: []string{"patent licensing"},
			text:     "seafood wholesale",
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewScorer(ScoringPhraseCoverage, tt.keywords)
			assert.InDelta(t, tt.expected, scorer.Score(Normalize(tt.text)), 1e-9)
		})
	}
}

func TestScorer_PhraseCoverage_DenominatorIsConfiguredCount(t *testing.T) {
	// The blank phrase normalizes away but still counts in the denominator.
	scorer := NewScorer(ScoringPhraseCoverage, []string{"biotech", "   "})

	score := scorer.Score(Normalize("biotech"))

	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestScorer_MonotonicUnderAddedKeyword(t *testing.T) {
	scorer := NewScorer(ScoringTokenOverlap, DefaultMedicalKeywords)

	neutral := "import export consumer goods electronics"
	base := scorer.Score(Normalize(neutral))
	extended := scorer.Score(Normalize(neutral + " biotech"))

	assert.GreaterOrEqual(t, extended, base)
	assert.Greater(t, extended, 0.0)
}

func TestScorer_ScoreBounds(t *testing.T) {
	descriptions := []string{
		"Clinical research and pharmaceutical development focusing on cancer therapeutics and immunology",
		"Patent licensing and intellectual property brokerage services for technology transfer",
		"Import and export of consumer goods and electronics",
		"biotech biotech biotech",
		"",
	}

	for _, mode := range []ScoringMode{ScoringTokenOverlap, ScoringPhraseCoverage} {
		for _, set := range [][]string{DefaultMedicalKeywords, DefaultPatentKeywords} {
			scorer := NewScorer(mode, set)
			for _, description := range descriptions {
				score := scorer.Score(Normalize(description))
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 1.0)
			}
		}
	}
}

func BenchmarkScorer_TokenOverlap(b *testing.B) {
	scorer := NewScorer(ScoringTokenOverlap, DefaultMedicalKeywords)
	tokens := Normalize("Clinical research and pharmaceutical development focusing on cancer therapeutics, immunology and medical device innovation for Hong Kong hospitals")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scorer.Score(tokens)
	}
}

func BenchmarkScorer_PhraseCoverage(b *testing.B) {
	scorer := NewScorer(ScoringPhraseCoverage, DefaultPatentKeywords)
	tokens := Normalize("Patent licensing and intellectual property brokerage services, technology transfer and patent portfolio management for research institutions")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scorer.Score(tokens)
	}
}
