// internal/classify/classifier_test.go
package classify

import (
	"testing"

	"hkindustry/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func newDefaultClassifier() *Classifier {
	return NewClassifier(Config{
		MedicalKeywords: DefaultMedicalKeywords,
		PatentKeywords:  DefaultPatentKeywords,
	})
}

// ==========================
// Core Functionality Tests
// ==========================

func TestClassifier_EmptyDescription(t *testing.T) {
	classifier := newDefaultClassifier()

	for _, text := range []string{"", "   ", "\t\n  "} {
		result := classifier.Classify(text)

		assert.Equal(t, models.LabelUnknown, result.Label, "input %q", text)
		assert.Zero(t, result.Confidence, "input %q", text)
	}
}

func TestClassifier_EndToEndScenarios(t *testing.T) {
	tests := []struct {
		name          string
		description   string
		expectedLabel string
	}{
		{
			name:          "medical research description",
			description:   "Clinical research and pharmaceutical development focusing on cancer therapeutics and immunology",
			expectedLabel: models.LabelMedicalRD,
		},
		{
			name:          "patent brokerage description",
			description:   "Patent licensing and intellectual property brokerage services for technology transfer",
			expectedLabel: models.LabelPatentBrokerage,
		},
	}

	classifier := newDefaultClassifier()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Classify(tt.description)

			assert.Equal(t, tt.expectedLabel, result.Label)
			assert.Greater(t, result.Confidence, 0.1)
			assert.LessOrEqual(t, result.Confidence, 1.0)
		})
	}
}

func TestClassifier_NoKeywordOverlap(t *testing.T) {
	classifier := newDefaultClassifier()

	result := classifier.Classify("Import and export of consumer goods and electronics")

	assert.Equal(t, models.LabelOther, result.Label)
	assert.InDelta(t, 0.0, result.Confidence, 1e-9)
}

func TestClassifier_ThresholdBoundary(t *testing.T) {
	// 10 surviving tokens with exactly one keyword match: score 1/10 equals
	// the 0.1 threshold, and the comparison is strict, so the record stays
	// in "other".
	description := "biotech logistics warehouse freight shipping customs cargo trucking seafood wholesale"

	atThreshold := NewClassifier(Config{
		MedicalKeywords: DefaultMedicalKeywords,
		PatentKeywords:  DefaultPatentKeywords,
		Threshold:       0.1,
	})
	result := atThreshold.Classify(description)

	assert.Equal(t, models.LabelOther, result.Label)
	assert.InDelta(t, 0.1, result.Confidence, 1e-12)

	// Below the score, the same description crosses into medical_rd.
	belowScore := NewClassifier(Config{
		MedicalKeywords: DefaultMedicalKeywords,
		PatentKeywords:  DefaultPatentKeywords,
		Threshold:       0.09,
	})
	result = belowScore.Classify(description)

	assert.Equal(t, models.LabelMedicalRD, result.Label)
	assert.InDelta(t, 0.1, result.Confidence, 1e-12)
}

func TestClassifier_Idempotence(t *testing.T) {
	classifier := newDefaultClassifier()
	description := "Clinical research and pharmaceutical development focusing on cancer therapeutics and immunology"

	first := classifier.Classify(description)
	second := classifier.Classify(description)

	assert.Equal(t, first, second)
}

func TestClassifier_ComparisonModes(t *testing.T) {
	// "vaccine patent" scores 0.5 for both categories. Dominance demands a
	// strictly greater score, so the tie lands in "other"; threshold-only
	// lets the patent branch win on its threshold check alone.
	description := "vaccine patent"

	dominance := NewClassifier(Config{
		MedicalKeywords: DefaultMedicalKeywords,
		PatentKeywords:  DefaultPatentKeywords,
		ComparisonMode:  ComparisonDominance,
	})
	result := dominance.Classify(description)

	assert.Equal(t, models.LabelOther, result.Label)
	assert.InDelta(t, 0.5, result.Confidence, 1e-9)

	thresholdOnly := NewClassifier(Config{
		MedicalKeywords: DefaultMedicalKeywords,
		PatentKeywords:  DefaultPatentKeywords,
		ComparisonMode:  ComparisonThresholdOnly,
	})
	result = thresholdOnly.Classify(description)

	assert.Equal(t, models.LabelPatentBrokerage, result.Label)
	assert.InDelta(t, 0.5, result.Confidence, 1e-9)
}

func TestClassifier_PhraseCoverageMode(t *testing.T) {
	classifier := NewClassifier(Config{
		MedicalKeywords: DefaultMedicalKeywords,
		PatentKeywords:  DefaultPatentKeywords,
		ScoringMode:     ScoringPhraseCoverage,
	})

	result := classifier.Classify("Patent licensing and intellectual property brokerage services for technology transfer")

	// 3 of the 16 patent phrases occur in the normalized text: patent
	// licensing, intellectual property, technology transfer.
	assert.Equal(t, models.LabelPatentBrokerage, result.Label)
	assert.InDelta(t, 3.0/16.0, result.Confidence, 1e-9)
}

func TestClassifier_HigherThresholdSuppressesWeakMatches(t *testing.T) {
	// One medical keyword among ten tokens scores 0.1, which a 0.3
	// threshold filters into "other".
	classifier := NewClassifier(Config{
		MedicalKeywords: DefaultMedicalKeywords,
		PatentKeywords:  DefaultPatentKeywords,
		Threshold:       0.3,
	})

	result := classifier.Classify("biotech logistics warehouse freight shipping customs cargo trucking seafood wholesale")

	assert.Equal(t, models.LabelOther, result.Label)
	assert.InDelta(t, 0.1, result.Confidence, 1e-12)
}

func TestClassifier_EmptyKeywordSets(t *testing.T) {
	classifier := NewClassifier(Config{})

	result := classifier.Classify("biotech research")

	assert.Equal(t, models.LabelOther, result.Label)
	assert.Zero(t, result.Confidence)
}

func TestClassifier_ConfidenceBounds(t *testing.T) {
	classifier := newDefaultClassifier()

	descriptions := []string{
		"",
		"...",
		"biotech",
		"biotech biotech biotech biotech",
		"Clinical research and pharmaceutical development focusing on cancer therapeutics and immunology",
		"Patent licensing and intellectual property brokerage services for technology transfer",
		"Import and export of consumer goods and electronics",
	}

	for _, description := range descriptions {
		result := classifier.Classify(description)
		assert.GreaterOrEqual(t, result.Confidence, 0.0)
		assert.LessOrEqual(t, result.Confidence, 1.0)
	}
}

func BenchmarkClassifier_Classify(b *testing.B) {
	classifier := newDefaultClassifier()
	description := "Clinical research organization providing pharmaceutical development, biotech consulting and medical device trials across Hong Kong Science Park"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		classifier.Classify(description)
	}
}
