// internal/classify/classifier.go

// Package classify implements the keyword-overlap industry classifier:
// description text is normalized to stemmed tokens, scored against the two
// target-industry keyword sets, and assigned a label by a configurable
// threshold rule. Confidence is a match ratio in [0,1], not a probability.
package classify

import (
	"math"
	"strings"

	"hkindustry/internal/models"
)

// ComparisonMode selects how the two category scores compete for the label.
type ComparisonMode string

const (
	// ComparisonDominance requires the winning score to strictly exceed
	// both the other category's score and the threshold.
	ComparisonDominance ComparisonMode = "dominance"

	// ComparisonThresholdOnly keeps the strict dominance requirement for
	// the medical branch but lets patent_brokerage win on the threshold
	// check alone.
	ComparisonThresholdOnly ComparisonMode = "threshold-only"
)

// DefaultThreshold is the minimum score a category must strictly exceed for
// a record to leave "other".
const DefaultThreshold = 0.1

// Config holds the immutable classification settings. The zero value of
// each field falls back to the documented default.
type Config struct {
	MedicalKeywords []string
	PatentKeywords  []string
	Threshold       float64
	ScoringMode     ScoringMode
	ComparisonMode  ComparisonMode
}

// Classifier assigns industry labels to company description text. It is
// immutable after construction and safe for concurrent use.
type Classifier struct {
	medical   *Scorer
	patent    *Scorer
	threshold float64
	scoring   ScoringMode
	mode      ComparisonMode
}

// NewClassifier precomputes the normalized keyword forms for both category
// sets. Empty keyword sets are legal; they simply never score.
func NewClassifier(cfg Config) *Classifier {
	mode := cfg.ScoringMode
	if mode == "" {
		mode = ScoringTokenOverlap
	}

	comparison := cfg.ComparisonMode
	if comparison == "" {
		comparison = ComparisonDominance
	}

	threshold := cfg.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	return &Classifier{
		medical:   NewScorer(mode, cfg.MedicalKeywords),
		patent:    NewScorer(mode, cfg.PatentKeywords),
		threshold: threshold,
		scoring:   mode,
		mode:      comparison,
	}
}

// Classify assigns a label and confidence to raw description text. Empty or
// whitespace-only input degrades to ("unknown", 0.0); it never fails on
// malformed text.
func (c *Classifier) Classify(text string) models.Classification {
	if strings.TrimSpace(text) == "" {
		return models.Classification{Label: models.LabelUnknown, Confidence: 0.0}
	}

	tokens := Normalize(text)
	medicalScore := c.medical.Score(tokens)
	patentScore := c.patent.Score(tokens)

	if medicalScore > patentScore && medicalScore > c.threshold {
		return models.Classification{Label: models.LabelMedicalRD, Confidence: medicalScore}
	}

	switch c.mode {
	case ComparisonThresholdOnly:
		if patentScore > c.threshold {
			return models.Classification{Label: models.LabelPatentBrokerage, Confidence: patentScore}
		}
	default:
		if patentScore > medicalScore && patentScore > c.threshold {
			return models.Classification{Label: models.LabelPatentBrokerage, Confidence: patentScore}
		}
	}

	return models.Classification{
		Label:      models.LabelOther,
		Confidence: math.Max(medicalScore, patentScore),
	}
}

// Threshold reports the configured decision threshold.
func (c *Classifier) Threshold() float64 {
	return c.threshold
}

// ScoringMode reports the configured scoring variant.
func (c *Classifier) ScoringMode() ScoringMode {
	return c.scoring
}

// ComparisonMode reports the configured label decision rule.
func (c *Classifier) ComparisonMode() ComparisonMode {
	return c.mode
}
