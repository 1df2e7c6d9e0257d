// cmd/hkindustry/classifier.go
package main

import (
	"fmt"

	"hkindustry/internal/classify"
	"hkindustry/internal/common/config"
	"hkindustry/internal/common/errors"
	"hkindustry/pkg/keywords"
)

// buildClassifier constructs the classifier from the resolved keyword sets
// and the analysis settings.
func buildClassifier(cfg *config.Config) (*classify.Classifier, error) {
	medical, patent, err := resolveKeywords(cfg)
	if err != nil {
		return nil, err
	}

	return classify.NewClassifier(classify.Config{
		MedicalKeywords: medical,
		PatentKeywords:  patent,
		Threshold:       cfg.Analysis.Threshold,
		ScoringMode:     classify.ScoringMode(cfg.Analysis.ScoringMode),
		ComparisonMode:  classify.ComparisonMode(cfg.Analysis.ComparisonMode),
	}), nil
}

// resolveKeywords picks the keyword set for each category. Precedence:
// explicit config lists, then the JSON keyword registry, then the built-in
// defaults. A registry category that declares zero keywords is a
// configuration error even when the config overrides it.
func resolveKeywords(cfg *config.Config) ([]string, []string, error) {
	medical := cfg.Keywords.Medical
	patent := cfg.Keywords.Patent

	if path := cfg.Keywords.RegistryPath; path != "" {
		reg, err := keywords.LoadRegistry(path)
		if err != nil {
			return nil, nil, errors.NewInvalidAnalysisConfigError(
				fmt.Sprintf("keyword registry %s: %v", path, err))
		}

		if category, ok := reg.Category(keywords.CategoryMedical); ok {
			if len(category.Keywords) == 0 {
				return nil, nil, errors.NewEmptyKeywordSetError(keywords.CategoryMedical)
			}
			if len(medical) == 0 {
				medical = category.Keywords
			}
		}
		if category, ok := reg.Category(keywords.CategoryPatent); ok {
			if len(category.Keywords) == 0 {
				return nil, nil, errors.NewEmptyKeywordSetError(keywords.CategoryPatent)
			}
			if len(patent) == 0 {
				patent = category.Keywords
			}
		}
	}

	if len(medical) == 0 {
		medical = classify.DefaultMedicalKeywords
	}
	if len(patent) == 0 {
		patent = classify.DefaultPatentKeywords
	}

	return medical, patent, nil
}
