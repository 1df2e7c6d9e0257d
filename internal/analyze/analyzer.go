// internal/analyze/analyzer.go

// Package analyze runs classification over collected company records and
// turns the verdicts into the distributions, listings, and market insight
// sections of the analysis document.
package analyze

import (
	"context"
	"sync"

	"hkindustry/internal/classify"
	"hkindustry/internal/common/logger"
	"hkindustry/internal/common/metrics"
	"hkindustry/internal/models"
)

// DefaultParallelism bounds the classification workers when the config
// leaves it unset.
const DefaultParallelism = 4

// Analyzer classifies records with a bounded worker pool. A nil cache
// disables memoization.
type Analyzer struct {
	classifier  *classify.Classifier
	cache       *ClassificationCache
	parallelism int
	logger      logger.Logger
}

func NewAnalyzer(classifier *classify.Classifier, cache *ClassificationCache, parallelism int, log logger.Logger) *Analyzer {
	if parallelism < 1 {
		parallelism = DefaultParallelism
	}
	return &Analyzer{
		classifier:  classifier,
		cache:       cache,
		parallelism: parallelism,
		logger:      log.WithFields(map[string]interface{}{"component": "analyzer"}),
	}
}

// Classify labels every record and attaches the confidence score and
// industry codes. The input slice is left untouched; records come back in
// their original order.
func (a *Analyzer) Classify(ctx context.Context, records []models.CompanyRecord) ([]models.CompanyRecord, error) {
	out := make([]models.CompanyRecord, len(records))
	copy(out, records)

	mode := string(a.classifier.ScoringMode())

	sem := make(chan struct{}, a.parallelism)
	var wg sync.WaitGroup

	for i := range out {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		sem <- struct{}{}
		wg.Add(1)
		metrics.ClassificationActive.WithLabelValues(mode).Inc()

		go func(i int) {
			defer func() {
				metrics.ClassificationActive.WithLabelValues(mode).Dec()
				<-sem
				wg.Done()
			}()
			a.classifyRecord(ctx, &out[i])
		}(i)
	}

	wg.Wait()

	a.logger.Info("classification complete", map[string]interface{}{
		"records":     len(out),
		"scoringMode": mode,
		"threshold":   a.classifier.Threshold(),
	})

	return out, nil
}

// classifyRecord writes the verdict into the record in place. The pointer
// target is a slot this worker owns exclusively.
func (a *Analyzer) classifyRecord(ctx context.Context, record *models.CompanyRecord) {
	text := record.ClassificationText()

	var result models.Classification
	if a.cache != nil {
		cached, hit := a.cache.Get(ctx, text)
		if hit {
			result = cached
		} else {
			result = a.classifier.Classify(text)
			a.cache.Set(ctx, text, result)
		}
	} else {
		result = a.classifier.Classify(text)
	}

	codes := classify.IndustryCodes(result.Label)

	record.IndustryClassification = result.Label
	record.ConfidenceScore = result.Confidence
	record.ISICCode = codes.ISICCode
	record.HSICCode = codes.HSICCode

	metrics.RecordsClassified.WithLabelValues(result.Label).Inc()
}
