// internal/pipeline/pipeline.go

// Package pipeline wires collection, classification, report assembly,
// export, and persistence into the end-to-end analysis run.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hkindustry/internal/analyze"
	"hkindustry/internal/collect"
	"hkindustry/internal/common/config"
	"hkindustry/internal/common/errors"
	"hkindustry/internal/common/logger"
	"hkindustry/internal/common/metrics"
	"hkindustry/internal/common/observability"
	"hkindustry/internal/export"
	"hkindustry/internal/models"
	"hkindustry/internal/store"
)

// Stage names used in logs and metrics labels.
const (
	StageCollect  = "collect"
	StageClassify = "classify"
	StageReport   = "report"
	StageExport   = "export"
	StagePersist  = "persist"
)

// RunResult is everything one completed run produced.
type RunResult struct {
	RunID     string
	Results   models.AnalysisResults
	Records   []models.CompanyRecord
	Artifacts []export.Artifact
	Duration  time.Duration
}

// Pipeline executes analysis runs. Store and observability are optional;
// a nil store skips persistence entirely.
type Pipeline struct {
	cfg          *config.Config
	collector    *collect.Collector
	analyzer     *analyze.Analyzer
	exporter     *export.Exporter
	store        *store.Store
	obs          *observability.Observability
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func New(
	cfg *config.Config,
	collector *collect.Collector,
	analyzer *analyze.Analyzer,
	exporter *export.Exporter,
	st *store.Store,
	obs *observability.Observability,
	log logger.Logger,
) *Pipeline {
	return &Pipeline{
		cfg:          cfg,
		collector:    collector,
		analyzer:     analyzer,
		exporter:     exporter,
		store:        st,
		obs:          obs,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log.WithFields(map[string]interface{}{"component": "pipeline"}),
	}
}

// Run executes one complete analysis. The first failing stage aborts the
// run with its normalized error.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	runID := uuid.New().String()
	startedAt := time.Now()

	log := p.logger.WithFields(map[string]interface{}{"runId": runID})
	log.Info("analysis run starting", map[string]interface{}{
		"scoringMode":    p.cfg.Analysis.ScoringMode,
		"comparisonMode": p.cfg.Analysis.ComparisonMode,
		"threshold":      p.cfg.Analysis.Threshold,
	})

	if p.store != nil {
		err := p.store.BeginRun(ctx, runID, startedAt, p.cfg.Analysis.ScoringMode, p.cfg.Analysis.Threshold)
		if err != nil {
			return nil, p.errorHandler.HandleStageError(StagePersist, err)
		}
	}

	var records []models.CompanyRecord
	if err := p.timeStage(ctx, StageCollect, func() error {
		var stageErr error
		records, stageErr = p.collector.Collect(ctx)
		return stageErr
	}); err != nil {
		return nil, err
	}

	var classified []models.CompanyRecord
	if err := p.timeStage(ctx, StageClassify, func() error {
		var stageErr error
		classified, stageErr = p.analyzer.Classify(ctx, records)
		return stageErr
	}); err != nil {
		return nil, err
	}

	if p.obs != nil {
		for _, record := range classified {
			p.obs.RecordProcessed(ctx, record.IndustryClassification)
		}
	}

	var results models.AnalysisResults
	if err := p.timeStage(ctx, StageReport, func() error {
		results = analyze.BuildResults(classified, runID, startedAt)
		return nil
	}); err != nil {
		return nil, err
	}

	var artifacts []export.Artifact
	if err := p.timeStage(ctx, StageExport, func() error {
		var stageErr error
		artifacts, stageErr = p.exporter.Export(ctx, results, classified, startedAt)
		return stageErr
	}); err != nil {
		return nil, err
	}

	if p.store != nil {
		if err := p.timeStage(ctx, StagePersist, func() error {
			if err := p.store.SaveCompanies(ctx, runID, classified); err != nil {
				return err
			}
			return p.store.CompleteRun(ctx, runID, time.Now(), results.Summary)
		}); err != nil {
			return nil, err
		}
	}

	duration := time.Since(startedAt)
	log.Info("analysis run complete", map[string]interface{}{
		"totalCompanies":  results.Summary.TotalCompaniesAnalyzed,
		"medicalRd":       results.Summary.MedicalRDCompanies,
		"patentBrokerage": results.Summary.PatentBrokerageCompanies,
		"artifacts":       len(artifacts),
		"durationMs":      duration.Milliseconds(),
	})

	return &RunResult{
		RunID:     runID,
		Results:   results,
		Records:   classified,
		Artifacts: artifacts,
		Duration:  duration,
	}, nil
}

// timeStage runs one stage, records its duration, and normalizes any
// failure through the error handler.
func (p *Pipeline) timeStage(ctx context.Context, stage string, fn func() error) error {
	start := time.Now()
	err := fn()
	duration := time.Since(start)

	metrics.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
	if p.obs != nil {
		p.obs.RecordStageDuration(ctx, duration, stage)
	}

	if err != nil {
		return p.errorHandler.HandleStageError(stage, err)
	}

	p.logger.Debug("stage complete", map[string]interface{}{
		"stage":      stage,
		"durationMs": duration.Milliseconds(),
	})
	return nil
}
