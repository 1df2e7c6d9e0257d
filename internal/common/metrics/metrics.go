// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_collected_total",
			Help: "Total number of company records collected by source",
		},
		[]string{"source"},
	)

	RecordsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_classified_total",
			Help: "Total number of company records classified by label",
		},
		[]string{"label"},
	)

	ClassificationFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "classification_failed_total",
			Help: "Total number of records that failed classification",
		},
		[]string{"error_code"},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "pipeline_stage_duration_seconds",
			Help: "Duration of pipeline stage processing in seconds",
		},
		[]string{"stage"},
	)

	ExportsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exports_written_total",
			Help: "Total number of report files written by format",
		},
		[]string{"format"},
	)

	ClassificationActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "classification_workers_active",
			Help: "Number of active classification workers",
		},
		[]string{"scoring_mode"},
	)
)
