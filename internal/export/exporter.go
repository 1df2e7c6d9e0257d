// internal/export/exporter.go

// Package export renders the analysis document into the configured report
// formats: JSON results, the Excel workbook, the Markdown slide deck, the
// executive summary, and the distribution charts.
package export

import (
	"context"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"hkindustry/internal/common/config"
	"hkindustry/internal/common/errors"
	"hkindustry/internal/common/logger"
	"hkindustry/internal/common/metrics"
	"hkindustry/internal/models"
)

// Format names accepted in export.formats.
const (
	FormatJSON    = "json"
	FormatExcel   = "excel"
	FormatSlides  = "slides"
	FormatSummary = "summary"
	FormatCharts  = "charts"
)

// Artifact is one written report file.
type Artifact struct {
	Format string
	Path   string
}

// Exporter writes report files into the configured output directory.
type Exporter struct {
	cfg    config.ExportConfig
	logger logger.Logger
}

func New(cfg config.ExportConfig, log logger.Logger) *Exporter {
	return &Exporter{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "exporter"}),
	}
}

// Export renders every configured format. The first failing format aborts
// the export; everything written so far is reported in the artifacts.
func (e *Exporter) Export(ctx context.Context, results models.AnalysisResults, records []models.CompanyRecord, generatedAt time.Time) ([]Artifact, error) {
	if err := os.MkdirAll(e.cfg.OutputDir, 0o755); err != nil {
		return nil, errors.NewExportWriteFailedError(e.cfg.OutputDir, err)
	}

	var artifacts []Artifact
	for _, format := range e.cfg.Formats {
		if err := ctx.Err(); err != nil {
			return artifacts, err
		}

		path, err := e.exportFormat(format, results, records, generatedAt)
		if err != nil {
			return artifacts, err
		}
		if path == "" {
			continue
		}

		metrics.ExportsWritten.WithLabelValues(format).Inc()
		artifacts = append(artifacts, Artifact{Format: format, Path: path})
		e.logger.Info("report written", map[string]interface{}{
			"format": format,
			"path":   path,
		})
	}

	return artifacts, nil
}

func (e *Exporter) exportFormat(format string, results models.AnalysisResults, records []models.CompanyRecord, generatedAt time.Time) (string, error) {
	switch format {
	case FormatJSON:
		return e.writeJSON(results, generatedAt)
	case FormatExcel:
		return e.writeExcel(records, results, generatedAt)
	case FormatSlides:
		return e.writeSlides(results, generatedAt)
	case FormatSummary:
		return e.writeSummary(results, generatedAt)
	case FormatCharts:
		return e.writeCharts(results, generatedAt)
	default:
		e.logger.Warn("unknown export format, skipping", map[string]interface{}{
			"format": format,
		})
		return "", nil
	}
}

// labelTitle renders a classification label for display, e.g.
// "medical_rd" becomes "Medical Rd".
func labelTitle(label string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(label, "_", " "))
}
