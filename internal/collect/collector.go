// internal/collect/collector.go

// Package collect gathers company records from the configured Hong Kong
// datasets and validates every record at the boundary before it enters
// the analysis pipeline.
package collect

import (
	"context"

	"hkindustry/internal/common/config"
	"hkindustry/internal/common/errors"
	"hkindustry/internal/common/logger"
	"hkindustry/internal/common/metrics"
	"hkindustry/internal/common/validation"
	"hkindustry/internal/models"
)

// Source supplies company records from one upstream dataset.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]models.CompanyRecord, error)
}

// Source names double as config keys under sources: and as the label on
// the records_collected metric.
const (
	SourceSciencePark       = "science_park"
	SourcePatentFirms       = "patent_firms"
	SourceCompaniesRegistry = "companies_registry"
	SourceTradeDirectory    = "trade_directory"
)

// NewDefaultSources builds the built-in sources in collection order.
func NewDefaultSources(cfg *config.Config) []Source {
	return []Source{
		NewSciencePark(),
		NewPatentFirms(),
		NewCompaniesRegistry(),
		NewTradeDirectory(cfg.Collection),
	}
}

// Collector fetches from every enabled source, drops records that fail
// schema validation, and returns the merged result.
type Collector struct {
	config  *config.Config
	sources []Source
	logger  logger.Logger
}

func NewCollector(cfg *config.Config, sources []Source, log logger.Logger) *Collector {
	return &Collector{
		config:  cfg,
		sources: sources,
		logger:  log.WithFields(map[string]interface{}{"component": "collector"}),
	}
}

// Collect fetches all enabled sources. A failing source is logged and
// skipped so the remaining sources still contribute; only an empty
// overall result is an error.
func (c *Collector) Collect(ctx context.Context) ([]models.CompanyRecord, error) {
	var collected []models.CompanyRecord

	for _, source := range c.sources {
		if !config.IsSourceEnabled(c.config, source.Name()) {
			c.logger.Info("source disabled, skipping", map[string]interface{}{
				"source": source.Name(),
			})
			continue
		}

		records, err := c.fetchSource(ctx, source)
		if err != nil {
			c.logger.WithError(err).Error("source fetch failed", map[string]interface{}{
				"source": source.Name(),
			})
			continue
		}

		valid := c.validateRecords(source.Name(), records)
		metrics.RecordsCollected.WithLabelValues(source.Name()).Add(float64(len(valid)))
		collected = append(collected, valid...)

		c.logger.Info("source collected", map[string]interface{}{
			"source":  source.Name(),
			"records": len(valid),
			"dropped": len(records) - len(valid),
		})
	}

	if len(collected) == 0 {
		return nil, errors.NewNoRecordsCollectedError("all sources disabled, failed, or empty")
	}

	return collected, nil
}

func (c *Collector) fetchSource(ctx context.Context, source Source) ([]models.CompanyRecord, error) {
	sourceCfg := config.GetSourceConfig(c.config, source.Name())

	fetchCtx, cancel := context.WithTimeout(ctx, config.GetDuration(sourceCfg.Timeout))
	defer cancel()

	records, err := source.Fetch(fetchCtx)
	if err != nil {
		if fetchCtx.Err() == context.DeadlineExceeded {
			return nil, errors.NewSourceTimeoutError(source.Name())
		}
		return nil, errors.NewSourceFetchFailedError(source.Name(), err)
	}

	return records, nil
}

// validateRecords drops invalid records with a warning rather than
// failing the whole collection.
func (c *Collector) validateRecords(sourceName string, records []models.CompanyRecord) []models.CompanyRecord {
	valid := make([]models.CompanyRecord, 0, len(records))

	for _, record := range records {
		result, err := validation.ValidateRecord(record)
		if err != nil {
			c.logger.WithError(err).Warn("record validation errored, dropping record", map[string]interface{}{
				"source": sourceName,
				"name":   record.Name,
			})
			continue
		}
		if !result.Valid {
			c.logger.Warn("record failed schema validation, dropping record", map[string]interface{}{
				"source": sourceName,
				"name":   record.Name,
				"errors": result.GetErrorMessages(),
			})
			continue
		}
		valid = append(valid, record)
	}

	return valid
}
