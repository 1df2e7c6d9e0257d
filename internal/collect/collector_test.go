// internal/collect/collector_test.go
package collect

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hkindustry/internal/common/config"
	"hkindustry/internal/common/errors"
	"hkindustry/internal/common/logger"
	"hkindustry/internal/models"
)

// stubSource lets tests inject records or failures.
type stubSource struct {
	name    string
	records []models.CompanyRecord
	err     error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Fetch(_ context.Context) ([]models.CompanyRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func newTestCollector(t *testing.T, cfg *config.Config, sources []Source) *Collector {
	t.Helper()
	return NewCollector(cfg, sources, logger.NewTestLogger(t))
}

// ==========================================
// FULL COLLECTION
// ==========================================

func TestCollect_AllDefaultSources(t *testing.T) {
	cfg := &config.Config{}
	collector := newTestCollector(t, cfg, NewDefaultSources(cfg))

	records, err := collector.Collect(context.Background())

	require.NoError(t, err)
	// 3 science park + 3 patent firms + 2 registry + 24 trade directory
	require.Len(t, records, 32)

	bySource := map[string]int{}
	byCategory := map[string]int{}
	for _, record := range records {
		bySource[record.Source]++
		byCategory[record.Category]++
		assert.NotEmpty(t, record.Name)
		assert.NotEmpty(t, record.Source)
	}

	assert.Equal(t, 3, bySource[SourceSciencePark])
	assert.Equal(t, 3, bySource[SourcePatentFirms])
	assert.Equal(t, 2, bySource[SourceCompaniesRegistry])
	assert.Equal(t, 24, bySource["hktdc"])
	assert.Equal(t, 16, byCategory["medical"])
	assert.Equal(t, 16, byCategory["patent"])
}

func TestCollect_PreservesSourceOrder(t *testing.T) {
	cfg := &config.Config{}
	collector := newTestCollector(t, cfg, NewDefaultSources(cfg))

	records, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 32)

	assert.Equal(t, "HKSTP Biotech Accelerator", records[0].Name)
	assert.Equal(t, "Rouse Hong Kong", records[3].Name)
	assert.Equal(t, "Hong Kong Biotechnology Research Institute", records[6].Name)
	assert.Equal(t, "Technology Transfer Hub", records[31].Name)
}

// ==========================================
// SOURCE TOGGLES AND FAILURES
// ==========================================

func TestCollect_SkipsDisabledSource(t *testing.T) {
	cfg := &config.Config{
		Sources: map[string]config.SourceConfig{
			SourceSciencePark: {Enabled: false, Timeout: 10000},
		},
	}
	collector := newTestCollector(t, cfg, NewDefaultSources(cfg))

	records, err := collector.Collect(context.Background())

	require.NoError(t, err)
	// 32 total minus the 3 science park tenants
	assert.Len(t, records, 29)
	for _, record := range records {
		assert.NotEqual(t, SourceSciencePark, record.Source)
	}
}

func TestCollect_ContinuesPastFailingSource(t *testing.T) {
	cfg := &config.Config{}
	sources := []Source{
		stubSource{name: "broken_feed", err: fmt.Errorf("connection refused")},
		NewCompaniesRegistry(),
	}
	collector := newTestCollector(t, cfg, sources)

	records, err := collector.Collect(context.Background())

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, SourceCompaniesRegistry, records[0].Source)
}

func TestCollect_NoRecordsIsAnError(t *testing.T) {
	cfg := &config.Config{
		Sources: map[string]config.SourceConfig{
			"broken_feed": {Enabled: true, Timeout: 10000},
		},
	}
	collector := newTestCollector(t, cfg, []Source{
		stubSource{name: "broken_feed", err: fmt.Errorf("connection refused")},
	})

	records, err := collector.Collect(context.Background())

	require.Error(t, err)
	assert.Nil(t, records)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNoRecordsCollected, stdErr.Code)
	assert.False(t, stdErr.Retryable)
}

func TestCollect_AllSourcesDisabled(t *testing.T) {
	cfg := &config.Config{
		Sources: map[string]config.SourceConfig{
			SourceSciencePark:       {Enabled: false},
			SourcePatentFirms:       {Enabled: false},
			SourceCompaniesRegistry: {Enabled: false},
			SourceTradeDirectory:    {Enabled: false},
		},
	}
	collector := newTestCollector(t, cfg, NewDefaultSources(cfg))

	_, err := collector.Collect(context.Background())

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNoRecordsCollected, stdErr.Code)
}

// ==========================================
// BOUNDARY VALIDATION
// ==========================================

func TestCollect_DropsRecordsFailingValidation(t *testing.T) {
	cfg := &config.Config{}
	sources := []Source{
		stubSource{
			name: "dirty_feed",
			records: []models.CompanyRecord{
				{Name: "Valid Biotech Ltd", Source: "dirty_feed", Description: "biotech research"},
				{Name: "", Source: "dirty_feed", Description: "missing name"},
				{Name: "No Source Ltd", Source: "", Description: "missing source tag"},
			},
		},
	}
	collector := newTestCollector(t, cfg, sources)

	records, err := collector.Collect(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Valid Biotech Ltd", records[0].Name)
}

func TestCollect_DefaultDatasetsPassValidation(t *testing.T) {
	cfg := &config.Config{}
	collector := newTestCollector(t, cfg, NewDefaultSources(cfg))

	records, err := collector.Collect(context.Background())

	require.NoError(t, err)
	// Nothing in the built-in datasets should be dropped.
	assert.Len(t, records, 32)
}
