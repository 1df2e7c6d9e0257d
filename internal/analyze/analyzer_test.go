// internal/analyze/analyzer_test.go
package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hkindustry/internal/classify"
	"hkindustry/internal/common/logger"
	"hkindustry/internal/models"
)

func newTestAnalyzer(t *testing.T, cache *ClassificationCache, parallelism int) *Analyzer {
	t.Helper()
	classifier := classify.NewClassifier(classify.Config{
		MedicalKeywords: classify.DefaultMedicalKeywords,
		PatentKeywords:  classify.DefaultPatentKeywords,
	})
	return NewAnalyzer(classifier, cache, parallelism, logger.NewTestLogger(t))
}

// ==========================================
// CLASSIFICATION
// ==========================================

func TestClassify_AttachesVerdicts(t *testing.T) {
	analyzer := newTestAnalyzer(t, nil, 2)

	records := []models.CompanyRecord{
		{Name: "Medical Co", Description: "biotech", Source: "test"},
		{Name: "Patent Co", Description: "patent licensing", Source: "test"},
		{Name: "Noodle Co", Description: "noodle restaurant wonton", Source: "test"},
		{Name: "Silent Co", Source: "test"}, // no description at all
	}

	classified, err := analyzer.Classify(context.Background(), records)

	require.NoError(t, err)
	require.Len(t, classified, 4)

	// "biotech" is the only token and matches one medical keyword: 1/1
	assert.Equal(t, models.LabelMedicalRD, classified[0].IndustryClassification)
	assert.InDelta(t, 1.0, classified[0].ConfidenceScore, 1e-9)
	assert.Equal(t, "7210", classified[0].ISICCode)
	assert.Equal(t, "7210.2", classified[0].HSICCode)

	// both tokens sit inside the "patent licensing" keyword: 2/2
	assert.Equal(t, models.LabelPatentBrokerage, classified[1].IndustryClassification)
	assert.InDelta(t, 1.0, classified[1].ConfidenceScore, 1e-9)
	assert.Equal(t, "6619", classified[1].ISICCode)
	assert.Equal(t, "6619.5", classified[1].HSICCode)

	assert.Equal(t, models.LabelOther, classified[2].IndustryClassification)
	assert.InDelta(t, 0.0, classified[2].ConfidenceScore, 1e-9)
	assert.Equal(t, "N/A", classified[2].ISICCode)

	assert.Equal(t, models.LabelUnknown, classified[3].IndustryClassification)
	assert.InDelta(t, 0.0, classified[3].ConfidenceScore, 1e-9)
	assert.Equal(t, "N/A", classified[3].HSICCode)
}

func TestClassify_PreservesOrderAndInput(t *testing.T) {
	analyzer := newTestAnalyzer(t, nil, 4)

	records := []models.CompanyRecord{
		{Name: "First", Description: "biotech"},
		{Name: "Second", Description: "patent licensing"},
		{Name: "Third", Description: "noodle restaurant"},
	}

	classified, err := analyzer.Classify(context.Background(), records)

	require.NoError(t, err)
	assert.Equal(t, "First", classified[0].Name)
	assert.Equal(t, "Second", classified[1].Name)
	assert.Equal(t, "Third", classified[2].Name)

	// The caller's slice stays unclassified.
	for _, record := range records {
		assert.Empty(t, record.IndustryClassification)
		assert.Zero(t, record.ConfidenceScore)
	}
}

func TestClassify_BoundedParallelism(t *testing.T) {
	analyzer := newTestAnalyzer(t, nil, 3)

	records := make([]models.CompanyRecord, 50)
	for i := range records {
		records[i] = models.CompanyRecord{Name: "Clinic", Description: "biotech"}
	}

	classified, err := analyzer.Classify(context.Background(), records)

	require.NoError(t, err)
	require.Len(t, classified, 50)
	for _, record := range classified {
		assert.Equal(t, models.LabelMedicalRD, record.IndustryClassification)
	}
}

func TestClassify_CanceledContext(t *testing.T) {
	analyzer := newTestAnalyzer(t, nil, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	classified, err := analyzer.Classify(ctx, []models.CompanyRecord{
		{Name: "Medical Co", Description: "biotech"},
	})

	require.Error(t, err)
	assert.Nil(t, classified)
}

func TestClassify_EmptyInput(t *testing.T) {
	analyzer := newTestAnalyzer(t, nil, 2)

	classified, err := analyzer.Classify(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, classified)
}

func TestNewAnalyzer_ParallelismFallback(t *testing.T) {
	analyzer := newTestAnalyzer(t, nil, 0)
	assert.Equal(t, DefaultParallelism, analyzer.parallelism)

	analyzer = newTestAnalyzer(t, nil, -3)
	assert.Equal(t, DefaultParallelism, analyzer.parallelism)
}
