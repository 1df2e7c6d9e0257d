// internal/collect/sources_test.go
package collect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hkindustry/internal/common/config"
)

// ==========================================
// STATIC SOURCES
// ==========================================

func TestStaticSources_Fetch(t *testing.T) {
	tests := []struct {
		name          string
		source        Source
		expectedCount int
		firstName     string
	}{
		{
			name:          "science park tenants",
			source:        NewSciencePark(),
			expectedCount: 3,
			firstName:     "HKSTP Biotech Accelerator",
		},
		{
			name:          "patent firms",
			source:        NewPatentFirms(),
			expectedCount: 3,
			firstName:     "Rouse Hong Kong",
		},
		{
			name:          "companies registry",
			source:        NewCompaniesRegistry(),
			expectedCount: 2,
			firstName:     "Hong Kong Biotechnology Research Institute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := tt.source.Fetch(context.Background())

			require.NoError(t, err)
			require.Len(t, records, tt.expectedCount)
			assert.Equal(t, tt.firstName, records[0].Name)

			for _, record := range records {
				assert.Equal(t, tt.source.Name(), record.Source)
				assert.NotEmpty(t, record.Name)
				assert.NotEmpty(t, record.Location)
			}
		})
	}
}

func TestStaticSources_FetchReturnsCopy(t *testing.T) {
	source := NewSciencePark()

	first, err := source.Fetch(context.Background())
	require.NoError(t, err)

	// Mutating one fetch must not leak into the next.
	first[0].IndustryClassification = "medical_rd"
	first[0].ConfidenceScore = 0.9

	second, err := source.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second[0].IndustryClassification)
	assert.Zero(t, second[0].ConfidenceScore)
}

func TestStaticSources_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, source := range []Source{
		NewSciencePark(),
		NewPatentFirms(),
		NewCompaniesRegistry(),
		NewTradeDirectory(config.CollectionConfig{}),
	} {
		records, err := source.Fetch(ctx)
		assert.Error(t, err, "source %s", source.Name())
		assert.Nil(t, records)
	}
}

func TestCompaniesRegistry_BusinessNatureOnly(t *testing.T) {
	records, err := NewCompaniesRegistry().Fetch(context.Background())
	require.NoError(t, err)

	for _, record := range records {
		assert.NotEmpty(t, record.RegistrationNumber)
		assert.NotEmpty(t, record.BusinessNature)
		assert.Empty(t, record.Description)
		// Classification text falls back to the business nature line.
		assert.Equal(t, record.BusinessNature, record.ClassificationText())
	}
}

// ==========================================
// TRADE DIRECTORY
// ==========================================

func TestTradeDirectory_DefaultSearches(t *testing.T) {
	source := NewTradeDirectory(config.CollectionConfig{})

	records, err := source.Fetch(context.Background())
	require.NoError(t, err)

	// 4 medical terms + 4 patent terms, 3 results each = 24 records
	require.Len(t, records, 24)

	first := records[0]
	assert.Equal(t, "BioMed Innovations HK", first.Name)
	assert.Equal(t, "Specializing in biotech related services", first.Description)
	assert.Equal(t, "hktdc", first.Source)
	assert.Equal(t, "biotech", first.SearchTerm)
	assert.Equal(t, "medical", first.Category)

	last := records[len(records)-1]
	assert.Equal(t, "Technology Transfer Hub", last.Name)
	assert.Equal(t, "technology transfer", last.SearchTerm)
	assert.Equal(t, "patent", last.Category)

	byCategory := map[string]int{}
	for _, record := range records {
		byCategory[record.Category]++
	}
	assert.Equal(t, 12, byCategory["medical"])
	assert.Equal(t, 12, byCategory["patent"])
}

func TestTradeDirectory_ConfiguredSearches(t *testing.T) {
	cfg := config.CollectionConfig{}
	cfg.TradeDirectory.MedicalSearches = []string{"genomics"}
	cfg.TradeDirectory.PatentSearches = []string{"ip brokerage"}
	cfg.TradeDirectory.ResultsPerTerm = 2

	records, err := NewTradeDirectory(cfg).Fetch(context.Background())
	require.NoError(t, err)

	// 2 terms x 2 results = 4 records
	require.Len(t, records, 4)
	assert.Equal(t, "BioMed Innovations HK", records[0].Name)
	assert.Equal(t, "MedTech Solutions Asia", records[1].Name)
	assert.Equal(t, "Specializing in genomics related services", records[0].Description)
	assert.Equal(t, "IP Strategy Consultants", records[2].Name)
	assert.Equal(t, "ip brokerage", records[2].SearchTerm)
}

func TestTradeDirectory_ResultsPerTermClampedToPool(t *testing.T) {
	cfg := config.CollectionConfig{}
	cfg.TradeDirectory.MedicalSearches = []string{"biotech"}
	cfg.TradeDirectory.PatentSearches = []string{"patent"}
	cfg.TradeDirectory.ResultsPerTerm = 50

	records, err := NewTradeDirectory(cfg).Fetch(context.Background())
	require.NoError(t, err)

	// Each pool holds 6 names, so 50 per term clamps to 6.
	assert.Len(t, records, 12)
}
