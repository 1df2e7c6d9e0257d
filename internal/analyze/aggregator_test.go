// internal/analyze/aggregator_test.go
package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hkindustry/internal/models"
)

func TestAggregate_Distributions(t *testing.T) {
	records := []models.CompanyRecord{
		{Name: "A", IndustryClassification: models.LabelMedicalRD, Location: "Science Park, Shatin"},
		{Name: "B", IndustryClassification: models.LabelMedicalRD, Location: "Central"},
		{Name: "C", IndustryClassification: models.LabelPatentBrokerage, Location: "Central"},
		{Name: "D", IndustryClassification: models.LabelOther},
		{Name: "E"}, // never classified
	}

	dist := Aggregate(records)

	assert.Equal(t, map[string]int{
		models.LabelMedicalRD:       2,
		models.LabelPatentBrokerage: 1,
		models.LabelOther:           1,
		models.LabelUnknown:         1,
	}, dist.ByIndustry)

	require.Contains(t, dist.ByLocation, "Central")
	assert.Equal(t, map[string]int{
		models.LabelMedicalRD:       1,
		models.LabelPatentBrokerage: 1,
	}, dist.ByLocation["Central"])

	assert.Equal(t, map[string]int{models.LabelMedicalRD: 1}, dist.ByLocation["Science Park, Shatin"])

	// Records without a location bucket under "Unknown".
	require.Contains(t, dist.ByLocation, UnknownLocation)
	assert.Equal(t, map[string]int{
		models.LabelOther:   1,
		models.LabelUnknown: 1,
	}, dist.ByLocation[UnknownLocation])
}

func TestAggregate_Empty(t *testing.T) {
	dist := Aggregate(nil)

	assert.NotNil(t, dist.ByIndustry)
	assert.NotNil(t, dist.ByLocation)
	assert.Empty(t, dist.ByIndustry)
	assert.Empty(t, dist.ByLocation)
}

func TestAggregate_CountsSumToTotal(t *testing.T) {
	records := []models.CompanyRecord{
		{IndustryClassification: models.LabelMedicalRD, Location: "Shatin"},
		{IndustryClassification: models.LabelMedicalRD, Location: "Shatin"},
		{IndustryClassification: models.LabelPatentBrokerage, Location: "Kowloon"},
		{IndustryClassification: models.LabelOther, Location: "Kowloon"},
	}

	dist := Aggregate(records)

	industryTotal := 0
	for _, count := range dist.ByIndustry {
		industryTotal += count
	}
	assert.Equal(t, len(records), industryTotal)

	locationTotal := 0
	for _, labels := range dist.ByLocation {
		for _, count := range labels {
			locationTotal += count
		}
	}
	assert.Equal(t, len(records), locationTotal)
}
