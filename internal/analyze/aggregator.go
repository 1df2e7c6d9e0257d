// internal/analyze/aggregator.go
package analyze

import "hkindustry/internal/models"

// UnknownLocation buckets records that carry no location line.
const UnknownLocation = "Unknown"

// Aggregate counts classified records into the industry and geographic
// distributions. Records must already carry their classification label.
func Aggregate(records []models.CompanyRecord) models.Distributions {
	byIndustry := make(map[string]int)
	byLocation := make(map[string]map[string]int)

	for _, record := range records {
		label := record.IndustryClassification
		if label == "" {
			label = models.LabelUnknown
		}
		byIndustry[label]++

		location := record.Location
		if location == "" {
			location = UnknownLocation
		}
		if byLocation[location] == nil {
			byLocation[location] = make(map[string]int)
		}
		byLocation[location][label]++
	}

	return models.Distributions{
		ByIndustry: byIndustry,
		ByLocation: byLocation,
	}
}
