// internal/analyze/report.go
package analyze

import (
	"sort"
	"time"

	"hkindustry/internal/models"
)

// BuildResults assembles the complete analysis document from classified
// records. Listing keys for both target industries are always present so
// consumers can index them without checking.
func BuildResults(records []models.CompanyRecord, runID string, analysisDate time.Time) models.AnalysisResults {
	summary := models.Summary{
		TotalCompaniesAnalyzed: len(records),
		AnalysisDate:           analysisDate.Format("2006-01-02 15:04:05"),
		RunID:                  runID,
	}

	for _, record := range records {
		switch record.IndustryClassification {
		case models.LabelMedicalRD:
			summary.MedicalRDCompanies++
		case models.LabelPatentBrokerage:
			summary.PatentBrokerageCompanies++
		default:
			// other and unknown both land here so the counts sum to the total
			summary.OtherCompanies++
		}
	}

	return models.AnalysisResults{
		Summary:                 summary,
		ClassificationFramework: NewClassificationFramework(),
		CompanyListings:         buildListings(records),
		Distributions:           Aggregate(records),
		MarketAnalysis:          NewMarketAnalysis(),
		KeyFindings:             NewKeyFindings(),
	}
}

func buildListings(records []models.CompanyRecord) map[string][]models.CompanyListing {
	listings := map[string][]models.CompanyListing{
		models.LabelMedicalRD:       {},
		models.LabelPatentBrokerage: {},
	}

	for _, record := range records {
		label := record.IndustryClassification
		if label != models.LabelMedicalRD && label != models.LabelPatentBrokerage {
			continue
		}

		nature := record.BusinessNature
		if nature == "" {
			nature = record.Description
		}

		listings[label] = append(listings[label], models.CompanyListing{
			Name:            record.Name,
			BusinessNature:  nature,
			Address:         record.Location,
			ConfidenceScore: record.ConfidenceScore,
			ISICCode:        record.ISICCode,
			HSICCode:        record.HSICCode,
		})
	}

	for label := range listings {
		entries := listings[label]
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].ConfidenceScore != entries[j].ConfidenceScore {
				return entries[i].ConfidenceScore > entries[j].ConfidenceScore
			}
			return entries[i].Name < entries[j].Name
		})
	}

	return listings
}
