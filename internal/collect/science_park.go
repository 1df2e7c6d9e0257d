// internal/collect/science_park.go
package collect

import (
	"context"

	"hkindustry/internal/models"
)

// scienceParkCompanies is the Hong Kong Science & Technology Parks
// biotech tenant sample.
var scienceParkCompanies = []models.CompanyRecord{
	{
		Name:        "HKSTP Biotech Accelerator",
		Location:    "Science Park, Shatin",
		Description: "Incubates 150+ medtech startups focusing on precision medicine",
		Category:    "medical",
		Website:     "https://www.hkstp.org",
		Employees:   "50-100",
		Founded:     2015,
		Source:      SourceSciencePark,
	},
	{
		Name:        "ImmunoDiagnostics Limited",
		Location:    "Science Park, Shatin",
		Description: "COVID-19 test kit R&D and infectious disease diagnostics",
		Category:    "medical",
		Website:     "https://www.immunodiagnostics.com.hk",
		Employees:   "20-50",
		Founded:     2018,
		Source:      SourceSciencePark,
	},
	{
		Name:        "Cirina Limited",
		Location:    "Science Park, Shatin",
		Description: "CUHK spin-off specializing in cancer early detection technology",
		Category:    "medical",
		Website:     "https://www.cirina.com",
		Employees:   "10-20",
		Founded:     2019,
		Source:      SourceSciencePark,
	},
}

type scienceParkSource struct{}

// NewSciencePark returns the static Science Park tenant source.
func NewSciencePark() Source {
	return scienceParkSource{}
}

func (scienceParkSource) Name() string { return SourceSciencePark }

func (scienceParkSource) Fetch(ctx context.Context) ([]models.CompanyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return copyRecords(scienceParkCompanies), nil
}

// copyRecords hands callers a fresh slice so downstream classification
// never mutates the package data.
func copyRecords(records []models.CompanyRecord) []models.CompanyRecord {
	out := make([]models.CompanyRecord, len(records))
	copy(out, records)
	return out
}
