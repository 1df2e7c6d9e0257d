// internal/collect/patent_firms.go
package collect

import (
	"context"

	"hkindustry/internal/models"
)

// patentFirmCompanies is the sample of IP and patent practices with a
// Hong Kong presence.
var patentFirmCompanies = []models.CompanyRecord{
	{
		Name:        "Rouse Hong Kong",
		Location:    "Central, Hong Kong",
		Description: "IP valuation for medtech patents and cross-border licensing",
		Category:    "patent",
		Website:     "https://www.rouse.com",
		Employees:   "50-100",
		Founded:     2010,
		Source:      SourcePatentFirms,
	},
	{
		Name:        "Banner Witcoff Hong Kong",
		Location:    "Wanchai, Hong Kong",
		Description: "Cross-border patent licensing and IP portfolio management",
		Category:    "patent",
		Website:     "https://www.bannerwitcoff.com",
		Employees:   "20-50",
		Founded:     2012,
		Source:      SourcePatentFirms,
	},
	{
		Name:        "TechTransfer HK Limited",
		Location:    "Pokfulam, Hong Kong",
		Description: "HKU subsidiary for university patent commercialization",
		Category:    "patent",
		Website:     "https://www.tt.hku.hk",
		Employees:   "10-20",
		Founded:     2008,
		Source:      SourcePatentFirms,
	},
}

type patentFirmsSource struct{}

// NewPatentFirms returns the static patent and IP practice source.
func NewPatentFirms() Source {
	return patentFirmsSource{}
}

func (patentFirmsSource) Name() string { return SourcePatentFirms }

func (patentFirmsSource) Fetch(ctx context.Context) ([]models.CompanyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return copyRecords(patentFirmCompanies), nil
}
