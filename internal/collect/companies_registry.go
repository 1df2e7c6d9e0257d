// internal/collect/companies_registry.go
package collect

import (
	"context"

	"hkindustry/internal/models"
)

// registryCompanies is the Companies Registry extract. Registry entries
// carry a business nature line instead of a free-text description.
var registryCompanies = []models.CompanyRecord{
	{
		Name:               "Hong Kong Biotechnology Research Institute",
		RegistrationNumber: "CR12345678",
		BusinessNature:     "Research and experimental development on biotechnology",
		Location:           "Hong Kong Island",
		Category:           "medical",
		Source:             SourceCompaniesRegistry,
	},
	{
		Name:               "Asia Pacific Patent Services",
		RegistrationNumber: "CR87654321",
		BusinessNature:     "Intellectual property consulting services",
		Location:           "Kowloon",
		Category:           "patent",
		Source:             SourceCompaniesRegistry,
	},
}

type companiesRegistrySource struct{}

// NewCompaniesRegistry returns the static Companies Registry source.
func NewCompaniesRegistry() Source {
	return companiesRegistrySource{}
}

func (companiesRegistrySource) Name() string { return SourceCompaniesRegistry }

func (companiesRegistrySource) Fetch(ctx context.Context) ([]models.CompanyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return copyRecords(registryCompanies), nil
}
