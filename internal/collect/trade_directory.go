// internal/collect/trade_directory.go
package collect

import (
	"context"
	"fmt"

	"hkindustry/internal/common/config"
	"hkindustry/internal/models"
)

var defaultMedicalSearches = []string{
	"biotech", "medical device", "pharmaceutical", "clinical research",
}

var defaultPatentSearches = []string{
	"patent", "intellectual property", "IP consulting", "technology transfer",
}

// tradeDirectoryNames are the per-category company pools a directory
// search draws from.
var tradeDirectoryNames = map[string][]string{
	"medical": {
		"BioMed Innovations HK",
		"MedTech Solutions Asia",
		"Clinical Research Partners",
		"Hong Kong Pharmaceutical Labs",
		"Diagnostic Technologies Ltd",
		"Genomics Research Center",
	},
	"patent": {
		"IP Strategy Consultants",
		"Patent Licensing Specialists",
		"Technology Transfer Hub",
		"Asia IP Management",
		"Patent Brokerage Services",
		"Innovation Licensing Group",
	},
}

// tradeDirectorySource simulates HKTDC directory searches: each
// configured term returns the first resultsPerTerm names from its
// category pool.
type tradeDirectorySource struct {
	medicalSearches []string
	patentSearches  []string
	resultsPerTerm  int
}

// NewTradeDirectory builds the trade directory source from the
// collection config, falling back to the standard search terms.
func NewTradeDirectory(cfg config.CollectionConfig) Source {
	source := tradeDirectorySource{
		medicalSearches: cfg.TradeDirectory.MedicalSearches,
		patentSearches:  cfg.TradeDirectory.PatentSearches,
		resultsPerTerm:  cfg.TradeDirectory.ResultsPerTerm,
	}
	if len(source.medicalSearches) == 0 {
		source.medicalSearches = defaultMedicalSearches
	}
	if len(source.patentSearches) == 0 {
		source.patentSearches = defaultPatentSearches
	}
	if source.resultsPerTerm <= 0 {
		source.resultsPerTerm = 3
	}
	return source
}

func (tradeDirectorySource) Name() string { return SourceTradeDirectory }

func (s tradeDirectorySource) Fetch(ctx context.Context) ([]models.CompanyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]models.CompanyRecord, 0, (len(s.medicalSearches)+len(s.patentSearches))*s.resultsPerTerm)
	for _, term := range s.medicalSearches {
		records = append(records, s.search(term, "medical")...)
	}
	for _, term := range s.patentSearches {
		records = append(records, s.search(term, "patent")...)
	}
	return records, nil
}

func (s tradeDirectorySource) search(term, category string) []models.CompanyRecord {
	pool := tradeDirectoryNames[category]
	limit := s.resultsPerTerm
	if limit > len(pool) {
		limit = len(pool)
	}

	records := make([]models.CompanyRecord, 0, limit)
	for _, name := range pool[:limit] {
		records = append(records, models.CompanyRecord{
			Name:        name,
			Description: fmt.Sprintf("Specializing in %s related services", term),
			Category:    category,
			Source:      "hktdc",
			SearchTerm:  term,
		})
	}
	return records
}
