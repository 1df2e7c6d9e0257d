// internal/models/results.go
package models

// AnalysisResults is the complete analysis document exported as JSON and
// rendered into the spreadsheet, slide deck, and summary reports.
type AnalysisResults struct {
	Summary                 Summary                     `json:"summary"`
	ClassificationFramework map[string]FrameworkEntry   `json:"classificationFramework"`
	CompanyListings         map[string][]CompanyListing `json:"companyListings"`
	Distributions           Distributions               `json:"distributions"`
	MarketAnalysis          MarketAnalysis              `json:"marketAnalysis"`
	KeyFindings             KeyFindings                 `json:"keyFindings"`
}

type Summary struct {
	TotalCompaniesAnalyzed   int    `json:"totalCompaniesAnalyzed"`
	MedicalRDCompanies       int    `json:"medicalRdCompanies"`
	PatentBrokerageCompanies int    `json:"patentBrokerageCompanies"`
	OtherCompanies           int    `json:"otherCompanies"`
	AnalysisDate             string `json:"analysisDate"`
	RunID                    string `json:"runId"`
}

type FrameworkEntry struct {
	ISICCode          string   `json:"isicCode"`
	Description       string   `json:"description"`
	HSICGap           string   `json:"hsicGap"`
	KeySegments       []string `json:"keySegments"`
	ProposedFramework []string `json:"proposedFramework"`
}

type CompanyListing struct {
	Name            string  `json:"name"`
	BusinessNature  string  `json:"businessNature"`
	Address         string  `json:"address"`
	ConfidenceScore float64 `json:"confidenceScore"`
	ISICCode        string  `json:"isicCode"`
	HSICCode        string  `json:"hsicCode"`
}

type Distributions struct {
	ByIndustry map[string]int            `json:"byIndustry"`
	ByLocation map[string]map[string]int `json:"byLocation"`
}

type MarketAnalysis struct {
	Barriers        CategoryLists   `json:"barriers"`
	Opportunities   CategoryLists   `json:"opportunities"`
	GrowthPotential GrowthPotential `json:"growthPotential"`
	Recommendations []string        `json:"recommendations"`
}

// CategoryLists holds per-industry string lists keyed by the two target
// industries.
type CategoryLists struct {
	MedicalRD       []string `json:"medicalRd"`
	PatentBrokerage []string `json:"patentBrokerage"`
}

type GrowthPotential struct {
	MedicalRD       IndustryGrowth `json:"medicalRd"`
	PatentBrokerage IndustryGrowth `json:"patentBrokerage"`
	RDExpenditure   RDExpenditure  `json:"hkRdExpenditure"`
}

type IndustryGrowth struct {
	MarketSizeUSD       string  `json:"marketSizeUsd"`
	CAGR2018To2023      string  `json:"cagr2018To2023"`
	GovernmentSupport   string  `json:"governmentSupport"`
	TalentPipeline      string  `json:"talentPipeline"`
	InfrastructureScore float64 `json:"infrastructureScore"`
}

type RDExpenditure struct {
	Year2015   string `json:"2015"`
	Year2023   string `json:"2023"`
	Growth     string `json:"growth"`
	Target     string `json:"target"`
	Comparison string `json:"comparison"`
}

type KeyFindings struct {
	MedicalRD            string   `json:"medicalRd"`
	PatentBrokerage      string   `json:"patentBrokerage"`
	DevelopmentPotential string   `json:"developmentPotential"`
	CriticalGaps         []string `json:"criticalGaps"`
}
