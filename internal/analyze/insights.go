// internal/analyze/insights.go
package analyze

import (
	"hkindustry/internal/classify"
	"hkindustry/internal/models"
)

// The market insight sections below are curated research findings on the
// Hong Kong medical R&D and patent brokerage sectors. They accompany every
// analysis run; the per-run numbers live in Summary and Distributions.

var medicalBarriers = []string{
	"Long FDA/regulatory approval cycles",
	"High capital requirements for R&D",
	"PhD researcher shortage in specialized fields",
	"Limited GMP-certified manufacturing facilities",
	"Complex clinical trial regulatory framework",
	"High cost of medical device certification",
}

var patentBarriers = []string{
	"Cross-border IP enforcement challenges",
	"Valuation expertise shortage",
	"Lack of qualified patent engineers",
	"No centralized IP exchange platform",
	"Complex international patent law variations",
	"Limited transparency in IP valuation methods",
}

var medicalOpportunities = []string{
	"Innovation and Technology Fund backing for biomedical ventures",
	"Talent pipeline from 3 medical schools and HKSTP incubation programs",
	"15% sector CAGR since 2018 with Science Park concentration",
	"Greater Bay Area demand for clinical research capacity",
}

var patentOpportunities = []string{
	"Government IP trading hub initiatives",
	"35+ law firms offering secondary IP services ready to specialize",
	"Centralized IP trading platform gap in the regional market",
	"Cross-border licensing demand from mainland innovation centers",
}

var recommendations = []string{
	"Establish dedicated HSIC codes for Medical R&D (7210.2) and Patent Brokerage (6619.5)",
	"Create government-backed IP valuation certification program",
	"Develop specialized biomedical research zones with regulatory fast-tracking",
	"Launch patent engineer training programs in partnership with universities",
	"Establish centralized IP trading platform similar to Singapore's IP marketplace",
	"Increase R&D expenditure target to 1.5% of GDP to match regional competitors",
	"Create tax incentives for patent commercialization activities",
	"Develop cross-border IP enforcement cooperation agreements",
}

var criticalGaps = []string{
	"Missing HSIC codes for biomedical research (7210.2) and IP brokerage (6619.5)",
	"Regulatory barriers limiting industry growth",
	"Talent shortage in specialized areas",
	"Infrastructure limitations",
}

// NewMarketAnalysis returns the market gap sections of the analysis
// document.
func NewMarketAnalysis() models.MarketAnalysis {
	return models.MarketAnalysis{
		Barriers: models.CategoryLists{
			MedicalRD:       medicalBarriers,
			PatentBrokerage: patentBarriers,
		},
		Opportunities: models.CategoryLists{
			MedicalRD:       medicalOpportunities,
			PatentBrokerage: patentOpportunities,
		},
		GrowthPotential: models.GrowthPotential{
			MedicalRD: models.IndustryGrowth{
				MarketSizeUSD:       "2.3B",
				CAGR2018To2023:      "15%",
				GovernmentSupport:   "High - Innovation and Technology Fund",
				TalentPipeline:      "Strong - 3 medical schools, HKSTP programs",
				InfrastructureScore: 7.5,
			},
			PatentBrokerage: models.IndustryGrowth{
				MarketSizeUSD:       "150M",
				CAGR2018To2023:      "8%",
				GovernmentSupport:   "Medium - IP trading hub initiatives",
				TalentPipeline:      "Moderate - Limited specialized programs",
				InfrastructureScore: 6.0,
			},
			RDExpenditure: models.RDExpenditure{
				Year2015:   "0.73% of GDP",
				Year2023:   "0.99% of GDP",
				Growth:     "120% increase",
				Target:     "1.5% of GDP by 2027",
				Comparison: "Singapore: 1.89%, Shenzhen: 4.2%",
			},
		},
		Recommendations: recommendations,
	}
}

// NewKeyFindings returns the headline findings for each target industry.
func NewKeyFindings() models.KeyFindings {
	return models.KeyFindings{
		MedicalRD:            "15% CAGR since 2018, 78% concentrated in Science Park",
		PatentBrokerage:      "Limited specialized firms (9), but 35+ law firms offering secondary services",
		DevelopmentPotential: "Strong university research base and government innovation support underpin growth in both sectors",
		CriticalGaps:         criticalGaps,
	}
}

// NewClassificationFramework returns the per-industry classification gap
// entries keyed by label.
func NewClassificationFramework() map[string]models.FrameworkEntry {
	medicalCodes := classify.IndustryCodes(models.LabelMedicalRD)
	patentCodes := classify.IndustryCodes(models.LabelPatentBrokerage)

	return map[string]models.FrameworkEntry{
		models.LabelMedicalRD: {
			ISICCode:    medicalCodes.ISICCode,
			Description: medicalCodes.Description,
			HSICGap:     "No dedicated class (grouped under 8520-R&D)",
			KeySegments: []string{
				"Clinical research organizations",
				"Biopharma laboratories",
				"Medtech innovation hubs",
			},
			ProposedFramework: []string{
				"New HSIC class 7210.2 for biotechnology and medical R&D services",
				"Regulatory fast-tracking inside designated biomedical research zones",
				"Dedicated statistics collection for clinical research organizations",
			},
		},
		models.LabelPatentBrokerage: {
			ISICCode:    patentCodes.ISICCode,
			Description: patentCodes.Description,
			HSICGap:     "Not explicitly classified",
			KeySegments: []string{
				"IP valuation firms",
				"Technology transfer offices",
				"Licensing specialists",
			},
			ProposedFramework: []string{
				"New HSIC class 6619.5 for IP brokerage and patent intermediation",
				"Government-backed IP valuation certification program",
				"Centralized IP trading platform modelled on Singapore's marketplace",
			},
		},
	}
}
