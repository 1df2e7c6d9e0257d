// internal/models/company.go
package models

import "strings"

// Classification labels assigned to company records.
const (
	LabelMedicalRD       = "medical_rd"
	LabelPatentBrokerage = "patent_brokerage"
	LabelOther           = "other"
	LabelUnknown         = "unknown"
)

type CompanyRecord struct {
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	BusinessNature     string `json:"businessNature,omitempty"`
	Location           string `json:"location,omitempty"`
	Source             string `json:"source"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Website            string `json:"website,omitempty"`
	Employees          string `json:"employees,omitempty"`
	Founded            int    `json:"founded,omitempty"`
	SearchTerm         string `json:"searchTerm,omitempty"`
	Category           string `json:"category,omitempty"`

	// Set by the analyzer; zero until the record has been classified.
	IndustryClassification string  `json:"industryClassification,omitempty"`
	ConfidenceScore        float64 `json:"confidenceScore,omitempty"`
	ISICCode               string  `json:"isicCode,omitempty"`
	HSICCode               string  `json:"hsicCode,omitempty"`
}

// ClassificationText returns the text the classifier scores for this record.
func (r CompanyRecord) ClassificationText() string {
	return strings.TrimSpace(r.Description + " " + r.BusinessNature)
}

type Classification struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

type IndustryCode struct {
	ISICCode    string `json:"isicCode"`
	HSICCode    string `json:"hsicCode"`
	Description string `json:"description"`
}
