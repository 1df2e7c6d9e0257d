// internal/classify/codes.go
package classify

import "hkindustry/internal/models"

// industryCodes maps each target label to its reporting taxonomy entry:
// the ISIC code, the proposed HSIC code, and a short description.
var industryCodes = map[string]models.IndustryCode{
	models.LabelMedicalRD: {
		ISICCode:    "7210",
		HSICCode:    "7210.2",
		Description: "Natural sciences R&D",
	},
	models.LabelPatentBrokerage: {
		ISICCode:    "6619",
		HSICCode:    "6619.5",
		Description: "Other auxiliary financial services",
	},
}

// IndustryCodes returns the taxonomy entry for a label. Labels outside the
// two target industries map to placeholder values.
func IndustryCodes(label string) models.IndustryCode {
	if code, ok := industryCodes[label]; ok {
		return code
	}

	return models.IndustryCode{
		ISICCode:    "N/A",
		HSICCode:    "N/A",
		Description: "Other industry",
	}
}
