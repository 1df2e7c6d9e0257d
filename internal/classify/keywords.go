// internal/classify/keywords.go
package classify

// DefaultMedicalKeywords is the built-in keyword set for the medical R&D
// category. Configuration may replace it; order is preserved for reporting.
var DefaultMedicalKeywords = []string{
	"biomed", "clinical trial", "pharma research", "biotech", "medtech",
	"pharmaceutical", "biotechnology", "medical device", "clinical research",
	"drug development", "vaccine", "diagnostic", "therapeutics", "genomics",
	"immunology", "oncology", "cardiology", "neurology", "dermatology",
	"clinical studies", "medical innovation", "health technology", "biopharma",
}

// DefaultPatentKeywords is the built-in keyword set for the patent
// brokerage category.
var DefaultPatentKeywords = []string{
	"patent licensing", "IP brokerage", "technology transfer", "intellectual property",
	"patent valuation", "IP consulting", "licensing specialist", "patent attorney",
	"IP law", "patent agent", "technology licensing", "IP management",
	"patent portfolio", "IP commercialization", "patent prosecution", "IP strategy",
}
