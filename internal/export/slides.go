// internal/export/slides.go
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/template"
	"time"

	"hkindustry/internal/common/errors"
	"hkindustry/internal/models"
)

// The deck is Markdown with one slide per --- separator, renderable by
// any Markdown slide tool.
const deckTemplate = `# Hong Kong Industry Analysis Framework

Medical R&D and Patent Brokerage Industries

Analysis Date: {{.AnalysisDate}}

Comprehensive Market Assessment

---

## Executive Summary

- Industry Classification Gap Analysis
- {{.Summary.MedicalRDCompanies}} Medical R&D companies identified
- {{.Summary.PatentBrokerageCompanies}} specialized Patent Brokerage firms identified
- Critical HSIC classification gaps identified
- R&D expenditure: {{.RDExpenditure.Year2023}} (target: {{.RDExpenditure.Target}})
- {{.MedicalCAGR}} CAGR in Medical R&D sector since 2018

---

## Industry Distribution Analysis

Industry Classification Results:

{{range .Distribution}}- {{.Title}}: {{.Count}} companies
{{end}}
---

## Market Gaps and Development Barriers

### Medical R&D

{{range .MedicalBarriers}}- {{.}}
{{end}}
### Patent Brokerage

{{range .PatentBarriers}}- {{.}}
{{end}}
---

## Strategic Recommendations

{{range $i, $rec := .Recommendations}}{{add $i 1}}. {{$rec}}

{{end}}`

var deckTmpl = template.Must(template.New("deck").Funcs(template.FuncMap{
	"add": func(a, b int) int { return a + b },
}).Parse(deckTemplate))

type labelCount struct {
	Title string
	Count int
}

type deckData struct {
	AnalysisDate    string
	Summary         models.Summary
	Distribution    []labelCount
	MedicalBarriers []string
	PatentBarriers  []string
	Recommendations []string
	RDExpenditure   models.RDExpenditure
	MedicalCAGR     string
}

// writeSlides renders the Markdown slide deck: title, executive summary,
// distribution, top barriers, and the leading recommendations.
func (e *Exporter) writeSlides(results models.AnalysisResults, generatedAt time.Time) (string, error) {
	name := fmt.Sprintf("HK_Industry_Analysis_%s.md", generatedAt.Format("20060102_150405"))
	path := filepath.Join(e.cfg.OutputDir, name)

	data := deckData{
		AnalysisDate:    generatedAt.Format("January 02, 2006"),
		Summary:         results.Summary,
		Distribution:    sortedDistribution(results.Distributions.ByIndustry),
		MedicalBarriers: firstN(results.MarketAnalysis.Barriers.MedicalRD, 4),
		PatentBarriers:  firstN(results.MarketAnalysis.Barriers.PatentBrokerage, 4),
		Recommendations: firstN(results.MarketAnalysis.Recommendations, 6),
		RDExpenditure:   results.MarketAnalysis.GrowthPotential.RDExpenditure,
		MedicalCAGR:     results.MarketAnalysis.GrowthPotential.MedicalRD.CAGR2018To2023,
	}

	var buf bytes.Buffer
	if err := deckTmpl.Execute(&buf, data); err != nil {
		return "", errors.NewExportRenderFailedError(FormatSlides, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errors.NewExportWriteFailedError(path, err)
	}

	return path, nil
}

func sortedDistribution(byIndustry map[string]int) []labelCount {
	labels := make([]string, 0, len(byIndustry))
	for label := range byIndustry {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	counts := make([]labelCount, 0, len(labels))
	for _, label := range labels {
		counts = append(counts, labelCount{Title: labelTitle(label), Count: byIndustry[label]})
	}
	return counts
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
