// internal/export/summary.go
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"hkindustry/internal/common/errors"
	"hkindustry/internal/models"
)

const summaryTemplate = `HONG KONG INDUSTRY ANALYSIS - EXECUTIVE SUMMARY
Generated: {{.GeneratedAt}}

==========================================================

INDUSTRY CLASSIFICATION ANALYSIS

I. Medical R&D Industry
   • ISIC Code: {{.Medical.ISICCode}} ({{.Medical.Description}})
   • HSIC Gap: {{.Medical.HSICGap}}
   • Companies Identified: {{.Summary.MedicalRDCompanies}}
   • Key Segments:
{{range .Medical.KeySegments}}     - {{.}}
{{end}}
II. Patent Brokerage Industry
   • ISIC Code: {{.Patent.ISICCode}} ({{.Patent.Description}})
   • HSIC Gap: {{.Patent.HSICGap}}
   • Companies Identified: {{.Summary.PatentBrokerageCompanies}}
   • Key Segments:
{{range .Patent.KeySegments}}     - {{.}}
{{end}}
==========================================================

KEY FINDINGS

Market Size & Growth:
• Medical R&D: {{.Findings.MedicalRD}}
• Patent Brokerage: {{.Findings.PatentBrokerage}}
• HK R&D expenditure: {{.RDExpenditure.Year2023}} (vs {{.RDExpenditure.Comparison}})

Critical Gaps Identified:
{{range .Findings.CriticalGaps}}• {{.}}
{{end}}
==========================================================

STRATEGIC RECOMMENDATIONS

{{range $i, $rec := .Recommendations}}{{add $i 1}}. {{$rec}}
{{end}}
==========================================================

DEVELOPMENT POTENTIAL

{{.Findings.DevelopmentPotential}}.

For detailed analysis, refer to the accompanying slide deck and Excel data export.
`

var summaryTmpl = template.Must(template.New("summary").Funcs(template.FuncMap{
	"add": func(a, b int) int { return a + b },
}).Parse(summaryTemplate))

type summaryData struct {
	GeneratedAt     string
	Summary         models.Summary
	Medical         models.FrameworkEntry
	Patent          models.FrameworkEntry
	Findings        models.KeyFindings
	RDExpenditure   models.RDExpenditure
	Recommendations []string
}

// writeSummary renders the plain-text executive summary.
func (e *Exporter) writeSummary(results models.AnalysisResults, generatedAt time.Time) (string, error) {
	name := fmt.Sprintf("HK_Industry_Summary_%s.txt", generatedAt.Format("20060102_150405"))
	path := filepath.Join(e.cfg.OutputDir, name)

	data := summaryData{
		GeneratedAt:     generatedAt.Format("2006-01-02 15:04:05"),
		Summary:         results.Summary,
		Medical:         results.ClassificationFramework[models.LabelMedicalRD],
		Patent:          results.ClassificationFramework[models.LabelPatentBrokerage],
		Findings:        results.KeyFindings,
		RDExpenditure:   results.MarketAnalysis.GrowthPotential.RDExpenditure,
		Recommendations: firstN(results.MarketAnalysis.Recommendations, 6),
	}

	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, data); err != nil {
		return "", errors.NewExportRenderFailedError(FormatSummary, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errors.NewExportWriteFailedError(path, err)
	}

	return path, nil
}
