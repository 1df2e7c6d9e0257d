// internal/export/charts.go
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"hkindustry/internal/common/errors"
	"hkindustry/internal/models"
)

// writeCharts renders the distribution visualizations as a single HTML
// page: industry share pie, company count bar, and the geographic spread
// of the two target industries.
func (e *Exporter) writeCharts(results models.AnalysisResults, generatedAt time.Time) (string, error) {
	chartsDir := filepath.Join(e.cfg.OutputDir, "charts")
	if err := os.MkdirAll(chartsDir, 0o755); err != nil {
		return "", errors.NewExportWriteFailedError(chartsDir, err)
	}

	name := fmt.Sprintf("industry_distribution_%s.html", generatedAt.Format("20060102"))
	path := filepath.Join(chartsDir, name)

	page := components.NewPage()
	page.AddCharts(
		industryPie(results.Distributions.ByIndustry),
		industryBar(results.Distributions.ByIndustry),
		geographicBar(results.Distributions.ByLocation),
	)

	f, err := os.Create(path)
	if err != nil {
		return "", errors.NewExportWriteFailedError(path, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return "", errors.NewExportRenderFailedError(FormatCharts, err)
	}

	return path, nil
}

func industryPie(byIndustry map[string]int) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Industry Distribution"}),
	)

	items := make([]opts.PieData, 0, len(byIndustry))
	for _, entry := range sortedDistribution(byIndustry) {
		items = append(items, opts.PieData{Name: entry.Title, Value: entry.Count})
	}

	pie.AddSeries("Industry Distribution", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {c}",
		}))
	return pie
}

func industryBar(byIndustry map[string]int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Company Count by Industry"}),
	)

	entries := sortedDistribution(byIndustry)
	labels := make([]string, 0, len(entries))
	values := make([]opts.BarData, 0, len(entries))
	for _, entry := range entries {
		labels = append(labels, entry.Title)
		values = append(values, opts.BarData{Value: entry.Count})
	}

	bar.SetXAxis(labels).AddSeries("Companies", values)
	return bar
}

func geographicBar(byLocation map[string]map[string]int) *charts.Bar {
	locations := make([]string, 0, len(byLocation))
	for location := range byLocation {
		locations = append(locations, location)
	}
	sort.Strings(locations)

	medical := make([]opts.BarData, 0, len(locations))
	patent := make([]opts.BarData, 0, len(locations))
	for _, location := range locations {
		medical = append(medical, opts.BarData{Value: byLocation[location][models.LabelMedicalRD]})
		patent = append(patent, opts.BarData{Value: byLocation[location][models.LabelPatentBrokerage]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Geographic Distribution"}),
	)
	bar.SetXAxis(locations).
		AddSeries(labelTitle(models.LabelMedicalRD), medical).
		AddSeries(labelTitle(models.LabelPatentBrokerage), patent)
	return bar
}
