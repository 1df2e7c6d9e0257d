// internal/export/excel.go
package export

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"hkindustry/internal/common/errors"
	"hkindustry/internal/models"
)

var companyColumns = []string{
	"Name", "Description", "Business Nature", "Location", "Source",
	"Registration Number", "Website", "Employees", "Founded", "Search Term",
	"Category", "Industry Classification", "Confidence Score", "ISIC Code", "HSIC Code",
}

// writeExcel builds the company workbook: every record on All_Companies,
// one sheet per target industry, and the distribution counts.
func (e *Exporter) writeExcel(records []models.CompanyRecord, results models.AnalysisResults, generatedAt time.Time) (string, error) {
	name := fmt.Sprintf("HK_Companies_Data_%s.xlsx", generatedAt.Format("20060102_150405"))
	path := filepath.Join(e.cfg.OutputDir, name)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "All_Companies"); err != nil {
		return "", errors.NewExportRenderFailedError(FormatExcel, err)
	}
	if err := writeCompanySheet(f, "All_Companies", records); err != nil {
		return "", err
	}

	sheets := []struct {
		name  string
		label string
	}{
		{"Medical_RD", models.LabelMedicalRD},
		{"Patent_Brokerage", models.LabelPatentBrokerage},
	}
	for _, sheet := range sheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return "", errors.NewExportRenderFailedError(FormatExcel, err)
		}
		if err := writeCompanySheet(f, sheet.name, filterByLabel(records, sheet.label)); err != nil {
			return "", err
		}
	}

	if err := writeDistributionSheet(f, results.Distributions); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", errors.NewExportWriteFailedError(path, err)
	}

	return path, nil
}

func filterByLabel(records []models.CompanyRecord, label string) []models.CompanyRecord {
	var filtered []models.CompanyRecord
	for _, record := range records {
		if record.IndustryClassification == label {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func writeCompanySheet(f *excelize.File, sheet string, records []models.CompanyRecord) error {
	header := make([]interface{}, len(companyColumns))
	for i, column := range companyColumns {
		header[i] = column
	}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, record := range records {
		// Founded 0 means unreported; leave the cell blank.
		var founded interface{}
		if record.Founded > 0 {
			founded = record.Founded
		}

		row := []interface{}{
			record.Name, record.Description, record.BusinessNature,
			record.Location, record.Source, record.RegistrationNumber,
			record.Website, record.Employees, founded, record.SearchTerm,
			record.Category, record.IndustryClassification,
			record.ConfidenceScore, record.ISICCode, record.HSICCode,
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

func writeDistributionSheet(f *excelize.File, distributions models.Distributions) error {
	const sheet = "Distribution"
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.NewExportRenderFailedError(FormatExcel, err)
	}

	if err := writeRow(f, sheet, 1, []interface{}{"Industry", "Companies"}); err != nil {
		return err
	}

	labels := make([]string, 0, len(distributions.ByIndustry))
	for label := range distributions.ByIndustry {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for i, label := range labels {
		row := []interface{}{labelTitle(label), distributions.ByIndustry[label]}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, value := range values {
		if value == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return errors.NewExportRenderFailedError(FormatExcel, err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return errors.NewExportRenderFailedError(FormatExcel, err)
		}
	}
	return nil
}
