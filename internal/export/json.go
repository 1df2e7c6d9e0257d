// internal/export/json.go
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hkindustry/internal/common/errors"
	"hkindustry/internal/models"
)

// writeJSON dumps the full analysis document. Downstream tooling globs
// for the industry_analysis_results_ prefix, so the name is load-bearing.
func (e *Exporter) writeJSON(results models.AnalysisResults, generatedAt time.Time) (string, error) {
	name := fmt.Sprintf("industry_analysis_results_%s.json", generatedAt.Format("20060102_150405"))
	path := filepath.Join(e.cfg.OutputDir, name)

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", errors.NewExportRenderFailedError(FormatJSON, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.NewExportWriteFailedError(path, err)
	}

	return path, nil
}
