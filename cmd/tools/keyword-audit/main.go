// cmd/tools/keyword-audit/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"text/template"
	"time"

	"hkindustry/internal/classify"
	"hkindustry/pkg/keywords"
)

// auditKeyword is one keyword row in the audit report
type auditKeyword struct {
	Raw        string
	Normalized string
	Warning    string
}

// auditCategory groups the rows for one registry category
type auditCategory struct {
	ID       string
	Count    int
	Keywords []auditKeyword
}

// auditData holds data for the report template
type auditData struct {
	Version     string
	GeneratedAt string
	Categories  []auditCategory
	Collisions  []string
}

const reportTemplate = `Keyword Registry Audit
======================
Version:   {{ .Version }}
Generated: {{ .GeneratedAt }}
{{ range .Categories }}
Category: {{ .ID }} ({{ .Count }} keywords)
------------------------------------------
{{- range .Keywords }}
  {{ printf "%-32s" .Raw }} -> {{ printf "%-28s" .Normalized }}{{ if .Warning }} [{{ .Warning }}]{{ end }}
{{- end }}
{{ end }}
{{- if .Collisions }}
Cross-category collisions (same normalized form in both sets):
{{- range .Collisions }}
  {{ . }}
{{- end }}
{{ else }}
No cross-category collisions.
{{ end }}`

func main() {
	auditCmd := flag.NewFlagSet("audit", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	initCmd := flag.NewFlagSet("init", flag.ExitOnError)

	// Audit command flags
	auditPath := auditCmd.String("path", "", "Path to keyword registry (empty: built-in sets)")
	auditOut := auditCmd.String("out", "", "Write the report to this file instead of stdout")

	// Validate command flags
	validatePath := validateCmd.String("path", "configs/keyword-registry.json", "Path to keyword registry")

	// Init command flags
	initPath := initCmd.String("path", "configs/keyword-registry.json", "Path for the new registry file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "audit":
		auditCmd.Parse(os.Args[2:])
		if err := runAudit(*auditPath, *auditOut); err != nil {
			fmt.Printf("Audit failed: %v\n", err)
			os.Exit(1)
		}

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := runValidate(*validatePath); err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}

	case "init":
		initCmd.Parse(os.Args[2:])
		if err := runInit(*initPath); err != nil {
			fmt.Printf("Init failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote starter registry: %s\n", *initPath)

	case "help":
		fallthrough
	default:
		help()
	}
}

// runAudit renders the stem audit report for a registry. The report shows
// how every keyword normalizes through the classifier's stemmer, which is
// what actually gets matched at runtime.
func runAudit(path, outPath string) error {
	reg, err := loadOrBuiltin(path)
	if err != nil {
		return err
	}

	data := buildAuditData(reg)

	tmpl := template.Must(template.New("audit").Parse(reportTemplate))

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return tmpl.Execute(out, data)
}

func runValidate(path string) error {
	reg, err := keywords.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if err := reg.Validate(); err != nil {
		return err
	}

	fmt.Printf("Registry validation passed. Found %d categories.\n", len(reg.Categories))
	return nil
}

// runInit writes a starter registry seeded from the built-in keyword sets.
// It refuses to overwrite an existing file.
func runInit(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("registry already exists at %s", path)
	}

	return keywords.SaveRegistry(builtinRegistry(), path)
}

func loadOrBuiltin(path string) (*keywords.Registry, error) {
	if path == "" {
		return builtinRegistry(), nil
	}

	reg, err := keywords.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	return reg, nil
}

func builtinRegistry() *keywords.Registry {
	return &keywords.Registry{
		Version:     "built-in",
		LastUpdated: time.Now().Format(time.RFC3339),
		Categories: []keywords.Category{
			{
				ID:          keywords.CategoryMedical,
				DisplayName: "Medical R&D",
				Description: "Medical research and development companies",
				Label:       "medical_rd",
				Keywords:    classify.DefaultMedicalKeywords,
			},
			{
				ID:          keywords.CategoryPatent,
				DisplayName: "Patent Brokerage",
				Description: "Patent brokerage and IP trading companies",
				Label:       "patent_brokerage",
				Keywords:    classify.DefaultPatentKeywords,
			},
		},
	}
}

// buildAuditData normalizes every keyword and collects the warnings:
// keywords that normalize to nothing never match, duplicates within a
// category are dead weight, and identical normalized forms across
// categories pull scores in both directions at once.
func buildAuditData(reg *keywords.Registry) auditData {
	data := auditData{
		Version:     reg.Version,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	normalizedByCategory := make(map[string]map[string]string) // category -> normalized -> raw

	for _, category := range reg.Categories {
		seen := make(map[string]string)
		auditCat := auditCategory{ID: category.ID, Count: len(category.Keywords)}

		for _, raw := range category.Keywords {
			normalized := classify.NormalizePhrase(raw)

			row := auditKeyword{Raw: raw, Normalized: normalized}
			switch {
			case normalized == "":
				row.Normalized = "(nothing)"
				row.Warning = "normalizes to nothing, never matches"
			case seen[normalized] != "":
				row.Warning = fmt.Sprintf("duplicate of %q after stemming", seen[normalized])
			default:
				seen[normalized] = raw
			}

			auditCat.Keywords = append(auditCat.Keywords, row)
		}

		normalizedByCategory[category.ID] = seen
		data.Categories = append(data.Categories, auditCat)
	}

	data.Collisions = findCollisions(reg, normalizedByCategory)
	return data
}

func findCollisions(reg *keywords.Registry, normalizedByCategory map[string]map[string]string) []string {
	var collisions []string

	for i, a := range reg.Categories {
		for _, b := range reg.Categories[i+1:] {
			for normalized, rawA := range normalizedByCategory[a.ID] {
				if rawB, ok := normalizedByCategory[b.ID][normalized]; ok {
					collisions = append(collisions, fmt.Sprintf(
						"%q (%s) and %q (%s) both normalize to %q",
						rawA, a.ID, rawB, b.ID, normalized))
				}
			}
		}
	}

	return collisions
}

func help() {
	fmt.Print(`
Usage: keyword-audit <command> [flags]

Commands:
  audit    Render a stem audit report for a keyword registry
  validate Validate a registry file
  init     Write a starter registry seeded from the built-in sets
  help     Show this help message

Examples:
  keyword-audit audit
  keyword-audit audit -path configs/keyword-registry.json -out audit.txt
  keyword-audit validate -path configs/keyword-registry.json
  keyword-audit init -path configs/keyword-registry.json

Use 'keyword-audit <command> -h' for more information about a command.

`)
}
