// pkg/keywords/schema.go
package keywords

// Category IDs the classifier recognizes. Registries may carry additional
// categories; the pipeline only reads these two.
const (
	CategoryMedical = "medical"
	CategoryPatent  = "patent"
)

type Registry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Categories  []Category `json:"categories"`
}

type Category struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	Label       string   `json:"label"`
	Keywords    []string `json:"keywords"`
}
