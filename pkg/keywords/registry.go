// pkg/keywords/registry.go
package keywords

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg Registry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// SaveRegistry writes the registry as indented JSON, creating the parent
// directory when needed.
func SaveRegistry(reg *Registry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}

	return nil
}

// Category returns the category with the given ID.
func (r *Registry) Category(id string) (Category, bool) {
	for _, category := range r.Categories {
		if category.ID == id {
			return category, true
		}
	}
	return Category{}, false
}

// Keywords returns the keyword list for the given category ID. A missing
// category or an empty keyword list is an error; callers that treat a
// category as optional should use Category instead.
func (r *Registry) Keywords(id string) ([]string, error) {
	category, ok := r.Category(id)
	if !ok {
		return nil, fmt.Errorf("category %s not found in registry", id)
	}
	if len(category.Keywords) == 0 {
		return nil, fmt.Errorf("category %s has no keywords", id)
	}
	return category.Keywords, nil
}

// Validate checks the registry for structural problems: no categories,
// duplicate or missing IDs, and categories without keywords.
func (r *Registry) Validate() error {
	if len(r.Categories) == 0 {
		return fmt.Errorf("registry contains no categories")
	}

	ids := make(map[string]bool)
	for _, category := range r.Categories {
		if category.ID == "" {
			return fmt.Errorf("category missing required field: ID")
		}
		if ids[category.ID] {
			return fmt.Errorf("duplicate category ID: %s", category.ID)
		}
		ids[category.ID] = true

		if category.DisplayName == "" {
			return fmt.Errorf("category %s missing required field: DisplayName", category.ID)
		}
		if len(category.Keywords) == 0 {
			return fmt.Errorf("category %s has no keywords", category.ID)
		}
		for i, keyword := range category.Keywords {
			if keyword == "" {
				return fmt.Errorf("category %s has an empty keyword at index %d", category.ID, i)
			}
		}
	}

	return nil
}
