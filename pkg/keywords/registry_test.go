// pkg/keywords/registry_test.go
package keywords

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	return &Registry{
		Version:     "1.0.0",
		LastUpdated: "2026-08-26T00:00:00Z",
		Categories: []Category{
			{
				ID:          CategoryMedical,
				DisplayName: "Medical R&D",
				Label:       "medical_rd",
				Keywords:    []string{"biotech", "clinical trial"},
			},
			{
				ID:          CategoryPatent,
				DisplayName: "Patent Brokerage",
				Label:       "patent_brokerage",
				Keywords:    []string{"patent licensing"},
			},
		},
	}
}

func TestSaveAndLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registries", "keywords.json")

	require.NoError(t, SaveRegistry(testRegistry(), path))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", loaded.Version)
	require.Len(t, loaded.Categories, 2)
	assert.Equal(t, []string{"biotech", "clinical trial"}, loaded.Categories[0].Keywords)
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadRegistry_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadRegistry(path)
	assert.Error(t, err)
}

func TestKeywords(t *testing.T) {
	reg := testRegistry()

	medical, err := reg.Keywords(CategoryMedical)
	require.NoError(t, err)
	assert.Equal(t, []string{"biotech", "clinical trial"}, medical)

	_, err = reg.Keywords("finance")
	assert.ErrorContains(t, err, "not found")

	reg.Categories[1].Keywords = nil
	_, err = reg.Keywords(CategoryPatent)
	assert.ErrorContains(t, err, "no keywords")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Registry)
		wantErr string
	}{
		{
			name:   "valid registry",
			mutate: func(r *Registry) {},
		},
		{
			name:    "no categories",
			mutate:  func(r *Registry) { r.Categories = nil },
			wantErr: "no categories",
		},
		{
			name:    "missing ID",
			mutate:  func(r *Registry) { r.Categories[0].ID = "" },
			wantErr: "missing required field: ID",
		},
		{
			name:    "duplicate ID",
			mutate:  func(r *Registry) { r.Categories[1].ID = CategoryMedical },
			wantErr: "duplicate category ID",
		},
		{
			name:    "missing display name",
			mutate:  func(r *Registry) { r.Categories[0].DisplayName = "" },
			wantErr: "missing required field: DisplayName",
		},
		{
			name:    "empty keyword list",
			mutate:  func(r *Registry) { r.Categories[1].Keywords = []string{} },
			wantErr: "has no keywords",
		},
		{
			name:    "blank keyword entry",
			mutate:  func(r *Registry) { r.Categories[0].Keywords = []string{"biotech", ""} },
			wantErr: "empty keyword at index 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := testRegistry()
			tt.mutate(reg)

			err := reg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
