package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// CompanyRecordSchema is the single schema every collected record must
// satisfy before it enters the pipeline. Sources producing records that
// fail validation have those records dropped at the boundary.
var CompanyRecordSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"name": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"description": map[string]interface{}{
			"type": "string",
		},
		"businessNature": map[string]interface{}{
			"type": "string",
		},
		"location": map[string]interface{}{
			"type": "string",
		},
		"source": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"registrationNumber": map[string]interface{}{
			"type": "string",
		},
		"website": map[string]interface{}{
			"type": "string",
		},
		"employees": map[string]interface{}{
			"type": "string",
		},
		"founded": map[string]interface{}{
			"type":    "integer",
			"minimum": 1800,
		},
		"searchTerm": map[string]interface{}{
			"type": "string",
		},
		"category": map[string]interface{}{
			"type": "string",
		},
	},
	"required":             []string{"name", "source"},
	"additionalProperties": false,
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidateRecord validates a collected company record against
// CompanyRecordSchema and returns the detailed result.
func ValidateRecord(record interface{}) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewGoLoader(CompanyRecordSchema)
	documentLoader := gojsonschema.NewGoLoader(record)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	vr := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		vr.Errors = append(vr.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    strings.ToUpper(desc.Type()),
		})
	}

	return vr, nil
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for specific field
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}
