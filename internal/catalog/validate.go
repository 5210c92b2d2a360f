package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const responseSchemaURL = "schema://catalog/question-response.json"

// responseSchema describes the getQuestion response document.
var responseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"data": map[string]any{
			"type": []any{"object", "null"},
			"properties": map[string]any{
				"question": map[string]any{
					"type":     []any{"object", "null"},
					"required": []any{"questionFrontendId", "title", "difficulty"},
					"properties": map[string]any{
						"questionFrontendId": map[string]any{"type": "string"},
						"title":              map[string]any{"type": "string"},
						"difficulty":         map[string]any{"type": "string"},
						"topicTags": map[string]any{
							"type": []any{"array", "null"},
							"items": map[string]any{
								"type":       "object",
								"required":   []any{"name"},
								"properties": map[string]any{"name": map[string]any{"type": "string"}},
							},
						},
					},
				},
			},
		},
		"errors": map[string]any{"type": "array"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateResponse checks raw against the response schema.
// Returns *ErrInvalidResponse on failure.
func validateResponse(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := schema()
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile response schema: %w", err)}
	}
	if err := sch.Validate(parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if compileErr = c.AddResource(responseSchemaURL, responseSchema); compileErr != nil {
			return
		}
		compiledSchema, compileErr = c.Compile(responseSchemaURL)
	})
	return compiledSchema, compileErr
}
