package predict

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const responseSchemaURL = "schema://prediction-response.json"

// responseSchema describes a 2xx body. Only probability is required;
// a missing risk_category falls back to "low" and missing tips to none.
var responseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"risk_category": map[string]any{"type": []any{"string", "null"}},
		"probability":   map[string]any{"type": "number"},
		"tips": map[string]any{
			"type":  []any{"array", "null"},
			"items": map[string]any{"type": "string"},
		},
	},
	"required": []any{"probability"},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// validateResponse checks a decoded 2xx body against responseSchema.
// Returns *ErrMalformedResponse on failure.
func validateResponse(raw json.RawMessage, parsed any) error {
	schema, err := getCompiledSchema()
	if err != nil {
		return &ErrMalformedResponse{
			Content: raw,
			Err:     fmt.Errorf("compile response schema: %w", err),
		}
	}
	if err := schema.Validate(parsed); err != nil {
		return &ErrMalformedResponse{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}
	return nil
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants plain decoded JSON, not Go literals.
		defBytes, err := json.Marshal(responseSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(responseSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(responseSchemaURL)
	})
	return compiled, compileErr
}
