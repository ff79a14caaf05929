package quiz

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// packSchemaJSON is the JSON Schema every quiz pack must satisfy.
const packSchemaJSON = `{
	"type": "object",
	"properties": {
		"title":      {"type": "string"},
		"competency": {"type": "string"},
		"level":      {"type": "string"},
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"question":     {"type": "string"},
					"options":      {"type": "array", "items": {"type": "string"}, "minItems": 2},
					"answer_index": {"type": "integer", "minimum": 0}
				},
				"required": ["question", "options", "answer_index"]
			}
		}
	},
	"required": ["questions"]
}`

var (
	packSchemaOnce sync.Once
	packSchema     *jsonschema.Schema
	packSchemaErr  error
)

func compiledPackSchema() (*jsonschema.Schema, error) {
	packSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(packSchemaJSON), &def); err != nil {
			packSchemaErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://quiz-pack.json", def); err != nil {
			packSchemaErr = fmt.Errorf("add pack schema resource: %w", err)
			return
		}
		packSchema, packSchemaErr = c.Compile("schema://quiz-pack.json")
	})
	return packSchema, packSchemaErr
}

// validatePack checks raw pack JSON against the pack schema.
func validatePack(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledPackSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
