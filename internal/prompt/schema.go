package prompt

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://interview-preparation.json"

var responseSchema = map[string]any{
	"type":     "object",
	"required": []any{KeyQuestions, KeyAnswers},
	"properties": map[string]any{
		KeyQuestions: map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		KeyAnswers: map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
	},
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, responseSchema); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})
