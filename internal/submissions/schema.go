package submissions

import (
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"arcade-roulette-service/internal/domain/games"
)

// documentSchema describes the accepted payload shape. URL syntax is checked separately.
func documentSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"title", "creator", "genre", "url", "description"},
		"properties": map[string]any{
			"title":         map[string]any{"type": "string", "minLength": 2},
			"creator":       map[string]any{"type": "string", "minLength": 2},
			"genre":         map[string]any{"type": "string", "enum": games.Genres},
			"type":          map[string]any{"type": "string", "enum": append([]string{""}, Types...)},
			"platform":      map[string]any{"type": "string", "enum": append([]string{""}, Platforms...)},
			"url":           map[string]any{"type": "string", "minLength": 1},
			"sourceRepoUrl": map[string]any{"type": "string"},
			"description":   map[string]any{"type": "string", "minLength": 10},
		},
	}
}

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewGoLoader(documentSchema()))
})

// validateDocument maps schema violations onto per-field messages.
func validateDocument(doc map[string]any) (map[string]string, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("submission schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("submission schema: %w", err)
	}

	fields := make(map[string]string)
	for _, e := range res.Errors() {
		name := e.Field()
		if e.Type() == "required" {
			if prop, ok := e.Details()["property"].(string); ok {
				name = prop
			}
		}
		if msg, ok := fieldMessages[name]; ok {
			fields[name] = msg
		}
	}
	return fields, nil
}
