package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kaptinlin/jsonschema"
)

var schemaSources = map[string][]byte{
	"text": []byte(`{
	"type": "object",
	"required": ["text"],
	"properties": {
		"text": {"type": "string", "maxLength": 100000}
	}
}`),
	"translate": []byte(`{
	"type": "object",
	"required": ["text", "target"],
	"properties": {
		"text": {"type": "string", "maxLength": 5000},
		"target": {"type": "string", "minLength": 2, "maxLength": 16}
	}
}`),
	"wordcloud": []byte(`{
	"type": "object",
	"required": ["text"],
	"properties": {
		"text": {"type": "string", "maxLength": 100000},
		"width": {"type": "integer", "minimum": 50, "maximum": 4000},
		"height": {"type": "integer", "minimum": 50, "maximum": 4000},
		"max_words": {"type": "integer", "minimum": 1, "maximum": 1000}
	}
}`),
}

func compileSchemas() (map[string]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	out := make(map[string]*jsonschema.Schema, len(schemaSources))
	for name, src := range schemaSources {
		schema, err := compiler.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", name, err)
		}
		out[name] = schema
	}
	return out, nil
}

func validate(schema *jsonschema.Schema, data map[string]any) error {
	result := schema.Validate(data)
	if result.IsValid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors))
	for field, e := range result.Errors {
		msgs = append(msgs, field+": "+e.Error())
	}
	sort.Strings(msgs)
	return fmt.Errorf("invalid request: %s", strings.Join(msgs, "; "))
}
