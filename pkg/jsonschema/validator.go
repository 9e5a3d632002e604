// Package jsonschema provides JSON Schema validation helpers used to check
// response bodies returned by the target service.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema is a compiled JSON Schema that can be reused across many
// validations. Compiling once and validating per-request keeps schema
// parsing off the hot path.
type Schema struct {
	compiled *jsonschema.Schema
}

// Compile parses and compiles a JSON Schema document.
func Compile(schemaStr string) (*Schema, error) {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource("schema.json", strings.NewReader(schemaStr)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	return &Schema{compiled: compiled}, nil
}

// Validate checks a JSON document against the compiled schema.
// It returns an error when the document cannot be parsed or does not
// conform to the schema.
func (s *Schema) Validate(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := s.compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}

// Validate is a one-shot helper that compiles schemaStr and validates
// jsonStr against it. Returns true when the document conforms.
func Validate(jsonStr, schemaStr string) (bool, error) {
	schema, err := Compile(schemaStr)
	if err != nil {
		return false, err
	}

	if err := schema.Validate([]byte(jsonStr)); err != nil {
		if strings.Contains(err.Error(), "invalid JSON") {
			return false, err
		}
		return false, nil
	}

	return true, nil
}
