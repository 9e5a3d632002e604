package jsonschema

import (
	"testing"
)

const testSchema = `{
	"type": "object",
	"required": ["n", "sum_of_primes"],
	"properties": {
		"n": {"type": "integer"},
		"sum_of_primes": {"type": "integer"}
	}
}`

func TestCompileAndValidate(t *testing.T) {
	schema, err := Compile(testSchema)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if err := schema.Validate([]byte(`{"n": 10, "sum_of_primes": 17}`)); err != nil {
		t.Errorf("Expected valid document, got: %v", err)
	}

	if err := schema.Validate([]byte(`{"n": 10}`)); err == nil {
		t.Error("Expected error for missing required field")
	}

	if err := schema.Validate([]byte(`{"n": "ten", "sum_of_primes": 17}`)); err == nil {
		t.Error("Expected error for wrong type")
	}

	if err := schema.Validate([]byte(`not json`)); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestCompile_InvalidSchema(t *testing.T) {
	if _, err := Compile(`{"type": 42}`); err == nil {
		t.Error("Expected error for invalid schema")
	}
}

func TestValidate_OneShot(t *testing.T) {
	valid, err := Validate(`{"n": 10, "sum_of_primes": 17}`, testSchema)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !valid {
		t.Error("Expected document to be valid")
	}

	valid, err = Validate(`{"n": 10}`, testSchema)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if valid {
		t.Error("Expected document to be invalid")
	}
}
