package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/tsawler/pdfoutline/model"
)

// SchemaURL identifies the embedded outline schema.
const SchemaURL = "https://github.com/tsawler/pdfoutline/outline.schema.json"

//go:embed outline.schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Schema returns the raw JSON Schema describing the output record.
func Schema() []byte {
	return append([]byte(nil), schemaJSON...)
}

func outlineSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(SchemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(SchemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// ValidateJSON checks an encoded record against the outline schema.
func ValidateJSON(data []byte) error {
	schema, err := outlineSchema()
	if err != nil {
		return err
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}

// Validate checks a result against the outline schema.
func Validate(result *model.AnalysisResult) error {
	data, err := EncodeJSON(result)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return ValidateJSON(data)
}
