package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
)

//go:embed v1.json
var v1 []byte

// Ensure Validator implements the interface.
var _ driven.SchemaValidator = (*Validator)(nil)

// Validator checks documents against one resolved schema.
type Validator struct {
	raw      []byte
	resolved *jsonschema.Resolved
}

// Default returns a validator for the embedded schema.
func Default() (*Validator, error) {
	return New(v1)
}

// Load reads the schema at path. An empty path selects the embedded schema.
func Load(path string) (*Validator, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	v, err := New(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// New parses and resolves a schema document.
func New(raw []byte) (*Validator, error) {
	var s jsonschema.Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: parse schema: %w", domain.ErrInvalidInput, err)
	}
	resolved, err := s.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve schema: %w", domain.ErrInvalidInput, err)
	}
	return &Validator{raw: bytes.Clone(raw), resolved: resolved}, nil
}

// Validate checks doc. Unparsable JSON is ErrInvalidInput, a document that
// parses but does not conform is ErrSchemaViolation.
func (v *Validator) Validate(doc []byte) error {
	var instance any
	if err := json.Unmarshal(doc, &instance); err != nil {
		return fmt.Errorf("%w: decode document: %w", domain.ErrInvalidInput, err)
	}
	if err := v.resolved.Validate(instance); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSchemaViolation, err)
	}
	return nil
}

// Schema returns a copy of the schema document.
func (v *Validator) Schema() []byte {
	return bytes.Clone(v.raw)
}
