package driven

// SchemaValidator checks documents against the canonical JSON Schema.
type SchemaValidator interface {
	// Validate returns an error wrapping domain.ErrSchemaViolation when doc
	// does not conform. Malformed JSON is domain.ErrInvalidInput.
	Validate(doc []byte) error

	// Schema returns the raw schema document.
	Schema() []byte
}
