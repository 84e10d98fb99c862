// Package schema validates canonical documents against a JSON Schema.
//
// The default schema is embedded in the binary. A different schema may be
// loaded from disk; either way it is read once and the resulting Validator
// is injected wherever documents are checked.
package schema
