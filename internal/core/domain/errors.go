package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent normalisation and patching failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Normalisation Errors.

	// ErrMalformedVersion indicates an unparsable protocol version string or attribute pair.
	ErrMalformedVersion = errors.New("malformed version")

	// ErrRequiredFieldMissing indicates an extractor could not find a mandatory field.
	ErrRequiredFieldMissing = errors.New("required field missing")

	// ErrDuplicateKey indicates two entities of the same kind share a primary key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnresolvedReference indicates the linker could not resolve a reference.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrFragmentMissing indicates a mandatory source fragment is absent.
	ErrFragmentMissing = errors.New("fragment missing")

	// Document Errors.

	// ErrSchemaViolation indicates a document does not conform to the canonical schema.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrPatchConflict indicates a patch operation's precondition does not hold.
	ErrPatchConflict = errors.New("patch conflict")
)

// EntityError attributes a failure to the fragment and entity that caused it.
// Fields that are unknown at the failure site are left empty.
type EntityError struct {
	// Fragment names the source file or fragment.
	Fragment string

	// Kind is the entity kind being processed.
	Kind Kind

	// Key is the primary key of the entity, if derivable.
	Key string

	// Field names the offending member (e.g. "added", "Tag").
	Field string

	// Err is the underlying sentinel or cause.
	Err error
}

// Error implements the error interface.
func (e *EntityError) Error() string {
	var b strings.Builder
	if e.Fragment != "" {
		b.WriteString(e.Fragment)
		b.WriteString(": ")
	}
	if e.Kind != "" {
		b.WriteString(string(e.Kind))
		if e.Key != "" {
			fmt.Fprintf(&b, "[%s]", e.Key)
		}
		b.WriteString(": ")
	}
	if e.Field != "" {
		b.WriteString(e.Field)
		b.WriteString(": ")
	}
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *EntityError) Unwrap() error {
	return e.Err
}

// WithFragment returns err attributed to fragment. An existing EntityError
// keeps its other attribution; any other error is wrapped.
func WithFragment(err error, fragment string) error {
	if err == nil {
		return nil
	}
	var ee *EntityError
	if errors.As(err, &ee) && ee.Fragment == "" {
		cp := *ee
		cp.Fragment = fragment
		return &cp
	}
	if ee != nil {
		return err
	}
	return &EntityError{Fragment: fragment, Err: err}
}
