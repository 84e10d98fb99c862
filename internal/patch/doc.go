// Package patch turns change sets into RFC 6902 operations and applies
// operation lists to canonical documents.
//
// Documents are handled as JSON bytes. Application always works on a copy,
// so a failed list leaves the input untouched.
package patch
