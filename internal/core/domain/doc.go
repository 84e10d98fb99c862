// Package domain defines the core entities of fixtodict.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Version and History: protocol provenance of every entity
//   - Field, Enum, Component, Message, MessageContent and the other
//     entity kinds of a FIX Repository
//   - Extraction: raw keyed maps produced by the extractors
//   - Repository: the linked entity maps produced by the linker
//   - Document: the canonical, versioned JSON document
//   - ChangeSet and PatchOperation: extension packs and their patches
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
