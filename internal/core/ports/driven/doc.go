// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - FragmentSource: Reads XML fragments from a source directory
//   - SchemaValidator: Validates documents against the canonical schema
//   - DocumentStore: Reads and atomically writes document files
//   - PatchSource: Reads RFC 6902 patch files
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Checksummer: Source directory integrity tag. Without it, meta.fixtodict.md5 is omitted.
//   - DescriptionTransformer: Rewrites documentation prose. Without it, text is emitted as read.
//   - LedgerStore: Generation history. Without it, runs are not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or pipeline package
package driven
