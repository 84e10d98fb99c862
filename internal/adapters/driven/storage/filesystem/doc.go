// Package filesystem provides local-disk implementations of driven ports.
//
// Adapters:
//   - Store: DocumentStore and FragmentSource over plain files; writes are atomic
//   - Checksummer: MD5 directory hash recorded in meta.fixtodict.md5
//   - PatchReader: RFC 6902 patch files, comments and trailing commas allowed
package filesystem
