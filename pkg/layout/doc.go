// Package layout holds the record-detail document model: an ordered tree of
// sections and fields with atomic, invariant-preserving mutation operations
// and a JSON snapshot codec for export/import.
//
// A Document is owned by exactly one editing session and is not safe for
// concurrent use. Every mutation either succeeds and leaves sibling order
// values as a dense 0..n-1 sequence, or fails without applying anything.
package layout
