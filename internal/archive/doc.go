// Package archive is the container codec boundary: it converts between the
// zip byte stream resource packs ship as and the in-memory store.
//
// Decode rejects directory-only entries and normalizes every path; Encode and
// Decode round-trip for every path/payload pair. Save writes through a
// temporary file and holds an advisory lock on the destination so concurrent
// invocations cannot interleave writes.
package archive
