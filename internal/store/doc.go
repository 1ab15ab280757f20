// Package store implements the path-addressed byte store that backs every
// resource pack in memory.
//
// A Store maps normalized slash-separated paths to opaque payloads. Keys are
// unique, non-empty, and never contain backslashes; there are no implicit
// directory entries. Payload slices are treated as immutable once written, so
// Clone copies the key set but shares the byte slices, keeping clone-then-write
// edits cheap while leaving the original store fully usable.
package store
