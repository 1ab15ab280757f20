// Package document provides typed read/write helpers for structured and text
// payloads layered over the store.
//
// JSON reads parse on demand and soften decode failures to a missing result so
// callers decide severity. JSON writes serialize with sorted keys, two-space
// indentation, and a trailing newline, making repeated round trips
// byte-identical when content is unchanged.
package document
