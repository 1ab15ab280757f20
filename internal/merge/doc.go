// Package merge layers multiple packages into one.
//
// Merging is defined purely at the byte/path level: inputs are applied lowest
// priority first and a later package's payload replaces an earlier one at the
// same path, with no document-field merging. Conflict records are computed on
// demand and never persisted.
package merge
