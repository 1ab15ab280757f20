// Package analyze computes read-only diagnostics over a package: aggregate
// statistics, content-duplicate groups, and a best-effort unused-asset report.
//
// The unused-asset detector walks every string leaf of every structured
// document and treats anything containing ':' or '/' as a possible resource
// reference. The grammar is intentionally permissive; references embedded in
// non-standard string shapes will not be detected, so the report can contain
// false positives. Nothing in this package mutates the package it inspects.
package analyze
