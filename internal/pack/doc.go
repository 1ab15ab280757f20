// Package pack defines the editable package value (name + store), its
// pack.mcmeta metadata, and the pack-format registry that partitions the
// legacy and modern item-override generations.
//
// Every mutating operation in packsmith follows a clone-then-write
// discipline: it clones the package store, writes into the clone, and returns
// a new Package, leaving the caller's value intact until explicitly adopted.
package pack
