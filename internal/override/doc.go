// Package override edits per-item visual variants keyed by custom model data.
//
// It understands both override generations: the legacy predicate list inside
// assets/<ns>/models/item/<item>.json and the modern range-dispatch node
// inside assets/<ns>/items/<item>.json. The modern model reference is a
// recursive union (leaf, range dispatch, or raw passthrough), represented as
// a tagged variant so the migrator's one-level-only policy reduces to a type
// switch. Override entries within a document are kept strictly ascending by
// tag/threshold and upserts replace rather than duplicate.
package override
