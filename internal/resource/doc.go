// Package resource models namespaced resource identifiers and the path
// conventions that tie item documents, models, textures, and fonts together.
//
// The legacy/modern schema pairing is discovered purely by naming convention
// (models/item/<x>.json vs items/<x>.json), so the path builders here are the
// single source of truth for both the editor and the migrator. Generated
// model and texture names follow the <ns>:item/<item>_cmd_<tag> convention
// that external tooling pattern-matches on.
package resource
