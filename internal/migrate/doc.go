// Package migrate rewrites item override documents when a package's declared
// pack format crosses the legacy/modern boundary.
//
// Upgrades convert every legacy overrides array into a modern range-dispatch
// document and keep the emptied legacy document; downgrades fold dispatch
// entries back into legacy overrides and delete the modern document.
// Conversions that stay on one side of the boundary rewrite only the
// metadata. The numeric tag <-> threshold mapping is information-preserving;
// dispatch entries nested deeper than one level are dropped with a warning
// rather than guessed at. Generated model and asset documents are never
// touched.
package migrate
