// Package workspace persists an edit history for pack operations in a
// SQLite database under the configured data directory. Each mutating
// command records what it changed so recent work can be reviewed with
// the history command.
package workspace
