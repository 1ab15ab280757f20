// Package logging constructs the slog loggers used across packsmith and
// provides small attribute helpers so call sites stay terse.
//
// Two output formats are supported: a compact console format for interactive
// use and line-delimited JSON for machine consumption. Component loggers
// carry a standardized component attribute that the console handler promotes
// into the message prefix.
package logging
