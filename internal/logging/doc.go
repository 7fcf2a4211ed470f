// Package logging builds the slog loggers used across Chime.
//
// Two handlers are supported: a human-oriented console handler for interactive
// use and JSON for CI log collection. The "auto" format picks console when
// stderr is a terminal and JSON otherwise, which makes workflow logs
// machine-readable without any configuration.
package logging
