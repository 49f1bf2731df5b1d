// Package logging assembles the structured slog loggers used across
// roomctl-setup.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// provides a no-op logger for tests. Logs go to stderr so command output on
// stdout stays clean for operators and scripts.
package logging
