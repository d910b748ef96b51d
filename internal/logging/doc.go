// Package logging provides a unified logging interface for the sequence tool.
// It abstracts the underlying logging implementation, allowing consistent
// diagnostics across components while supporting multiple backends. All
// backends write to the writer they are given; the application passes
// standard error so diagnostics never mix with the sequence on standard output.
package logging
