// Package logging provides the structured logger used across geosnd.
// Log entries carry a level, a logger name, a run ID identifying one
// parse invocation, and free-form fields; output format is pluggable
// (JSON for machine consumption, text and colored console for people).
//
// The parser reports recoverable decode problems through this package at
// info/warn level; it never aborts a parse because of file content.
package logging
