// Package logging provides a unified logging interface for matchtime.
// It abstracts the underlying zerolog implementation so that components log
// through a small interface and tests can capture output in a buffer.
package logging
