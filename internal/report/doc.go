// Package report builds the expected-time table for a grid of symbol
// lengths and probabilities and renders it as fixed-width text.
//
// The layout is one title line, one header row starting with "n", and one
// row per symbol length. Every value column is right-aligned in a field of
// ColumnWidth characters preceded by a single space; the length column is
// left as-is.
package report
