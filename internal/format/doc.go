// Package format provides pure string formatting helpers for durations,
// trial counts and percentages. Functions here perform no I/O.
package format
