// Package ui holds the color theme of the command line output.
// It selects the dark or colorless theme from --no-color and NO_COLOR, and
// styles report titles with lipgloss for terminals that support it.
package ui
