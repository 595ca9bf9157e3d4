// Package cli renders reports for the command line.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayReport], [DisplayError].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatReport].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteReportToFile].
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/matchtime/internal/report"
	"github.com/agbru/matchtime/internal/ui"
)

// OutputConfig holds configuration for report output.
type OutputConfig struct {
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
}

// FormatReport renders r, passing every table title through style.
//
// Parameters:
//   - r: The computed report.
//   - style: Applied to title lines; nil leaves them plain.
//
// Returns:
//   - string: The rendered report with a trailing newline.
func FormatReport(r *report.Report, style func(string) string) string {
	if style == nil {
		return r.String()
	}
	var b strings.Builder
	for i, t := range r.Tables {
		if i > 0 {
			b.WriteByte('\n')
		}
		lines := t.Lines()
		b.WriteString(style(lines[0]))
		b.WriteByte('\n')
		for _, line := range lines[1:] {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// DisplayReport writes r to out in a single write, styling titles when out
// is a color-capable terminal.
func DisplayReport(out io.Writer, r *report.Report) error {
	_, err := io.WriteString(out, FormatReport(r, ui.TitleRenderer(out)))
	return err
}

// DisplayError writes err to out in the theme's error color.
func DisplayError(out io.Writer, err error) {
	fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
}

// WriteReportToFile writes the plain report to config.OutputFile, preceded by
// a commented metadata header. An empty path is a no-op.
//
// Parameters:
//   - r: The computed report.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteReportToFile(r *report.Report, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	var b strings.Builder
	fmt.Fprintf(&b, "# Match Time Estimate\n")
	fmt.Fprintf(&b, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "# Alphabet: %d\n", r.Params.Alphabet)
	fmt.Fprintf(&b, "# Rate: %s trials/s\n", strconv.FormatFloat(r.Params.Rate, 'f', -1, 64))
	fmt.Fprintf(&b, "\n")
	b.WriteString(r.String())

	if _, err := io.WriteString(file, b.String()); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return file.Close()
}
