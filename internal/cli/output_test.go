package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/matchtime/internal/estimate"
	"github.com/agbru/matchtime/internal/report"
	"github.com/agbru/matchtime/internal/ui"
)

func defaultReport(t *testing.T) *report.Report {
	t.Helper()
	r, err := report.Build(context.Background(), estimate.DefaultParams(), report.WithTrials(true))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return r
}

func TestWriteReportToFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	r := defaultReport(t)

	testCases := []struct {
		name       string
		outputFile string
		checkFunc  func(t *testing.T, filePath string)
	}{
		{
			name:       "Write report to file",
			outputFile: filepath.Join(tmpDir, "report.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				if err != nil {
					t.Fatalf("Failed to read output file: %v", err)
				}
				contentStr := string(content)
				if !strings.HasPrefix(contentStr, "# Match Time Estimate\n") {
					t.Error("File should start with the metadata header")
				}
				if !strings.Contains(contentStr, "# Rate: 18000000 trials/s") {
					t.Error("File should record the rate")
				}
				if !strings.HasSuffix(contentStr, r.String()) {
					t.Error("File should end with the plain report")
				}
			},
		},
		{
			name:       "Empty output file (no write)",
			outputFile: "",
		},
		{
			name:       "Create nested directory",
			outputFile: filepath.Join(tmpDir, "nested", "dir", "report.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				if _, err := os.Stat(filePath); err != nil {
					t.Errorf("File should exist in nested directory: %v", err)
				}
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := WriteReportToFile(r, OutputConfig{OutputFile: tc.outputFile}); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tc.checkFunc != nil {
				tc.checkFunc(t, tc.outputFile)
			}
		})
	}
}

func TestWriteReportToFile_InvalidPath(t *testing.T) {
	t.Parallel()
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := WriteReportToFile(defaultReport(t), OutputConfig{OutputFile: filepath.Join(blocker, "report.txt")})
	if err == nil {
		t.Error("Expected error when the parent path is a file")
	}
}

func TestFormatReport(t *testing.T) {
	t.Parallel()
	r := defaultReport(t)

	if got := FormatReport(r, nil); got != r.String() {
		t.Errorf("FormatReport with nil style should equal String()")
	}

	styled := FormatReport(r, func(s string) string { return "[" + s + "]" })
	lines := strings.Split(strings.TrimSuffix(styled, "\n"), "\n")
	if !strings.HasPrefix(lines[0], "[Time to get") || !strings.HasSuffix(lines[0], "]") {
		t.Errorf("first title should be styled, got %q", lines[0])
	}
	if len(lines) != len(r.Lines()) {
		t.Errorf("styled report has %d lines, want %d", len(lines), len(r.Lines()))
	}

	styledTitles := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "[") {
			styledTitles++
		}
	}
	if styledTitles != 2 {
		t.Errorf("styled %d titles, want 2", styledTitles)
	}
}

func TestDisplayReport(t *testing.T) {
	original := ui.GetCurrentTheme()
	t.Cleanup(func() { ui.SetCurrentTheme(original) })
	ui.SetCurrentTheme(ui.NoColorTheme)

	var buf bytes.Buffer
	r := defaultReport(t)
	if err := DisplayReport(&buf, r); err != nil {
		t.Fatalf("DisplayReport failed: %v", err)
	}
	if buf.String() != r.String() {
		t.Errorf("DisplayReport output mismatch\n--- got ---\n%s\n--- want ---\n%s", buf.String(), r.String())
	}
}

func TestDisplayError(t *testing.T) {
	original := ui.GetCurrentTheme()
	t.Cleanup(func() { ui.SetCurrentTheme(original) })
	ui.SetCurrentTheme(ui.NoColorTheme)

	var buf bytes.Buffer
	DisplayError(&buf, errors.New("boom"))
	if buf.String() != "Error: boom\n" {
		t.Errorf("DisplayError = %q, want %q", buf.String(), "Error: boom\n")
	}
}
