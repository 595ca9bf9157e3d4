// Command generate-golden rewrites the report golden files from the
// built-in defaults.
//
//	go run ./cmd/generate-golden -dir internal/report/testdata
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agbru/matchtime/internal/estimate"
	"github.com/agbru/matchtime/internal/report"
)

// goldens maps each golden file name to the report options producing it.
var goldens = []struct {
	name string
	opts []report.Option
}{
	{"default.golden", nil},
	{"trials.golden", []report.Option{report.WithTrials(true)}},
}

func main() {
	dir := flag.String("dir", filepath.Join("internal", "report", "testdata"), "output directory")
	flag.Parse()

	if err := writeGoldens(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
}

func writeGoldens(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, g := range goldens {
		var buf bytes.Buffer
		if err := report.Generate(context.Background(), &buf, estimate.DefaultParams(), g.opts...); err != nil {
			return fmt.Errorf("%s: %w", g.name, err)
		}
		path := filepath.Join(dir, g.name)
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}
