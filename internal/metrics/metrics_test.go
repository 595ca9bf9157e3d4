package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/matchtime/internal/estimate"
)

func TestNewRecorder(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	if r.Registry() == nil {
		t.Fatal("Registry should be initialized")
	}
	if got := testutil.ToFloat64(r.cells); got != 0 {
		t.Errorf("initial cells_total = %v, want 0", got)
	}
}

func TestRecorder_ObserveCell(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	cells := []estimate.Cell{
		{Length: 4, Probability: 50, Trials: 11629079.6, Seconds: 0.646},
		{Length: 4, Probability: 99.5, Trials: 88000000, Seconds: 4.9},
		{Length: 7, Probability: 50, Trials: 3048493539142.9, Seconds: 169360.7},
	}
	for _, c := range cells {
		r.ObserveCell(c)
	}

	if got := testutil.ToFloat64(r.cells); got != 3 {
		t.Errorf("cells_total = %v, want 3", got)
	}
	if got := testutil.ToFloat64(r.trials.WithLabelValues("4", "50")); got != 11629079.6 {
		t.Errorf("expected_trials{4,50} = %v, want 11629079.6", got)
	}
	if got := testutil.ToFloat64(r.trials.WithLabelValues("4", "99.5")); got != 88000000 {
		t.Errorf("expected_trials{4,99.5} = %v, want 88000000", got)
	}
	if got := testutil.CollectAndCount(r.trials); got != 3 {
		t.Errorf("expected_trials series = %d, want 3", got)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveCell(estimate.Cell{Length: 5, Probability: 95, Trials: 3216643034.1, Seconds: 178.7})

	path := filepath.Join(t.TempDir(), "matchtime.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read textfile: %v", err)
	}
	content := string(data)
	for _, want := range []string{
		"matchtime_cells_total 1",
		`matchtime_expected_trials{length="5",probability="95"}`,
		"matchtime_expected_seconds_count 1",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("textfile should contain %q, got:\n%s", want, content)
		}
	}
}
