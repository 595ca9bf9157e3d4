package report

import (
	"context"
	"io"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/matchtime/internal/estimate"
	"github.com/agbru/matchtime/internal/format"
	"github.com/agbru/matchtime/internal/logging"
)

const tracerName = "github.com/agbru/matchtime/internal/report"

// Report is a fully computed report, ready to be rendered.
type Report struct {
	Params estimate.Params
	// Cells holds one row per length and one cell per probability.
	Cells  [][]estimate.Cell
	Tables []Table
}

type options struct {
	trials    bool
	observers []Observer
	logger    logging.Logger
}

// Option configures Build.
type Option func(*options)

// WithTrials appends a table of expected trial counts after the duration table.
func WithTrials(enabled bool) Option {
	return func(o *options) { o.trials = enabled }
}

// WithObserver registers an observer notified of every cell.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// WithLogger sets the logger used for per-cell debug events.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Build computes every cell of the grid described by params and lays out
// the tables. Nothing is rendered; a failing cell returns its error and no
// partial report.
func Build(ctx context.Context, params estimate.Params, opts ...Option) (*Report, error) {
	o := options{logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "matchtime.report")
	defer span.End()
	span.SetAttributes(
		attribute.Float64("matchtime.rate", params.Rate),
		attribute.Int("matchtime.alphabet", params.Alphabet),
		attribute.Int("matchtime.rows", len(params.Lengths)),
		attribute.Int("matchtime.columns", len(params.Probabilities)),
	)

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	cells, err := estimate.Grid(params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	for _, row := range cells {
		for _, cell := range row {
			o.logger.Debug("cell computed",
				logging.Int("n", cell.Length),
				logging.Float64("p", cell.Probability),
				logging.Float64("trials", cell.Trials),
				logging.Float64("seconds", cell.Seconds),
			)
			for _, obs := range o.observers {
				obs.ObserveCell(cell)
			}
		}
	}

	r := &Report{Params: params, Cells: cells}
	r.Tables = append(r.Tables, durationTable(params, cells))
	if o.trials {
		r.Tables = append(r.Tables, trialsTable(params, cells))
	}
	return r, nil
}

// Generate builds the report and writes it to w in a single write, so a
// failure leaves w untouched.
func Generate(ctx context.Context, w io.Writer, params estimate.Params, opts ...Option) error {
	r, err := Build(ctx, params, opts...)
	if err != nil {
		return err
	}
	_, err = r.WriteTo(w)
	return err
}

// Lines returns every rendered line, tables separated by an empty line.
func (r *Report) Lines() []string {
	var lines []string
	for i, t := range r.Tables {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Lines()...)
	}
	return lines
}

// String renders the report with a trailing newline.
func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n") + "\n"
}

// WriteTo implements io.WriterTo.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}

// Title returns the description line of the duration table.
func Title(rate float64) string {
	return "Time to get n-symbol match at rate " + formatRate(rate) +
		" trials per second with probability of:"
}

func durationTable(params estimate.Params, cells [][]estimate.Cell) Table {
	return buildTable(Title(params.Rate), params, cells, func(c estimate.Cell) string {
		return format.FormatSeconds(c.Rounded)
	})
}

func trialsTable(params estimate.Params, cells [][]estimate.Cell) Table {
	title := "Expected trials to get n-symbol match of base " + strconv.Itoa(params.Alphabet) +
		" with probability of:"
	return buildTable(title, params, cells, func(c estimate.Cell) string {
		return format.FormatTrials(c.Trials)
	})
}

func buildTable(title string, params estimate.Params, cells [][]estimate.Cell, value func(estimate.Cell) string) Table {
	header := make([]string, 0, len(params.Probabilities)+1)
	header = append(header, "n")
	for _, p := range params.Probabilities {
		header = append(header, format.FormatPercent(p))
	}

	rows := make([][]string, 0, len(cells))
	for i, row := range cells {
		line := make([]string, 0, len(row)+1)
		line = append(line, strconv.Itoa(params.Lengths[i]))
		for _, cell := range row {
			line = append(line, value(cell))
		}
		rows = append(rows, line)
	}
	return Table{Title: title, Header: header, Rows: rows}
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
