package app

import (
	"context"
	"io"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agbru/matchtime/internal/cli"
	"github.com/agbru/matchtime/internal/config"
	apperrors "github.com/agbru/matchtime/internal/errors"
	"github.com/agbru/matchtime/internal/format"
	"github.com/agbru/matchtime/internal/logging"
	"github.com/agbru/matchtime/internal/metrics"
	"github.com/agbru/matchtime/internal/report"
	"github.com/agbru/matchtime/internal/ui"
)

// Application represents the matchtime application instance.
type Application struct {
	ErrWriter io.Writer
}

// New creates a new Application writing diagnostics to errWriter.
func New(errWriter io.Writer) *Application {
	return &Application{ErrWriter: errWriter}
}

// Run parses args (without the program name), executes the command and
// returns the process exit code.
func (a *Application) Run(ctx context.Context, args []string, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	// Set before parsing so flag and config errors honor --no-color too.
	ui.InitTheme(noColorRequested(args))

	cmd := a.NewCommand(out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		cli.DisplayError(a.ErrWriter, err)
	}
	return apperrors.ExitCode(err)
}

// NewCommand builds the root command. The report is written to out.
func (a *Application) NewCommand(out io.Writer) *cobra.Command {
	var flags config.AppConfig

	cmd := &cobra.Command{
		Use:   "matchtime",
		Short: "Estimate the time to find an n-symbol partial match",
		Long: `matchtime prints how long a search running at a fixed trial rate takes to
find a key whose encoding shares n leading symbols with a target, with a
given probability. Each trial is an independent Bernoulli event with
success probability 1/b^n, so the trial count t for probability p is

    t = ln(1 - p) / ln(1 - 1/b^n)`,
		Args:          noArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(cmd.Flags(), flags)
			if err != nil {
				return err
			}
			return a.runReport(cmd.Context(), cfg, out)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(a.ErrWriter)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.ConfigError{Message: "invalid flags", Cause: err}
	})
	config.RegisterFlags(cmd.Flags(), &flags)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			PrintVersion(cmd.OutOrStdout())
		},
	})
	return cmd
}

// runReport computes the report, prints it and writes the optional
// output and metrics files.
func (a *Application) runReport(ctx context.Context, cfg config.AppConfig, out io.Writer) error {
	ui.InitTheme(cfg.NoColor)

	logger := newLogger(cfg, a.ErrWriter)
	logger.Debug("configuration resolved",
		logging.Float64("rate", cfg.Rate),
		logging.Int("alphabet", cfg.Alphabet),
		logging.Int("rows", len(cfg.Lengths)),
		logging.Int("columns", len(cfg.Probabilities)),
		logging.String("config", cfg.ConfigFile),
		logging.String("log_format", cfg.LogFormat),
	)

	opts := []report.Option{report.WithTrials(cfg.Trials), report.WithLogger(logger)}
	var recorder *metrics.Recorder
	if cfg.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		opts = append(opts, report.WithObserver(recorder))
	}

	start := time.Now()
	r, err := report.Build(ctx, cfg.Params(), opts...)
	if err != nil {
		logger.Debug("report failed", logging.Err(err))
		return err
	}

	if err := cli.DisplayReport(out, r); err != nil {
		return apperrors.WrapError(err, "failed to write report")
	}

	if err := cli.WriteReportToFile(r, cli.OutputConfig{OutputFile: cfg.OutputFile}); err != nil {
		return err
	}
	if cfg.OutputFile != "" {
		logger.Info("report saved", logging.String("path", cfg.OutputFile))
	}

	if recorder != nil {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			return apperrors.WrapError(err, "failed to write metrics")
		}
		logger.Info("metrics saved", logging.String("path", cfg.MetricsFile))
	}

	logger.Debug("report complete", logging.String("elapsed", format.FormatExecutionDuration(time.Since(start))))
	return nil
}

// newLogger returns the stderr logger selected by cfg.
func newLogger(cfg config.AppConfig, w io.Writer) *logging.ZerologAdapter {
	var logger *logging.ZerologAdapter
	if cfg.LogFormat == config.LogFormatJSON {
		logger = logging.NewLogger(w, "matchtime")
	} else {
		logger = logging.NewConsoleLogger(w, "matchtime", ui.GetCurrentTheme().Name == ui.NoColorTheme.Name)
	}
	if cfg.Verbose {
		logger = logger.WithLevel(zerolog.DebugLevel)
	}
	return logger
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return apperrors.ConfigError{Message: "invalid arguments", Cause: err}
	}
	return nil
}

// noColorRequested scans args for --no-color ahead of flag parsing. The last
// occurrence wins and scanning stops at the "--" terminator.
func noColorRequested(args []string) bool {
	noColor := false
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "--no-color" {
			noColor = true
			continue
		}
		if v, ok := strings.CutPrefix(arg, "--no-color="); ok {
			parsed, err := strconv.ParseBool(v)
			noColor = err == nil && parsed
		}
	}
	return noColor
}
