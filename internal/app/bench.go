package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/aggbench/internal/cli"
	apperrors "github.com/agbru/aggbench/internal/errors"
	"github.com/agbru/aggbench/internal/harness"
	"github.com/agbru/aggbench/internal/logging"
	"github.com/agbru/aggbench/internal/server"
	"github.com/agbru/aggbench/internal/sysmon"
	"github.com/agbru/aggbench/internal/tui"
	"github.com/agbru/aggbench/internal/ui"
)

// harnessOptions maps the parsed configuration onto harness options.
func (a *Application) harnessOptions() harness.Options {
	return harness.Options{
		Iterations:  a.Config.Iterations,
		Warmup:      a.Config.Warmup,
		MeasureTime: a.Config.MeasureTime,
		GCMode:      a.Config.GCMode,
	}
}

// runTUI launches the full-screen dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	variants, ok := a.Suite.Select(a.Config.Variant)
	if !ok {
		fmt.Fprintf(a.ErrWriter, "Unknown variant: %s\n", a.Config.Variant)
		return apperrors.ExitErrorConfig
	}

	code, err := tui.Run(ctx, a.Config, variants, a.harnessOptions())
	if err != nil && code == apperrors.ExitErrorGeneric {
		fmt.Fprintf(a.ErrWriter, "TUI error: %v\n", err)
	}
	return code
}

// runBench executes the benchmark with CLI output.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	variants, ok := a.Suite.Select(a.Config.Variant)
	if !ok {
		fmt.Fprintf(a.ErrWriter, "Unknown variant: %s\n", a.Config.Variant)
		return apperrors.ExitErrorConfig
	}

	logger := logging.NewDefaultLogger()

	if !a.Config.Quiet {
		cli.DisplayRunHeader(out, &a.Config, sysmon.Host(), sysmon.Sample())
	}

	var reporter harness.ProgressReporter = harness.NullProgressReporter{}
	var spinnerReporter *cli.SpinnerReporter
	if !a.Config.Quiet {
		spinnerReporter = cli.NewSpinnerReporter(out)
		reporter = spinnerReporter
	}

	runnerOpts := []harness.RunnerOption{
		harness.WithLogger(logger),
		harness.WithReporter(reporter),
	}

	// The metrics endpoint serves for the duration of the run and shuts down
	// with it.
	serveCtx, stopServer := context.WithCancel(ctx)
	defer stopServer()
	group, serveCtx := errgroup.WithContext(serveCtx)
	if a.Config.MetricsAddr != "" {
		metrics := server.NewMetrics()
		runnerOpts = append(runnerOpts, harness.WithRecorder(metrics))
		srv := server.NewServer(a.Config.MetricsAddr, metrics, logger)
		group.Go(func() error { return srv.Run(serveCtx) })
	}

	runner := harness.NewRunner(a.harnessOptions(), runnerOpts...)
	results, err := runner.Run(ctx, variants)
	if spinnerReporter != nil {
		spinnerReporter.Done()
	}

	stopServer()
	if serveErr := group.Wait(); serveErr != nil {
		logger.Error("metrics server failed", serveErr)
	}

	if err != nil {
		fmt.Fprintf(out, "\n%sRun failed: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitCodeFor(err)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	if displayErr := cli.DisplayResultsWithConfig(out, results, &a.Config, outputCfg); displayErr != nil {
		fmt.Fprintf(a.ErrWriter, "Error writing report: %v\n", displayErr)
		return apperrors.ExitErrorGeneric
	}

	return apperrors.ExitSuccess
}
