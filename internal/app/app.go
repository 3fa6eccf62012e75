// Package app wires configuration, the benchmark harness and the
// presentation layers into a runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/aggbench/internal/aggregate"
	"github.com/agbru/aggbench/internal/config"
	"github.com/agbru/aggbench/internal/ui"
)

// Application represents the aggbench application instance.
type Application struct {
	Config    config.AppConfig
	Suite     *aggregate.Suite
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSuite sets a custom aggregation suite, bypassing the fixture defined by
// the seed and order count flags. Used by tests.
func WithSuite(s *aggregate.Suite) AppOption {
	return func(a *Application) { a.Suite = s }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "aggbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, aggregate.VariantNames())
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	if app.Suite == nil {
		app.Suite = aggregate.NewSuite(cfg.Seed, cfg.Orders)
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(false)

	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	return a.runBench(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
