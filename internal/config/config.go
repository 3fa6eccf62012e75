// Package config defines the application configuration and its resolution
// chain: CLI flags take priority over AGGBENCH_* environment variables,
// which take priority over the built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/aggbench/internal/aggregate"
	apperrors "github.com/agbru/aggbench/internal/errors"
	"github.com/agbru/aggbench/internal/order"
)

// EnvPrefix is prepended to every environment variable this application
// reads.
const EnvPrefix = "AGGBENCH_"

// Default configuration values.
const (
	// DefaultWarmupIterations is the number of untimed invocations run per
	// variant before measurement starts, letting the fixture and caches
	// settle.
	DefaultWarmupIterations = 1_000

	// DefaultMeasureTime is the per-variant measurement budget used when no
	// explicit iteration count is requested.
	DefaultMeasureTime = time.Second

	// DefaultTimeout bounds the whole benchmark run.
	DefaultTimeout = 5 * time.Minute
)

// GC modes accepted by the -gc-mode flag. Disabled is the default so
// allocation counts reflect steady-state behavior with no collections
// interleaved into the measured loop.
const (
	GCModeDisabled = "disabled"
	GCModeAuto     = "auto"
)

// AppConfig holds the full resolved application configuration.
type AppConfig struct {
	// Variant selects which aggregator(s) to run ("all" or a single name).
	Variant string
	// Iterations is the measured invocation count per variant; 0 means
	// derive it from MeasureTime.
	Iterations int
	// Warmup is the number of untimed invocations per variant.
	Warmup int
	// MeasureTime is the per-variant time budget when Iterations is 0.
	MeasureTime time.Duration
	// Seed feeds the fixture generator.
	Seed int64
	// Orders is the number of orders in the generated fixture.
	Orders int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// GCMode controls the collector during measurement (disabled or auto).
	GCMode string
	// OutputFile is the path to save the comparison report (empty for none).
	OutputFile string
	// MetricsAddr is the listen address for the Prometheus endpoint (empty
	// to disable).
	MetricsAddr string
	// TUI launches the interactive dashboard instead of plain CLI output.
	TUI bool
	// Quiet suppresses everything but the final comparison table.
	Quiet bool
	// Verbose enables debug logging.
	Verbose bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and validates
// the result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: The writer for flag parsing errors and usage text.
//   - availableVariants: The variant names accepted by -variant.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A ConfigError (or flag.ErrHelp) when parsing or validation fails.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableVariants []string) (AppConfig, error) {
	cfg := AppConfig{}
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Variant, "variant", aggregate.VariantAll,
		fmt.Sprintf("aggregation variant to benchmark (%s)", strings.Join(availableVariants, ", ")))
	fs.IntVar(&cfg.Iterations, "iterations", 0, "measured invocations per variant (0 = derive from -measure-time)")
	fs.IntVar(&cfg.Warmup, "warmup", DefaultWarmupIterations, "untimed warmup invocations per variant")
	fs.DurationVar(&cfg.MeasureTime, "measure-time", DefaultMeasureTime, "per-variant measurement budget when -iterations is 0")
	fs.Int64Var(&cfg.Seed, "seed", order.DefaultSeed, "fixture generator seed")
	fs.IntVar(&cfg.Orders, "orders", order.DefaultOrderCount, "number of orders in the fixture")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "overall run timeout")
	fs.StringVar(&cfg.GCMode, "gc-mode", GCModeDisabled, "garbage collector mode during measurement (disabled, auto)")
	fs.StringVar(&cfg.OutputFile, "o", "", "write the comparison report to this file")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (empty to disable)")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive dashboard")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "only print the final comparison table")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, availableVariants); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validate rejects configurations the harness cannot run.
func validate(cfg AppConfig, availableVariants []string) error {
	if !contains(availableVariants, cfg.Variant) {
		return apperrors.NewConfigError("unknown variant %q (available: %s)",
			cfg.Variant, strings.Join(availableVariants, ", "))
	}
	if cfg.Iterations < 0 {
		return apperrors.NewConfigError("iterations must be non-negative, got %d", cfg.Iterations)
	}
	if cfg.Warmup < 0 {
		return apperrors.NewConfigError("warmup must be non-negative, got %d", cfg.Warmup)
	}
	if cfg.Orders < 0 {
		return apperrors.NewConfigError("orders must be non-negative, got %d", cfg.Orders)
	}
	if cfg.Iterations == 0 && cfg.MeasureTime <= 0 {
		return apperrors.NewConfigError("measure-time must be positive when iterations is 0, got %s", cfg.MeasureTime)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.GCMode != GCModeDisabled && cfg.GCMode != GCModeAuto {
		return apperrors.NewConfigError("unknown gc-mode %q (available: %s, %s)",
			cfg.GCMode, GCModeDisabled, GCModeAuto)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
