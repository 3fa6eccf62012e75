package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/aggbench/internal/config"
	"github.com/agbru/aggbench/internal/harness"
	"github.com/agbru/aggbench/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything except machine-readable result lines.
	Quiet bool
	// Verbose adds per-variant GC statistics.
	Verbose bool
}

// WriteReportToFile writes the measurement report to a file. The directory
// is created when missing.
func WriteReportToFile(results []harness.Result, cfg *config.AppConfig, outputFile string) error {
	if outputFile == "" {
		return nil
	}

	dir := filepath.Dir(outputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Aggregation Benchmark Report\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Seed: %d\n", cfg.Seed)
	fmt.Fprintf(file, "# Orders: %d\n", cfg.Orders)
	fmt.Fprintf(file, "# GC mode: %s\n", cfg.GCMode)
	fmt.Fprintf(file, "\n")

	for _, res := range results {
		fmt.Fprintln(file, FormatQuietResult(res))
	}
	return nil
}

// FormatQuietResult formats one variant's result as a single line suitable
// for scripting, in the style of go test benchmark output.
func FormatQuietResult(res harness.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %12d iterations %14.1f ns/op %10.1f B/op %8.2f allocs/op total=%d",
		res.Name, res.Iterations, res.NsPerOp, res.BytesPerOp, res.AllocsPerOp, res.Total)
	return b.String()
}

// DisplayQuietResults outputs one line per variant with no decoration.
func DisplayQuietResults(out io.Writer, results []harness.Result) {
	for _, res := range results {
		fmt.Fprintln(out, FormatQuietResult(res))
	}
}

// DisplayResultsWithConfig renders the results according to the output mode
// and optionally saves the report to a file.
func DisplayResultsWithConfig(out io.Writer, results []harness.Result, cfg *config.AppConfig, outputCfg OutputConfig) error {
	if outputCfg.Quiet {
		DisplayQuietResults(out, results)
	} else {
		PresentComparisonTable(results, out)
		if outputCfg.Verbose {
			for _, res := range results {
				DisplayGCStats(out, res)
			}
		}
	}

	if outputCfg.OutputFile != "" {
		if err := WriteReportToFile(results, cfg, outputCfg.OutputFile); err != nil {
			return err
		}
		if !outputCfg.Quiet {
			fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s\n",
				ui.ColorGreen(), outputCfg.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
