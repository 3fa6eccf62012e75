package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agbru/aggbench/internal/config"
	"github.com/agbru/aggbench/internal/harness"
)

func TestWriteReportToFile(t *testing.T) {
	cfg := &config.AppConfig{Seed: 12345, Orders: 50, GCMode: config.GCModeDisabled}

	t.Run("Empty path is a no-op", func(t *testing.T) {
		if err := WriteReportToFile(sampleResults(), cfg, ""); err != nil {
			t.Errorf("empty output path should succeed, got %v", err)
		}
	})

	t.Run("Writes header and one line per variant", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.txt")
		if err := WriteReportToFile(sampleResults(), cfg, path); err != nil {
			t.Fatalf("WriteReportToFile: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading report: %v", err)
		}
		content := string(data)

		for _, want := range []string{"# Aggregation Benchmark Report", "# Seed: 12345", "# Orders: 50", "sync", "await-each", "total=8550"} {
			if !strings.Contains(content, want) {
				t.Errorf("report should contain %q, got:\n%s", want, content)
			}
		}
	})

	t.Run("Creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "report.txt")
		if err := WriteReportToFile(sampleResults(), cfg, path); err != nil {
			t.Fatalf("WriteReportToFile: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("report file should exist: %v", err)
		}
	})
}

func TestFormatQuietResult(t *testing.T) {
	line := FormatQuietResult(harness.Result{
		Name: "sync", Total: 8550, Iterations: 1000, NsPerOp: 450.5, BytesPerOp: 0, AllocsPerOp: 0,
	})

	for _, want := range []string{"sync", "1000 iterations", "450.5 ns/op", "0.00 allocs/op", "total=8550"} {
		if !strings.Contains(line, want) {
			t.Errorf("quiet line should contain %q, got %q", want, line)
		}
	}
	if strings.Contains(line, "\n") {
		t.Error("quiet result must be a single line")
	}
}

func TestDisplayResultsWithConfig(t *testing.T) {
	disableColors(t)
	cfg := &config.AppConfig{Seed: 12345, Orders: 50, GCMode: config.GCModeAuto}

	t.Run("Quiet mode emits plain lines", func(t *testing.T) {
		var buf bytes.Buffer
		err := DisplayResultsWithConfig(&buf, sampleResults(), cfg, OutputConfig{Quiet: true})
		if err != nil {
			t.Fatalf("DisplayResultsWithConfig: %v", err)
		}
		out := buf.String()
		if strings.Contains(out, "Comparison Summary") {
			t.Error("quiet mode should not render the table")
		}
		if !strings.Contains(out, "ns/op") {
			t.Error("quiet mode should emit result lines")
		}
	})

	t.Run("Default mode renders the table", func(t *testing.T) {
		var buf bytes.Buffer
		err := DisplayResultsWithConfig(&buf, sampleResults(), cfg, OutputConfig{})
		if err != nil {
			t.Fatalf("DisplayResultsWithConfig: %v", err)
		}
		if !strings.Contains(buf.String(), "Comparison Summary") {
			t.Error("default mode should render the comparison table")
		}
	})

	t.Run("File output confirmation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.txt")
		var buf bytes.Buffer
		err := DisplayResultsWithConfig(&buf, sampleResults(), cfg, OutputConfig{OutputFile: path})
		if err != nil {
			t.Fatalf("DisplayResultsWithConfig: %v", err)
		}
		if !strings.Contains(buf.String(), "Report saved to") {
			t.Error("file output should be confirmed on the terminal")
		}
	})

	t.Run("Verbose adds GC stats", func(t *testing.T) {
		var buf bytes.Buffer
		err := DisplayResultsWithConfig(&buf, sampleResults(), cfg, OutputConfig{Verbose: true})
		if err != nil {
			t.Fatalf("DisplayResultsWithConfig: %v", err)
		}
		if !strings.Contains(buf.String(), "GC cycles") {
			t.Error("verbose mode should include GC statistics")
		}
	})
}
