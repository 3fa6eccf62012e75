// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"

	"github.com/briandowns/spinner"

	"github.com/agbru/aggbench/internal/config"
	"github.com/agbru/aggbench/internal/format"
	"github.com/agbru/aggbench/internal/harness"
	"github.com/agbru/aggbench/internal/sysmon"
	"github.com/agbru/aggbench/internal/ui"
)

// SpinnerReporter shows a spinner with the name of the variant currently
// being measured. It implements harness.ProgressReporter.
type SpinnerReporter struct {
	spinner Spinner
	started bool
}

var _ harness.ProgressReporter = (*SpinnerReporter)(nil)

// NewSpinnerReporter creates a reporter writing its animation to out.
func NewSpinnerReporter(out io.Writer) *SpinnerReporter {
	return &SpinnerReporter{spinner: newSpinner(spinner.WithWriter(out))}
}

// VariantStarted updates the spinner with the variant under measurement.
func (r *SpinnerReporter) VariantStarted(name string, index, total int) {
	if !r.started {
		r.spinner.Start()
		r.started = true
	}
	r.spinner.UpdateSuffix(fmt.Sprintf(" measuring %s (%d/%d)", name, index+1, total))
}

// VariantFinished is a no-op; the next VariantStarted replaces the suffix.
func (r *SpinnerReporter) VariantFinished(harness.Result) {}

// Done stops the spinner. Safe to call when it never started.
func (r *SpinnerReporter) Done() {
	if r.started {
		r.spinner.Stop()
		r.started = false
	}
}

// DisplayRunHeader prints the run parameters and the state of the host before
// measurement begins.
func DisplayRunHeader(out io.Writer, cfg *config.AppConfig, host sysmon.HostInfo, stats sysmon.Stats) {
	fmt.Fprintf(out, "%s--- Aggregation Benchmark ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Fixture:   seed=%d orders=%d\n", cfg.Seed, cfg.Orders)
	if cfg.Iterations > 0 {
		fmt.Fprintf(out, "Loop:      %s iterations per variant (warmup %s)\n",
			format.FormatCount(cfg.Iterations), format.FormatCount(cfg.Warmup))
	} else {
		fmt.Fprintf(out, "Loop:      %s per variant (warmup %s)\n",
			cfg.MeasureTime, format.FormatCount(cfg.Warmup))
	}
	fmt.Fprintf(out, "GC:        %s\n", cfg.GCMode)
	if host.LogicalCores > 0 {
		fmt.Fprintf(out, "Host:      %d cores (%d physical), %s RAM\n",
			host.LogicalCores, host.PhysicalCores, format.FormatBytes(host.TotalMemBytes))
	}
	fmt.Fprintf(out, "Load:      cpu %.1f%%, mem %.1f%%", stats.CPUPercent, stats.MemPercent)
	if stats.CPUPercent > 50 {
		fmt.Fprintf(out, "  %s(host is busy; expect noisy numbers)%s", ui.ColorYellow(), ui.ColorReset())
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out)
}

// PresentComparisonTable displays the per-variant measurements with a ratio
// against the baseline. Manual padding keeps alignment correct despite ANSI
// color codes.
func PresentComparisonTable(results []harness.Result, out io.Writer) {
	if len(results) == 0 {
		return
	}

	fmt.Fprintf(out, "\n%s--- Comparison Summary ---%s\n", ui.ColorBold(), ui.ColorReset())

	baseline := results[0]
	for _, res := range results {
		if res.Baseline {
			baseline = res
			break
		}
	}

	header := tableRow{name: "Variant", timePerOp: "Time/op", allocs: "Allocs/op", bytes: "B/op", ops: "Throughput", ratio: "vs baseline"}
	rows := make([]tableRow, 0, len(results))
	for _, res := range results {
		r := tableRow{
			name:      res.Name,
			timePerOp: format.FormatNsPerOp(res.NsPerOp),
			allocs:    format.FormatAllocsPerOp(res.AllocsPerOp),
			bytes:     format.FormatBytesPerOp(res.BytesPerOp),
			ops:       format.FormatOpsPerSec(res.OpsPerSec),
		}
		switch {
		case res.Baseline:
			r.ratio = "1.00x (baseline)"
			r.ratioColor = ui.ColorSecondary()
		case baseline.NsPerOp > 0:
			ratio := res.NsPerOp / baseline.NsPerOp
			r.ratio = fmt.Sprintf("%.2fx", ratio)
			if ratio > 1.5 {
				r.ratioColor = ui.ColorRed()
			} else {
				r.ratioColor = ui.ColorGreen()
			}
		}
		rows = append(rows, r)
	}

	nameW := columnWidth(header.name, rows, func(r tableRow) string { return r.name })
	timeW := columnWidth(header.timePerOp, rows, func(r tableRow) string { return r.timePerOp })
	allocW := columnWidth(header.allocs, rows, func(r tableRow) string { return r.allocs })
	byteW := columnWidth(header.bytes, rows, func(r tableRow) string { return r.bytes })
	opsW := columnWidth(header.ops, rows, func(r tableRow) string { return r.ops })

	fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%s%s%s   %s%s%s%s   %s%s%s%s   %s%s%s\n",
		ui.ColorUnderline(), header.name, ui.ColorReset(), pad(nameW-len(header.name)),
		ui.ColorUnderline(), header.timePerOp, ui.ColorReset(), pad(timeW-len(header.timePerOp)),
		ui.ColorUnderline(), header.allocs, ui.ColorReset(), pad(allocW-len(header.allocs)),
		ui.ColorUnderline(), header.bytes, ui.ColorReset(), pad(byteW-len(header.bytes)),
		ui.ColorUnderline(), header.ops, ui.ColorReset(), pad(opsW-len(header.ops)),
		ui.ColorUnderline(), header.ratio, ui.ColorReset())

	for _, r := range rows {
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%s   %s%s   %s%s   %s%s%s\n",
			ui.ColorBlue(), r.name, ui.ColorReset(), pad(nameW-len(r.name)),
			ui.ColorYellow(), r.timePerOp, ui.ColorReset(), pad(timeW-len(r.timePerOp)),
			r.allocs, pad(allocW-len(r.allocs)),
			r.bytes, pad(byteW-len(r.bytes)),
			r.ops, pad(opsW-len(r.ops)),
			r.ratioColor, r.ratio, ui.ColorReset())
	}
}

// tableRow holds one rendered line of the comparison table.
type tableRow struct {
	name, timePerOp, allocs, bytes, ops, ratio string
	ratioColor                                 string
}

// columnWidth returns the widest value in one column, header included.
func columnWidth(header string, rows []tableRow, value func(tableRow) string) int {
	w := len(header)
	for _, r := range rows {
		if l := len(value(r)); l > w {
			w = l
		}
	}
	return w
}

// pad returns n spaces, or an empty string for non-positive n.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}

// DisplayGCStats shows collector activity observed during a variant's
// measured loop. Used in verbose mode.
func DisplayGCStats(out io.Writer, res harness.Result) {
	fmt.Fprintf(out, "\n%s memory:\n", res.Name)
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(res.GC.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", res.GC.NumGC)
	if res.GC.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(res.GC.PauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms (GC disabled)\n")
	}
}
