// Package harness executes the aggregation variants under timing and
// allocation instrumentation. Variants run strictly sequentially: measuring
// them concurrently would let one variant's allocation and scheduling noise
// pollute another's numbers.
package harness

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/aggbench/internal/aggregate"
	apperrors "github.com/agbru/aggbench/internal/errors"
	"github.com/agbru/aggbench/internal/logging"
	"github.com/agbru/aggbench/internal/memory"
	"github.com/agbru/aggbench/internal/metrics"
)

// tracerName identifies this package's spans.
const tracerName = "github.com/agbru/aggbench/internal/harness"

// Iteration bounds applied when the count is derived from the time budget.
const (
	// minIterations keeps derived counts high enough for stable per-op
	// numbers even when the probe batch runs unexpectedly slowly.
	minIterations = 1_000
	// maxIterations caps derived counts so a misread probe cannot stall the
	// run.
	maxIterations = 50_000_000
	// probeIterations is the untimed batch size used to estimate the cost of
	// one invocation.
	probeIterations = 1_000
	// cancelCheckMask throttles context checks inside the measured loop to
	// every 1024 iterations, keeping the check's cost out of the numbers.
	cancelCheckMask = 1<<10 - 1
)

// resultSink keeps invocation results observable so the measured calls are
// not optimized away.
var resultSink int

// Result captures one variant's measured behavior.
type Result struct {
	// Name is the variant identifier.
	Name string
	// Baseline marks the variant the others are compared against.
	Baseline bool
	// Total is the aggregation total the variant returned.
	Total int
	// Iterations is the number of measured invocations.
	Iterations int
	// Elapsed is the wall time of the measured loop.
	Elapsed time.Duration
	// CPUTime is the process CPU time consumed by the measured loop (zero
	// when unavailable).
	CPUTime time.Duration
	// NsPerOp is the mean wall time per invocation in nanoseconds.
	NsPerOp float64
	// BytesPerOp is the mean heap bytes allocated per invocation.
	BytesPerOp float64
	// AllocsPerOp is the mean heap objects allocated per invocation.
	AllocsPerOp float64
	// OpsPerSec is the invocation throughput.
	OpsPerSec float64
	// GC reports collector activity during the measured loop.
	GC memory.GCStats
}

// Options configures a measurement run.
type Options struct {
	// Iterations is the measured invocation count per variant; 0 derives it
	// from MeasureTime.
	Iterations int
	// Warmup is the number of untimed invocations run before measurement.
	Warmup int
	// MeasureTime is the per-variant budget used when Iterations is 0.
	MeasureTime time.Duration
	// GCMode controls the collector during measurement.
	GCMode string
}

// ProgressReporter receives run lifecycle notifications for display.
type ProgressReporter interface {
	// VariantStarted is called before a variant's warmup begins.
	VariantStarted(name string, index, total int)
	// VariantFinished is called with the variant's measured result.
	VariantFinished(result Result)
}

// NullProgressReporter is a no-op ProgressReporter for quiet mode and tests.
type NullProgressReporter struct{}

// VariantStarted does nothing.
func (NullProgressReporter) VariantStarted(string, int, int) {}

// VariantFinished does nothing.
func (NullProgressReporter) VariantFinished(Result) {}

// Recorder receives finished results for export (e.g., Prometheus).
type Recorder interface {
	// RecordRun registers one variant's measured result.
	RecordRun(result Result)
}

// Runner measures aggregation variants one after another.
type Runner struct {
	opts      Options
	logger    logging.Logger
	collector *metrics.MemoryCollector
	reporter  ProgressReporter
	recorder  Recorder
	tracer    trace.Tracer
}

// RunnerOption configures a Runner during construction.
type RunnerOption func(*Runner)

// WithLogger sets the logger for run events.
func WithLogger(l logging.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// WithReporter sets the progress reporter.
func WithReporter(p ProgressReporter) RunnerOption {
	return func(r *Runner) { r.reporter = p }
}

// WithRecorder sets the result recorder.
func WithRecorder(rec Recorder) RunnerOption {
	return func(r *Runner) { r.recorder = rec }
}

// NewRunner creates a runner with the given measurement options.
func NewRunner(opts Options, options ...RunnerOption) *Runner {
	r := &Runner{
		opts:      opts,
		logger:    logging.NewDefaultLogger(),
		collector: metrics.NewMemoryCollector(),
		reporter:  NullProgressReporter{},
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Run measures every variant in order and returns their results. It stops
// early with the context's error when the run is canceled or times out.
// After all variants complete, the totals are cross-checked against the
// baseline; a disagreement is returned as a MismatchError.
func (r *Runner) Run(ctx context.Context, variants []aggregate.Variant) ([]Result, error) {
	results := make([]Result, 0, len(variants))

	for i, v := range variants {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		r.reporter.VariantStarted(v.Name, i, len(variants))

		spanCtx, span := r.tracer.Start(ctx, "harness.measure",
			trace.WithAttributes(attribute.String("variant", v.Name)))
		res, err := r.measure(spanCtx, v)
		span.End()
		if err != nil {
			return results, err
		}

		results = append(results, res)
		r.reporter.VariantFinished(res)
		if r.recorder != nil {
			r.recorder.RecordRun(res)
		}
		r.logger.Info("variant measured",
			logging.String("variant", res.Name),
			logging.Int("iterations", res.Iterations),
			logging.Float64("ns_per_op", res.NsPerOp),
			logging.Float64("allocs_per_op", res.AllocsPerOp),
			logging.Int("total", res.Total),
		)
	}

	return results, Verify(results)
}

// measure runs one variant: warmup, iteration calibration, then the timed
// loop with the collector controlled and memory counters snapshotted around
// it.
func (r *Runner) measure(ctx context.Context, v aggregate.Variant) (Result, error) {
	for i := 0; i < r.opts.Warmup; i++ {
		resultSink = v.Run()
	}

	iterations := r.opts.Iterations
	if iterations == 0 {
		iterations = r.calibrate(v)
	}

	gc := memory.NewGCController(r.opts.GCMode)
	if adapter, ok := r.logger.(*logging.ZerologAdapter); ok {
		gc.SetLogger(adapter.Zerolog())
	}
	gc.Begin()

	before := r.collector.Snapshot()
	cpuBefore := metrics.CPUTime()
	start := time.Now()

	var total int
	for i := 0; i < iterations; i++ {
		if i&cancelCheckMask == 0 {
			select {
			case <-ctx.Done():
				gc.End()
				return Result{}, ctx.Err()
			default:
			}
		}
		total = v.Run()
	}

	elapsed := time.Since(start)
	cpuElapsed := metrics.CPUTime() - cpuBefore
	after := r.collector.Snapshot()
	gc.End()

	resultSink = total
	delta := metrics.Delta(before, after)
	bytesPerOp, allocsPerOp := delta.PerOp(iterations)

	res := Result{
		Name:        v.Name,
		Baseline:    v.Baseline,
		Total:       total,
		Iterations:  iterations,
		Elapsed:     elapsed,
		CPUTime:     cpuElapsed,
		NsPerOp:     float64(elapsed.Nanoseconds()) / float64(iterations),
		BytesPerOp:  bytesPerOp,
		AllocsPerOp: allocsPerOp,
		OpsPerSec:   float64(iterations) / elapsed.Seconds(),
		GC:          gc.Stats(),
	}
	return res, nil
}

// calibrate estimates the iteration count that fills the time budget, by
// timing a small probe batch.
func (r *Runner) calibrate(v aggregate.Variant) int {
	start := time.Now()
	for i := 0; i < probeIterations; i++ {
		resultSink = v.Run()
	}
	perOp := time.Since(start) / probeIterations
	if perOp <= 0 {
		perOp = time.Nanosecond
	}

	iterations := int(r.opts.MeasureTime / perOp)
	if iterations < minIterations {
		iterations = minIterations
	}
	if iterations > maxIterations {
		iterations = maxIterations
	}
	return iterations
}

// Verify cross-checks every result against the baseline total. Equivalence
// across variants is the benchmark's primary correctness property; the first
// disagreement is returned as a MismatchError.
func Verify(results []Result) error {
	if len(results) == 0 {
		return nil
	}

	baseline := results[0]
	for _, res := range results {
		if res.Baseline {
			baseline = res
			break
		}
	}

	for _, res := range results {
		if res.Total != baseline.Total {
			return apperrors.MismatchError{Variant: res.Name, Got: res.Total, Want: baseline.Total}
		}
	}
	return nil
}
