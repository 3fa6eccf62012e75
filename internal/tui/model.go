// Package tui provides a full-screen terminal front end for the benchmark.
// It shows a live spinner while variants are measured and renders the
// comparison table when the run completes.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/aggbench/internal/aggregate"
	"github.com/agbru/aggbench/internal/config"
	apperrors "github.com/agbru/aggbench/internal/errors"
	"github.com/agbru/aggbench/internal/format"
	"github.com/agbru/aggbench/internal/harness"
)

// progressMsg reports that a variant's measurement has started.
type progressMsg struct {
	name  string
	index int
	total int
}

// resultsMsg carries the finished run back into the model.
type resultsMsg struct {
	results []harness.Result
	err     error
}

// channelReporter forwards harness progress into the bubbletea event loop.
type channelReporter struct {
	ch chan progressMsg
}

func (r channelReporter) VariantStarted(name string, index, total int) {
	r.ch <- progressMsg{name: name, index: index, total: total}
}

func (r channelReporter) VariantFinished(harness.Result) {}

// Model is the root bubbletea model.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg      config.AppConfig
	variants []aggregate.Variant
	runner   *harness.Runner
	progress chan progressMsg

	spinner spinner.Model
	keymap  KeyMap

	width   int
	current string
	index   int
	total   int
	started time.Time

	results  []harness.Result
	err      error
	done     bool
	verbose  bool
	exitCode int
}

// NewModel creates the TUI model. The runner must have been constructed with
// the reporter returned by Reporter().
func NewModel(parentCtx context.Context, cfg config.AppConfig, variants []aggregate.Variant, runner *harness.Runner, progress chan progressMsg) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = titleStyle

	return Model{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		variants: variants,
		runner:   runner,
		progress: progress,
		spinner:  sp,
		keymap:   DefaultKeyMap(),
		total:    len(variants),
		started:  time.Now(),
		exitCode: apperrors.ExitSuccess,
	}
}

// Init starts the spinner, the progress pump and the measurement run.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForProgress(), m.runHarness())
}

// runHarness executes the measurement in the background.
func (m Model) runHarness() tea.Cmd {
	return func() tea.Msg {
		results, err := m.runner.Run(m.ctx, m.variants)
		close(m.progress)
		return resultsMsg{results: results, err: err}
	}
}

// waitForProgress delivers the next progress event, or nothing once the
// channel is closed.
func (m Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if msg, ok := <-m.progress; ok {
			return msg
		}
		return nil
	}
}

// Update handles events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.cancel()
			if !m.done {
				m.exitCode = apperrors.ExitErrorCanceled
			}
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Verbose):
			m.verbose = !m.verbose
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case progressMsg:
		m.current = msg.name
		m.index = msg.index
		return m, m.waitForProgress()

	case resultsMsg:
		m.done = true
		m.results = msg.results
		m.err = msg.err
		m.exitCode = apperrors.ExitCodeFor(msg.err)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Aggregation Benchmark"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  seed=%d orders=%d gc=%s", m.cfg.Seed, m.cfg.Orders, m.cfg.GCMode)))
	b.WriteString("\n\n")

	switch {
	case !m.done:
		b.WriteString(m.viewRunning())
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("run failed: %v", m.err)))
		b.WriteString("\n")
	default:
		b.WriteString(m.viewResults())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewRunning() string {
	name := m.current
	if name == "" {
		name = "warming up"
	}
	line := fmt.Sprintf("%s measuring %s (%d/%d)  elapsed %s",
		m.spinner.View(), variantStyle.Render(name), m.index+1, m.total,
		format.FormatExecutionDuration(time.Since(m.started).Truncate(time.Millisecond)))
	return panelStyle.Render(line)
}

func (m Model) viewResults() string {
	if len(m.results) == 0 {
		return dimStyle.Render("no results")
	}

	baseline := m.results[0]
	for _, res := range m.results {
		if res.Baseline {
			baseline = res
			break
		}
	}

	var rows []string
	rows = append(rows, lipgloss.NewStyle().Underline(true).Render(
		fmt.Sprintf("%-20s %16s %14s %12s %12s", "Variant", "Time/op", "Allocs/op", "B/op", "vs baseline")))

	for _, res := range m.results {
		ratioText := "1.00x"
		style := baselineStyle
		if !res.Baseline && baseline.NsPerOp > 0 {
			ratio := res.NsPerOp / baseline.NsPerOp
			ratioText = fmt.Sprintf("%.2fx", ratio)
			if ratio > 1.5 {
				style = slowStyle
			} else {
				style = fastStyle
			}
		}
		rows = append(rows, fmt.Sprintf("%s %16s %14s %12s %s",
			variantStyle.Render(fmt.Sprintf("%-20s", res.Name)),
			valueStyle.Render(format.FormatNsPerOp(res.NsPerOp)),
			format.FormatAllocsPerOp(res.AllocsPerOp),
			format.FormatBytesPerOp(res.BytesPerOp),
			style.Render(fmt.Sprintf("%12s", ratioText))))

		if m.verbose {
			rows = append(rows, dimStyle.Render(fmt.Sprintf("    %s iterations, %s elapsed, %d GC cycles",
				format.FormatCount(res.Iterations),
				format.FormatExecutionDuration(res.Elapsed),
				res.GC.NumGC)))
		}
	}

	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m Model) viewFooter() string {
	parts := []string{
		footerKeyStyle.Render("q") + footerDescStyle.Render(" quit"),
		footerKeyStyle.Render("v") + footerDescStyle.Render(" toggle details"),
	}
	return strings.Join(parts, "   ")
}

// ExitCode returns the process exit code once the program has finished.
func (m Model) ExitCode() int {
	return m.exitCode
}

// Run executes the benchmark under the TUI and blocks until the user quits
// or the run finishes and the user exits. It returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig, variants []aggregate.Variant, opts harness.Options) (int, error) {
	initTUIStyles()

	progress := make(chan progressMsg, len(variants))
	runner := harness.NewRunner(opts, harness.WithReporter(channelReporter{ch: progress}))

	model := NewModel(ctx, cfg, variants, runner, progress)
	program := tea.NewProgram(model, tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric, err
	}
	if m, ok := final.(Model); ok {
		return m.ExitCode(), m.err
	}
	return apperrors.ExitSuccess, nil
}
