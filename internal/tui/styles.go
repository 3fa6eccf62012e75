package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/aggbench/internal/ui"
)

// Style variables for the TUI. Initialized from the ui theme system via
// initTUIStyles().
var (
	panelStyle      lipgloss.Style
	titleStyle      lipgloss.Style
	variantStyle    lipgloss.Style
	valueStyle      lipgloss.Style
	baselineStyle   lipgloss.Style
	slowStyle       lipgloss.Style
	fastStyle       lipgloss.Style
	errorStyle      lipgloss.Style
	dimStyle        lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme. Called at
// package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	variantStyle = lipgloss.NewStyle().Foreground(t.Info)
	valueStyle = lipgloss.NewStyle().Foreground(t.Text)
	baselineStyle = lipgloss.NewStyle().Foreground(t.Dim)
	slowStyle = lipgloss.NewStyle().Foreground(t.Warning)
	fastStyle = lipgloss.NewStyle().Foreground(t.Success)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	dimStyle = lipgloss.NewStyle().Foreground(t.Dim)
	footerKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	footerDescStyle = lipgloss.NewStyle().Foreground(t.Dim)
}
