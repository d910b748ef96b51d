package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibseq/internal/ui"
)

// Style variables for the interactive interface.
// Initialized from the ui theme system via initTUIStyles().
var (
	titleStyle   lipgloss.Style
	panelStyle   lipgloss.Style
	headingStyle lipgloss.Style
	valuesStyle  lipgloss.Style
	errorStyle   lipgloss.Style
	noteStyle    lipgloss.Style
	sparkStyle   lipgloss.Style
	helpBarStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Success)

	valuesStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	noteStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(t.Dim)

	sparkStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	helpBarStyle = lipgloss.NewStyle().
		Padding(0, 1)
}
