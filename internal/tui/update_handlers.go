package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/tempdash/internal/selection"
)

func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.RegisterKeys([]string{"q"}, handleQuit, "Quit")
	r.RegisterKeys([]string{"tab", "down", "j"}, handleFocusNext, "Next")
	r.RegisterKeys([]string{"shift+tab", "up", "k"}, handleFocusPrev, "Prev")
	r.RegisterKeys([]string{"+", "=", "right", "l"}, handleIncrement, "Inc")
	r.RegisterKeys([]string{"-", "left", "h"}, handleDecrement, "Dec")
	r.RegisterKeys([]string{"enter", "e"}, handleEdit, "Edit")
	r.RegisterKeys([]string{"d"}, handleToggleData, "Data")
	// With the data pane open the arrow keys scroll the table instead of
	// moving focus; tab and shift+tab still move between controls.
	for i, key := range []string{"down", "]", "pgdown"} {
		desc := ""
		if i == 0 {
			desc = "Scroll"
		}
		r.Register(KeyBinding{Key: key, Handler: handleScrollDown, Description: desc, Modes: []int{ModeDataOpen}, Priority: 1})
	}
	for _, key := range []string{"up", "[", "pgup"} {
		r.Register(KeyBinding{Key: key, Handler: handleScrollUp, Modes: []int{ModeDataOpen}, Priority: 1})
	}
	r.RegisterKeys([]string{"r"}, handleReset, "Reset")
	r.RegisterKeys([]string{"t"}, handleTheme, "Theme")
	r.RegisterKeys([]string{"p"}, handleExport, "PDF")
	r.RegisterKeys([]string{"?"}, handleHelp, "Help")
	return r
}

func handleQuit(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleFocusNext(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.controls.FocusNext()
	return m, nil, true
}

func handleFocusPrev(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.controls.FocusPrev()
	return m, nil, true
}

func handleIncrement(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m.commit(m.link.Step(m.controls.focused, 1)), nil, true
}

func handleDecrement(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m.commit(m.link.Step(m.controls.focused, -1)), nil, true
}

func handleEdit(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	cmd := m.controls.StartEditing(controlValue(m.selection.Selection(), m.controls.focused))
	return m, cmd, true
}

func handleToggleData(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.data.Toggle()
	return m, nil, true
}

func handleScrollDown(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	n := 1
	if key == "pgdown" {
		n = m.data.grid.Height()
	}
	m.data.ScrollDown(n)
	return m, nil, true
}

func handleScrollUp(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	n := 1
	if key == "pgup" {
		n = m.data.grid.Height()
	}
	m.data.ScrollUp(n)
	return m, nil, true
}

// handleReset restores the selection the dashboard started with.
func handleReset(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	u := selection.Update{}.
		WithYearRange(m.initial.YearRange).
		WithWindowSize(m.initial.WindowSize).
		WithPolynomialOrder(m.initial.PolynomialOrder)
	m = m.commit(m.selection.Apply(u))
	if m.statusMessage == "" {
		m.setStatusMessage("Selection reset")
	}
	return m, nil, true
}

func handleTheme(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.theme, m.themeName = ThemeByName(nextThemeName(m.themeName))
	m.data.applyTheme(m.theme)
	m.setStatusMessage("Theme: " + m.theme.Name)
	return m, nil, true
}

func handleExport(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if m.reportsDir == "" {
		m.setStatusError("No reports directory configured")
		return m, nil, true
	}
	m.setStatusMessage("Generating PDF report...")
	return m, exportReportCmd(m.reportsDir, m.reportSnapshot()), true
}

func handleHelp(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.showHelp = !m.showHelp
	return m, nil, true
}
