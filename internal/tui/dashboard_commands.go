package tui

import tea "github.com/charmbracelet/bubbletea"

// --- Messages ---
type reportDoneMsg struct {
	path string
	err  error
}

func exportReportCmd(dir string, snap ReportSnapshot) tea.Cmd {
	return func() tea.Msg {
		path, err := GeneratePDFReport(dir, snap)
		return reportDoneMsg{path: path, err: err}
	}
}
