package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/tempdash/internal/config"
	"github.com/akyairhashvil/tempdash/internal/util"
	"github.com/charmbracelet/lipgloss"
)

const usageText = "Narrow the years and tune the smoothing. Invalid values are rejected and the last valid selection stays in place."

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true).Render("temp") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("dash")
}

func (m DashboardModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	return m.render(m.width, m.height)
}

// Snapshot renders the dashboard once at the given size, for output that is
// not a terminal.
func (m DashboardModel) Snapshot(width, height int) string {
	if width <= 0 {
		width = config.SnapshotWidth
	}
	if height <= 0 {
		height = config.SnapshotHeight
	}
	return m.render(width, height)
}

func (m DashboardModel) render(width, height int) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	// Width() covers content and padding; the border comes on top.
	borderWidth := frame.GetHorizontalBorderSize()
	innerWidth := width - borderWidth - m.theme.Base.GetHorizontalMargins()
	if innerWidth < 1 {
		innerWidth = 1
	}

	header := frame.Width(innerWidth).Align(lipgloss.Center).Render(m.renderHeader())
	footer := frame.Width(innerWidth).Render(m.renderFooter(innerWidth - frame.GetHorizontalPadding()))

	leftWidth := config.ControlPanelWidth + frame.GetHorizontalPadding()
	rightWidth := innerWidth - leftWidth - borderWidth - 1
	compact := width < config.CompactModeThreshold || rightWidth < config.MinDataPaneWidth
	if compact {
		leftWidth, rightWidth = innerWidth, innerWidth
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderDescription(leftWidth-frame.GetHorizontalPadding()),
		"",
		m.controls.View(m.theme, m.selection.Selection(), m.selection.Bounds()),
	)
	used := lipgloss.Height(header) + lipgloss.Height(footer) + 2
	if compact {
		used += lipgloss.Height(left) + 2
	}
	right := m.renderDataColumn(rightWidth-frame.GetHorizontalPadding(), height-used)

	var body string
	if compact {
		body = lipgloss.JoinVertical(lipgloss.Left,
			frame.Width(innerWidth).Render(left),
			frame.Width(innerWidth).Render(right),
		)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			frame.Width(leftWidth).Render(left),
			" ",
			frame.Width(rightWidth).Render(right),
		)
	}
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}

func (m DashboardModel) renderHeader() string {
	title := fmt.Sprintf("%s v%s  |  %s  |  Theme: %s",
		renderLogo(), versionLabel(), FormatSelection(m.selection.Selection()), m.theme.Name)
	return m.theme.Header.Render(title)
}

func (m DashboardModel) renderDescription(width int) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Temperature Anomalies") + "\n")
	if m.source != "" {
		b.WriteString(m.theme.Dim.Render(truncateLabel("Source: "+m.source, width)) + "\n")
	}
	if bounds := m.selection.Bounds(); bounds != nil {
		b.WriteString(m.theme.Label.Render(fmt.Sprintf("Dataset years: %s", bounds)) + "\n")
	}
	b.WriteString(m.theme.Label.Render(fmt.Sprintf("Series: %s", m.data.Series)) + "\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(m.theme.Dim.GetForeground()).Render(usageText))
	return b.String()
}

// renderDataColumn stacks the data accordion above the plot, giving the plot
// whatever height the accordion leaves.
func (m DashboardModel) renderDataColumn(width, height int) string {
	data := m.data.View(m.theme, width)
	// title, axis, year labels, legend and the spacer line
	plotHeight := util.Clamp(height-lipgloss.Height(data)-5, config.MinPlotHeight, config.MaxPlotHeight)
	sel := m.selection.Selection()
	plot := renderPlot(m.theme, plotData{
		Title:    fmt.Sprintf("%s, %s", m.data.Series, sel.YearRange),
		Series:   m.data.Series,
		Info:     FormatSmoothingInfo(sel),
		Years:    m.data.Years,
		Raw:      m.data.Raw,
		Smoothed: m.data.Smoothed,
	}, width, plotHeight)
	return lipgloss.JoinVertical(lipgloss.Left, data, "", plot)
}

func (m DashboardModel) renderFooter(width int) string {
	if m.controls.editing {
		return m.theme.Dim.Render(fmt.Sprintf("Editing %s: [Enter] Apply | [Esc] Cancel", m.controls.focused.Label()))
	}
	if m.statusMessage != "" {
		style := m.theme.Notice
		if m.statusIsError {
			style = m.theme.Error
		}
		return lipgloss.NewStyle().Width(width).Render(style.Render(m.statusMessage))
	}
	if !m.showHelp {
		return m.theme.Dim.Render("[?]Help | [q]Quit")
	}
	help := m.keys.HelpForMode(m.inputMode())
	return lipgloss.NewStyle().Width(width).Render(m.theme.Dim.Render(strings.ReplaceAll(help, "|", " | ")))
}
