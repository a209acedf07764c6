package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Base       lipgloss.Style
	Border     lipgloss.Color
	Header     lipgloss.Style
	Title      lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Input      lipgloss.Style
	Focused    lipgloss.Style
	Invalid    lipgloss.Style
	Dim        lipgloss.Style
	Highlight  lipgloss.Style
	Error      lipgloss.Style
	Notice     lipgloss.Style
	PlotRaw    lipgloss.Style
	PlotSmooth lipgloss.Style
	Axis       lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Base:       lipgloss.NewStyle().Margin(0, 1),
		Border:     lipgloss.Color("63"),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Focused:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Invalid:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		PlotRaw:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		PlotSmooth: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Axis:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:       "Dracula",
		Base:       lipgloss.NewStyle().Margin(0, 1),
		Border:     lipgloss.Color("62"),                                                                   // Purple
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center), // Cyan
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),                       // Pink
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),                                  // White
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),                       // Green
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Focused:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Invalid:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true), // Red/Pink
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),             // Comment
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		PlotRaw:    lipgloss.NewStyle().Foreground(lipgloss.Color("103")),
		PlotSmooth: lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true), // Yellow
		Axis:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// themeOrder is the cycle order of the theme key.
var themeOrder = []string{"default", "dracula"}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) (Theme, string) {
	if t, ok := Themes[name]; ok {
		return t, name
	}
	return Themes["default"], "default"
}

func nextThemeName(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}
