package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/tempdash/internal/config"
	"github.com/akyairhashvil/tempdash/internal/models"
	"github.com/akyairhashvil/tempdash/internal/selection"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ControlPanel tracks focus, inline editing and the fields rejected by the
// last failed update.
type ControlPanel struct {
	focused ControlID
	editing bool
	input   textinput.Model
	invalid map[selection.Field]bool
	span    progress.Model
}

func newControlPanel() ControlPanel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = config.MaxFieldInputLength
	ti.Width = config.MaxFieldInputLength + 1
	span := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	span.Width = config.ControlPanelWidth - 14
	return ControlPanel{
		focused: ControlYearFrom,
		input:   ti,
		span:    span,
	}
}

func (c *ControlPanel) FocusNext() {
	c.focused = (c.focused + 1) % controlCount
}

func (c *ControlPanel) FocusPrev() {
	c.focused = (c.focused + controlCount - 1) % controlCount
}

func (c *ControlPanel) StartEditing(value int) tea.Cmd {
	c.editing = true
	c.input.SetValue(strconv.Itoa(value))
	c.input.CursorEnd()
	return c.input.Focus()
}

func (c *ControlPanel) StopEditing() {
	c.editing = false
	c.input.Blur()
	c.input.Reset()
}

func (c *ControlPanel) MarkInvalid(fields []selection.Field) {
	c.invalid = make(map[selection.Field]bool, len(fields))
	for _, f := range fields {
		c.invalid[f] = true
	}
}

func (c *ControlPanel) ClearInvalid() {
	c.invalid = nil
}

func (c ControlPanel) isInvalid(id ControlID) bool {
	return c.invalid[id.Field()]
}

// View renders the control rows for s.
func (c ControlPanel) View(theme Theme, s models.Selection, bounds *selection.Bounds) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Controls") + "\n")
	for id := ControlYearFrom; id < controlCount; id++ {
		marker := "  "
		labelStyle := theme.Label
		if id == c.focused {
			marker = theme.Focused.Render("> ")
			labelStyle = theme.Focused
		}
		if c.isInvalid(id) {
			labelStyle = theme.Invalid
		}
		label := labelStyle.Render(fmt.Sprintf("%-17s", id.Label()))
		var value string
		if c.editing && id == c.focused {
			value = "[" + c.input.View() + "]"
		} else {
			value = theme.Value.Render(strconv.Itoa(controlValue(s, id)))
		}
		b.WriteString(marker + label + value + "\n")
	}
	b.WriteString(c.limitsLine(theme, s, bounds) + "\n")
	b.WriteString(theme.Label.Render("Span  ") + c.span.ViewAs(spanFraction(s.YearRange, bounds)))
	return lipgloss.NewStyle().Width(config.ControlPanelWidth).Render(b.String())
}

func (c ControlPanel) limitsLine(theme Theme, s models.Selection, bounds *selection.Bounds) string {
	switch c.focused.Field() {
	case selection.FieldYearRange:
		if bounds == nil {
			return ""
		}
		return theme.Dim.Render(fmt.Sprintf("  years %d–%d", bounds.MinYear(), bounds.MaxYear()))
	case selection.FieldWindowSize:
		return theme.Dim.Render(fmt.Sprintf("  %d–%d, above order %d", config.MinWindowSize, config.MaxWindowSize, s.PolynomialOrder))
	default:
		return theme.Dim.Render(fmt.Sprintf("  %d–%d, below window %d", config.MinPolynomialOrder, config.MaxPolynomialOrder, s.WindowSize))
	}
}

// spanFraction is the share of the dataset years covered by r.
func spanFraction(r models.YearRange, bounds *selection.Bounds) float64 {
	if bounds == nil {
		return 0
	}
	total := bounds.MaxYear() - bounds.MinYear() + 1
	if total <= 0 {
		return 0
	}
	return float64(r.Span()) / float64(total)
}
