package tui

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/tempdash/internal/database"
	"github.com/akyairhashvil/tempdash/internal/models"
	"github.com/akyairhashvil/tempdash/internal/selection"
	"github.com/akyairhashvil/tempdash/internal/smoothing"
	"github.com/akyairhashvil/tempdash/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a DashboardModel.
type Options struct {
	Series     string // dataset column to plot; first column when empty
	Theme      string
	ReportsDir string
}

// DashboardModel lays out the description and control column next to the
// data accordion and plot column. Control changes go through a Link into
// the selection model; the table and plot are rebuilt after each commit.
type DashboardModel struct {
	ctx        context.Context
	store      Store
	selection  *selection.Model
	initial    models.Selection
	link       Link
	controls   ControlPanel
	data       DataPane
	keys       *HandlerRegistry
	theme      Theme
	themeName  string
	reportsDir string
	source     string
	showHelp   bool

	statusMessage string
	statusIsError bool
	width, height int
}

func NewDashboardModel(ctx context.Context, store Store, sel *selection.Model, opts Options) DashboardModel {
	theme, themeName := ThemeByName(opts.Theme)
	m := DashboardModel{
		ctx:        ctx,
		store:      store,
		selection:  sel,
		initial:    sel.Selection(),
		link:       NewLink(sel),
		controls:   newControlPanel(),
		keys:       newKeyRegistry(),
		theme:      theme,
		themeName:  themeName,
		reportsDir: opts.ReportsDir,
	}
	if src, ok := store.GetMetadata(ctx, database.MetaSource); ok {
		m.source = src
	}

	columns, err := store.Columns(ctx)
	if err != nil {
		m.setStatusError(fmt.Sprintf("Error reading columns: %v", err))
	}
	series := opts.Series
	if !contains(columns, series) {
		if series != "" && len(columns) > 0 {
			m.setStatusMessage(fmt.Sprintf("Series %q not found, plotting %q", series, columns[0]))
		}
		series = ""
		if len(columns) > 0 {
			series = columns[0]
		}
	}
	m.data = newDataPane(series)
	m.data.applyTheme(m.theme)
	m.refreshData()
	return m
}

func contains(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}

// refreshData re-queries the store for the committed selection and rebuilds
// the table and the smoothed series.
func (m *DashboardModel) refreshData() {
	sel := m.selection.Selection()
	tbl, err := m.store.Observations(m.ctx, sel.YearRange)
	if err != nil {
		util.LogError("observations", err)
		m.setStatusError(fmt.Sprintf("Error loading data: %v", err))
		return
	}
	years, raw := smoothing.Series(tbl, m.data.Series)
	smoothed, err := smoothing.SavitzkyGolay(raw, sel.WindowSize, sel.PolynomialOrder)
	if err != nil {
		util.LogError("smoothing", err)
		m.setStatusError(fmt.Sprintf("Error smoothing data: %v", err))
		smoothed = nil
	}
	m.data.setData(tbl, years, raw, smoothed)
}

func (m DashboardModel) Init() tea.Cmd { return textinput.Blink }

// Selection returns the committed selection.
func (m DashboardModel) Selection() models.Selection { return m.selection.Selection() }

func (m DashboardModel) inputMode() int {
	if m.data.Open {
		return ModeDataOpen
	}
	return ModeBrowse
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case reportDoneMsg:
		if msg.err != nil {
			util.LogError("report", msg.err)
			m.setStatusError(fmt.Sprintf("Error generating PDF: %v", msg.err))
		} else {
			m.setStatusMessage("PDF report generated: " + msg.path)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.controls.editing {
			return m.updateEditing(msg)
		}
		m.clearStatus()
		if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
			return next, cmd
		}
		return m, nil
	}

	if m.controls.editing {
		var cmd tea.Cmd
		m.controls.input, cmd = m.controls.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m DashboardModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.controls.StopEditing()
		return m, nil
	case "enter":
		raw := m.controls.input.Value()
		m.controls.StopEditing()
		m = m.commit(m.link.Push(m.controls.focused, raw))
		return m, nil
	}
	var cmd tea.Cmd
	m.controls.input, cmd = m.controls.input.Update(msg)
	return m, cmd
}

// commit reports the outcome of a link push. A rejected change leaves the
// selection, table and plot as they were.
func (m DashboardModel) commit(_ models.Selection, err error) DashboardModel {
	if err != nil {
		m.reportValidation(err)
		return m
	}
	m.controls.ClearInvalid()
	m.refreshData()
	return m
}

func (m *DashboardModel) reportValidation(err error) {
	util.LogError("selection", err)
	if ve, ok := selection.AsValidationError(err); ok {
		m.controls.MarkInvalid(ve.Fields())
	}
	m.setStatusError(FormatValidation(err))
}

func (m DashboardModel) reportSnapshot() ReportSnapshot {
	b := m.selection.Bounds()
	return ReportSnapshot{
		Source:    m.source,
		MinYear:   b.MinYear(),
		MaxYear:   b.MaxYear(),
		Selection: m.selection.Selection(),
		Table:     m.data.Table,
		Series:    m.data.Series,
		Years:     m.data.Years,
		Raw:       m.data.Raw,
		Smoothed:  m.data.Smoothed,
	}
}

func (m *DashboardModel) setStatusError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}

func (m *DashboardModel) setStatusMessage(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *DashboardModel) clearStatus() {
	m.statusMessage = ""
	m.statusIsError = false
}
