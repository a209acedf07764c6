package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/akyairhashvil/tempdash/internal/database"
	"github.com/akyairhashvil/tempdash/internal/models"
	"github.com/akyairhashvil/tempdash/internal/selection"
	"github.com/akyairhashvil/tempdash/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func setupTestDashboard(t *testing.T) DashboardModel {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	if _, err := db.LoadCSV(ctx, testutil.NewDataset().WithYears(1750, 2020, testutil.Anomaly).Reader()); err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	bounds, err := selection.NewBounds(1750, 2020)
	if err != nil {
		t.Fatalf("NewBounds failed: %v", err)
	}
	sel, err := selection.New(bounds, selection.Default())
	if err != nil {
		t.Fatalf("selection.New failed: %v", err)
	}
	return NewDashboardModel(ctx, db, sel, Options{ReportsDir: t.TempDir()})
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func send(t *testing.T, m DashboardModel, msgs ...tea.Msg) DashboardModel {
	t.Helper()
	for _, msg := range msgs {
		model, _ := m.Update(msg)
		updated, ok := model.(DashboardModel)
		if !ok {
			t.Fatalf("expected DashboardModel, got %T", model)
		}
		m = updated
	}
	return m
}

func focus(t *testing.T, m DashboardModel, id ControlID) DashboardModel {
	t.Helper()
	for m.controls.focused != id {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	return m
}

func TestNewDashboardLoadsSelectedRows(t *testing.T) {
	m := setupTestDashboard(t)
	rows := m.data.Table.Rows
	if len(rows) != 201 {
		t.Fatalf("expected 201 rows, got %d", len(rows))
	}
	if rows[0].Year != 1800 || rows[len(rows)-1].Year != 2000 {
		t.Fatalf("unexpected row years %d..%d", rows[0].Year, rows[len(rows)-1].Year)
	}
	if m.data.Series != "No_Smoothing" {
		t.Fatalf("expected first column as series, got %q", m.data.Series)
	}
	if len(m.data.Smoothed) != len(m.data.Raw) {
		t.Fatalf("smoothed length %d, raw length %d", len(m.data.Smoothed), len(m.data.Raw))
	}
}

func TestStepWindowSizeCommits(t *testing.T) {
	m := focus(t, setupTestDashboard(t), ControlWindowSize)
	m = send(t, m, runeKey('+'))
	if got := m.Selection().WindowSize; got != 3 {
		t.Fatalf("expected window size 3, got %d", got)
	}
	if m.statusIsError {
		t.Fatalf("unexpected error status: %s", m.statusMessage)
	}
}

func TestStepOrderRejectedKeepsState(t *testing.T) {
	m := focus(t, setupTestDashboard(t), ControlPolynomialOrder)
	before := m.Selection()
	rows := len(m.data.Table.Rows)

	m = send(t, m, runeKey('+'))
	if m.Selection() != before {
		t.Fatalf("selection changed on rejected step: %+v", m.Selection())
	}
	if len(m.data.Table.Rows) != rows {
		t.Fatalf("table changed on rejected step")
	}
	if !m.statusIsError || !strings.Contains(m.statusMessage, "smaller than window size") {
		t.Fatalf("expected cross-field error status, got %q", m.statusMessage)
	}
	if !m.controls.isInvalid(ControlPolynomialOrder) {
		t.Fatalf("expected polynomial order control marked invalid")
	}

	m = focus(t, m, ControlWindowSize)
	m = send(t, m, runeKey('+'))
	if m.controls.isInvalid(ControlPolynomialOrder) {
		t.Fatalf("expected invalid marker cleared after a commit")
	}
}

func TestEditYearFromCommits(t *testing.T) {
	m := setupTestDashboard(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.controls.editing {
		t.Fatalf("expected editing after enter")
	}
	if got := m.controls.input.Value(); got != "1800" {
		t.Fatalf("expected input prefilled with 1800, got %q", got)
	}
	m.controls.input.SetValue("1900")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.controls.editing {
		t.Fatalf("expected editing to stop")
	}
	want := models.YearRange{Low: 1900, High: 2000}
	if got := m.Selection().YearRange; got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if first := m.data.Table.Rows[0].Year; first != 1900 {
		t.Fatalf("expected table to start at 1900, got %d", first)
	}
}

func TestEditRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"not a number", "abc", "must be an integer"},
		{"before dataset", "1700", "between 1750 and 2020"},
		{"after end year", "2010", "must not be after end year"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := setupTestDashboard(t)
			before := m.Selection()
			m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			m.controls.input.SetValue(tc.input)
			m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			if m.Selection() != before {
				t.Fatalf("selection changed: %+v", m.Selection())
			}
			if !m.statusIsError || !strings.Contains(m.statusMessage, tc.want) {
				t.Fatalf("expected status containing %q, got %q", tc.want, m.statusMessage)
			}
			if !m.controls.isInvalid(ControlYearFrom) || !m.controls.isInvalid(ControlYearTo) {
				t.Fatalf("expected year controls marked invalid")
			}
		})
	}
}

func TestEditEscapeCancels(t *testing.T) {
	m := setupTestDashboard(t)
	before := m.Selection()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.controls.input.SetValue("1900")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.controls.editing {
		t.Fatalf("expected editing to stop on esc")
	}
	if m.Selection() != before {
		t.Fatalf("selection changed on cancel")
	}
}

func TestResetRestoresInitialSelection(t *testing.T) {
	m := focus(t, setupTestDashboard(t), ControlWindowSize)
	initial := m.Selection()
	m = send(t, m, runeKey('+'), runeKey('+'))
	if m.Selection() == initial {
		t.Fatalf("expected selection to change before reset")
	}
	m = send(t, m, runeKey('r'))
	if m.Selection() != initial {
		t.Fatalf("expected %+v after reset, got %+v", initial, m.Selection())
	}
	if m.statusMessage != "Selection reset" {
		t.Fatalf("unexpected status %q", m.statusMessage)
	}
}

func TestToggleDataAccordion(t *testing.T) {
	m := setupTestDashboard(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if strings.Contains(m.View(), "▾ Selected Data") {
		t.Fatalf("expected accordion closed initially")
	}
	m = send(t, m, runeKey('d'))
	if !m.data.Open || m.inputMode() != ModeDataOpen {
		t.Fatalf("expected accordion open")
	}
	view := m.View()
	if !strings.Contains(view, "▾ Selected Data") || !strings.Contains(view, "1800") {
		t.Fatalf("expected open accordion with rows in view")
	}
	m = send(t, m, runeKey('d'))
	if m.data.Open {
		t.Fatalf("expected accordion closed again")
	}
}

func TestThemeCycle(t *testing.T) {
	m := setupTestDashboard(t)
	m = send(t, m, runeKey('t'))
	if m.themeName != "dracula" {
		t.Fatalf("expected dracula, got %q", m.themeName)
	}
	m = send(t, m, runeKey('t'))
	if m.themeName != "default" {
		t.Fatalf("expected default, got %q", m.themeName)
	}
}

func TestViewStates(t *testing.T) {
	m := setupTestDashboard(t)
	if got := m.View(); got != "Initializing..." {
		t.Fatalf("expected initializing view, got %q", got)
	}
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	view := m.View()
	for _, want := range []string{"Window size", "Polynomial order", "Years 1800-2000", "[?]Help"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
	m = send(t, m, runeKey('?'))
	if !strings.Contains(m.View(), "[q]Quit") {
		t.Fatalf("expected help line in footer")
	}
}

func TestSnapshotCompactLayout(t *testing.T) {
	m := setupTestDashboard(t)
	out := m.Snapshot(60, 0)
	if !strings.Contains(out, "Controls") || !strings.Contains(out, "Selected Data") {
		t.Fatalf("expected controls and data in compact snapshot")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := setupTestDashboard(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestUnknownSeriesFallsBack(t *testing.T) {
	ctx := context.Background()
	m := setupTestDashboard(t)
	alt := NewDashboardModel(ctx, m.store, m.selection, Options{Series: "Missing"})
	if alt.data.Series != "No_Smoothing" {
		t.Fatalf("expected fallback series, got %q", alt.data.Series)
	}
	if !strings.Contains(alt.statusMessage, "not found") {
		t.Fatalf("expected fallback notice, got %q", alt.statusMessage)
	}
}
