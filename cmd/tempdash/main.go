package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/tempdash/internal/config"
	"github.com/akyairhashvil/tempdash/internal/database"
	"github.com/akyairhashvil/tempdash/internal/models"
	"github.com/akyairhashvil/tempdash/internal/selection"
	"github.com/akyairhashvil/tempdash/internal/tui"
	"github.com/akyairhashvil/tempdash/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// 1. Settings and logging
	settings, err := config.LoadSettings(config.SettingsPath())
	if err != nil {
		return err
	}
	logFile, err := util.SetupLogging(settings.DebugLog, config.AppName)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// 2. Load the dataset into the in-memory store
	db, err := database.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	path := util.ResolveDataFile(settings.DataFile, executableDir())
	stats, err := db.LoadFile(ctx, path)
	if err != nil {
		return err
	}
	log.Printf("loaded %s: %d rows, %d columns, %d missing cells", path, stats.Rows, stats.Columns, stats.Missing)

	// 3. Bounds and the selection model
	minYear, maxYear, err := db.YearBounds(ctx)
	if err != nil {
		return err
	}
	bounds, err := selection.NewBounds(minYear, maxYear)
	if err != nil {
		return err
	}
	preferred := selection.Default()
	if settings.Initial != nil {
		preferred = settings.Initial.Selection()
	}
	start, adjusted := startingSelection(bounds, preferred)
	if adjusted {
		log.Printf("starting selection %s not valid for years %s, using %s",
			tui.FormatSelection(preferred), bounds, tui.FormatSelection(start))
	}
	sel, err := selection.New(bounds, start)
	if err != nil {
		return err
	}
	sel.Subscribe(func(s models.Selection) {
		log.Printf("selection committed: %s", tui.FormatSelection(s))
	})

	model := tui.NewDashboardModel(ctx, db, sel, tui.Options{
		Series:     settings.Series,
		Theme:      settings.Theme,
		ReportsDir: settings.ReportsDir,
	})

	// Not a terminal: print one frame and exit.
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = config.SnapshotWidth, config.SnapshotHeight
		}
		fmt.Println(model.Snapshot(width, height))
		return nil
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// startingSelection keeps preferred when it is valid for b. Otherwise the
// year range widens to the whole dataset, and the smoothing falls back to
// the defaults if preferred's is invalid as well.
func startingSelection(b *selection.Bounds, preferred models.Selection) (models.Selection, bool) {
	if selection.Validate(b, preferred) == nil {
		return preferred, false
	}
	full := models.YearRange{Low: b.MinYear(), High: b.MaxYear()}
	candidate := preferred
	candidate.YearRange = full
	if selection.Validate(b, candidate) == nil {
		return candidate, true
	}
	candidate = selection.Default()
	candidate.YearRange = full
	return candidate, true
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
