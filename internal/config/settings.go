package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/tempdash/internal/models"
	"github.com/akyairhashvil/tempdash/internal/util"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the settings file.
const (
	EnvConfig     = "TEMPDASH_CONFIG"
	EnvDataFile   = "TEMPDASH_DATA"
	EnvTheme      = "TEMPDASH_THEME"
	EnvSeries     = "TEMPDASH_SERIES"
	EnvReportsDir = "TEMPDASH_REPORTS"
	EnvDebugLog   = "TEMPDASH_DEBUG"
)

// InitialSelection is the optional starting selection from the settings file.
// It is validated like any other update once the dataset bounds are known.
type InitialSelection struct {
	YearFrom        int `yaml:"year_from"`
	YearTo          int `yaml:"year_to"`
	WindowSize      int `yaml:"window_size"`
	PolynomialOrder int `yaml:"polynomial_order"`
}

// Selection fills unset fields from the defaults.
func (s InitialSelection) Selection() models.Selection {
	out := models.Selection{
		YearRange:       models.YearRange{Low: DefaultYearLow, High: DefaultYearHigh},
		WindowSize:      DefaultWindowSize,
		PolynomialOrder: DefaultPolynomialOrder,
	}
	if s.YearFrom != 0 {
		out.YearRange.Low = s.YearFrom
	}
	if s.YearTo != 0 {
		out.YearRange.High = s.YearTo
	}
	if s.WindowSize != 0 {
		out.WindowSize = s.WindowSize
	}
	if s.PolynomialOrder != 0 {
		out.PolynomialOrder = s.PolynomialOrder
	}
	return out
}

// Settings holds the runtime configuration of the dashboard.
type Settings struct {
	DataFile   string            `yaml:"data_file"`
	Theme      string            `yaml:"theme"`
	Series     string            `yaml:"series"`
	ReportsDir string            `yaml:"reports_dir"`
	DebugLog   string            `yaml:"debug_log"`
	Initial    *InitialSelection `yaml:"initial"`
}

// DefaultSettings returns the settings used when no file or environment
// override is present.
func DefaultSettings() Settings {
	return Settings{
		DataFile:   filepath.Join(DataDirName, DataFileName),
		Theme:      DefaultTheme,
		ReportsDir: util.ReportsDir(AppName),
	}
}

// SettingsPath resolves the settings file location.
func SettingsPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return p
	}
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// LoadSettings reads the YAML settings file at path, if it exists, and then
// applies environment overrides. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return s, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := decodeSettings(data, &s); err != nil {
				return s, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	applyEnv(&s)
	return s, nil
}

func decodeSettings(data []byte, s *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(s *Settings) {
	overrides := []struct {
		key    string
		target *string
	}{
		{EnvDataFile, &s.DataFile},
		{EnvTheme, &s.Theme},
		{EnvSeries, &s.Series},
		{EnvReportsDir, &s.ReportsDir},
		{EnvDebugLog, &s.DebugLog},
	}
	for _, o := range overrides {
		if v := strings.TrimSpace(os.Getenv(o.key)); v != "" {
			*o.target = v
		}
	}
}
