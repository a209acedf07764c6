package config

// Selection field limits.
const (
	MinWindowSize = 2
	MaxWindowSize = 100

	MinPolynomialOrder = 1
	MaxPolynomialOrder = 10
)

// Selection defaults.
const (
	DefaultYearLow         = 1800
	DefaultYearHigh        = 2000
	DefaultWindowSize      = 2
	DefaultPolynomialOrder = 1
)

// Dataset.
const (
	DataDirName  = "data"
	DataFileName = "land-ocean-temp-index.csv"
	YearColumn   = "Year"
	CommentChar  = '#'
)

// Application settings.
const (
	AppName        = "tempdash"
	ConfigFileName = "config.yaml"
	DefaultTheme   = "default"
)
