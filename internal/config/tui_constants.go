package config

// Layout constants.
const (
	// ControlPanelWidth caps the width of the description and control column.
	ControlPanelWidth = 34

	// MinDataPaneWidth is the narrowest the data/plot column is drawn.
	MinDataPaneWidth = 30

	// CompactModeThreshold stacks the columns vertically below this width.
	CompactModeThreshold = 72

	// SnapshotWidth and SnapshotHeight size the frame printed when stdout
	// is not a terminal.
	SnapshotWidth  = 110
	SnapshotHeight = 40
)

// Display limits.
const (
	// DataTableHeight is the number of rows shown by the open data accordion.
	DataTableHeight = 8

	// MinPlotHeight is the minimum number of plot rows.
	MinPlotHeight = 6

	// MaxPlotHeight stops the plot from eating the whole terminal.
	MaxPlotHeight = 18

	// ColumnCellWidth is the width of numeric data table columns.
	ColumnCellWidth = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxFieldInputLength bounds the characters accepted when editing a control.
	MaxFieldInputLength = 6
)
