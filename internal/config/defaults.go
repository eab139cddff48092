package config

// Default configuration values.
const (
	DefaultResultFile = "result.yaml"
	DefaultWidthsFile = "widths.json"

	// DefaultCellWidth is the pixel width of one terminal cell used by the
	// built-in text measurer.
	DefaultCellWidth = 7.0
	// DefaultPadding is added to measured widths when auto-sizing.
	DefaultPadding = 12.0
)

// ApplyDefaults applies default values to a ProjectConfig.
func ApplyDefaults(c *ProjectConfig) {
	if c == nil {
		return
	}
	if c.ResultPath == "" {
		c.ResultPath = DefaultResultFile
	}
	if c.WidthsPath == "" {
		c.WidthsPath = DefaultWidthsFile
	}
	if c.Measure == nil {
		c.Measure = &MeasureConfig{}
	}
	ApplyMeasureDefaults(c.Measure)
}

// ApplyMeasureDefaults applies default values to a MeasureConfig.
func ApplyMeasureDefaults(m *MeasureConfig) {
	if m == nil {
		return
	}
	if m.CellWidth == 0 {
		m.CellWidth = DefaultCellWidth
	}
	if m.Padding == 0 {
		m.Padding = DefaultPadding
	}
}
