// Package config provides shared configuration types for LeapGrid.
// This package is decoupled from CLI concerns so the loader and other tools
// can read project configuration without the cobra layer.
package config

import "fmt"

// MeasureConfig configures text measurement for auto-sizing.
type MeasureConfig struct {
	// CellWidth is the pixel width of one terminal cell
	CellWidth float64 `koanf:"cell_width"`
	// Padding is added to the measured content width
	Padding float64 `koanf:"padding"`
	// SortIcon reserves room for the sort icon in header measurements
	SortIcon bool `koanf:"sort_icon"`
}

// Validate checks if the measure configuration is valid.
func (m *MeasureConfig) Validate() error {
	if m.CellWidth <= 0 {
		return fmt.Errorf("measure.cell_width must be positive, got %v", m.CellWidth)
	}
	if m.Padding < 0 {
		return fmt.Errorf("measure.padding must not be negative, got %v", m.Padding)
	}
	return nil
}

// ProjectConfig holds the project configuration shared by all tools.
// This is a subset of the full CLI Config.
type ProjectConfig struct {
	ResultPath string         `koanf:"result"`
	WidthsPath string         `koanf:"widths"`
	Measure    *MeasureConfig `koanf:"measure"`
}
