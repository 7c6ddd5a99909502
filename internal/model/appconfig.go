package model

// AppConfig holds application-wide preferences and default plate parameters.
type AppConfig struct {
	// Default geometry applied to every build
	DefaultHeight           float64 `json:"default_height"`
	DefaultTerminalDiameter float64 `json:"default_terminal_diameter"`
	DefaultTerminalDepth    float64 `json:"default_terminal_depth"`
	DefaultCornerRadius     float64 `json:"default_corner_radius"`
	DefaultHoleDiameter     float64 `json:"default_hole_diameter"`

	// Additional artifacts written alongside the STEP models
	ExportDatasheet bool `json:"export_datasheet"` // PDF datasheet
	ExportDXF       bool `json:"export_dxf"`       // 2D DXF drawing per layout
	ExportBOM       bool `json:"export_bom"`       // Excel cell position workbook
	ExportLabels    bool `json:"export_labels"`    // QR-coded plate labels PDF

	// OutputDir is where all generated files are written. Empty means the
	// current working directory.
	OutputDir string `json:"output_dir"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultPlateConfig().
func DefaultAppConfig() AppConfig {
	defaults := DefaultPlateConfig()
	return AppConfig{
		DefaultHeight:           defaults.Height,
		DefaultTerminalDiameter: defaults.TerminalDiameter,
		DefaultTerminalDepth:    defaults.TerminalDepth,
		DefaultCornerRadius:     defaults.CornerRadius,
		DefaultHoleDiameter:     defaults.HoleDiameter,
	}
}

// ApplyToPlate copies the default geometry values from AppConfig into a
// PlateConfig. Zero values are skipped so a partially filled config file
// falls back to the built-in defaults.
func (c AppConfig) ApplyToPlate(p *PlateConfig) {
	if c.DefaultHeight > 0 {
		p.Height = c.DefaultHeight
	}
	if c.DefaultTerminalDiameter > 0 {
		p.TerminalDiameter = c.DefaultTerminalDiameter
	}
	if c.DefaultTerminalDepth > 0 {
		p.TerminalDepth = c.DefaultTerminalDepth
	}
	if c.DefaultCornerRadius > 0 {
		p.CornerRadius = c.DefaultCornerRadius
	}
	if c.DefaultHoleDiameter > 0 {
		p.HoleDiameter = c.DefaultHoleDiameter
	}
}
