package model

// PlateConfig holds the geometric parameters for one plate build.
// CLI arguments fill in the dimensional fields; the remainder carry
// documented defaults from DefaultPlateConfig.
type PlateConfig struct {
	// CLI-provided dimensions
	XDim           float64 `json:"x_dim"`           // Requested plate width (mm)
	YDim           float64 `json:"y_dim"`           // Requested plate length (mm)
	Spacing        float64 `json:"spacing"`         // Minimum gap between bore edges and to the plate boundary (mm)
	CellSize       float64 `json:"cell_size"`       // Bore diameter (mm)
	CoverThickness float64 `json:"cover_thickness"` // Ledge ring height above the base plane (mm)
	LedgeWidth     float64 `json:"ledge_width"`     // Radial width of the retaining ledge (mm)
	RoundedCorners bool    `json:"rounded_corners"` // Fillet the plate's vertical edges
	BMSHoles       bool    `json:"bms_holes"`       // Cut sensor/wire routing holes along the top and bottom rows
	FilletBMSHoles bool    `json:"fillet_bms"`      // Break the BMS hole rims with a fillet

	// Defaulted parameters
	Height           float64 `json:"height"`            // Plate thickness (mm)
	TerminalDiameter float64 `json:"terminal_diameter"` // Terminal recess diameter (mm)
	TerminalDepth    float64 `json:"terminal_depth"`    // Terminal recess depth from the top face (mm)
	CornerRadius     float64 `json:"corner_radius"`     // Vertical edge fillet radius when RoundedCorners is set (mm)
	HoleDiameter     float64 `json:"hole_diameter"`     // BMS hole diameter (mm)
}

// CellRadius returns half the bore diameter.
func (c PlateConfig) CellRadius() float64 {
	return c.CellSize / 2
}

// DefaultPlateConfig returns a PlateConfig with the standard plate
// parameters. The dimensional fields are zero and must be supplied.
func DefaultPlateConfig() PlateConfig {
	return PlateConfig{
		Height:           10.0,
		TerminalDiameter: 7.0,
		TerminalDepth:    1.0,
		CornerRadius:     5.0,
		HoleDiameter:     4.0,
	}
}
