package model

// Strategy selects the cell packing topology for a plate.
type Strategy int

const (
	StrategyGrid               Strategy = iota // Regular rectangular lattice
	StrategyHoneycomb                          // Hex packing, rows advance along Y
	StrategyVerticalHoneycomb                  // Hex packing, columns advance along X
)

func (s Strategy) String() string {
	switch s {
	case StrategyHoneycomb:
		return "Honeycomb"
	case StrategyVerticalHoneycomb:
		return "VerticalHoneycomb"
	default:
		return "Grid"
	}
}

// DisplayName returns the human-readable layout name used in log output.
func (s Strategy) DisplayName() string {
	switch s {
	case StrategyHoneycomb:
		return "Honeycomb Layout"
	case StrategyVerticalHoneycomb:
		return "Vertical Honeycomb Layout"
	default:
		return "Grid Layout"
	}
}

// FileName returns the STEP output file name for this strategy.
func (s Strategy) FileName() string {
	switch s {
	case StrategyHoneycomb:
		return "honeycomb_layout.step"
	case StrategyVerticalHoneycomb:
		return "vertical_honeycomb_layout.step"
	default:
		return "grid_layout.step"
	}
}

// HoleOffsetAdjustment returns the extra reduction applied to the BMS hole
// row offset. Vertical honeycomb packs its rows tighter, so the holes must
// sit further inside the material.
func (s Strategy) HoleOffsetAdjustment() float64 {
	if s == StrategyVerticalHoneycomb {
		return 2.25
	}
	return 0
}

// HoleFilletRadius returns the rim fillet radius for BMS holes cut under
// this strategy.
func (s Strategy) HoleFilletRadius() float64 {
	if s == StrategyVerticalHoneycomb {
		return 1.0
	}
	return 0.5
}

// Strategies lists every packing strategy in pipeline order.
var Strategies = []Strategy{StrategyGrid, StrategyHoneycomb, StrategyVerticalHoneycomb}
