package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/battkit/cellplate/internal/model"
)

// usageLine is printed when the positional arguments do not match the
// expected surface.
const usageLine = "Usage: cellplate <x_dim> <y_dim> <spacing> <cell_size> <cover_thickness> <rounded_corners[true/false]> <bms_holes[true/false]> <ledge_width> [fillet_bms[true/false]]"

// errCellSize carries the exact user-facing message for a non-positive
// bore diameter.
var errCellSize = errors.New("Cell size must be positive")

// parseArgs converts the positional arguments into a PlateConfig on top
// of the built-in defaults. Beyond requiring parseable numbers and a
// positive cell size, values are accepted without range validation.
func parseArgs(args []string) (model.PlateConfig, error) {
	cfg := model.DefaultPlateConfig()

	var err error
	if cfg.XDim, err = parseFloat("x_dim", args[0]); err != nil {
		return cfg, err
	}
	if cfg.YDim, err = parseFloat("y_dim", args[1]); err != nil {
		return cfg, err
	}
	if cfg.Spacing, err = parseFloat("spacing", args[2]); err != nil {
		return cfg, err
	}
	if cfg.CellSize, err = parseFloat("cell_size", args[3]); err != nil {
		return cfg, err
	}
	if cfg.CoverThickness, err = parseFloat("cover_thickness", args[4]); err != nil {
		return cfg, err
	}
	cfg.RoundedCorners = parseBool(args[5])
	cfg.BMSHoles = parseBool(args[6])
	if cfg.LedgeWidth, err = parseFloat("ledge_width", args[7]); err != nil {
		return cfg, err
	}
	if len(args) > 8 {
		cfg.FilletBMSHoles = parseBool(args[8])
	}

	if cfg.CellSize <= 0 {
		return cfg, errCellSize
	}
	return cfg, nil
}

// parseFloat parses one positional value, naming it in the error.
func parseFloat(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", name, value)
	}
	return v, nil
}

// parseBool treats exactly "true" (case-insensitive) as true, anything
// else as false.
func parseBool(value string) bool {
	return strings.ToLower(value) == "true"
}
