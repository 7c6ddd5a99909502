// Package layout computes 2D cell-center layouts for the three packing
// strategies and normalizes them around the plate origin.
package layout

import (
	"errors"
	"math"

	"github.com/battkit/cellplate/internal/model"
)

// ErrNonPositiveCellSize is returned when the bore diameter is zero or negative.
var ErrNonPositiveCellSize = errors.New("cell size must be positive")

// sweepSlack extends the sweep end so a center that lands exactly on the
// usable limit is still included despite floating point.
const sweepSlack = 0.01

// Generate returns the ordered cell centers for the given strategy on an
// xDim x yDim plate. An empty result means nothing fits; that is not an
// error. Order is deterministic: row-major for Grid and Honeycomb,
// column-major for VerticalHoneycomb.
func Generate(s model.Strategy, xDim, yDim, spacing, cellSize float64) ([]model.Point2D, error) {
	if cellSize <= 0 {
		return nil, ErrNonPositiveCellSize
	}
	switch s {
	case model.StrategyHoneycomb:
		return honeycomb(xDim, yDim, spacing, cellSize), nil
	case model.StrategyVerticalHoneycomb:
		return verticalHoneycomb(xDim, yDim, spacing, cellSize), nil
	default:
		return grid(xDim, yDim, spacing, cellSize), nil
	}
}

// grid fills a regular lattice with pitch cellSize+spacing on both axes.
func grid(xDim, yDim, spacing, cellSize float64) []model.Point2D {
	r := cellSize / 2
	start := r + spacing
	step := cellSize + spacing

	var xs, ys []float64
	for x := start; x < xDim-r-spacing+sweepSlack; x += step {
		xs = append(xs, x)
	}
	for y := start; y < yDim-r-spacing+sweepSlack; y += step {
		ys = append(ys, y)
	}

	var positions []model.Point2D
	for _, y := range ys {
		for _, x := range xs {
			positions = append(positions, model.Point2D{X: x, Y: y})
		}
	}
	return positions
}

// honeycomb packs rows advancing along Y by sqrt(3)*(r+spacing/2), with
// every odd row shifted by half the X pitch.
func honeycomb(xDim, yDim, spacing, cellSize float64) []model.Point2D {
	r := cellSize / 2
	y := r + spacing
	row := 0

	var positions []model.Point2D
	for y+r+spacing <= yDim {
		xOffset := 0.0
		if row%2 == 1 {
			xOffset = (cellSize + spacing) / 2
		}
		for x := r + spacing + xOffset; x+r+spacing <= xDim; x += cellSize + spacing {
			positions = append(positions, model.Point2D{X: x, Y: y})
		}
		y += math.Sqrt(3) * (r + spacing/2)
		row++
	}
	return positions
}

// verticalHoneycomb is the transpose of honeycomb: columns advance along X,
// every odd column shifted by half the Y pitch.
func verticalHoneycomb(xDim, yDim, spacing, cellSize float64) []model.Point2D {
	r := cellSize / 2
	x := r + spacing
	col := 0

	var positions []model.Point2D
	for x+r+spacing <= xDim {
		yOffset := 0.0
		if col%2 == 1 {
			yOffset = (cellSize + spacing) / 2
		}
		for y := r + spacing + yOffset; y+r+spacing <= yDim; y += cellSize + spacing {
			positions = append(positions, model.Point2D{X: x, Y: y})
		}
		x += math.Sqrt(3) * (r + spacing/2)
		col++
	}
	return positions
}

// Normalize computes the plate bounds for a position set (raw min/max
// inflated by r+spacing) and re-centers every position so the bounds'
// center becomes the origin. The returned bounds describe the centered
// set. ok is false for an empty input, which signals "no model".
func Normalize(positions []model.Point2D, r, spacing float64) (centered []model.Point2D, bounds model.PlateBounds, ok bool) {
	if len(positions) == 0 {
		return nil, model.PlateBounds{}, false
	}

	minX, minY := positions[0].X, positions[0].Y
	maxX, maxY := positions[0].X, positions[0].Y
	for _, p := range positions[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	raw := model.PlateBounds{
		MinX: minX - r - spacing,
		MinY: minY - r - spacing,
		MaxX: maxX + r + spacing,
		MaxY: maxY + r + spacing,
	}
	center := raw.Center()

	centered = make([]model.Point2D, len(positions))
	for i, p := range positions {
		centered[i] = model.Point2D{X: p.X - center.X, Y: p.Y - center.Y}
	}

	bounds = model.PlateBounds{
		MinX: raw.MinX - center.X,
		MinY: raw.MinY - center.Y,
		MaxX: raw.MaxX - center.X,
		MaxY: raw.MaxY - center.Y,
	}
	return centered, bounds, true
}
