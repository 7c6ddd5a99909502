package model

import "github.com/google/uuid"

// Point2D represents a 2D coordinate in mm.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point3D represents a 3D coordinate in mm.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Outline represents a closed polygon as a sequence of 2D points.
// The outline is implicitly closed: the last point connects back to the first.
type Outline []Point2D

// BoundingBox returns the min and max corners of the outline.
func (o Outline) BoundingBox() (min, max Point2D) {
	if len(o) == 0 {
		return Point2D{}, Point2D{}
	}
	min = Point2D{X: o[0].X, Y: o[0].Y}
	max = Point2D{X: o[0].X, Y: o[0].Y}
	for _, p := range o[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Translate shifts all points by dx, dy.
func (o Outline) Translate(dx, dy float64) Outline {
	result := make(Outline, len(o))
	for i, p := range o {
		result[i] = Point2D{X: p.X + dx, Y: p.Y + dy}
	}
	return result
}

// Area computes the signed area of the polygon using the shoelace formula.
// Positive for counter-clockwise winding.
func (o Outline) Area() float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].X * o[j].Y
		area -= o[j].X * o[i].Y
	}
	return area / 2
}

// Reverse returns the outline with the opposite winding.
func (o Outline) Reverse() Outline {
	result := make(Outline, len(o))
	for i, p := range o {
		result[len(o)-1-i] = p
	}
	return result
}

// PlateBounds is the bounding rectangle of a cell layout, inflated by
// cell radius plus spacing on every side.
type PlateBounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// Width returns the plate extent along X.
func (b PlateBounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Length returns the plate extent along Y.
func (b PlateBounds) Length() float64 {
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the bounds.
func (b PlateBounds) Center() Point2D {
	return Point2D{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// PlateJob bundles one strategy's generated layout with the plate geometry
// derived from it, for the datasheet, DXF, BOM, and label exporters.
type PlateJob struct {
	ID       string      `json:"id"`
	Strategy Strategy    `json:"strategy"`
	Config   PlateConfig `json:"config"`
	Bounds   PlateBounds `json:"bounds"`
	Cells    []Point2D   `json:"cells"`
	BMSHoles []Point2D   `json:"bms_holes"`
}

// NewPlateJob creates a job with a fresh short ID.
func NewPlateJob(strategy Strategy, cfg PlateConfig, bounds PlateBounds, cells, holes []Point2D) PlateJob {
	return PlateJob{
		ID:       uuid.New().String()[:8],
		Strategy: strategy,
		Config:   cfg,
		Bounds:   bounds,
		Cells:    cells,
		BMSHoles: holes,
	}
}
