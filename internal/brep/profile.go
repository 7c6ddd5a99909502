// Package brep implements the geometry kernel for plate solids: profile
// construction, extrusion, boolean cut/union features, overlap volumes,
// and tessellation into a faceted boundary representation.
package brep

import (
	"math"

	"github.com/battkit/cellplate/internal/model"
)

const (
	// CircleSegments is the tessellation density for circular profiles.
	CircleSegments = 64
	// CornerSegments is the tessellation density per rounded corner arc.
	CornerSegments = 16
	// filletSteps is the number of facet bands in a rim fillet.
	filletSteps = 4
)

// RectProfile returns a counter-clockwise rectangle of the given width and
// length centered on the origin.
func RectProfile(width, length float64) model.Outline {
	w, l := width/2, length/2
	return model.Outline{
		{X: -w, Y: -l},
		{X: w, Y: -l},
		{X: w, Y: l},
		{X: -w, Y: l},
	}
}

// RoundedRectProfile returns a counter-clockwise rectangle with its four
// corners replaced by tessellated arcs of the given radius. The radius is
// clamped to half the shorter side.
func RoundedRectProfile(width, length, radius float64) model.Outline {
	w, l := width/2, length/2
	r := radius
	if r > w {
		r = w
	}
	if r > l {
		r = l
	}
	if r <= 0 {
		return RectProfile(width, length)
	}

	// Corner arc centers and start angles, walking counter-clockwise from
	// the bottom-left corner.
	corners := []struct {
		cx, cy, start float64
	}{
		{-w + r, -l + r, math.Pi},
		{w - r, -l + r, 1.5 * math.Pi},
		{w - r, l - r, 0},
		{-w + r, l - r, 0.5 * math.Pi},
	}

	var outline model.Outline
	for _, c := range corners {
		for i := 0; i <= CornerSegments; i++ {
			angle := c.start + (math.Pi/2)*float64(i)/float64(CornerSegments)
			outline = append(outline, model.Point2D{
				X: c.cx + r*math.Cos(angle),
				Y: c.cy + r*math.Sin(angle),
			})
		}
	}
	return outline
}

// CircleProfile approximates a circle as a regular polygon with the given
// number of segments, wound counter-clockwise.
func CircleProfile(center model.Point2D, radius float64, segments int) model.Outline {
	outline := make(model.Outline, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		outline[i] = model.Point2D{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return outline
}
