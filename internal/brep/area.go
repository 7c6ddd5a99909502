package brep

import (
	"math"

	"github.com/battkit/cellplate/internal/model"
)

// circlePolygonArea computes the area of the intersection between a circle
// and a simple polygon via Green's theorem: each polygon edge is split at
// its circle crossings, sub-segments inside the circle contribute triangle
// areas relative to the circle center, sub-segments outside contribute
// circular sector areas.
func circlePolygonArea(poly model.Outline, center model.Point2D, radius float64) float64 {
	if len(poly) < 3 || radius <= 0 {
		return 0
	}

	var total float64
	n := len(poly)
	for i := 0; i < n; i++ {
		ax := poly[i].X - center.X
		ay := poly[i].Y - center.Y
		bx := poly[(i+1)%n].X - center.X
		by := poly[(i+1)%n].Y - center.Y
		total += edgeContribution(ax, ay, bx, by, radius)
	}
	return math.Abs(total)
}

// edgeContribution returns the signed area bounded by the edge (a, b) and
// the circle of the given radius centered on the origin.
func edgeContribution(ax, ay, bx, by, r float64) float64 {
	dx := bx - ax
	dy := by - ay

	// Segment/circle crossings: |a + t*d|^2 = r^2 for t in (0, 1).
	qa := dx*dx + dy*dy
	qb := 2 * (ax*dx + ay*dy)
	qc := ax*ax + ay*ay - r*r

	ts := []float64{0}
	if qa > 1e-12 {
		disc := qb*qb - 4*qa*qc
		if disc > 0 {
			sq := math.Sqrt(disc)
			for _, t := range []float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)} {
				if t > 1e-12 && t < 1-1e-12 {
					ts = append(ts, t)
				}
			}
			if len(ts) == 3 && ts[1] > ts[2] {
				ts[1], ts[2] = ts[2], ts[1]
			}
		}
	}
	ts = append(ts, 1)

	var area float64
	for i := 0; i < len(ts)-1; i++ {
		t0, t1 := ts[i], ts[i+1]
		x0, y0 := ax+t0*dx, ay+t0*dy
		x1, y1 := ax+t1*dx, ay+t1*dy

		tm := (t0 + t1) / 2
		mx, my := ax+tm*dx, ay+tm*dy

		if mx*mx+my*my <= r*r {
			// Inside the circle: triangle with the center.
			area += (x0*y1 - x1*y0) / 2
		} else {
			// Outside: the boundary follows the circle arc instead.
			theta := math.Atan2(x0*y1-x1*y0, x0*x1+y0*y1)
			area += r * r * theta / 2
		}
	}
	return area
}
