package brep

import (
	"math"

	"github.com/battkit/cellplate/internal/model"
)

// Loop is a closed sequence of 3D points bounding part of a planar or
// near-planar face. The last point connects back to the first.
type Loop []model.Point3D

// Face is one facet of the boundary representation: an outer loop plus
// zero or more hole loops wound in the opposite direction.
type Face struct {
	Outer Loop
	Holes []Loop
}

// Mesh is the faceted boundary representation of a solid, ready for
// serialization.
type Mesh struct {
	Faces []Face
}

// Mesh tessellates the solid into planar faces: footprint top and bottom
// with hole loops, outer wall quads, cylindrical cut walls, ledge and
// recess annuli, and quarter-torus fillet bands. Face order is
// deterministic for a given feature sequence.
func (s *Solid) Mesh() Mesh {
	var m Mesh
	m.Faces = append(m.Faces, s.bottomFace(), s.topFace())
	m.Faces = append(m.Faces, s.sideFaces()...)
	for i := range s.cuts {
		m.Faces = append(m.Faces, s.cutFaces(&s.cuts[i])...)
	}
	for _, rec := range s.recesses {
		m.Faces = append(m.Faces, s.recessFaces(rec)...)
	}
	return m
}

// bottomFace is the z=0 plane: footprint outer loop with one opening per
// through-cut. A glued ledge ring narrows the opening to its inner
// radius; a bottom rim fillet widens it.
func (s *Solid) bottomFace() Face {
	face := Face{Outer: loopAt(s.outline.Reverse(), 0)}
	for _, cut := range s.cuts {
		r := cut.radius
		if cut.ledgeWidth > 0 {
			r = cut.radius - cut.ledgeWidth
		} else if cut.bottomFillet > 0 {
			r = cut.radius + cut.bottomFillet
		}
		face.Holes = append(face.Holes, circleLoop(cut.center, r, 0, false))
	}
	return face
}

// topFace is the z=height plane. A terminal recess wider than its bore
// widens the opening to the recess radius; a top rim fillet widens it by
// the fillet radius. Standalone counterbores open here as well.
func (s *Solid) topFace() Face {
	face := Face{Outer: loopAt(s.outline, s.height)}
	for _, cut := range s.cuts {
		r := cut.radius
		if cut.recessRadius > cut.radius {
			r = cut.recessRadius
		} else if cut.topFillet > 0 {
			r = cut.radius + cut.topFillet
		}
		face.Holes = append(face.Holes, circleLoop(cut.center, r, s.height, true))
	}
	for _, rec := range s.recesses {
		face.Holes = append(face.Holes, circleLoop(rec.center, rec.radius, s.height, true))
	}
	return face
}

// sideFaces returns one outward quad per footprint edge.
func (s *Solid) sideFaces() []Face {
	n := len(s.outline)
	faces := make([]Face, 0, n)
	for i := 0; i < n; i++ {
		a := s.outline[i]
		b := s.outline[(i+1)%n]
		faces = append(faces, Face{Outer: Loop{
			{X: a.X, Y: a.Y, Z: 0},
			{X: b.X, Y: b.Y, Z: 0},
			{X: b.X, Y: b.Y, Z: s.height},
			{X: a.X, Y: a.Y, Z: s.height},
		}})
	}
	return faces
}

// cutFaces tessellates one cylindrical cut and its attached features.
func (s *Solid) cutFaces(cut *cylinder) []Face {
	var faces []Face

	wallBottom := 0.0
	wallTop := s.height

	switch {
	case cut.ledgeWidth > 0:
		inner := cut.radius - cut.ledgeWidth
		faces = append(faces, wallFaces(cut.center, inner, 0, cut.coverThickness)...)
		faces = append(faces, annulusFace(cut.center, cut.radius, inner, cut.coverThickness))
		wallBottom = cut.coverThickness
	case cut.bottomFillet > 0:
		faces = append(faces, filletBand(cut.center, cut.radius, cut.bottomFillet, 0, false)...)
		wallBottom = cut.bottomFillet
	}

	switch {
	case cut.recessRadius > cut.radius:
		shoulder := s.height - cut.recessDepth
		faces = append(faces, annulusFace(cut.center, cut.recessRadius, cut.radius, shoulder))
		faces = append(faces, wallFaces(cut.center, cut.recessRadius, shoulder, s.height)...)
		wallTop = shoulder
	case cut.topFillet > 0:
		faces = append(faces, filletBand(cut.center, cut.radius, cut.topFillet, s.height, true)...)
		wallTop = s.height - cut.topFillet
	}

	faces = append(faces, wallFaces(cut.center, cut.radius, wallBottom, wallTop)...)
	return faces
}

// recessFaces tessellates a standalone blind counterbore: its wall and
// flat floor.
func (s *Solid) recessFaces(rec counterbore) []Face {
	floor := s.height - rec.depth
	faces := wallFaces(rec.center, rec.radius, floor, s.height)
	faces = append(faces, Face{Outer: circleLoop(rec.center, rec.radius, floor, false)})
	return faces
}

// wallFaces returns the quads of a vertical cylindrical wall between two
// z planes.
func wallFaces(center model.Point2D, radius, z0, z1 float64) []Face {
	lower := circleLoop(center, radius, z0, false)
	upper := circleLoop(center, radius, z1, false)
	return bandFaces(lower, upper)
}

// filletBand tessellates a rim fillet as a quarter-torus: the arc runs
// from tangency with the cylinder wall to tangency with the face plane.
// top selects the top rim; otherwise the bottom rim is rounded.
func filletBand(center model.Point2D, radius, fillet, faceZ float64, top bool) []Face {
	rings := make([]Loop, filletSteps+1)
	for k := 0; k <= filletSteps; k++ {
		phi := (math.Pi / 2) * float64(k) / float64(filletSteps)
		r := radius + fillet - fillet*math.Cos(phi)
		var z float64
		if top {
			z = faceZ - fillet + fillet*math.Sin(phi)
		} else {
			z = faceZ + fillet - fillet*math.Sin(phi)
		}
		rings[k] = circleLoop(center, r, z, false)
	}

	var faces []Face
	for k := 0; k < filletSteps; k++ {
		faces = append(faces, bandFaces(rings[k], rings[k+1])...)
	}
	return faces
}

// bandFaces joins two equal-length rings with quads.
func bandFaces(lower, upper Loop) []Face {
	n := len(lower)
	faces := make([]Face, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces, Face{Outer: Loop{lower[i], lower[j], upper[j], upper[i]}})
	}
	return faces
}

// annulusFace is a flat ring between two radii at the given z plane, the
// upward-facing surface of a ledge or recess shoulder.
func annulusFace(center model.Point2D, outer, inner, z float64) Face {
	return Face{
		Outer: circleLoop(center, outer, z, false),
		Holes: []Loop{circleLoop(center, inner, z, true)},
	}
}

// circleLoop tessellates a circle at the given z plane. reversed flips
// the winding for hole loops.
func circleLoop(center model.Point2D, radius, z float64, reversed bool) Loop {
	profile := CircleProfile(center, radius, CircleSegments)
	if reversed {
		profile = profile.Reverse()
	}
	return loopAt(profile, z)
}

// loopAt lifts a 2D outline to a 3D loop at the given z plane.
func loopAt(outline model.Outline, z float64) Loop {
	loop := make(Loop, len(outline))
	for i, p := range outline {
		loop[i] = model.Point3D{X: p.X, Y: p.Y, Z: z}
	}
	return loop
}
