package brep

import (
	"errors"
	"fmt"
	"math"

	"github.com/battkit/cellplate/internal/model"
)

// Errors returned for degenerate geometry. All are fatal to the build; the
// kernel never retries.
var (
	ErrDegenerateProfile = errors.New("degenerate profile")
	ErrNonPositiveRadius = errors.New("radius must be positive")
	ErrNonPositiveHeight = errors.New("height must be positive")
	ErrNoEdges           = errors.New("no edges selected")
)

// cylinder is a full-height cylindrical cut plus the features attached to
// it later in the boolean sequence: rim fillets, a terminal recess, and a
// glued ledge ring.
type cylinder struct {
	center model.Point2D
	radius float64

	topFillet    float64
	bottomFillet float64

	recessRadius float64
	recessDepth  float64

	ledgeWidth     float64
	coverThickness float64
}

// counterbore is a blind cylindrical cut from the top face.
type counterbore struct {
	center model.Point2D
	radius float64
	depth  float64
}

// Solid is a plate solid: an extruded footprint with an ordered set of
// cut and union features applied against it.
type Solid struct {
	outline model.Outline
	height  float64

	cuts     []cylinder
	recesses []counterbore
}

// NewExtrusion extrudes a closed profile to the given height. The profile
// winding is normalized to counter-clockwise.
func NewExtrusion(outline model.Outline, height float64) (*Solid, error) {
	if height <= 0 {
		return nil, ErrNonPositiveHeight
	}
	if len(outline) < 3 || math.Abs(outline.Area()) < 1e-9 {
		return nil, ErrDegenerateProfile
	}
	if outline.Area() < 0 {
		outline = outline.Reverse()
	}
	return &Solid{outline: outline, height: height}, nil
}

// Outline returns the footprint profile.
func (s *Solid) Outline() model.Outline { return s.outline }

// Height returns the extrusion height.
func (s *Solid) Height() float64 { return s.height }

// CutCylinders subtracts one full-height cylindrical bore per center.
func (s *Solid) CutCylinders(centers []model.Point2D, radius float64) error {
	if radius <= 0 {
		return ErrNonPositiveRadius
	}
	for _, c := range centers {
		s.cuts = append(s.cuts, cylinder{center: c, radius: radius})
	}
	return nil
}

// CutCounterbores subtracts a blind cylinder of the given radius and depth
// from the top face at each center. A counterbore narrower than an
// existing through-cut at the same center removes no material; it is
// recorded but produces no geometry.
func (s *Solid) CutCounterbores(centers []model.Point2D, radius, depth float64) error {
	if radius <= 0 {
		return ErrNonPositiveRadius
	}
	if depth <= 0 || depth > s.height {
		return fmt.Errorf("counterbore depth %.3f outside solid height %.3f", depth, s.height)
	}
	for _, c := range centers {
		if cut := s.cutAt(c); cut != nil {
			cut.recessRadius = radius
			cut.recessDepth = depth
			continue
		}
		s.recesses = append(s.recesses, counterbore{center: c, radius: radius, depth: depth})
	}
	return nil
}

// GlueRings unions an annulus (outer radius matching an existing bore,
// inner radius outer-ledgeWidth) into the base at each center, extruded
// from the base plane up to coverThickness. The glue merge attaches the
// ring to the bore wall without introducing internal topology.
func (s *Solid) GlueRings(centers []model.Point2D, outerRadius, innerRadius, coverThickness float64) error {
	if innerRadius <= 0 || outerRadius <= innerRadius {
		return fmt.Errorf("ring radii %.3f/%.3f: %w", outerRadius, innerRadius, ErrNonPositiveRadius)
	}
	if coverThickness <= 0 || coverThickness >= s.height {
		return fmt.Errorf("cover thickness %.3f outside solid height %.3f", coverThickness, s.height)
	}
	for _, c := range centers {
		cut := s.cutAt(c)
		if cut == nil || math.Abs(cut.radius-outerRadius) > 1e-9 {
			return fmt.Errorf("no bore of radius %.3f at (%.3f, %.3f) to glue ring against", outerRadius, c.X, c.Y)
		}
		cut.ledgeWidth = outerRadius - innerRadius
		cut.coverThickness = coverThickness
	}
	return nil
}

// cutAt returns the cylinder cut at exactly the given center, or nil.
func (s *Solid) cutAt(c model.Point2D) *cylinder {
	for i := range s.cuts {
		if s.cuts[i].center == c {
			return &s.cuts[i]
		}
	}
	return nil
}

// EdgeRef identifies one circular rim edge of a cylindrical cut.
type EdgeRef struct {
	cut    int
	top    bool
	Radius float64
}

// EdgesNearest returns the rim edges of the smallest-radius cuts that lie
// closest to p: candidates are filtered to the smallest rim radius first,
// then to the nearest of those rims. Radius wins over distance so a probe
// on a small hole's axis selects that hole's rim even when a wide bore
// wall passes closer. Every cylindrical cut exposes two rim circles, one
// on each face of the plate.
func (s *Solid) EdgesNearest(p model.Point3D) []EdgeRef {
	type candidate struct {
		ref  EdgeRef
		dist float64
	}

	var candidates []candidate
	for i, cut := range s.cuts {
		for _, top := range []bool{true, false} {
			z := 0.0
			if top {
				z = s.height
			}
			candidates = append(candidates, candidate{
				ref:  EdgeRef{cut: i, top: top, Radius: cut.radius},
				dist: rimDistance(p, cut.center, cut.radius, z),
			})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	minRadius := candidates[0].ref.Radius
	for _, c := range candidates[1:] {
		if c.ref.Radius < minRadius {
			minRadius = c.ref.Radius
		}
	}

	minDist := math.Inf(1)
	for _, c := range candidates {
		if math.Abs(c.ref.Radius-minRadius) <= 1e-9 && c.dist < minDist {
			minDist = c.dist
		}
	}

	var edges []EdgeRef
	for _, c := range candidates {
		if math.Abs(c.ref.Radius-minRadius) <= 1e-9 && c.dist <= minDist+1e-9 {
			edges = append(edges, c.ref)
		}
	}
	return edges
}

// rimDistance returns the distance from p to the rim circle of the given
// radius centered at (c, z).
func rimDistance(p model.Point3D, c model.Point2D, radius, z float64) float64 {
	dx := p.X - c.X
	dy := p.Y - c.Y
	planar := math.Abs(math.Sqrt(dx*dx+dy*dy) - radius)
	dz := p.Z - z
	return math.Sqrt(planar*planar + dz*dz)
}

// Fillet rounds the given rim edges to the given radius.
func (s *Solid) Fillet(edges []EdgeRef, radius float64) error {
	if radius <= 0 {
		return ErrNonPositiveRadius
	}
	if len(edges) == 0 {
		return ErrNoEdges
	}
	for _, e := range edges {
		if e.cut < 0 || e.cut >= len(s.cuts) {
			return fmt.Errorf("fillet: edge references unknown cut %d", e.cut)
		}
		if e.top {
			s.cuts[e.cut].topFillet = radius
		} else {
			s.cuts[e.cut].bottomFillet = radius
		}
	}
	return nil
}

// IntersectionVolume returns the volume of the boolean intersection
// between this solid's uncut footprint extrusion and a full-height
// cylinder at the given center. Cylinders span the whole plate height, so
// the volume is the 2D overlap area times the height.
func (s *Solid) IntersectionVolume(center model.Point2D, radius float64) float64 {
	return circlePolygonArea(s.outline, center, radius) * s.height
}

// Volume returns the analytic volume of the solid: footprint extrusion
// minus cut features plus glued rings. Fillet material removal is not
// accounted for.
func (s *Solid) Volume() float64 {
	v := math.Abs(s.outline.Area()) * s.height
	for _, cut := range s.cuts {
		v -= math.Pi * cut.radius * cut.radius * s.height
		if cut.ledgeWidth > 0 {
			inner := cut.radius - cut.ledgeWidth
			v += math.Pi * (cut.radius*cut.radius - inner*inner) * cut.coverThickness
		}
		if cut.recessRadius > cut.radius {
			v -= math.Pi * (cut.recessRadius*cut.recessRadius - cut.radius*cut.radius) * cut.recessDepth
		}
	}
	for _, rec := range s.recesses {
		v -= math.Pi * rec.radius * rec.radius * rec.depth
	}
	return v
}
