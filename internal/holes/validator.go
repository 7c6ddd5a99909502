package holes

import (
	"math"

	"github.com/battkit/cellplate/internal/brep"
	"github.com/battkit/cellplate/internal/model"
)

// DefaultThreshold is the fraction of a test cylinder's volume that must
// overlap the plate footprint for a candidate to be accepted. 0.49 admits
// holes that are only majority-contained, e.g. near a rounded corner or a
// honeycomb offset, while rejecting candidates mostly outside the plate.
const DefaultThreshold = 0.49

// Validator filters hole candidates by fractional volumetric containment
// against the uncut plate footprint solid.
type Validator struct {
	footprint  *brep.Solid
	holeRadius float64

	// Threshold is the acceptance fraction. Defaults to DefaultThreshold.
	Threshold float64
}

// NewValidator creates a validator for the given uncut footprint solid and
// hole diameter.
func NewValidator(footprint *brep.Solid, holeDiameter float64) *Validator {
	return &Validator{
		footprint:  footprint,
		holeRadius: holeDiameter / 2,
		Threshold:  DefaultThreshold,
	}
}

// Accepts reports whether a single candidate passes the containment test:
// a full-height test cylinder at the candidate position must overlap the
// footprint by at least Threshold of its own volume.
func (v *Validator) Accepts(c Candidate) bool {
	full := math.Pi * v.holeRadius * v.holeRadius * v.footprint.Height()
	overlap := v.footprint.IntersectionVolume(c.Pos, v.holeRadius)
	return overlap >= v.Threshold*full
}

// Validate filters candidates through the containment test and
// deduplicates the accepted set by exact coordinate equality, preserving
// first-seen order.
func (v *Validator) Validate(candidates []Candidate) []model.Point2D {
	seen := make(map[model.Point2D]struct{})
	var accepted []model.Point2D
	for _, c := range candidates {
		if !v.Accepts(c) {
			continue
		}
		if _, dup := seen[c.Pos]; dup {
			continue
		}
		seen[c.Pos] = struct{}{}
		accepted = append(accepted, c.Pos)
	}
	return accepted
}
