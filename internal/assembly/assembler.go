// Package assembly composes plate solids through an ordered sequence of
// boolean operations against the geometry kernel. The order is load
// bearing: each cut and union operates on the solid the previous step
// produced.
package assembly

import (
	"fmt"

	"github.com/battkit/cellplate/internal/brep"
	"github.com/battkit/cellplate/internal/model"
)

// Assembler builds one plate solid per invocation for a fixed
// configuration and strategy.
type Assembler struct {
	cfg      model.PlateConfig
	strategy model.Strategy
}

// New creates an assembler for the given configuration and strategy.
func New(cfg model.PlateConfig, strategy model.Strategy) *Assembler {
	return &Assembler{cfg: cfg, strategy: strategy}
}

// Footprint builds the uncut base extrusion for the given bounds: a plain
// rectangular plate, or one with its vertical edges filleted when rounded
// corners are requested. The hole validator tests containment against
// this solid.
func (a *Assembler) Footprint(bounds model.PlateBounds) (*brep.Solid, error) {
	var outline model.Outline
	if a.cfg.RoundedCorners {
		outline = brep.RoundedRectProfile(bounds.Width(), bounds.Length(), a.cfg.CornerRadius)
	} else {
		outline = brep.RectProfile(bounds.Width(), bounds.Length())
	}
	return brep.NewExtrusion(outline, a.cfg.Height)
}

// Build assembles the final solid:
//
//  1. base extrusion (rounded corners optional)
//  2. one bore cut per cell position
//  3. one cut per validated BMS hole, when enabled and any validated
//  4. rim fillets on the BMS hole edges, when requested and step 3 cut
//  5. one terminal recess per cell position
//  6. one retaining ledge ring per cell position, glue-unioned in
//
// An empty cell set produces no solid and no error; the caller skips the
// export. Any kernel failure is fatal and propagates unwrapped semantics.
func (a *Assembler) Build(cells []model.Point2D, bounds model.PlateBounds, bmsHoles []model.Point2D) (*brep.Solid, error) {
	if len(cells) == 0 {
		return nil, nil
	}

	solid, err := a.Footprint(bounds)
	if err != nil {
		return nil, fmt.Errorf("base extrusion: %w", err)
	}

	r := a.cfg.CellRadius()
	if err := solid.CutCylinders(cells, r); err != nil {
		return nil, fmt.Errorf("bore cuts: %w", err)
	}

	holesCut := false
	if a.cfg.BMSHoles && len(bmsHoles) > 0 {
		if err := solid.CutCylinders(bmsHoles, a.cfg.HoleDiameter/2); err != nil {
			return nil, fmt.Errorf("bms hole cuts: %w", err)
		}
		holesCut = true
	}

	if a.cfg.FilletBMSHoles && holesCut {
		if err := a.filletHoleRims(solid, bmsHoles); err != nil {
			return nil, fmt.Errorf("bms hole fillets: %w", err)
		}
	}

	if err := solid.CutCounterbores(cells, a.cfg.TerminalDiameter/2, a.cfg.TerminalDepth); err != nil {
		return nil, fmt.Errorf("terminal recesses: %w", err)
	}

	if err := solid.GlueRings(cells, r, r-a.cfg.LedgeWidth, a.cfg.CoverThickness); err != nil {
		return nil, fmt.Errorf("ledge rings: %w", err)
	}

	return solid, nil
}

// filletHoleRims selects the top and bottom rim edges of every BMS hole by
// nearest-point, smallest-radius edge selection and fillets them to the
// strategy's radius.
func (a *Assembler) filletHoleRims(solid *brep.Solid, holes []model.Point2D) error {
	var edges []brep.EdgeRef
	for _, h := range holes {
		top := model.Point3D{X: h.X, Y: h.Y, Z: a.cfg.Height}
		bottom := model.Point3D{X: h.X, Y: h.Y, Z: 0}
		edges = append(edges, solid.EdgesNearest(top)...)
		edges = append(edges, solid.EdgesNearest(bottom)...)
	}
	return solid.Fillet(edges, a.strategy.HoleFilletRadius())
}
