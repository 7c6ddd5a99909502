package export

import (
	"fmt"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/table"

	"github.com/battkit/cellplate/internal/brep"
	"github.com/battkit/cellplate/internal/model"
)

// DXFFileName returns the drawing file name for a strategy, derived from
// its STEP file name.
func DXFFileName(s model.Strategy) string {
	return strings.TrimSuffix(s.FileName(), ".step") + ".dxf"
}

// DXF writes a 2D drawing of one plate layout: the footprint outline on
// one layer, cell bores and BMS holes on their own layers. Rounded
// corners are tessellated the same way the solid kernel tessellates them.
func DXF(path string, job model.PlateJob) error {
	drawing := dxf.NewDrawing()

	drawing.AddLayer("OUTLINE", color.White, table.LT_CONTINUOUS, true)
	var outline model.Outline
	if job.Config.RoundedCorners {
		outline = brep.RoundedRectProfile(job.Bounds.Width(), job.Bounds.Length(), job.Config.CornerRadius)
	} else {
		outline = brep.RectProfile(job.Bounds.Width(), job.Bounds.Length())
	}
	for i := range outline {
		a := outline[i]
		b := outline[(i+1)%len(outline)]
		if _, err := drawing.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
			return fmt.Errorf("outline segment: %w", err)
		}
	}

	drawing.AddLayer("BORES", color.Cyan, table.LT_CONTINUOUS, true)
	for _, c := range job.Cells {
		if _, err := drawing.Circle(c.X, c.Y, 0, job.Config.CellRadius()); err != nil {
			return fmt.Errorf("bore circle: %w", err)
		}
	}

	if len(job.BMSHoles) > 0 {
		drawing.AddLayer("BMS_HOLES", color.Red, table.LT_CONTINUOUS, true)
		for _, h := range job.BMSHoles {
			if _, err := drawing.Circle(h.X, h.Y, 0, job.Config.HoleDiameter/2); err != nil {
				return fmt.Errorf("bms hole circle: %w", err)
			}
		}
	}

	return drawing.SaveAs(path)
}
