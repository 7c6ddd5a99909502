// Package holes derives and validates BMS sensor-hole positions along the
// top and bottom cell rows of a plate.
package holes

import (
	"math"
	"sort"

	"github.com/battkit/cellplate/internal/model"
)

// rimClearance is the fixed distance a hole center sits inside the bore rim.
const rimClearance = 2.3

// Candidate is a proposed BMS hole position, tagged with its source row and
// whether it extends past the row's end cells or sits in a gap between them.
type Candidate struct {
	Pos       model.Point2D
	TopRow    bool
	Extension bool
}

// RowKey buckets a y coordinate into an integer row key by truncating
// y*1000. Truncation is deliberate: two centers differing by less than
// 0.001 can still split across a bucket boundary, and the downstream
// offset math is tuned to this exact behavior.
func RowKey(y float64) int {
	return int(math.Trunc(y * 1000))
}

// Candidates derives the BMS hole candidates for a centered position set.
// For each extreme row with N cells it proposes N+1 positions: one
// half-pitch extension past each end cell and one midpoint per gap.
func Candidates(centered []model.Point2D, cellSize, spacing float64, strategy model.Strategy) []Candidate {
	if len(centered) == 0 {
		return nil
	}

	rows := make(map[int][]model.Point2D)
	for _, p := range centered {
		key := RowKey(p.Y)
		rows[key] = append(rows[key], p)
	}

	topKey, bottomKey := 0, 0
	first := true
	for key := range rows {
		if first {
			topKey, bottomKey = key, key
			first = false
			continue
		}
		if key > topKey {
			topKey = key
		}
		if key < bottomKey {
			bottomKey = key
		}
	}

	r := cellSize / 2
	xStep := cellSize + spacing
	holeOffset := r - rimClearance - strategy.HoleOffsetAdjustment()

	// A single-row layout is its own top and bottom: it gets candidates
	// along both edges, offset above and below the row.
	var candidates []Candidate
	candidates = append(candidates, rowCandidates(rows[topKey], centered, holeOffset, xStep, true, strategy)...)
	candidates = append(candidates, rowCandidates(rows[bottomKey], centered, holeOffset, xStep, false, strategy)...)
	return candidates
}

// rowCandidates produces the N+1 candidates for one extreme row. Top-row
// holes sit above the row's y value, bottom-row holes below it.
func rowCandidates(row, all []model.Point2D, holeOffset, xStep float64, top bool, strategy model.Strategy) []Candidate {
	sorted := make([]model.Point2D, len(row))
	copy(sorted, row)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	rowY := sorted[0].Y
	y := rowY + holeOffset
	if !top {
		y = rowY - holeOffset
	}

	var candidates []Candidate

	left := Candidate{
		Pos:       model.Point2D{X: sorted[0].X - xStep/2, Y: y},
		TopRow:    top,
		Extension: true,
	}
	if strategy == model.StrategyVerticalHoneycomb {
		left.Pos.X = correctExtension(left.Pos.X, rowY, all, xStep, true)
	}
	candidates = append(candidates, left)

	for i := 0; i < len(sorted)-1; i++ {
		candidates = append(candidates, Candidate{
			Pos:    model.Point2D{X: (sorted[i].X + sorted[i+1].X) / 2, Y: y},
			TopRow: top,
		})
	}

	right := Candidate{
		Pos:       model.Point2D{X: sorted[len(sorted)-1].X + xStep/2, Y: y},
		TopRow:    top,
		Extension: true,
	}
	if strategy == model.StrategyVerticalHoneycomb {
		right.Pos.X = correctExtension(right.Pos.X, rowY, all, xStep, false)
	}
	candidates = append(candidates, right)

	return candidates
}

// correctExtension pulls a vertical-honeycomb edge extension inward when no
// cell center lies beyond it within half a pitch of the row's y band. The
// column packing leaves no material there, so an uncorrected candidate
// would sit entirely outside the plate silhouette.
func correctExtension(x, rowY float64, all []model.Point2D, xStep float64, leftmost bool) float64 {
	for _, p := range all {
		if math.Abs(p.Y-rowY) >= xStep/2 {
			continue
		}
		if leftmost && p.X < x {
			return x
		}
		if !leftmost && p.X > x {
			return x
		}
	}
	if leftmost {
		return x + xStep/4
	}
	return x - xStep/4
}
