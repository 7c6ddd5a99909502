package holes

import (
	"math"
	"testing"

	"github.com/battkit/cellplate/internal/model"
)

func TestRowKeyTruncates(t *testing.T) {
	cases := []struct {
		y    float64
		want int
	}{
		{0, 0},
		{0.0004, 0},
		{2.9999, 2999},
		{5.6789, 5678},
		{-5.6789, -5678},
		{10, 10000},
	}
	for _, c := range cases {
		if got := RowKey(c.y); got != c.want {
			t.Errorf("RowKey(%f): expected %d, got %d", c.y, c.want, got)
		}
	}
}

func TestCandidatesEmpty(t *testing.T) {
	if got := Candidates(nil, 18, 2, model.StrategyGrid); got != nil {
		t.Errorf("expected nil for empty layout, got %v", got)
	}
}

func TestCandidatesTwoRows(t *testing.T) {
	// Two rows of two cells each, pitch 20. Each extreme row yields N+1
	// candidates: one extension past each end plus one gap midpoint.
	cells := []model.Point2D{
		{X: 0, Y: 10}, {X: 20, Y: 10},
		{X: 0, Y: -10}, {X: 20, Y: -10},
	}
	got := Candidates(cells, 18, 2, model.StrategyGrid)
	if len(got) != 6 {
		t.Fatalf("expected 6 candidates, got %d", len(got))
	}

	// holeOffset = r - 2.3 = 6.7 for grid.
	topY, bottomY := 10+6.7, -10-6.7
	wantX := []float64{-10, 10, 30}
	for i, c := range got[:3] {
		if !c.TopRow {
			t.Errorf("candidate %d: expected top row", i)
		}
		if math.Abs(c.Pos.Y-topY) > 1e-9 {
			t.Errorf("candidate %d: expected y %f, got %f", i, topY, c.Pos.Y)
		}
		if math.Abs(c.Pos.X-wantX[i]) > 1e-9 {
			t.Errorf("candidate %d: expected x %f, got %f", i, wantX[i], c.Pos.X)
		}
	}
	for i, c := range got[3:] {
		if c.TopRow {
			t.Errorf("bottom candidate %d: expected bottom row", i)
		}
		if math.Abs(c.Pos.Y-bottomY) > 1e-9 {
			t.Errorf("bottom candidate %d: expected y %f, got %f", i, bottomY, c.Pos.Y)
		}
	}

	// Extensions are the first and last candidate of each row.
	for _, i := range []int{0, 2, 3, 5} {
		if !got[i].Extension {
			t.Errorf("candidate %d: expected extension flag", i)
		}
	}
	for _, i := range []int{1, 4} {
		if got[i].Extension {
			t.Errorf("candidate %d: midpoint must not be an extension", i)
		}
	}
}

func TestCandidatesSingleRowGetsBothEdges(t *testing.T) {
	// A single row is its own top and bottom row: N+1 candidates above
	// it and N+1 below it.
	cells := []model.Point2D{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 40, Y: 0}}
	got := Candidates(cells, 18, 2, model.StrategyGrid)
	if len(got) != 8 {
		t.Fatalf("expected 2*(N+1)=8 candidates for a single row, got %d", len(got))
	}

	for i, c := range got[:4] {
		if !c.TopRow {
			t.Errorf("candidate %d: expected top row", i)
		}
		if math.Abs(c.Pos.Y-6.7) > 1e-9 {
			t.Errorf("candidate %d: expected y 6.7, got %f", i, c.Pos.Y)
		}
	}
	for i, c := range got[4:] {
		if c.TopRow {
			t.Errorf("bottom candidate %d: expected bottom row", i)
		}
		if math.Abs(c.Pos.Y+6.7) > 1e-9 {
			t.Errorf("bottom candidate %d: expected y -6.7, got %f", i, c.Pos.Y)
		}
	}

	// Both passes propose the same x positions; only y differs.
	for i := 0; i < 4; i++ {
		if got[i].Pos.X != got[i+4].Pos.X {
			t.Errorf("candidate %d: top x %f != bottom x %f", i, got[i].Pos.X, got[i+4].Pos.X)
		}
	}
}

func TestCandidatesVerticalHoneycombOffset(t *testing.T) {
	// Vertical honeycomb pulls the hole row a further 2.25mm inward:
	// holeOffset = 9 - 2.3 - 2.25 = 4.45.
	cells := []model.Point2D{{X: 0, Y: 0}, {X: 20, Y: 0}}
	got := Candidates(cells, 18, 2, model.StrategyVerticalHoneycomb)
	for i, c := range got {
		if math.Abs(math.Abs(c.Pos.Y)-4.45) > 1e-9 {
			t.Errorf("candidate %d: expected |y| 4.45, got %f", i, c.Pos.Y)
		}
	}
}

func TestCandidatesVerticalHoneycombPullsInUnsupportedExtensions(t *testing.T) {
	// No cell lies beyond either end of the row, so both extensions pull
	// in by a quarter pitch: -10 -> -5 and 30 -> 25. The correction is
	// the same for the top and bottom pass of the single row.
	cells := []model.Point2D{{X: 0, Y: 0}, {X: 20, Y: 0}}
	got := Candidates(cells, 18, 2, model.StrategyVerticalHoneycomb)
	if len(got) != 6 {
		t.Fatalf("expected 6 candidates, got %d", len(got))
	}
	for _, row := range [][]Candidate{got[:3], got[3:]} {
		if math.Abs(row[0].Pos.X+5) > 1e-9 {
			t.Errorf("expected left extension pulled in to -5, got %f", row[0].Pos.X)
		}
		if math.Abs(row[1].Pos.X-10) > 1e-9 {
			t.Errorf("midpoint must stay at 10, got %f", row[1].Pos.X)
		}
		if math.Abs(row[2].Pos.X-25) > 1e-9 {
			t.Errorf("expected right extension pulled in to 25, got %f", row[2].Pos.X)
		}
	}
}

func TestCandidatesVerticalHoneycombKeepsSupportedExtensions(t *testing.T) {
	// Neighboring columns within half a pitch of the row band support
	// both extensions, so they remain at the half-pitch positions. The
	// top row is y=5; the y=0 cells sit beyond its ends.
	cells := []model.Point2D{
		{X: 0, Y: 5}, {X: 20, Y: 5},
		{X: -20, Y: 0}, {X: 40, Y: 0},
	}
	got := Candidates(cells, 18, 2, model.StrategyVerticalHoneycomb)

	var left, right *Candidate
	for i := range got {
		if !got[i].Extension || !got[i].TopRow {
			continue
		}
		if left == nil || got[i].Pos.X < left.Pos.X {
			left = &got[i]
		}
		if right == nil || got[i].Pos.X > right.Pos.X {
			right = &got[i]
		}
	}
	if left == nil || right == nil {
		t.Fatal("expected extension candidates")
	}
	if math.Abs(left.Pos.X+10) > 1e-9 {
		t.Errorf("expected supported left extension at -10, got %f", left.Pos.X)
	}
	if math.Abs(right.Pos.X-30) > 1e-9 {
		t.Errorf("expected supported right extension at 30, got %f", right.Pos.X)
	}
}
