package model

import "testing"

func TestStrategyNames(t *testing.T) {
	cases := []struct {
		strategy Strategy
		str      string
		display  string
		file     string
	}{
		{StrategyGrid, "Grid", "Grid Layout", "grid_layout.step"},
		{StrategyHoneycomb, "Honeycomb", "Honeycomb Layout", "honeycomb_layout.step"},
		{StrategyVerticalHoneycomb, "VerticalHoneycomb", "Vertical Honeycomb Layout", "vertical_honeycomb_layout.step"},
	}

	for _, c := range cases {
		if got := c.strategy.String(); got != c.str {
			t.Errorf("%v String: expected %q, got %q", c.strategy, c.str, got)
		}
		if got := c.strategy.DisplayName(); got != c.display {
			t.Errorf("%v DisplayName: expected %q, got %q", c.strategy, c.display, got)
		}
		if got := c.strategy.FileName(); got != c.file {
			t.Errorf("%v FileName: expected %q, got %q", c.strategy, c.file, got)
		}
	}
}

func TestStrategyHoleOffsetAdjustment(t *testing.T) {
	if got := StrategyGrid.HoleOffsetAdjustment(); got != 0 {
		t.Errorf("expected 0 for grid, got %f", got)
	}
	if got := StrategyHoneycomb.HoleOffsetAdjustment(); got != 0 {
		t.Errorf("expected 0 for honeycomb, got %f", got)
	}
	if got := StrategyVerticalHoneycomb.HoleOffsetAdjustment(); got != 2.25 {
		t.Errorf("expected 2.25 for vertical honeycomb, got %f", got)
	}
}

func TestStrategyHoleFilletRadius(t *testing.T) {
	if got := StrategyGrid.HoleFilletRadius(); got != 0.5 {
		t.Errorf("expected 0.5 for grid, got %f", got)
	}
	if got := StrategyVerticalHoneycomb.HoleFilletRadius(); got != 1.0 {
		t.Errorf("expected 1.0 for vertical honeycomb, got %f", got)
	}
}

func TestStrategiesOrder(t *testing.T) {
	if len(Strategies) != 3 {
		t.Fatalf("expected 3 strategies, got %d", len(Strategies))
	}
	if Strategies[0] != StrategyGrid || Strategies[1] != StrategyHoneycomb || Strategies[2] != StrategyVerticalHoneycomb {
		t.Errorf("unexpected strategy order: %v", Strategies)
	}
}
