package slant

import "testing"

func TestRuleNoLoops(t *testing.T) {
	b, err := NewBoard(2, 2, "i")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	// Recreate the loop setup from TestPlaceValueDetectsLoop: once
	// three of the four cells are assigned, Slash would close the
	// loop in the fourth, so ruleNoLoops must force Backslash there.
	for _, p := range []struct {
		x, y  int
		value Value
	}{
		{0, 0, Slash},
		{1, 0, Backslash},
		{0, 1, Backslash},
	} {
		if err := b.PlaceValue(b.GetCell(p.x, p.y), p.value); err != nil {
			t.Fatalf("PlaceValue(%d,%d): %v", p.x, p.y, err)
		}
	}

	if !ruleNoLoops(b) {
		t.Fatal("ruleNoLoops should have made progress")
	}
	if got := b.GetCell(1, 1).Value; got != Backslash {
		t.Fatalf("cell (1,1) = %v, want Backslash", got)
	}
}

func TestRuleClueFinishB(t *testing.T) {
	// Center vertex (1,1) of a 2x2 board clued 1, with its first
	// neighbor already satisfying the clue.
	b, err := NewBoard(2, 2, "d1d")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if err := b.PlaceValue(b.GetCell(0, 0), Backslash); err != nil {
		t.Fatalf("PlaceValue: %v", err)
	}

	if !ruleClueFinishB(b) {
		t.Fatal("ruleClueFinishB should have made progress")
	}

	wantAvoiders := map[[2]int]Value{
		{1, 0}: Backslash, // would-touch value was Slash
		{0, 1}: Backslash, // would-touch value was Slash
		{1, 1}: Slash,     // would-touch value was Backslash
	}
	for xy, want := range wantAvoiders {
		got := b.GetCell(xy[0], xy[1]).Value
		if got != want {
			t.Errorf("cell %v = %v, want %v (avoiding the center vertex)", xy, got, want)
		}
	}

	v := b.GetVertex(1, 1)
	current, _ := b.CountTouches(v)
	if current != 1 {
		t.Fatalf("center vertex touches = %d, want 1", current)
	}
}

func TestRuleEdgeClueConstraintsCorner(t *testing.T) {
	// A 1x1 board's top-left vertex has only one possible neighbor;
	// a clue equal to that count forces the one diagonal that touches it.
	b, err := NewBoard(1, 1, "1c")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if !ruleEdgeClueConstraints(b) {
		t.Fatal("ruleEdgeClueConstraints should have made progress")
	}
	if got := b.GetCell(0, 0).Value; got != Backslash {
		t.Fatalf("cell (0,0) = %v, want Backslash", got)
	}
}

func TestRuleDeadEndAvoidance(t *testing.T) {
	// A long 1xN strip where every vertex is unclued: the interior
	// vertices start with 4 exits each, well above the threshold, so
	// the rule should not fire on a fresh board.
	b, err := NewBoard(1, 3, "h")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if ruleDeadEndAvoidance(b) {
		t.Fatal("ruleDeadEndAvoidance should not fire on a fresh, wide-open board")
	}
}
