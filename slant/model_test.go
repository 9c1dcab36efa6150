package slant

import "testing"

func TestNewBoardRejectsWrongVertexCount(t *testing.T) {
	_, err := NewBoard(2, 2, "0")
	if err == nil {
		t.Fatal("expected an error for a too-short givens string")
	}
	e, ok := err.(Error)
	if !ok {
		t.Fatalf("expected an Error, got %T: %v", err, err)
	}
	if e.Condition != WrongVertexCountCondition {
		t.Fatalf("Condition = %v, want WrongVertexCountCondition", e.Condition)
	}
}

func TestNewBoardVertexLayout(t *testing.T) {
	// A 2x2 board has 3x3 = 9 vertices; clue (0,0) with 0 and the
	// bottom row (0,2),(1,2),(2,2) with 1,2,3, and leave the rest
	// (5 vertices) unclued.
	b, err := NewBoard(2, 2, "0e123")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if len(b.Vertices) != 9 {
		t.Fatalf("len(Vertices) = %d, want 9", len(b.Vertices))
	}
	v := b.GetVertex(0, 0)
	if !v.HasClue || v.Clue != 0 {
		t.Fatalf("vertex (0,0) = %+v, want clue 0", v)
	}
	if b.GetVertex(5, 5) != nil {
		t.Fatal("GetVertex out of bounds should return nil")
	}
}

func TestPlaceValueDetectsLoop(t *testing.T) {
	// A 2x2 board, fully unclued: 9 vertices, all unclued.
	b, err := NewBoard(2, 2, "i")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	// Slash, Backslash, Backslash, Slash form a diamond around the
	// center vertex, so the fourth diagonal closes a loop.
	if err := b.PlaceValue(b.GetCell(0, 0), Slash); err != nil {
		t.Fatalf("PlaceValue(0,0): %v", err)
	}
	if err := b.PlaceValue(b.GetCell(1, 0), Backslash); err != nil {
		t.Fatalf("PlaceValue(1,0): %v", err)
	}
	if err := b.PlaceValue(b.GetCell(0, 1), Backslash); err != nil {
		t.Fatalf("PlaceValue(0,1): %v", err)
	}
	if !b.WouldFormLoop(b.GetCell(1, 1), Slash) {
		t.Fatal("expected the fourth diagonal to close a loop")
	}
	if err := b.PlaceValue(b.GetCell(1, 1), Slash); err == nil {
		t.Fatal("expected PlaceValue to reject a loop-closing diagonal")
	} else if e, ok := err.(Error); !ok || e.Condition != LoopWouldFormCondition {
		t.Fatalf("err = %v, want a LoopWouldFormCondition Error", err)
	}
}

func TestPlaceValueOnAssignedCellIsANoOp(t *testing.T) {
	b, err := NewBoard(1, 1, "1c")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	c := b.GetCell(0, 0)
	if err := b.PlaceValue(c, Backslash); err != nil {
		t.Fatalf("PlaceValue: %v", err)
	}
	if err := b.PlaceValue(c, Slash); err != nil {
		t.Fatalf("re-placing an assigned cell should be a silent no-op, got %v", err)
	}
	if c.Value != Backslash {
		t.Fatalf("cell value changed to %v after no-op PlaceValue", c.Value)
	}
}

func TestIsValidAndIsValidSolution(t *testing.T) {
	// 2x2 board with a clue of 1 on the center vertex (1,1), which
	// has all four cells as neighbors.
	b, err := NewBoard(2, 2, "d1d")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if !b.IsValid() {
		t.Fatal("a fresh board should be valid")
	}
	if b.IsValidSolution() {
		t.Fatal("an unsolved board should not be a valid solution")
	}
	if err := b.PlaceValue(b.GetCell(0, 0), Backslash); err != nil {
		t.Fatalf("PlaceValue: %v", err)
	}
	if !b.IsValid() {
		t.Fatal("one touch should still satisfy the clue of 1")
	}
	if err := b.PlaceValue(b.GetCell(1, 0), Slash); err != nil {
		t.Fatalf("PlaceValue: %v", err)
	}
	if b.IsValid() {
		t.Fatal("a second touch should overshoot the center vertex's clue of 1")
	}
	if b.IsValidSolution() {
		t.Fatal("an invalid board is never a valid solution")
	}
}

func TestSaveRestoreState(t *testing.T) {
	b, err := NewBoard(2, 2, "i")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	snapshot := b.SaveState()
	if err := b.PlaceValue(b.GetCell(0, 0), Slash); err != nil {
		t.Fatalf("PlaceValue: %v", err)
	}
	if b.GetCell(0, 0).Value != Slash {
		t.Fatal("PlaceValue did not take effect")
	}
	b.RestoreState(snapshot)
	if b.GetCell(0, 0).Value != Unknown {
		t.Fatal("RestoreState did not undo the assignment")
	}
	if b.WouldFormLoop(b.GetCell(0, 0), Slash) {
		t.Fatal("RestoreState did not undo the union-find merge")
	}
}

func TestMarkCellsEquivalentConflict(t *testing.T) {
	b, err := NewBoard(2, 1, "1d2")
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	c1, c2 := b.GetCell(0, 0), b.GetCell(1, 0)
	if err := b.PlaceValue(c1, Slash); err != nil {
		t.Fatalf("PlaceValue: %v", err)
	}
	if err := b.PlaceValue(c2, Backslash); err != nil {
		t.Fatalf("PlaceValue: %v", err)
	}
	if b.MarkCellsEquivalent(c1, c2) {
		t.Fatal("cells with conflicting known values should not be marked equivalent")
	}
}
