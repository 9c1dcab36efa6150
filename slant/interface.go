// Copyright 2015 Daniel C. Brotsky.  All rights reserved.

// Package slant provides a model for Slants (Gokigen Naname) puzzles
// and the two solvers that operate on them.  It supports a pure Go
// interface; there is no web wrapper built into this package, unlike
// its Sudoku sibling, since this package is meant to be embedded in
// whatever caller needs puzzle-solving rather than to be a service of
// its own.
//
// In this package, a board is Width x Height cells, each either
// Unknown or holding a Slash or Backslash diagonal.  Around the
// cells are (Width+1) x (Height+1) lattice vertices, some of which
// carry a clue: the exact number of diagonals (0 through 4) that
// must touch that vertex in a valid solution.  Givens are supplied as
// a compact run-length-encoded string; see DecodeGivens.
//
// Two solvers are provided.  SolvePR applies only the deductive rule
// library and never guesses; it solves every puzzle the rule library
// alone is strong enough for, and reports Unsolved otherwise, even if
// the puzzle does have a unique solution reachable by guessing.
// SolveBF additionally backtracks when the rules get stuck, and so
// can resolve any uniquely-solvable puzzle; it also detects puzzles
// with more than one solution, which SolvePR cannot.
package slant

// Mode selects which of the two solvers Solve dispatches to.
type Mode int

// The two solving modes.
const (
	// ProductionRulesOnly applies the rule library and never
	// backtracks; see SolvePR.
	ProductionRulesOnly Mode = iota
	// Branching additionally backtracks on the rule library getting
	// stuck; see SolveBF.
	Branching
)

// Solve decodes givensString into a Width x Height board and solves
// it using the selected Mode, restricting the rule library to rules
// at or below maxTier.  It returns an Error (never a bare error) if
// givensString is malformed: the Error NewBoard produced, unchanged.
func Solve(mode Mode, givensString string, width, height, maxTier int) (SolveResult, error) {
	if _, err := NewBoard(width, height, givensString); err != nil {
		return SolveResult{Status: StatusUnsolved}, err
	}
	switch mode {
	case Branching:
		return SolveBF(givensString, width, height, maxTier), nil
	default:
		return SolvePR(givensString, width, height, maxTier), nil
	}
}
