// susen.go - a web-based Sudoku game and teaching tool.
// Copyright (C) 2015 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package slant

/*

Branching search

SolvePR only ever applies the rule library; it never guesses.
SolveBF additionally backtracks, using the same "Ariadne's thread"
shape that this package's Sudoku sibling uses: a stack of saved board
states, each paired with the diagonal value that produced it, so that
exhausting one branch pops back to the state just before the guess
and tries the next candidate value.

Unlike the Sudoku solver, this one does not enumerate every solution:
it stops as soon as it has found two, because a Slants puzzle with
more than one solution is by definition not uniquely solvable, and
distinguishing "exactly one" from "more than one" is all a caller
needs.

*/

// Status values a SolveResult can report.
const (
	StatusSolved   = "solved"
	StatusUnsolved = "unsolved"
	StatusMultiple = "mult"
)

// A SolveResult is the outcome of solving a puzzle: whether it has a
// unique solution, the solution string if so (or the furthest state
// the solver reached if not), and the work performed along the way.
type SolveResult struct {
	Status         string
	SolutionString string
	WorkScore      int
	MaxTierUsed    int
}

// pickBestCell chooses the unknown cell most constrained by clues at
// its four corners, to branch on next. Each clued corner contributes
// a score: 100 if the corner's remaining needed touches exactly match
// its remaining unknown neighbors (forcing every one of them one way
// or the other once branched) or if it needs no more touches, and
// otherwise 50 divided by its unknown-neighbor count. Ties are
// broken by keeping the first-encountered cell in board order
// (row-major, left to right), since GetUnknownCells already returns
// cells in that order.
func pickBestCell(b *Board) *Cell {
	unknownCells := b.GetUnknownCells()
	if len(unknownCells) == 0 {
		return nil
	}

	var best *Cell
	bestScore := -1
	for _, c := range unknownCells {
		score := 0
		tl, tr, bl, br := b.GetCellCorners(c)
		for _, corner := range []*Vertex{tl, tr, bl, br} {
			if corner == nil || !corner.HasClue {
				continue
			}
			current, unknown := b.CountTouches(corner)
			remainingNeeded := corner.Clue - current
			switch {
			case remainingNeeded == unknown:
				score += 100
			case remainingNeeded == 0:
				score += 100
			case unknown > 0:
				score += 50 / unknown
			}
		}
		if score > bestScore {
			bestScore, best = score, c
		}
	}
	return best
}

// getValidValues returns the diagonal values that could legally be
// placed in cell, highest priority first: a value is excluded if it
// would close a loop or if it would touch a clued corner that
// already has its full count of diagonals, and values that touch a
// clued corner rank above values that don't. Slash is tried before
// Backslash among equal-priority values, matching the order the two
// are considered in.
func getValidValues(b *Board, cell *Cell) []Value {
	type candidate struct {
		value    Value
		priority int
	}
	var candidates []candidate

	for _, value := range []Value{Slash, Backslash} {
		if b.WouldFormLoop(cell, value) {
			continue
		}

		x, y := cell.X, cell.Y
		var touches []*Vertex
		if value == Slash {
			touches = []*Vertex{b.GetVertex(x+1, y), b.GetVertex(x, y+1)}
		} else {
			touches = []*Vertex{b.GetVertex(x, y), b.GetVertex(x+1, y+1)}
		}

		valid, priority := true, 0
		for _, corner := range touches {
			if corner != nil && corner.HasClue {
				current, _ := b.CountTouches(corner)
				if current >= corner.Clue {
					valid = false
					break
				}
				priority += 10
			}
		}
		if valid {
			candidates = append(candidates, candidate{value, priority})
		}
	}

	// A manual stable sort by descending priority: with at most two
	// candidates this just swaps Backslash ahead of Slash when
	// Backslash touches more clued corners, and otherwise leaves Slash
	// first.
	if len(candidates) == 2 && candidates[1].priority > candidates[0].priority {
		candidates[0], candidates[1] = candidates[1], candidates[0]
	}

	result := make([]Value, len(candidates))
	for i, c := range candidates {
		result[i] = c.value
	}
	return result
}

// stackEntry is one frame of the branching search's backtracking
// stack: the board state to try next, paired with the value that was
// assigned to reach it (kept for callers that want to reconstruct the
// sequence of guesses, as the Sudoku solver's thread does).
type stackEntry struct {
	state           *BoardState
	eliminatedValue Value
}

// SolveBF solves a puzzle by applying the rule library to exhaustion
// and then backtracking on the most-constrained unknown cell whenever
// rules alone don't finish it, stopping as soon as it has found two
// solutions (proving the puzzle isn't unique) or exhausted the
// backtracking stack.
func SolveBF(givensString string, width, height, maxTier int) SolveResult {
	b, err := NewBoard(width, height, givensString)
	if err != nil {
		return SolveResult{Status: StatusUnsolved}
	}

	rules := filterRulesByTier(maxTier)

	var solutions []string
	stack := []stackEntry{{b.SaveState(), -1}}
	totalWorkScore, maxTierUsed := 0, 0
	usedBranching := false
	pushPopScore := 0

	for len(stack) > 0 && len(solutions) < 2 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		b.RestoreState(entry.state)
		pushPopScore++

		workScore, tierUsed := applyRulesUntilStuck(b, rules)
		totalWorkScore += workScore
		if tierUsed > maxTierUsed {
			maxTierUsed = tierUsed
		}

		if !b.IsValid() {
			continue
		}
		if b.IsSolved() {
			if b.IsValidSolution() {
				solutions = append(solutions, b.ToSolutionString())
			}
			continue
		}

		cell := pickBestCell(b)
		if cell == nil {
			continue
		}
		validValues := getValidValues(b, cell)
		if len(validValues) == 0 {
			continue
		}

		savedState := b.SaveState()
		for i := len(validValues) - 1; i >= 0; i-- {
			value := validValues[i]
			b.RestoreState(savedState)
			if err := b.PlaceValue(cell, value); err == nil {
				stack = append(stack, stackEntry{b.SaveState(), value})
				pushPopScore++
				usedBranching = true
			}
		}
		b.RestoreState(savedState)
	}

	var status string
	switch {
	case len(solutions) >= 2:
		status = StatusMultiple
	case len(solutions) == 1:
		status = StatusSolved
	default:
		status = StatusUnsolved
	}

	solutionString := b.ToSolutionString()
	if len(solutions) == 1 {
		solutionString = solutions[0]
	}

	totalWorkScore += pushPopScore * 2
	if usedBranching {
		maxTierUsed = 3
	}

	return SolveResult{
		Status:         status,
		SolutionString: solutionString,
		WorkScore:      totalWorkScore,
		MaxTierUsed:    maxTierUsed,
	}
}

// SolvePR solves a puzzle using only the rule library, never
// backtracking. It reports StatusSolved only if the rules alone
// reached a valid, complete solution.
//
// Unlike the inner loop SolveBF uses between guesses, this loop does
// not stop early when the board becomes invalid: it keeps applying
// rules until none of them make progress, matching the reference
// this was ported from. The two loops agree on the final status
// either way (IsValidSolution is checked at the end regardless), but
// they can credit a different WorkScore for a puzzle whose givens are
// already contradictory, since rules fired after invalidity still
// score here and would not inside applyRulesUntilStuck.
func SolvePR(givensString string, width, height, maxTier int) SolveResult {
	b, err := NewBoard(width, height, givensString)
	if err != nil {
		return SolveResult{Status: StatusUnsolved}
	}

	rules := filterRulesByTier(maxTier)
	totalWorkScore, maxTierUsed := 0, 0
	for iteration := 0; iteration < maxRuleIterations; iteration++ {
		if b.IsSolved() {
			break
		}
		madeProgress := false
		for _, rule := range rules {
			if rule.Func(b) {
				totalWorkScore += rule.Score
				if rule.Tier > maxTierUsed {
					maxTierUsed = rule.Tier
				}
				madeProgress = true
				break
			}
		}
		if !madeProgress {
			break
		}
	}

	status := StatusUnsolved
	if b.IsSolved() && b.IsValidSolution() {
		status = StatusSolved
	}

	return SolveResult{
		Status:         status,
		SolutionString: b.ToSolutionString(),
		WorkScore:      totalWorkScore,
		MaxTierUsed:    maxTierUsed,
	}
}
