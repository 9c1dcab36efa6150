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

The rule library

Each rule inspects the board for one specific deductive pattern and,
if it finds an instance, places one or more diagonals or merges cell
equivalence classes, and reports progress.  The rule runner (runner.go) tries them in the order below,
restarting from the top after any rule makes progress, so cheaper and
more certain rules always get first crack at a board before the more
expensive combinatorial ones run.

*/

// A Rule is a single named deduction.  Func reports whether it found
// and applied at least one deduction.
type Rule struct {
	Name  string
	Score int
	Tier  int
	Func  func(*Board) bool
}

// Rules is the ordered rule library used by both SolvePR and SolveBF.
var Rules = []Rule{
	{"clue_finish_b", 1, 1, ruleClueFinishB},
	{"clue_finish_a", 2, 1, ruleClueFinishA},
	{"no_loops", 2, 1, ruleNoLoops},
	{"edge_clue_constraints", 2, 2, ruleEdgeClueConstraints},
	{"border_two_v_shape", 3, 2, ruleBorderTwoVShape},
	{"loop_avoidance_2", 5, 1, ruleLoopAvoidance2},
	{"v_pattern_with_three", 6, 2, ruleVPatternWithThree},
	{"adjacent_ones", 8, 2, ruleAdjacentOnes},
	{"adjacent_threes", 8, 2, ruleAdjacentThrees},
	{"dead_end_avoidance", 9, 2, ruleDeadEndAvoidance},
	{"equivalence_classes", 9, 2, ruleEquivalenceClasses},
	{"vbitmap_propagation", 9, 2, ruleVBitmapPropagation},
	{"simon_unified", 9, 2, ruleSimonUnified},
}

// placeIfNoLoop places value in c unless doing so would close a loop,
// and reports whether it placed anything. Most rules below use this
// guard; ruleNoLoops and ruleSimonUnified check WouldFormLoop
// themselves and call PlaceValue directly.
func placeIfNoLoop(b *Board, c *Cell, value Value) bool {
	if b.WouldFormLoop(c, value) {
		return false
	}
	b.PlaceValue(c, value)
	return true
}

// ruleClueFinishA fills every still-unknown neighbor of a clue when
// all of them are needed to reach the clue's count.
func ruleClueFinishA(b *Board) bool {
	madeProgress := false
	for _, v := range b.GetCluedVertices() {
		adjacent := b.GetAdjacentCellsForVertex(v)
		current := 0
		var unknownCells []adjacency
		for _, adj := range adjacent {
			if adj.cell.Value == Unknown {
				unknownCells = append(unknownCells, adj)
			} else if adj.touches() {
				current++
			}
		}
		needed := v.Clue - current
		if needed > 0 && needed == len(unknownCells) {
			for _, adj := range unknownCells {
				value := Backslash
				if adj.slashTouches {
					value = Slash
				}
				if placeIfNoLoop(b, adj.cell, value) {
					madeProgress = true
				}
			}
		}
	}
	return madeProgress
}

// ruleClueFinishB fills the remaining unknown neighbors of a clue to
// avoid it, once the clue's count has already been reached.
func ruleClueFinishB(b *Board) bool {
	madeProgress := false
	for _, v := range b.GetCluedVertices() {
		adjacent := b.GetAdjacentCellsForVertex(v)
		current := 0
		var unknownCells []adjacency
		for _, adj := range adjacent {
			if adj.cell.Value == Unknown {
				unknownCells = append(unknownCells, adj)
			} else if adj.touches() {
				current++
			}
		}
		if current == v.Clue && len(unknownCells) > 0 {
			for _, adj := range unknownCells {
				// the touching value is forbidden; place the avoiding one
				value := Slash
				if adj.slashTouches {
					value = Backslash
				}
				if placeIfNoLoop(b, adj.cell, value) {
					madeProgress = true
				}
			}
		}
	}
	return madeProgress
}

// ruleNoLoops places the one diagonal value that doesn't close a loop
// in any unknown cell where the other one would.
func ruleNoLoops(b *Board) bool {
	madeProgress := false
	for _, c := range b.GetUnknownCells() {
		slashLoops := b.WouldFormLoop(c, Slash)
		backslashLoops := b.WouldFormLoop(c, Backslash)
		if slashLoops && !backslashLoops {
			b.PlaceValue(c, Backslash)
			madeProgress = true
		} else if backslashLoops && !slashLoops {
			b.PlaceValue(c, Slash)
			madeProgress = true
		}
	}
	return madeProgress
}

// ruleEdgeClueConstraints fills every neighbor of a clue whose count
// equals the number of cells that could possibly touch it (an edge
// or corner vertex has fewer than four neighbors).
func ruleEdgeClueConstraints(b *Board) bool {
	madeProgress := false
	for _, v := range b.GetCluedVertices() {
		adjacent := b.GetAdjacentCellsForVertex(v)
		if v.Clue > len(adjacent) {
			continue
		}
		if v.Clue == len(adjacent) {
			for _, adj := range adjacent {
				if adj.cell.Value != Unknown {
					continue
				}
				value := Backslash
				if adj.slashTouches {
					value = Slash
				}
				if placeIfNoLoop(b, adj.cell, value) {
					madeProgress = true
				}
			}
		}
	}
	return madeProgress
}

// ruleBorderTwoVShape forces both diagonals touching a border vertex
// clued 2 with only two possible neighbors, since both must touch.
func ruleBorderTwoVShape(b *Board) bool {
	madeProgress := false
	for _, v := range b.GetCluedVertices() {
		if v.Clue != 2 {
			continue
		}
		adjacent := b.GetAdjacentCellsForVertex(v)
		if len(adjacent) != 2 {
			continue
		}
		current, unknown := b.CountTouches(v)
		if current+unknown == 2 && unknown > 0 {
			for _, adj := range adjacent {
				if adj.cell.Value != Unknown {
					continue
				}
				value := Backslash
				if adj.slashTouches {
					value = Slash
				}
				if placeIfNoLoop(b, adj.cell, value) {
					madeProgress = true
				}
			}
		}
	}
	return madeProgress
}

// ruleLoopAvoidance2 speculatively completes a clue-2 vertex whose
// two remaining neighbors must both touch it, to see whether the
// second placement would close a loop; if so that's a contradiction
// in the first placement's assumptions... but see below.
//
// As in the reference this rule is derived from, this function always
// restores its speculative state and never actually records progress:
// madeProgress is never set true here, so this rule never fires. It
// exists for the same speculative check the reference performs, kept
// rather than removed or "fixed". Every path restores the state saved
// before the check, so the WouldFormLoop results it computes are
// discarded and the board is left exactly as it was found.
func ruleLoopAvoidance2(b *Board) bool {
	madeProgress := false
	for _, v := range b.GetCluedVertices() {
		if v.Clue != 2 {
			continue
		}
		adjacent := b.GetAdjacentCellsForVertex(v)
		current := 0
		var unknownCells []adjacency
		for _, adj := range adjacent {
			if adj.cell.Value == Unknown {
				unknownCells = append(unknownCells, adj)
			} else if adj.touches() {
				current++
			}
		}
		if current != 0 || len(unknownCells) != 2 {
			continue
		}

		cell1, slash1 := unknownCells[0].cell, unknownCells[0].slashTouches
		cell2, slash2 := unknownCells[1].cell, unknownCells[1].slashTouches
		val1 := Backslash
		if slash1 {
			val1 = Slash
		}
		val2 := Backslash
		if slash2 {
			val2 = Slash
		}

		state := b.SaveState()
		if b.WouldFormLoop(cell1, val1) {
			b.RestoreState(state)
			continue
		}
		b.PlaceValue(cell1, val1)
		if b.WouldFormLoop(cell2, val2) {
			b.RestoreState(state)
			continue
		}
		b.RestoreState(state)
	}
	return madeProgress
}

// ruleVPatternWithThree completes the third touch of a clue-3 vertex
// sitting directly above or below a confirmed "V" pair of diagonals.
func ruleVPatternWithThree(b *Board) bool {
	madeProgress := false
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width-1; x++ {
			left, right := b.GetCell(x, y), b.GetCell(x+1, y)
			if left == nil || right == nil {
				continue
			}

			if left.Value == Backslash && right.Value == Slash {
				if v := b.GetVertex(x+1, y); v != nil && v.HasClue && v.Clue == 3 {
					current, unknown := b.CountTouches(v)
					if current == 2 && unknown > 0 {
						for _, adj := range b.GetAdjacentCellsForVertex(v) {
							if adj.cell.Value != Unknown || adj.cell.Y >= y {
								continue
							}
							value := Backslash
							if adj.slashTouches {
								value = Slash
							}
							if placeIfNoLoop(b, adj.cell, value) {
								madeProgress = true
							}
						}
					}
				}
			}

			if left.Value == Slash && right.Value == Backslash {
				if v := b.GetVertex(x+1, y+1); v != nil && v.HasClue && v.Clue == 3 {
					current, unknown := b.CountTouches(v)
					if current == 2 && unknown > 0 {
						for _, adj := range b.GetAdjacentCellsForVertex(v) {
							if adj.cell.Value != Unknown || adj.cell.Y <= y {
								continue
							}
							value := Backslash
							if adj.slashTouches {
								value = Slash
							}
							if placeIfNoLoop(b, adj.cell, value) {
								madeProgress = true
							}
						}
					}
				}
			}
		}
	}
	return madeProgress
}

// ruleAdjacentOnes forces avoiders in cells shared between two
// orthogonally adjacent clue-1 vertices once one of them is satisfied.
func ruleAdjacentOnes(b *Board) bool {
	madeProgress := false
	directions := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, v := range b.GetCluedVertices() {
		if v.Clue != 1 {
			continue
		}
		current, _ := b.CountTouches(v)
		if current != 1 {
			continue
		}
		for _, dir := range directions {
			neighbor := b.GetVertex(v.VX+dir[0], v.VY+dir[1])
			if neighbor == nil || !neighbor.HasClue || neighbor.Clue != 1 {
				continue
			}
			neighborCells := make(map[*Cell]bool)
			for _, n := range b.GetAdjacentCellsForVertex(neighbor) {
				neighborCells[n.cell] = true
			}
			for _, adj := range b.GetAdjacentCellsForVertex(v) {
				if adj.cell.Value != Unknown || !neighborCells[adj.cell] {
					continue
				}
				value := Slash
				if adj.slashTouches {
					value = Backslash
				}
				if placeIfNoLoop(b, adj.cell, value) {
					madeProgress = true
				}
			}
		}
	}
	return madeProgress
}

// ruleAdjacentThrees forces the unshared neighbors of two orthogonally
// adjacent clue-3 vertices to touch once the shared cells plus the
// current count would otherwise leave the clue short.
func ruleAdjacentThrees(b *Board) bool {
	madeProgress := false
	directions := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, v := range b.GetCluedVertices() {
		if v.Clue != 3 {
			continue
		}
		current, _ := b.CountTouches(v)
		myAdj := b.GetAdjacentCellsForVertex(v)
		for _, dir := range directions {
			neighbor := b.GetVertex(v.VX+dir[0], v.VY+dir[1])
			if neighbor == nil || !neighbor.HasClue || neighbor.Clue != 3 {
				continue
			}
			neighborCells := make(map[*Cell]bool)
			for _, n := range b.GetAdjacentCellsForVertex(neighbor) {
				neighborCells[n.cell] = true
			}
			var shared, unshared []adjacency
			for _, adj := range myAdj {
				if neighborCells[adj.cell] {
					shared = append(shared, adj)
				} else {
					unshared = append(unshared, adj)
				}
			}
			var unsharedUnknown []adjacency
			for _, adj := range unshared {
				if adj.cell.Value == Unknown {
					unsharedUnknown = append(unsharedUnknown, adj)
				}
			}
			if current+len(unsharedUnknown)+len(shared) == 3 && len(unsharedUnknown) > 0 {
				for _, adj := range unsharedUnknown {
					value := Backslash
					if adj.slashTouches {
						value = Slash
					}
					if placeIfNoLoop(b, adj.cell, value) {
						madeProgress = true
					}
				}
			}
		}
	}
	return madeProgress
}

// ruleDeadEndAvoidance forces the diagonal away from a corner pair of
// vertex groups that, if connected, would both run out of exits
// without ever reaching the border (an isolated, unfinished loop).
func ruleDeadEndAvoidance(b *Board) bool {
	madeProgress := false
	for _, c := range b.GetUnknownCells() {
		x, y := c.X, c.Y

		// backslash joins (x,y) to (x+1,y+1)
		forceSlash := !b.GetVertexGroupBorder(x, y) && !b.GetVertexGroupBorder(x+1, y+1) &&
			b.GetVertexGroupExits(x, y) <= 1 && b.GetVertexGroupExits(x+1, y+1) <= 1

		// slash joins (x+1,y) to (x,y+1)
		forceBackslash := !b.GetVertexGroupBorder(x+1, y) && !b.GetVertexGroupBorder(x, y+1) &&
			b.GetVertexGroupExits(x+1, y) <= 1 && b.GetVertexGroupExits(x, y+1) <= 1

		if forceSlash && !forceBackslash {
			if placeIfNoLoop(b, c, Slash) {
				madeProgress = true
			}
		} else if forceBackslash && !forceSlash {
			if placeIfNoLoop(b, c, Backslash) {
				madeProgress = true
			}
		}
	}
	return madeProgress
}

// ruleEquivalenceClasses marks pairs of orthogonally adjacent unknown
// cells as equivalent whenever a clue needs exactly one more touch
// from exactly those two cells, then assigns any cell whose class has
// become known.
func ruleEquivalenceClasses(b *Board) bool {
	madeProgress := false

	for _, v := range b.GetCluedVertices() {
		adjacent := b.GetAdjacentCellsForVertex(v)
		current := 0
		var unknownCells []adjacency
		for _, adj := range adjacent {
			if adj.cell.Value == Unknown {
				unknownCells = append(unknownCells, adj)
			} else if adj.touches() {
				current++
			}
		}
		needed := v.Clue - current
		if needed == 1 && len(unknownCells) == 2 {
			c1, c2 := unknownCells[0].cell, unknownCells[1].cell
			dx, dy := c1.X-c2.X, c1.Y-c2.Y
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			if (dx == 1 && dy == 0) || (dx == 0 && dy == 1) {
				if b.MarkCellsEquivalent(c1, c2) {
					madeProgress = true
				}
			}
		}
	}

	for _, c := range b.GetUnknownCells() {
		value := b.GetEquivalenceClassValue(c)
		if value == Unknown {
			continue
		}
		if placeIfNoLoop(b, c, value) {
			madeProgress = true
			continue
		}
		other := Slash
		if value == Slash {
			other = Backslash
		}
		if placeIfNoLoop(b, c, other) {
			madeProgress = true
		}
	}

	return madeProgress
}

// ruleVBitmapPropagation runs a local fixpoint over a scratch v-shape
// bitmap (separate from the one the board's VBitmapGet/VBitmapClear
// expose) seeded at 0xF per cell and narrowed by known cell values and
// clues, using it only to discover newly-forced cell equivalences.
//
// The scratch bitmap is deliberately never copied back into the
// board's own vbitmap array: only the equivalences it derives are
// recorded. This rule and ruleSimonUnified's third phase therefore
// maintain two independent views of the same v-shape possibilities,
// exactly as in the reference this was ported from.
func ruleVBitmapPropagation(b *Board) bool {
	madeProgress := false
	w, h := b.Width, b.Height

	vbitmap := make([][]int, h)
	for y := 0; y < h; y++ {
		vbitmap[y] = make([]int, w)
		for x := 0; x < w; x++ {
			vbitmap[y][x] = 0xF
		}
	}

	changed := true
	for changed {
		changed = false

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := b.GetCell(x, y)
				if c.Value == Unknown {
					continue
				}
				old := vbitmap[y][x]
				if c.Value == Slash {
					vbitmap[y][x] &= ^0x5
					if x > 0 && vbitmap[y][x-1]&0x2 != 0 {
						vbitmap[y][x-1] &= ^0x2
						changed = true
					}
					if y > 0 && vbitmap[y-1][x]&0x8 != 0 {
						vbitmap[y-1][x] &= ^0x8
						changed = true
					}
				} else {
					vbitmap[y][x] &= ^0xA
					if x > 0 && vbitmap[y][x-1]&0x1 != 0 {
						vbitmap[y][x-1] &= ^0x1
						changed = true
					}
					if y > 0 && vbitmap[y-1][x]&0x4 != 0 {
						vbitmap[y-1][x] &= ^0x4
						changed = true
					}
				}
				if vbitmap[y][x] != old {
					changed = true
				}
			}
		}

		for vy := 1; vy < h; vy++ {
			for vx := 1; vx < w; vx++ {
				v := b.GetVertex(vx, vy)
				if v == nil || !v.HasClue {
					continue
				}
				switch v.Clue {
				case 1:
					old1, old2, old3 := vbitmap[vy-1][vx-1], vbitmap[vy][vx-1], vbitmap[vy-1][vx]
					vbitmap[vy-1][vx-1] &= ^0x5
					if vy < h {
						vbitmap[vy][vx-1] &= ^0x2
					}
					if vx < w {
						vbitmap[vy-1][vx] &= ^0x8
					}
					if vbitmap[vy-1][vx-1] != old1 || vbitmap[vy][vx-1] != old2 || vbitmap[vy-1][vx] != old3 {
						changed = true
					}
				case 3:
					old1, old2, old3 := vbitmap[vy-1][vx-1], vbitmap[vy][vx-1], vbitmap[vy-1][vx]
					vbitmap[vy-1][vx-1] &= ^0xA
					if vy < h {
						vbitmap[vy][vx-1] &= ^0x1
					}
					if vx < w {
						vbitmap[vy-1][vx] &= ^0x4
					}
					if vbitmap[vy-1][vx-1] != old1 || vbitmap[vy][vx-1] != old2 || vbitmap[vy-1][vx] != old3 {
						changed = true
					}
				case 2:
					oldTL, oldBL, oldTR := vbitmap[vy-1][vx-1], vbitmap[vy][vx-1], vbitmap[vy-1][vx]
					if vy < h {
						top := vbitmap[vy-1][vx-1] & 0x3
						bot := vbitmap[vy][vx-1] & 0x3
						vbitmap[vy-1][vx-1] &= ^(0x3 ^ bot)
						vbitmap[vy][vx-1] &= ^(0x3 ^ top)
					}
					if vx < w {
						left := vbitmap[vy-1][vx-1] & 0xC
						right := vbitmap[vy-1][vx] & 0xC
						vbitmap[vy-1][vx-1] &= ^(0xC ^ right)
						vbitmap[vy-1][vx] &= ^(0xC ^ left)
					}
					if vbitmap[vy-1][vx-1] != oldTL || vbitmap[vy][vx-1] != oldBL || vbitmap[vy-1][vx] != oldTR {
						changed = true
					}
				}
			}
		}

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := b.GetCell(x, y)
				if x+1 < w && vbitmap[y][x]&0x3 == 0 {
					if b.MarkCellsEquivalent(c, b.GetCell(x+1, y)) {
						madeProgress, changed = true, true
					}
				}
				if y+1 < h && vbitmap[y][x]&0xC == 0 {
					if b.MarkCellsEquivalent(c, b.GetCell(x, y+1)) {
						madeProgress, changed = true, true
					}
				}
			}
		}
	}

	return madeProgress
}

// ruleSimonUnified is a three-phase fixpoint that re-derives, in a
// single rule, most of the deductions the rest of the library makes
// separately: clue completion with on-the-fly equivalence tracking
// (phase 1), loop and dead-end avoidance informed by equivalence
// classes (phase 2), and v-bitmap propagation (phase 3). It restarts
// at phase 1 after any phase makes progress.
//
// This duplicates the rest of the rule library by design, mirroring
// the single do-everything solver loop it's modeled on; it is not a
// refactoring target, since the two implementations are independently
// useful cross-checks on each other during development.
func ruleSimonUnified(b *Board) bool {
	w, h := b.Width, b.Height
	W, H := w+1, h+1
	madeProgress := false
	doneSomething := true

	for doneSomething {
		doneSomething = false

		// Phase 1: clue completion with equivalence tracking.
		for vy := 0; vy < H; vy++ {
			for vx := 0; vx < W; vx++ {
				v := b.GetVertex(vx, vy)
				if v == nil || !v.HasClue {
					continue
				}
				c := v.Clue

				type neighborInfo struct {
					cell      *Cell
					slashType Value
				}
				var neighbours []neighborInfo
				if vx > 0 && vy > 0 {
					neighbours = append(neighbours, neighborInfo{b.GetCell(vx-1, vy-1), Backslash})
				}
				if vx > 0 && vy < h {
					neighbours = append(neighbours, neighborInfo{b.GetCell(vx-1, vy), Slash})
				}
				if vx < w && vy < h {
					neighbours = append(neighbours, neighborInfo{b.GetCell(vx, vy), Backslash})
				}
				if vx < w && vy > 0 {
					neighbours = append(neighbours, neighborInfo{b.GetCell(vx, vy-1), Slash})
				}
				if len(neighbours) == 0 {
					continue
				}

				n := len(neighbours)
				nu := 0
				nl := c

				lastCell := neighbours[n-1].cell
				lastEq := -1
				if lastCell.Value == Unknown {
					lastEq = b.GetCellEquivRoot(lastCell)
				}

				meq := -1
				var mj1, mj2 *Cell

				for i := 0; i < n; i++ {
					cell := neighbours[i].cell
					slashType := neighbours[i].slashType
					if cell.Value == Unknown {
						nu++
						if meq < 0 {
							eq := b.GetCellEquivRoot(cell)
							if eq == lastEq && lastCell != cell {
								meq = eq
								mj1, mj2 = lastCell, cell
								nl--
								nu -= 2
							} else {
								lastEq = eq
							}
						}
					} else {
						lastEq = -1
						if cell.Value == slashType {
							nl--
						}
					}
					lastCell = cell
				}

				if nl < 0 || nl > nu {
					continue
				}

				if nu > 0 && (nl == 0 || nl == nu) {
					for _, nb := range neighbours {
						if nb.cell == mj1 || nb.cell == mj2 {
							continue
						}
						if nb.cell.Value != Unknown {
							continue
						}
						value := nb.slashType
						if nl == 0 {
							value = Slash
							if nb.slashType == Slash {
								value = Backslash
							}
						}
						if placeIfNoLoop(b, nb.cell, value) {
							doneSomething, madeProgress = true, true
						}
					}
				} else if nu == 2 && nl == 1 {
					lastIdx := -1
					for i := 0; i < n; i++ {
						cell := neighbours[i].cell
						if cell.Value == Unknown && cell != mj1 && cell != mj2 {
							if lastIdx < 0 {
								lastIdx = i
							} else if lastIdx == i-1 || (lastIdx == 0 && i == n-1) {
								if b.MarkCellsEquivalent(neighbours[lastIdx].cell, neighbours[i].cell) {
									doneSomething, madeProgress = true, true
								}
								break
							}
						}
					}
				}
			}
		}

		if doneSomething {
			continue
		}

		// Phase 2: loop avoidance, dead-end avoidance, equivalence filling.
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := b.GetCell(x, y)
				if c.Value != Unknown {
					continue
				}

				forceSlash, forceBackslash := false, false
				switch b.GetEquivalenceClassValue(c) {
				case Slash:
					forceSlash = true
				case Backslash:
					forceBackslash = true
				}

				if b.GetVertexRoot(x, y) == b.GetVertexRoot(x+1, y+1) {
					forceSlash = true
				}
				if !forceSlash {
					if !b.GetVertexGroupBorder(x, y) && !b.GetVertexGroupBorder(x+1, y+1) &&
						b.GetVertexGroupExits(x, y) <= 1 && b.GetVertexGroupExits(x+1, y+1) <= 1 {
						forceSlash = true
					}
				}

				if b.GetVertexRoot(x+1, y) == b.GetVertexRoot(x, y+1) {
					forceBackslash = true
				}
				if !forceBackslash {
					if !b.GetVertexGroupBorder(x+1, y) && !b.GetVertexGroupBorder(x, y+1) &&
						b.GetVertexGroupExits(x+1, y) <= 1 && b.GetVertexGroupExits(x, y+1) <= 1 {
						forceBackslash = true
					}
				}

				if forceSlash && forceBackslash {
					continue
				}
				if forceSlash {
					b.PlaceValue(c, Slash)
					doneSomething, madeProgress = true, true
				} else if forceBackslash {
					b.PlaceValue(c, Backslash)
					doneSomething, madeProgress = true, true
				}
			}
		}

		if doneSomething {
			continue
		}

		// Phase 3: v-bitmap propagation on the board's real bitmap.
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := b.GetCell(x, y)
				s := c.Value

				if s != Unknown {
					if x > 0 {
						bits := 0x1
						if s == Slash {
							bits = 0x2
						}
						if b.VBitmapClear(b.GetCell(x-1, y), bits) {
							doneSomething, madeProgress = true, true
						}
					}
					if x+1 < w {
						bits := 0x2
						if s == Slash {
							bits = 0x1
						}
						if b.VBitmapClear(c, bits) {
							doneSomething, madeProgress = true, true
						}
					}
					if y > 0 {
						bits := 0x4
						if s == Slash {
							bits = 0x8
						}
						if b.VBitmapClear(b.GetCell(x, y-1), bits) {
							doneSomething, madeProgress = true, true
						}
					}
					if y+1 < h {
						bits := 0x8
						if s == Slash {
							bits = 0x4
						}
						if b.VBitmapClear(c, bits) {
							doneSomething, madeProgress = true, true
						}
					}
				}

				if x+1 < w && b.VBitmapGet(c)&0x3 == 0 {
					if b.MarkCellsEquivalent(c, b.GetCell(x+1, y)) {
						doneSomething, madeProgress = true, true
					}
				}
				if y+1 < h && b.VBitmapGet(c)&0xC == 0 {
					if b.MarkCellsEquivalent(c, b.GetCell(x, y+1)) {
						doneSomething, madeProgress = true, true
					}
				}
			}
		}

		for vy := 1; vy < H-1; vy++ {
			for vx := 1; vx < W-1; vx++ {
				v := b.GetVertex(vx, vy)
				if v == nil || !v.HasClue {
					continue
				}
				tl, bl, tr := b.GetCell(vx-1, vy-1), b.GetCell(vx-1, vy), b.GetCell(vx, vy-1)
				switch v.Clue {
				case 1:
					if b.VBitmapClear(tl, 0x5) {
						doneSomething, madeProgress = true, true
					}
					if b.VBitmapClear(bl, 0x2) {
						doneSomething, madeProgress = true, true
					}
					if b.VBitmapClear(tr, 0x8) {
						doneSomething, madeProgress = true, true
					}
				case 3:
					if b.VBitmapClear(tl, 0xA) {
						doneSomething, madeProgress = true, true
					}
					if b.VBitmapClear(bl, 0x1) {
						doneSomething, madeProgress = true, true
					}
					if b.VBitmapClear(tr, 0x4) {
						doneSomething, madeProgress = true, true
					}
				case 2:
					tlH, blH := b.VBitmapGet(tl)&0x3, b.VBitmapGet(bl)&0x3
					if b.VBitmapClear(tl, 0x3^blH) {
						doneSomething, madeProgress = true, true
					}
					if b.VBitmapClear(bl, 0x3^tlH) {
						doneSomething, madeProgress = true, true
					}
					tlV, trV := b.VBitmapGet(tl)&0xC, b.VBitmapGet(tr)&0xC
					if b.VBitmapClear(tl, 0xC^trV) {
						doneSomething, madeProgress = true, true
					}
					if b.VBitmapClear(tr, 0xC^tlV) {
						doneSomething, madeProgress = true, true
					}
				}
			}
		}
	}

	return madeProgress
}
