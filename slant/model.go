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

// A Board is a Slants puzzle in progress: its cells, its vertices,
// and all the incremental state the rule library and search use to
// avoid recomputing connectivity facts from scratch on every call.
type Board struct {
	Width, Height int
	Cells         []*Cell
	Vertices      []*Vertex

	// Union-find over vertices, for loop detection.
	parent []int
	rank   []int

	// Exits (remaining diagonals a vertex group can still accept)
	// and border (does the group touch the board edge) aggregates,
	// indexed by vertex union-find root.
	exits  []int
	border []bool

	// Union-find over cells, for cells known to share a value.
	equivParent []int
	equivRank   []int
	slashval    []Value // assigned value for an equivalence root, or Unknown

	// Per-cell bitmap of which of the 4 "V-shape" pairings with a
	// neighbor remain possible: bits 0x3 cover the pairing with the
	// right-hand neighbor, bits 0xC the pairing with the neighbor below.
	vbitmap []int
}

// NewBoard decodes givensString into a Width x Height board.  The
// givens string must decode to exactly (Width+1)*(Height+1) vertex
// entries; see DecodeGivens.
func NewBoard(width, height int, givensString string) (*Board, error) {
	b := &Board{Width: width, Height: height}

	b.Cells = make([]*Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b.Cells[y*width+x] = &Cell{X: x, Y: y, Value: Unknown}
		}
	}

	clues, err := DecodeGivens(givensString)
	if err != nil {
		return nil, err
	}
	expected := (width + 1) * (height + 1)
	if len(clues) != expected {
		return nil, Error{
			Scope:     GivensScope,
			Structure: ScopeStructure,
			Condition: WrongVertexCountCondition,
			Values:    ErrorData{len(clues), expected},
		}
	}

	b.Vertices = make([]*Vertex, expected)
	for i, clue := range clues {
		vx := i % (width + 1)
		vy := i / (width + 1)
		b.Vertices[i] = &Vertex{VX: vx, VY: vy, Clue: clue, HasClue: clue >= 0}
	}

	b.initUnionFind()
	b.initEquivalence()
	b.initVBitmap()
	b.initExitsBorder()

	return b, nil
}

func (b *Board) initUnionFind() {
	n := (b.Width + 1) * (b.Height + 1)
	b.parent = make([]int, n)
	b.rank = make([]int, n)
	for i := 0; i < n; i++ {
		b.parent[i] = i
	}
}

func (b *Board) initEquivalence() {
	n := b.Width * b.Height
	b.equivParent = make([]int, n)
	b.equivRank = make([]int, n)
	b.slashval = make([]Value, n)
	for i := 0; i < n; i++ {
		b.equivParent[i] = i
	}
}

func (b *Board) initVBitmap() {
	n := b.Width * b.Height
	b.vbitmap = make([]int, n)
	for i := 0; i < n; i++ {
		b.vbitmap[i] = 0xF
	}
}

func (b *Board) initExitsBorder() {
	W, H := b.Width+1, b.Height+1
	b.exits = make([]int, W*H)
	b.border = make([]bool, W*H)
	for vy := 0; vy < H; vy++ {
		for vx := 0; vx < W; vx++ {
			idx := vy*W + vx
			if vy == 0 || vy == H-1 || vx == 0 || vx == W-1 {
				b.border[idx] = true
			}
			v := b.GetVertex(vx, vy)
			if v.HasClue {
				b.exits[idx] = v.Clue
			} else {
				b.exits[idx] = 4
			}
		}
	}
}

// GetCell returns the cell at (x, y), or nil if out of bounds.
func (b *Board) GetCell(x, y int) *Cell {
	if x >= 0 && x < b.Width && y >= 0 && y < b.Height {
		return b.Cells[y*b.Width+x]
	}
	return nil
}

// GetVertex returns the vertex at (vx, vy), or nil if out of bounds.
func (b *Board) GetVertex(vx, vy int) *Vertex {
	if vx >= 0 && vx <= b.Width && vy >= 0 && vy <= b.Height {
		return b.Vertices[vy*(b.Width+1)+vx]
	}
	return nil
}

// GetCluedVertices returns every vertex that carries a clue.
func (b *Board) GetCluedVertices() []*Vertex {
	var result []*Vertex
	for _, v := range b.Vertices {
		if v.HasClue {
			result = append(result, v)
		}
	}
	return result
}

// GetUnknownCells returns every cell that has not yet been assigned.
func (b *Board) GetUnknownCells() []*Cell {
	var result []*Cell
	for _, c := range b.Cells {
		if c.Value == Unknown {
			result = append(result, c)
		}
	}
	return result
}

// GetCellCorners returns a cell's four corner vertices, in
// top-left, top-right, bottom-left, bottom-right order.
func (b *Board) GetCellCorners(c *Cell) (tl, tr, bl, br *Vertex) {
	return b.GetVertex(c.X, c.Y), b.GetVertex(c.X+1, c.Y),
		b.GetVertex(c.X, c.Y+1), b.GetVertex(c.X+1, c.Y+1)
}

// GetAdjacentCellsForVertex returns the (up to four) cells touching
// vertex, tagged with which of their two diagonal values would touch
// it.
func (b *Board) GetAdjacentCellsForVertex(v *Vertex) []adjacency {
	vx, vy := v.VX, v.VY
	var adj []adjacency
	if c := b.GetCell(vx-1, vy-1); c != nil { // vertex is its bottom-right corner
		adj = append(adj, adjacency{c, false, true})
	}
	if c := b.GetCell(vx, vy-1); c != nil { // vertex is its bottom-left corner
		adj = append(adj, adjacency{c, true, false})
	}
	if c := b.GetCell(vx-1, vy); c != nil { // vertex is its top-right corner
		adj = append(adj, adjacency{c, true, false})
	}
	if c := b.GetCell(vx, vy); c != nil { // vertex is its top-left corner
		adj = append(adj, adjacency{c, false, true})
	}
	return adj
}

// CountTouches returns how many diagonals currently touch v, and how
// many of its adjacent cells are still Unknown.
func (b *Board) CountTouches(v *Vertex) (current, unknown int) {
	for _, adj := range b.GetAdjacentCellsForVertex(v) {
		if adj.cell.Value == Unknown {
			unknown++
		} else if adj.touches() {
			current++
		}
	}
	return current, unknown
}

// WouldFormLoop reports whether assigning value to cell would connect
// two vertices already in the same connected group, closing a loop.
func (b *Board) WouldFormLoop(c *Cell, value Value) bool {
	v1, v2 := b.diagonalVertices(c, value)
	return b.find(v1) == b.find(v2)
}

// diagonalVertices returns the indices of the two vertices that value
// would connect if assigned to c.
func (b *Board) diagonalVertices(c *Cell, value Value) (v1, v2 int) {
	x, y := c.X, c.Y
	if value == Slash {
		return b.vertexIndex(x, y+1), b.vertexIndex(x+1, y)
	}
	return b.vertexIndex(x, y), b.vertexIndex(x+1, y+1)
}

// PlaceValue assigns value to cell, merging the vertex group the
// diagonal connects and decrementing the exits of the two corners it
// does not touch.  It is a no-op returning nil if the cell already
// holds any value (the same or a different one), and returns an Error
// if the assignment would close a loop.
func (b *Board) PlaceValue(c *Cell, value Value) error {
	if c.Value != Unknown {
		// Already assigned: a silent no-op, matching every rule in
		// this package, which only ever calls PlaceValue on cells it
		// has just pulled from GetUnknownCells.
		return nil
	}

	x, y := c.X, c.Y
	var nonV1X, nonV1Y, nonV2X, nonV2Y int
	v1, v2 := b.diagonalVertices(c, value)
	if value == Slash {
		nonV1X, nonV1Y = x, y
		nonV2X, nonV2Y = x+1, y+1
	} else {
		nonV1X, nonV1Y = x+1, y
		nonV2X, nonV2Y = x, y+1
	}

	if !b.union(v1, v2) {
		return Error{
			Scope:     BoardScope,
			Structure: ScopeStructure,
			Condition: LoopWouldFormCondition,
			Values:    ErrorData{value, *c},
		}
	}

	b.decrExits(nonV1X, nonV1Y)
	b.decrExits(nonV2X, nonV2Y)
	c.Value = value

	root := b.equivFind(b.cellIndex(c))
	b.slashval[root] = value

	return nil
}

// decrExits lowers the exits count of the vertex group containing
// (vx, vy) by one, unless that vertex carries a clue (clued vertices
// have a fixed exits count equal to their clue, set once at init).
func (b *Board) decrExits(vx, vy int) {
	v := b.GetVertex(vx, vy)
	if v.HasClue {
		return
	}
	root := b.find(b.vertexIndex(vx, vy))
	b.exits[root]--
}

// IsSolved reports whether every cell has been assigned.
func (b *Board) IsSolved() bool {
	for _, c := range b.Cells {
		if c.Value == Unknown {
			return false
		}
	}
	return true
}

// IsValid reports whether no clued vertex has been overshot by more
// diagonals than its clue allows.  It does not require the board to
// be fully assigned.
func (b *Board) IsValid() bool {
	for _, v := range b.Vertices {
		if v.HasClue {
			current, _ := b.CountTouches(v)
			if current > v.Clue {
				return false
			}
		}
	}
	return true
}

// IsValidSolution reports whether the board is solved and every
// clued vertex has exactly its clue's count of touching diagonals.
func (b *Board) IsValidSolution() bool {
	if !b.IsSolved() {
		return false
	}
	for _, v := range b.Vertices {
		if v.HasClue {
			current, _ := b.CountTouches(v)
			if current != v.Clue {
				return false
			}
		}
	}
	return true
}

// GetCellEquivRoot returns the equivalence-class root index for c.
func (b *Board) GetCellEquivRoot(c *Cell) int {
	return b.equivFind(b.cellIndex(c))
}

// MarkCellsEquivalent records that cell1 and cell2 must eventually
// hold the same value.  It reports false, making no change, if the
// cells are already in the same class or if their classes have
// conflicting known values.
func (b *Board) MarkCellsEquivalent(cell1, cell2 *Cell) bool {
	r1 := b.equivFind(b.cellIndex(cell1))
	r2 := b.equivFind(b.cellIndex(cell2))
	if r1 == r2 {
		return false
	}
	sv1, sv2 := b.slashval[r1], b.slashval[r2]
	if sv1 != Unknown && sv2 != Unknown && sv1 != sv2 {
		return false
	}
	merged := sv1
	if merged == Unknown {
		merged = sv2
	}
	if b.equivRank[r1] < b.equivRank[r2] {
		r1, r2 = r2, r1
	}
	b.equivParent[r2] = r1
	if b.equivRank[r1] == b.equivRank[r2] {
		b.equivRank[r1]++
	}
	b.slashval[r1] = merged
	return true
}

// GetEquivalenceClassValue returns the value known for cell's
// equivalence class, or Unknown if the class has no known value yet.
func (b *Board) GetEquivalenceClassValue(c *Cell) Value {
	root := b.equivFind(b.cellIndex(c))
	return b.slashval[root]
}

// GetVertexRoot returns the union-find root of the vertex group
// containing (vx, vy).
func (b *Board) GetVertexRoot(vx, vy int) int {
	return b.find(b.vertexIndex(vx, vy))
}

// GetVertexGroupExits returns the remaining-exits count of the
// vertex group containing (vx, vy).
func (b *Board) GetVertexGroupExits(vx, vy int) int {
	return b.exits[b.GetVertexRoot(vx, vy)]
}

// GetVertexGroupBorder reports whether the vertex group containing
// (vx, vy) includes a board-edge vertex.
func (b *Board) GetVertexGroupBorder(vx, vy int) bool {
	return b.border[b.GetVertexRoot(vx, vy)]
}

// VBitmapGet returns the current v-shape bitmap for c.
func (b *Board) VBitmapGet(c *Cell) int {
	return b.vbitmap[b.cellIndex(c)]
}

// VBitmapClear clears bits from c's v-shape bitmap, reporting true
// if any bit actually changed.
func (b *Board) VBitmapClear(c *Cell, bits int) bool {
	idx := b.cellIndex(c)
	old := b.vbitmap[idx]
	next := old &^ bits
	if next == old {
		return false
	}
	b.vbitmap[idx] = next
	return true
}

// BoardState is an opaque snapshot of everything PlaceValue and the
// rule library mutate, for use by the branching search.
type BoardState struct {
	cellValues  []Value
	parent      []int
	rank        []int
	exits       []int
	border      []bool
	equivParent []int
	equivRank   []int
	slashval    []Value
	vbitmap     []int
}

// SaveState captures the board's current mutable state.
func (b *Board) SaveState() *BoardState {
	s := &BoardState{
		cellValues:  make([]Value, len(b.Cells)),
		parent:      make([]int, len(b.parent)),
		rank:        make([]int, len(b.rank)),
		exits:       make([]int, len(b.exits)),
		border:      make([]bool, len(b.border)),
		equivParent: make([]int, len(b.equivParent)),
		equivRank:   make([]int, len(b.equivRank)),
		slashval:    make([]Value, len(b.slashval)),
		vbitmap:     make([]int, len(b.vbitmap)),
	}
	for i, c := range b.Cells {
		s.cellValues[i] = c.Value
	}
	copy(s.parent, b.parent)
	copy(s.rank, b.rank)
	copy(s.exits, b.exits)
	copy(s.border, b.border)
	copy(s.equivParent, b.equivParent)
	copy(s.equivRank, b.equivRank)
	copy(s.slashval, b.slashval)
	copy(s.vbitmap, b.vbitmap)
	return s
}

// RestoreState resets the board to a previously captured snapshot.
func (b *Board) RestoreState(s *BoardState) {
	for i, c := range b.Cells {
		c.Value = s.cellValues[i]
	}
	copy(b.parent, s.parent)
	copy(b.rank, s.rank)
	copy(b.exits, s.exits)
	copy(b.border, s.border)
	copy(b.equivParent, s.equivParent)
	copy(b.equivRank, s.equivRank)
	copy(b.slashval, s.slashval)
	copy(b.vbitmap, s.vbitmap)
}
