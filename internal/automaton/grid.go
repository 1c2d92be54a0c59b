package automaton

import "math/bits"

// Row selectors for Get and Set.
const (
	Previous = 0
	Current  = 1
)

const cellsPerByte = 8

// Grid holds the previous and current generations of a fixed-width row,
// packed eight cells per byte with the leftmost cell in the high bit.
//
// Each generation is a two-step cycle: Advance fills the current row from the
// previous one, then Commit moves current into previous and clears current.
type Grid struct {
	width      int
	rule       RuleTable
	rows       [2][]byte
	generation uint64
}

// NewGrid allocates a grid with both rows dead.
func NewGrid(width int, rule RuleTable) (*Grid, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}
	n := (width-1)/cellsPerByte + 1
	return &Grid{
		width: width,
		rule:  rule,
		rows:  [2][]byte{make([]byte, n), make([]byte, n)},
	}, nil
}

// Width returns the number of cells per row.
func (g *Grid) Width() int { return g.width }

// Rule returns the rule table driving the transition.
func (g *Grid) Rule() RuleTable { return g.rule }

// Generation is the number of completed Commit calls. It wraps at 2^64.
func (g *Grid) Generation() uint64 { return g.generation }

func (g *Grid) inRange(x, y int) bool {
	return x >= 0 && x < g.width && (y == Previous || y == Current)
}

func locate(x int) (int, byte) {
	return x / cellsPerByte, 0x80 >> uint(x%cellsPerByte)
}

// Get returns the cell at (x, y). Anything outside the grid reads as dead.
func (g *Grid) Get(x, y int) uint8 {
	if !g.inRange(x, y) {
		return 0
	}
	i, mask := locate(x)
	if g.rows[y][i]&mask != 0 {
		return 1
	}
	return 0
}

// Set marks the cell at (x, y) alive. Out of range writes are ignored.
func (g *Grid) Set(x, y int) {
	if !g.inRange(x, y) {
		return
	}
	i, mask := locate(x)
	g.rows[y][i] |= mask
}

// Seed marks cell x of the previous row alive.
func (g *Grid) Seed(x int) { g.Set(x, Previous) }

// Neighborhood packs the previous-row cells at x-1, x and x+1 into a pattern
// with the left neighbor in the most significant bit.
func (g *Grid) Neighborhood(x int) int {
	return int(g.Get(x-1, Previous))<<2 |
		int(g.Get(x, Previous))<<1 |
		int(g.Get(x+1, Previous))
}

// Advance computes the current row from the previous row. It reads only the
// previous row and writes only the current row.
func (g *Grid) Advance() {
	for x := 0; x < g.width; x++ {
		if g.rule.lookup(g.Neighborhood(x)) == 1 {
			g.Set(x, Current)
		}
	}
}

// Commit makes the current row the previous one and clears current.
func (g *Grid) Commit() {
	copy(g.rows[Previous], g.rows[Current])
	clear(g.rows[Current])
	g.generation++
}

// RenderRow returns the current row as one 0/1 value per cell.
func (g *Grid) RenderRow() []uint8 { return g.row(Current) }

// PreviousRow returns the previous row as one 0/1 value per cell.
func (g *Grid) PreviousRow() []uint8 { return g.row(Previous) }

func (g *Grid) row(y int) []uint8 {
	cells := make([]uint8, g.width)
	for x := range cells {
		cells[x] = g.Get(x, y)
	}
	return cells
}

// Population counts live cells in row y.
func (g *Grid) Population(y int) int {
	if y != Previous && y != Current {
		return 0
	}
	n := 0
	for _, b := range g.rows[y] {
		n += bits.OnesCount8(b)
	}
	return n
}

// Reset clears both rows and the generation counter.
func (g *Grid) Reset() {
	clear(g.rows[Previous])
	clear(g.rows[Current])
	g.generation = 0
}
