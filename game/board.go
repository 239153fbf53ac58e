package game

import (
	"fmt"
	"strings"

	"abalone/hex"
)

// Board is a hexagon of cells with the given side length. A cell (x, y, z)
// exists when every component lies strictly between -side and side.
type Board struct {
	side  int
	cells [][]Stone // indexed by [x+side-1][y+side-1], z is implied
}

// NewBoard returns an empty board with the given side length.
func NewBoard(side int) (*Board, error) {
	if side < 1 {
		return nil, fmt.Errorf("board side must be at least 1, got %d", side)
	}
	width := 2*side - 1
	cells := make([][]Stone, width)
	for i := range cells {
		cells[i] = make([]Stone, width)
	}
	return &Board{side: side, cells: cells}, nil
}

func (b *Board) Side() int {
	return b.side
}

// Contains reports whether c is a position on the board.
func (b *Board) Contains(c hex.Cord) bool {
	if !c.Valid() {
		return false
	}
	return b.inRange(c.X) && b.inRange(c.Y) && b.inRange(c.Z)
}

func (b *Board) inRange(v int) bool {
	return v > -b.side && v < b.side
}

func (b *Board) index(c hex.Cord) (int, int) {
	return c.X + b.side - 1, c.Y + b.side - 1
}

// Get returns the stone at c.
func (b *Board) Get(c hex.Cord) (Stone, error) {
	if !b.Contains(c) {
		return Blank, fmt.Errorf("%w: %v is not on a board of side %d", ErrInvalidCoordinate, c, b.side)
	}
	i, j := b.index(c)
	return b.cells[i][j], nil
}

// Set overwrites the stone at c.
func (b *Board) Set(c hex.Cord, s Stone) error {
	if !b.Contains(c) {
		return fmt.Errorf("%w: %v is not on a board of side %d", ErrInvalidCoordinate, c, b.side)
	}
	i, j := b.index(c)
	b.cells[i][j] = s
	return nil
}

// at and put skip the bounds check; callers have already validated c.
func (b *Board) at(c hex.Cord) Stone {
	i, j := b.index(c)
	return b.cells[i][j]
}

func (b *Board) put(c hex.Cord, s Stone) {
	i, j := b.index(c)
	b.cells[i][j] = s
}

// RunFrom collects the stones starting at pos and stepping by dir until the
// first blank cell or the edge of the board.
func (b *Board) RunFrom(pos, dir hex.Cord) []Stone {
	var out []Stone
	for p := pos; b.Contains(p); p = p.Add(dir) {
		s := b.at(p)
		if s == Blank {
			break
		}
		out = append(out, s)
	}
	return out
}

// Between returns the stones on the straight line from one cell to another,
// both ends included.
func (b *Board) Between(from, to hex.Cord) ([]Stone, error) {
	if !b.Contains(from) || !b.Contains(to) {
		return nil, fmt.Errorf("%w: %v-%v leaves the board", ErrInvalidCoordinate, from, to)
	}
	if !from.IsCollinear(to) {
		return nil, fmt.Errorf("%w: %v and %v are not on a line", ErrInvalidCoordinate, from, to)
	}
	line := from.Line(to)
	out := make([]Stone, len(line))
	for i, c := range line {
		out[i] = b.at(c)
	}
	return out, nil
}

// Count returns the number of cells holding s.
func (b *Board) Count(s Stone) int {
	n := 0
	for _, row := range b.cells {
		for _, v := range row {
			if v == s {
				n++
			}
		}
	}
	return n
}

// Snapshot returns a copy of the raw grid, indexed like the internal storage.
// Slots that do not map to a board cell are always Blank.
func (b *Board) Snapshot() [][]Stone {
	out := make([][]Stone, len(b.cells))
	for i, row := range b.cells {
		out[i] = append([]Stone(nil), row...)
	}
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{side: b.side, cells: b.Snapshot()}
}

// Cells returns every position on the board, row by row.
func (b *Board) Cells() []hex.Cord {
	var out []hex.Cord
	for z := -b.side + 1; z < b.side; z++ {
		for x := -b.side + 1; x < b.side; x++ {
			c := hex.Cord{X: x, Y: -x - z, Z: z}
			if b.Contains(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// String draws the board one z-row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for z := -b.side + 1; z < b.side; z++ {
		sb.WriteString(strings.Repeat(" ", abs(z)))
		first := true
		for x := -b.side + 1; x < b.side; x++ {
			c := hex.Cord{X: x, Y: -x - z, Z: z}
			if !b.Contains(c) {
				continue
			}
			if !first {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.at(c).String())
			first = false
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
