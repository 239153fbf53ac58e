// Package hex implements cube coordinates on a hexagonal grid.
//
// A Cord holds three components. Board positions satisfy X+Y+Z == 0; directions
// and deltas reuse the same type and only need to satisfy it when they are
// meant to be steps along the grid.
package hex

import "fmt"

// Cord is a cube coordinate, a direction or a delta between two coordinates.
type Cord struct {
	X, Y, Z int
}

// Directions are the six unit steps, counter-clockwise starting at +X.
var Directions = [6]Cord{
	{1, 0, -1}, {1, -1, 0}, {0, -1, 1},
	{-1, 0, 1}, {-1, 1, 0}, {0, 1, -1},
}

// New returns the position (x, y, -x-y).
func New(x, y int) Cord {
	return Cord{X: x, Y: y, Z: -x - y}
}

func (c Cord) Add(o Cord) Cord {
	return Cord{c.X + o.X, c.Y + o.Y, c.Z + o.Z}
}

func (c Cord) Sub(o Cord) Cord {
	return Cord{c.X - o.X, c.Y - o.Y, c.Z - o.Z}
}

func (c Cord) Neg() Cord {
	return Cord{-c.X, -c.Y, -c.Z}
}

func (c Cord) Scale(k int) Cord {
	return Cord{c.X * k, c.Y * k, c.Z * k}
}

// Valid reports whether the components sum to zero.
func (c Cord) Valid() bool {
	return c.X+c.Y+c.Z == 0
}

// Size is the length of c in grid steps.
func (c Cord) Size() int {
	return (abs(c.X) + abs(c.Y) + abs(c.Z)) / 2
}

// IsUnit reports whether c is one of the six Directions.
func (c Cord) IsUnit() bool {
	return c.Valid() && c.Size() == 1
}

// IsCollinear reports whether o lies on one of the six axes through c.
func (c Cord) IsCollinear(o Cord) bool {
	d := o.Sub(c)
	if !d.Valid() {
		return false
	}
	return d.X == 0 || d.Y == 0 || d.Z == 0
}

// Distance is the hex distance between c and o.
func (c Cord) Distance(o Cord) int {
	return o.Sub(c).Size()
}

// Dir returns the unit step leading from c towards o. It fails when the two
// coordinates are equal or not collinear.
func (c Cord) Dir(o Cord) (Cord, bool) {
	if c == o || !c.IsCollinear(o) {
		return Cord{}, false
	}
	d := o.Sub(c)
	n := d.Size()
	return Cord{d.X / n, d.Y / n, d.Z / n}, true
}

// Line returns every coordinate from c to o inclusive, or nil when they are not
// collinear.
func (c Cord) Line(o Cord) []Cord {
	if c == o {
		return []Cord{c}
	}
	dir, ok := c.Dir(o)
	if !ok {
		return nil
	}
	n := c.Distance(o)
	out := make([]Cord, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, c.Add(dir.Scale(i)))
	}
	return out
}

func (c Cord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
