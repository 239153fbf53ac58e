package game

import (
	"fmt"

	"abalone/hex"
)

type StandardRules struct {
	BoardSide int
	Captures  int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		BoardSide: 5,
		Captures:  6,
	}
}

func (sr *StandardRules) Side() int {
	return sr.BoardSide
}

func (sr *StandardRules) CapturesToWin() int {
	return sr.Captures
}

func (sr *StandardRules) Setup(b *Board) error {
	return StandardLayout(b)
}

// StandardLayout places the classic opening: Black fills the two rows at the
// negative-z edge and the middle three cells of the third row, White mirrors
// it through the centre.
func StandardLayout(b *Board) error {
	n := b.Side()
	if n < 4 {
		return fmt.Errorf("standard layout needs a side of at least 4, got %d", n)
	}
	for _, c := range b.Cells() {
		if c.Z == -(n-1) || c.Z == -(n-2) {
			b.put(c, Black)
			b.put(c.Neg(), White)
		}
	}
	// Row z = -(n-3) spans x = -2 .. n-1.
	mid := (n - 3) / 2
	for x := mid - 1; x <= mid+1; x++ {
		c := hex.New(x, n-3-x)
		b.put(c, Black)
		b.put(c.Neg(), White)
	}
	return nil
}
