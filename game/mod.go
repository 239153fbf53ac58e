// Package game implements the rules engine: stones, the hexagonal board and
// the move engine that validates and performs moves on it.
//
// Nothing in this package is safe for concurrent use. A Board must only ever
// have one move applied to it at a time; separate boards share no state.
package game

// Rules are the parameters a game is played under.
type Rules interface {
	Side() int
	CapturesToWin() int
	// Setup places the opening position on an empty board.
	Setup(b *Board) error
}
