package engine

import (
	"abalone/game"
	"abalone/hex"
)

// Engine is the surface a session uses to drive one game.
type Engine interface {
	// Play applies a move submitted by a client.
	Play(game.Move) error
	// Get returns the stone at c.
	Get(c hex.Cord) (game.Stone, error)
	// Snapshot exports the whole board for broadcasting.
	Snapshot() [][]game.Stone
	// Subscribe returns a channel receiving every accepted move. It is closed
	// when the game ends.
	Subscribe() <-chan Update
}
