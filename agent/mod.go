package agent

import (
	"abalone/game"

	"golang.org/x/exp/rand"
)

// Agent picks the next move for a player.
type Agent interface {
	FindMove(s *game.State, player game.Player) (game.Move, bool)
}

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// FindMove returns false when the player has no legal move.
func (r *Random) FindMove(s *game.State, player game.Player) (game.Move, bool) {
	moves := game.LegalMoves(s.Board, player)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[r.rng.Intn(len(moves))], true
}
