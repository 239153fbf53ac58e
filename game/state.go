package game

import "fmt"

// State is a game in progress: the board plus the stones each side has lost.
type State struct {
	Board *Board
	Rules Rules
	Lost  map[Player]int // stones pushed off the board, per owner
	Won   Player         // zero while nobody has won
}

// NewState builds the board for rules and places the opening position.
func NewState(rules Rules) (*State, error) {
	b, err := NewBoard(rules.Side())
	if err != nil {
		return nil, err
	}
	if err := rules.Setup(b); err != nil {
		return nil, fmt.Errorf("failed to set up board: %w", err)
	}
	return &State{
		Board: b,
		Rules: rules,
		Lost:  map[Player]int{BlackPlayer: 0, WhitePlayer: 0},
	}, nil
}

// Play applies m to the board and updates the tallies. Moves are rejected once
// the game has a winner.
func (s *State) Play(m Move) (Outcome, error) {
	if s.Won != 0 {
		return Outcome{}, fmt.Errorf("%w: game already won by %s", ErrInvalidMove, s.Won)
	}
	out, err := Apply(s.Board, m)
	if err != nil {
		return Outcome{}, err
	}
	for _, stone := range out.Ejected {
		owner, _ := Owner(stone)
		s.Lost[owner]++
	}
	for _, p := range []Player{m.Player.Opponent(), m.Player} {
		if s.Lost[p] >= s.Rules.CapturesToWin() {
			s.Won = p.Opponent()
			break
		}
	}
	return out, nil
}

// Winner returns the winning player, if any.
func (s *State) Winner() (Player, bool) {
	return s.Won, s.Won != 0
}

func (s *State) Copy() *State {
	lost := make(map[Player]int, len(s.Lost))
	for k, v := range s.Lost {
		lost[k] = v
	}
	return &State{
		Board: s.Board.Clone(),
		Rules: s.Rules,
		Lost:  lost,
		Won:   s.Won,
	}
}
