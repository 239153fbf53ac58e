package game

// Stone is the content of a single board cell.
type Stone int

const (
	Blank Stone = iota
	Black
	White
)

func (s Stone) String() string {
	switch s {
	case Black:
		return "B"
	case White:
		return "W"
	default:
		return "O"
	}
}

// Player is one of the two sides. Each player owns exactly one stone colour.
type Player int

const (
	BlackPlayer Player = iota + 1
	WhitePlayer
)

// Stone returns the stone the player places on the board.
func (p Player) Stone() Stone {
	if p == WhitePlayer {
		return White
	}
	return Black
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == WhitePlayer {
		return BlackPlayer
	}
	return WhitePlayer
}

func (p Player) String() string {
	if p == WhitePlayer {
		return "white"
	}
	return "black"
}

// Owner returns the player owning s; ok is false for Blank.
func Owner(s Stone) (p Player, ok bool) {
	switch s {
	case Black:
		return BlackPlayer, true
	case White:
		return WhitePlayer, true
	}
	return 0, false
}
