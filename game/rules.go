package game

import "abalone/hex"

// LegalMoves returns every move the player could make on b. Each selection is
// listed once, named from the end closest to the origin of its axis, with all
// six directions tried against it.
func LegalMoves(b *Board, player Player) []Move {
	own := player.Stone()
	var moves []Move
	for _, from := range b.Cells() {
		if b.at(from) != own {
			continue
		}
		for _, to := range selections(b, from, own) {
			for _, dir := range hex.Directions {
				m := Move{Player: player, From: from, To: to, Dir: dir}
				if _, err := Apply(b.Clone(), m); err == nil {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

// selections lists the far ends of every line of own stones that starts at
// from and runs along one of the first three directions.
func selections(b *Board, from hex.Cord, own Stone) []hex.Cord {
	out := []hex.Cord{from}
	for _, d := range hex.Directions[:3] {
		for k := 1; k < MaxSelection; k++ {
			to := from.Add(d.Scale(k))
			if !b.Contains(to) || b.at(to) != own {
				break
			}
			out = append(out, to)
		}
	}
	return out
}
