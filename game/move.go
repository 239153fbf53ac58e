package game

import (
	"fmt"

	"abalone/hex"
)

// Move selects the stones From..To (one cell, or a line of up to three) and
// pushes them one step along Dir.
type Move struct {
	Player Player
	From   hex.Cord
	To     hex.Cord
	Dir    hex.Cord
}

func (m Move) String() string {
	return fmt.Sprintf("%s %v-%v dir %v", m.Player, m.From, m.To, m.Dir)
}

// MoveKind is the strategy a move is carried out with.
type MoveKind int

const (
	SingleMove MoveKind = iota + 1
	InlinePush
	SideStep
)

func (k MoveKind) String() string {
	switch k {
	case SingleMove:
		return "single"
	case InlinePush:
		return "inline"
	case SideStep:
		return "sidestep"
	}
	return "unknown"
}

// MaxSelection is the longest line of stones a player may select.
const MaxSelection = 3

// Outcome describes an accepted move.
type Outcome struct {
	Kind MoveKind
	// Ejected holds the stones pushed off the board, in no particular order.
	Ejected []Stone
}

// plan is a classified move: which strategy runs and where it starts.
type plan struct {
	kind   MoveKind
	origin hex.Cord
}

func classify(b *Board, m Move) (plan, error) {
	if !b.Contains(m.From) || !b.Contains(m.To) {
		return plan{}, fmt.Errorf("%w: selection %v-%v is not on the board", ErrInvalidCoordinate, m.From, m.To)
	}
	if !m.Dir.IsUnit() {
		return plan{}, fmt.Errorf("%w: %v is not a unit step", ErrInvalidDirection, m.Dir)
	}
	if m.From == m.To {
		return plan{kind: SingleMove, origin: m.From}, nil
	}
	if !m.From.IsCollinear(m.To) || m.From.Distance(m.To) > MaxSelection-1 {
		return plan{}, fmt.Errorf("%w: %v-%v is not a line of at most %d stones", ErrInvalidCoordinate, m.From, m.To, MaxSelection)
	}
	axis, _ := m.From.Dir(m.To)
	switch axis {
	case m.Dir:
		return plan{kind: InlinePush, origin: m.From}, nil
	case m.Dir.Neg():
		// Named back to front; the push always starts at the trailing stone.
		return plan{kind: InlinePush, origin: m.To}, nil
	default:
		return plan{kind: SideStep, origin: m.From}, nil
	}
}

// Apply validates m against b and, when legal, performs it. A rejected move
// leaves b untouched.
func Apply(b *Board, m Move) (Outcome, error) {
	p, err := classify(b, m)
	if err != nil {
		return Outcome{}, err
	}
	var ejected []Stone
	switch p.kind {
	case SingleMove:
		err = pushOne(b, m.Player, p.origin, m.Dir)
	case InlinePush:
		ejected, err = pushInline(b, m.Player, p.origin, m.Dir)
	case SideStep:
		ejected, err = pushSideways(b, m.Player, m.From, m.To, m.Dir)
	default:
		panic(fmt.Sprintf("unhandled move kind %d", p.kind))
	}
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Kind: p.kind, Ejected: ejected}, nil
}

func pushOne(b *Board, player Player, from, dir hex.Cord) error {
	if b.at(from) != player.Stone() {
		return fmt.Errorf("%w: %v does not hold a %s stone", ErrInvalidMove, from, player)
	}
	dest := from.Add(dir)
	if !b.Contains(dest) {
		return fmt.Errorf("%w: %v would leave the board", ErrInvalidMove, from)
	}
	if b.at(dest) != Blank {
		return fmt.Errorf("%w: %v is occupied", ErrInvalidMove, dest)
	}
	b.put(dest, player.Stone())
	b.put(from, Blank)
	return nil
}

// countRun splits an inline run into the mover's leading stones and the
// opposing stones behind them.
func countRun(player Player, stones []Stone) (mine, theirs int, err error) {
	if len(stones) == 0 || stones[0] != player.Stone() {
		return 0, 0, fmt.Errorf("%w: push must start with a %s stone", ErrInvalidMove, player)
	}
	opp := player.Opponent().Stone()
	for _, s := range stones {
		switch {
		case s == player.Stone() && theirs == 0:
			mine++
		case s == opp:
			theirs++
		default:
			return 0, 0, fmt.Errorf("%w: broken formation", ErrInvalidMove)
		}
	}
	return mine, theirs, nil
}

func pushInline(b *Board, player Player, origin, dir hex.Cord) ([]Stone, error) {
	stones := b.RunFrom(origin, dir)
	mine, theirs, err := countRun(player, stones)
	if err != nil {
		return nil, err
	}
	if mine <= theirs {
		return nil, fmt.Errorf("%w: %d stones cannot push %d", ErrInvalidMove, mine, theirs)
	}

	var ejected []Stone
	if front := origin.Add(dir.Scale(len(stones))); !b.Contains(front) {
		ejected = append(ejected, stones[len(stones)-1])
	}
	// Shift from the far end back towards the origin so that no stone is
	// overwritten before it has been moved.
	for p := origin.Add(dir.Scale(len(stones))); p != origin; p = p.Sub(dir) {
		if b.Contains(p) {
			b.put(p, b.at(p.Sub(dir)))
		}
	}
	b.put(origin, Blank)
	return ejected, nil
}

func pushSideways(b *Board, player Player, from, to, dir hex.Cord) ([]Stone, error) {
	stones, err := b.Between(from, to)
	if err != nil {
		return nil, err
	}
	cells := from.Line(to)
	for i, c := range cells {
		if stones[i] != player.Stone() {
			return nil, fmt.Errorf("%w: %v does not hold a %s stone", ErrInvalidMove, c, player)
		}
		if t := c.Add(dir); b.Contains(t) && b.at(t) != Blank {
			return nil, fmt.Errorf("%w: %v is occupied", ErrInvalidMove, t)
		}
	}

	var ejected []Stone
	for _, c := range cells {
		if t := c.Add(dir); b.Contains(t) {
			b.put(t, player.Stone())
		} else {
			ejected = append(ejected, player.Stone())
		}
		b.put(c, Blank)
	}
	return ejected, nil
}
