package game

import "errors"

var (
	// ErrInvalidCoordinate is returned for out-of-range positions and for
	// selections that are not a straight line of at most three cells.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidDirection is returned when a direction is not a unit step.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrInvalidMove is returned when a move breaks a rule of the game.
	ErrInvalidMove = errors.New("invalid move")
)
