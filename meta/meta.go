// meta/meta.go
package meta

// BOARD_SIDE is the side length of the standard board.
const BOARD_SIDE = 5

// CAPTURES_TO_WIN is the number of stones a player must push off the board.
const CAPTURES_TO_WIN = 6

// MAX_TURNS caps a game that nobody manages to win.
const MAX_TURNS = 300

// PLAYOUTS is the default number of games played by the playout experiment.
const PLAYOUTS = 20
