package engine

import (
	"strings"
	"testing"

	"abalone/agent"
	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/hex"

	"github.com/google/uuid"
)

var east = hex.Cord{X: 1, Y: 0, Z: -1}

// duelRules is a side-2 board where black can win with one push.
type duelRules struct{}

func (duelRules) Side() int          { return 2 }
func (duelRules) CapturesToWin() int { return 1 }
func (duelRules) Setup(b *game.Board) error {
	for _, c := range []hex.Cord{hex.New(-1, 0), hex.New(0, 0)} {
		if err := b.Set(c, game.Black); err != nil {
			return err
		}
	}
	return b.Set(hex.New(1, 0), game.White)
}

func TestNewLocal(t *testing.T) {
	e, err := NewLocal()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e.ID == uuid.Nil {
		t.Error("expected a game ID")
	}

	state := e.State()
	if state.Board.Count(game.Black) != 14 || state.Board.Count(game.White) != 14 {
		t.Errorf("expected the standard opening, got\n%s", state.Board)
	}

	id := uuid.New()
	e2, err := NewLocal(WithID(id))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if e2.ID != id {
		t.Errorf("expected ID %s, got %s", id, e2.ID)
	}
}

func TestLocalPlay_ValidMove(t *testing.T) {
	e, err := NewLocal()
	if err != nil {
		t.Fatal(err)
	}
	updates := e.Subscribe()

	move := game.Move{Player: game.BlackPlayer, From: hex.New(1, 1), To: hex.New(1, 1), Dir: east.Neg()}
	if err := e.Play(move); err != nil {
		t.Fatalf("expected no error for a valid move, got %v", err)
	}

	select {
	case u := <-updates:
		if u.Move != move {
			t.Errorf("expected update for %v, got %v", move, u.Move)
		}
		if u.Outcome.Kind != game.SingleMove {
			t.Errorf("expected a single move, got %s", u.Outcome.Kind)
		}
		if u.Board[1+4][1+4] != game.Blank || u.Board[0+4][1+4] != game.Black {
			t.Errorf("update board does not reflect the move")
		}
	default:
		t.Fatal("expected an update after playing a move, got none")
	}

	if s, _ := e.Get(hex.New(0, 1)); s != game.Black {
		t.Errorf("expected black at (0,1,-1), got %s", s)
	}
}

func TestLocalPlay_IllegalMove(t *testing.T) {
	c := metrics.NewCollector()
	e, err := NewLocal(WithMetrics(c))
	if err != nil {
		t.Fatal(err)
	}
	c.Start(e.ID.String(), game.BlackPlayer.String())
	updates := e.Subscribe()
	before := e.Snapshot()

	// (1,1,-2) is boxed in by its own stones towards +y.
	move := game.Move{Player: game.BlackPlayer, From: hex.New(1, 1), To: hex.New(1, 1), Dir: hex.Cord{X: 0, Y: 1, Z: -1}}
	if err := e.Play(move); err == nil {
		t.Error("expected error for illegal move, got none")
	}

	select {
	case u := <-updates:
		t.Errorf("expected no update, got %v", u.Move)
	default:
	}

	after := e.Snapshot()
	for i := range before {
		for j := range before[i] {
			if before[i][j] != after[i][j] {
				t.Fatalf("board changed at [%d][%d]", i, j)
			}
		}
	}

	gm, _ := c.Complete("", 0, 0)
	if gm.Rejected != 1 || gm.TotalMoves != 0 {
		t.Errorf("expected 1 rejected and 0 moves, got %+v", gm)
	}
}

func TestLocalPlay_GameOver(t *testing.T) {
	e, err := NewLocal(WithRules(duelRules{}))
	if err != nil {
		t.Fatal(err)
	}
	updates := e.Subscribe()

	push := game.Move{Player: game.BlackPlayer, From: hex.New(-1, 0), To: hex.New(0, 0), Dir: east}
	if err := e.Play(push); err != nil {
		t.Fatalf("expected the push to succeed, got %v", err)
	}

	u, ok := <-updates
	if !ok {
		t.Fatal("expected a final update before the game ends")
	}
	if u.Winner != game.BlackPlayer {
		t.Errorf("expected black to win, got %v", u.Winner)
	}
	if u.Lost[game.WhitePlayer] != 1 {
		t.Errorf("expected white to have lost one stone, got %d", u.Lost[game.WhitePlayer])
	}

	// After the final update the channel is closed
	if _, ok := <-updates; ok {
		t.Error("expected no updates after game over")
	}
	if _, ok := <-e.Subscribe(); ok {
		t.Error("expected late subscribers to get a closed channel")
	}

	err = e.Play(game.Move{Player: game.WhitePlayer, From: hex.New(0, 0), To: hex.New(0, 0), Dir: east.Neg()})
	if err == nil || !strings.Contains(err.Error(), "is over") {
		t.Errorf("expected a game over error, got %v", err)
	}
}

func TestLocalRun(t *testing.T) {
	c := metrics.NewCollector()
	e, err := NewLocal(WithMaxTurns(40), WithMetrics(c))
	if err != nil {
		t.Fatal(err)
	}

	agents := map[game.Player]agent.Agent{
		game.BlackPlayer: agent.NewRandom(1),
		game.WhitePlayer: agent.NewRandom(2),
	}
	gm, moves := e.Run(agents, game.BlackPlayer)

	if gm.ID != e.ID.String() {
		t.Errorf("expected metric for game %s, got %s", e.ID, gm.ID)
	}
	if gm.StartingPlayer != "black" {
		t.Errorf("expected black to start, got %s", gm.StartingPlayer)
	}
	if gm.TotalMoves == 0 || gm.TotalMoves > 40 {
		t.Errorf("expected between 1 and 40 moves, got %d", gm.TotalMoves)
	}
	if len(moves) != gm.TotalMoves {
		t.Errorf("expected %d move metrics, got %d", gm.TotalMoves, len(moves))
	}
	if gm.Rejected != 0 {
		t.Errorf("random agents only pick legal moves, got %d rejections", gm.Rejected)
	}
	for i, mm := range moves {
		want := "black"
		if i%2 == 1 {
			want = "white"
		}
		if mm.Player != want {
			t.Fatalf("move %d played by %s, expected %s", i+1, mm.Player, want)
		}
	}

	state := e.State()
	if gm.BlackLost != state.Lost[game.BlackPlayer] || gm.WhiteLost != state.Lost[game.WhitePlayer] {
		t.Errorf("metric tallies %d/%d do not match state %v", gm.BlackLost, gm.WhiteLost, state.Lost)
	}
	if got := state.Board.Count(game.Black) + gm.BlackLost; got != 14 {
		t.Errorf("black stones on board plus lost should be 14, got %d", got)
	}
}
