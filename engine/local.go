package engine

import (
	"fmt"
	"sync"

	"abalone/agent"
	"abalone/experiments/metrics"
	"abalone/game"
	"abalone/hex"
	"abalone/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// subscriberBuffer is how many updates a subscriber may fall behind before
// updates to it are dropped.
const subscriberBuffer = 64

type Update struct {
	Move    game.Move
	Outcome game.Outcome
	Board   [][]game.Stone
	Lost    map[game.Player]int
	Winner  game.Player // zero while the game is undecided
}

type Option func(e *Local)

func WithRules(rules game.Rules) Option {
	return func(e *Local) {
		if rules != nil {
			e.rules = rules
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithID(id uuid.UUID) Option {
	return func(e *Local) {
		e.ID = id
	}
}

func WithMetrics(c metrics.Collector) Option {
	return func(e *Local) {
		if c != nil {
			e.metrics = c
		}
	}
}

// Local runs one game in process. Moves are serialized by a mutex so a
// session may call Play from any goroutine.
type Local struct {
	ID uuid.UUID

	mu          sync.Mutex
	state       *game.State
	rules       game.Rules
	maxTurns    int
	turns       int
	subscribers []chan Update
	metrics     metrics.Collector
}

var _ Engine = (*Local)(nil)

func NewLocal(options ...Option) (*Local, error) {
	e := &Local{ // Default values
		ID:       uuid.New(),
		rules:    game.NewStandardRules(),
		maxTurns: meta.MAX_TURNS,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}

	state, err := game.NewState(e.rules)
	if err != nil {
		return nil, fmt.Errorf("failed to create game %s: %w", e.ID, err)
	}
	e.state = state
	return e, nil
}

func (e *Local) Play(m game.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.play(m)
}

func (e *Local) play(m game.Move) error {
	if _, over := e.state.Winner(); over {
		return fmt.Errorf("game %s is over - no moves allowed", e.ID)
	}

	out, err := e.state.Play(m)
	if err != nil {
		e.metrics.AddRejected()
		log.Debug().Str("game", e.ID.String()).Stringer("move", m).Err(err).Msg("move rejected")
		return err
	}
	e.turns++
	e.metrics.AddMove(metrics.MoveMetric{
		Step:    e.turns,
		Player:  m.Player.String(),
		Kind:    out.Kind.String(),
		Ejected: len(out.Ejected),
	})
	log.Debug().
		Str("game", e.ID.String()).
		Stringer("move", m).
		Stringer("kind", out.Kind).
		Int("ejected", len(out.Ejected)).
		Msg("move accepted")

	winner, over := e.state.Winner()
	e.publish(Update{
		Move:    m,
		Outcome: out,
		Board:   e.state.Board.Snapshot(),
		Lost:    e.lost(),
		Winner:  winner,
	})
	if over {
		log.Info().Str("game", e.ID.String()).Msgf("%s wins after %d moves", winner, e.turns)
		e.closeSubscribers()
	}
	return nil
}

func (e *Local) publish(u Update) {
	for i, ch := range e.subscribers {
		select {
		case ch <- u:
		default:
			log.Warn().Str("game", e.ID.String()).Int("subscriber", i).Msg("subscriber is behind, dropping update")
		}
	}
}

func (e *Local) closeSubscribers() {
	for _, ch := range e.subscribers {
		close(ch)
	}
	e.subscribers = nil
}

func (e *Local) lost() map[game.Player]int {
	out := make(map[game.Player]int, len(e.state.Lost))
	for p, n := range e.state.Lost {
		out[p] = n
	}
	return out
}

func (e *Local) Subscribe() <-chan Update {
	e.mu.Lock()
	defer e.mu.Unlock()
	ch := make(chan Update, subscriberBuffer)
	if _, over := e.state.Winner(); over {
		close(ch)
		return ch
	}
	e.subscribers = append(e.subscribers, ch)
	return ch
}

func (e *Local) Get(c hex.Cord) (game.Stone, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Board.Get(c)
}

func (e *Local) Snapshot() [][]game.Stone {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Board.Snapshot()
}

func (e *Local) Winner() (game.Player, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Winner()
}

// State returns a copy of the game state.
func (e *Local) State() *game.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Copy()
}

// Run lets the agents play against each other, starting with first, until
// somebody wins, a player cannot move, or the turn cap is reached.
func (e *Local) Run(agents map[game.Player]agent.Agent, first game.Player) (metrics.GameMetric, []metrics.MoveMetric) {
	e.metrics.Start(e.ID.String(), first.String())
	log.Info().Str("game", e.ID.String()).Msgf("%s is starting", first)

	player := first
	for turn := 0; turn < e.maxTurns; turn++ {
		if _, over := e.Winner(); over {
			break
		}
		move, ok := agents[player].FindMove(e.State(), player)
		if !ok {
			log.Info().Str("game", e.ID.String()).Msgf("%s has no legal move", player)
			break
		}
		if err := e.Play(move); err != nil {
			log.Error().Str("game", e.ID.String()).Stringer("move", move).Err(err).Msg("agent chose an illegal move")
			break
		}
		player = player.Opponent()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	var winner string
	if w, over := e.state.Winner(); over {
		winner = w.String()
	} else {
		log.Info().Str("game", e.ID.String()).Msgf("stopped after %d moves (no winner yet)", e.turns)
	}
	return e.metrics.Complete(winner, e.state.Lost[game.BlackPlayer], e.state.Lost[game.WhitePlayer])
}
