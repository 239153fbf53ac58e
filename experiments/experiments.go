package experiments

import (
	"fmt"

	"abalone/agent"
	"abalone/engine"
	"abalone/experiments/metrics"
	"abalone/game"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Games    int
	Seed     uint64
	MaxTurns int
	OutDir   string // records are only written when set
}

// RunPlayouts plays random games on the standard board and stores one record
// per game and per move.
func RunPlayouts(cfg Config) ([]metrics.GameRecord, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting playout experiment with %d games...", cfg.Games)

	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + uint64(i)
		log.Info().Msgf("starting game %d of %d (seed %d)...", i+1, cfg.Games, seed)

		gameMetric, moveMetrics, err := runGame(seed, cfg.MaxTurns)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}
		gameRecords = append(gameRecords, metrics.GameRecord{
			Seed:       seed,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       gameMetric.ID,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d with winner: %q after %d moves", i+1, cfg.Games, gameMetric.Winner, gameMetric.TotalMoves)
	}

	log.Info().Msg("completed playout experiment")

	if cfg.OutDir == "" {
		return gameRecords, nil
	}

	writer, err := metrics.NewWriter(cfg.OutDir, "playouts")
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")

	return gameRecords, nil
}

// runGame plays a single random game. Even seeds let black start.
func runGame(seed uint64, maxTurns int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	e, err := engine.NewLocal(
		engine.WithMaxTurns(maxTurns),
		engine.WithMetrics(metrics.NewCollector()),
	)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	agents := map[game.Player]agent.Agent{
		game.BlackPlayer: agent.NewRandom(seed),
		game.WhitePlayer: agent.NewRandom(seed ^ 0x9e3779b97f4a7c15),
	}
	first := game.BlackPlayer
	if seed%2 == 1 {
		first = game.WhitePlayer
	}

	gameMetric, moveMetrics := e.Run(agents, first)
	return gameMetric, moveMetrics, nil
}
