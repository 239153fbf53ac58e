package main

import (
	"flag"
	"os"
	"time"

	"abalone/experiments"
	"abalone/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	games   int
	seed    uint64
	turns   int
	out     string
	verbose bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.games, "games", meta.PLAYOUTS, "number of random games to play")
	flag.Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "seed of the first game")
	flag.IntVar(&cfg.turns, "turns", meta.MAX_TURNS, "maximum number of moves per game")
	flag.StringVar(&cfg.out, "out", "experiments", "directory for the csv records, empty to skip")
	flag.BoolVar(&cfg.verbose, "v", false, "log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	records, err := experiments.RunPlayouts(experiments.Config{
		Games:    cfg.games,
		Seed:     cfg.seed,
		MaxTurns: cfg.turns,
		OutDir:   cfg.out,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("playout experiment failed")
	}

	wins := map[string]int{}
	for _, r := range records {
		wins[r.Winner]++
	}
	log.Info().Int("black", wins["black"]).Int("white", wins["white"]).Int("undecided", wins[""]).Msg("results")
}
