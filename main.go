package main

import (
	"flag"
	"fmt"
	"os"

	"c4/bootstrap"
	"c4/engine"
	"c4/experiments"
	"c4/experiments/metrics"
	"c4/player"
	"c4/searcher"
	"c4/server"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "serve", "serve | match | demo")
	cfgPath := flag.String("config", "", "optional config file path")
	flag.Parse()

	cfg, err := bootstrap.Setup(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	switch *mode {
	case "serve":
		s := server.New(cfg.BoardSize, cfg.SearchDepth)
		if err := s.ListenAndServe(cfg.ServerAddr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	case "match":
		runMatch(cfg)
	case "demo":
		runDemo(cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

// runMatch plays the configured minimax engine against the random
// baseline and writes the run records out as CSV.
func runMatch(cfg *bootstrap.Config) {
	writer, err := metrics.NewWriter(cfg.ResultsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create results writer")
	}

	matchup := experiments.Matchup{
		Agent1:    experiments.AgentConfig{ID: 1, Name: "minimax", Depth: cfg.SearchDepth},
		Agent2:    experiments.AgentConfig{ID: 2, Name: "random", Seed: 1},
		Games:     cfg.MatchGames,
		BoardSize: cfg.BoardSize,
	}
	summary, err := matchup.Run(writer)
	if err != nil {
		log.Fatal().Err(err).Msg("matchup failed")
	}
	log.Info().
		Int("games", summary.Games).
		Int("minimaxWins", summary.Wins1).
		Int("randomWins", summary.Wins2).
		Int("draws", summary.Draws).
		Str("results", writer.Dir()).
		Msg("matchup finished")
}

// runDemo plays one logged game, minimax against random.
func runDemo(cfg *bootstrap.Config) {
	red := player.NewMinimaxPlayer("minimax", searcher.NewMinimax(searcher.WithDepth(cfg.SearchDepth)))
	yellow := player.NewRandomPlayer("random", 1)
	e := engine.NewLocalEngine(red, yellow, cfg.BoardSize)
	result := e.Run()
	fmt.Println(e.Board())
	if result.Draw {
		log.Info().Msg("demo game drawn")
	} else {
		log.Info().Str("winner", result.WinnerName).Int("moves", len(result.Moves)).Msg("demo game over")
	}
}
