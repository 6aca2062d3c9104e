package main

import (
	"chessai/config"
	"chessai/engine"
	"chessai/experiments"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment config, defaults are used if empty")
	experiment := flag.String("experiment", "config", "Experiment to run: config, baseline, depth, pruning or parallelization")
	selfPlay := flag.Bool("selfplay", false, "Play a single game between the first two agents and print the moves")
	depth := flag.Int("depth", 0, "Search depth in plies, overrides the config")
	games := flag.Int("games", 0, "Games per match up, overrides the config")
	maxMoves := flag.Int("max-moves", 0, "Move cap per game, overrides the config")
	outputDir := flag.String("out", "", "Folder for experiment results, overrides the config")
	level := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *level)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	c := config.Default()
	if *configPath != "" {
		c, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	c, err = experiments.Setup(*experiment, c, *depth, *games, *maxMoves, *outputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to select experiment")
	}

	if *selfPlay {
		runSelfPlay(c)
		return
	}

	dir, err := experiments.Run(*experiment, c)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("results stored in %s", dir)
}

func runSelfPlay(c *config.Config) {
	white, black, err := experiments.Opponents(c)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create agents")
	}
	state, err := experiments.StartState(c)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up the board")
	}

	outcome, gameMetric, moveMetrics, err := engine.LocalEngine(state, white, black, c.MaxMoves).Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	for _, mm := range moveMetrics {
		fmt.Printf("%3d. %-5s %-6s score %+.4f nodes %d\n", mm.Step, mm.Player, mm.Move, mm.Score, mm.Nodes)
	}
	fmt.Printf("%s after %d moves (%s)\n", outcome, gameMetric.TotalMoves, gameMetric.Duration.Round(time.Millisecond))
}
