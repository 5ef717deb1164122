package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"settlers/engine"
	"settlers/game"
	"settlers/metrics"
)

type config struct {
	games       int
	playerCount int
	seed        uint64
	outDir      string
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config{
		games:       20,
		playerCount: 4,
		seed:        1,
		outDir:      "selfplay",
	}
	if err := runSelfPlay(cfg); err != nil {
		log.Fatal().Err(err).Msg("self-play run failed")
	}
}

// runSelfPlay plays cfg.games full games with uniformly random action
// choice and writes the outcome records as CSV. Random play is sampling,
// not decision-making: it exists to exercise every phase of the engine.
func runSelfPlay(cfg config) error {
	eng, err := engine.New(cfg.playerCount)
	if err != nil {
		return err
	}
	picker := rand.New(rand.NewSource(cfg.seed))

	var collector metrics.Collector
	for i := 0; i < cfg.games; i++ {
		gameSeed := cfg.seed + uint64(i)
		state := eng.ResetSeed(gameSeed)
		record := collector.StartGame(eng.ID(), gameSeed, cfg.playerCount)

		steps := 0
		done := false
		for !done && steps < engine.MaxSteps {
			actions := eng.LegalActions()
			if len(actions) == 0 {
				log.Error().Stringer("phase", state.Phase).Msg("no legal actions outside GAME_OVER")
				break
			}
			action := actions[picker.Intn(len(actions))]
			state, _, done, _, err = eng.Step(action)
			if err != nil {
				return err
			}
			steps++
		}

		record(state.Winner, state.TurnNumber, steps)
		if done {
			log.Info().
				Int("game", i+1).
				Int("winner", state.Winner).
				Int("turns", state.TurnNumber).
				Int("steps", steps).
				Msg("finished")
		} else {
			log.Warn().
				Int("game", i+1).
				Int("steps", steps).
				Stringer("phase", state.Phase).
				Msg("hit step ceiling")
		}
		logScores(state)
	}

	writer, err := metrics.NewWriter(cfg.outDir)
	if err != nil {
		return err
	}
	if err := writer.WriteGameRecords(collector.Records()); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Int("games", cfg.games).Msg("records written")
	return nil
}

func logScores(state *game.GameState) {
	for pid := 0; pid < state.PlayerCount; pid++ {
		log.Debug().
			Int("player", pid).
			Int("vp", state.VictoryPoints(pid)).
			Int("hand", state.Players[pid].Resources.Total()).
			Msg("final score")
	}
}
