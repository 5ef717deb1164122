// Package engine exposes the rules engine to drivers, search code and
// feature extractors: reset a game, list legal actions, and step. All
// game rules live in the game package; the engine owns only the seedable
// randomness and the step loop bookkeeping.
package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"settlers/game"
)

// MaxSteps is a sane ceiling for driver loops; the engine itself never
// terminates a game early.
const MaxSteps = 10000

// Info accompanies every Step result. Winner is NoOwner until the game
// ends.
type Info struct {
	Winner int
}

// Engine runs one game at a time. It is not safe for concurrent use;
// concurrent simulations must each own an Engine.
type Engine struct {
	id          uuid.UUID
	playerCount int
	rng         *rand.Rand
	state       *game.GameState
}

// New validates the configuration and returns an engine with no game in
// progress; call Reset or ResetSeed to start one.
func New(playerCount int) (*Engine, error) {
	if playerCount != 3 && playerCount != 4 {
		return nil, fmt.Errorf("player count must be 3 or 4, got %d", playerCount)
	}
	return &Engine{
		id:          uuid.New(),
		playerCount: playerCount,
	}, nil
}

// ID identifies this engine's current game in logs and metrics.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Reset starts a fresh game from an entropy seed.
func (e *Engine) Reset() *game.GameState {
	return e.ResetSeed(rand.Uint64())
}

// ResetSeed starts a fresh game from the given seed. The same seed
// reproduces the same board, deck order, dice and steals.
func (e *Engine) ResetSeed(seed uint64) *game.GameState {
	e.id = uuid.New()
	e.rng = rand.New(rand.NewSource(seed))
	e.state = game.NewGame(e.playerCount, e.rng)
	log.Debug().
		Str("game", e.id.String()).
		Uint64("seed", seed).
		Int("players", e.playerCount).
		Msg("game reset")
	return e.state
}

// State returns the current state snapshot.
func (e *Engine) State() *game.GameState {
	return e.state
}

// LegalActions enumerates the actions legal in the current phase. Empty
// before the first reset.
func (e *Engine) LegalActions() []game.Action {
	if e.state == nil {
		return nil
	}
	return e.state.LegalActions()
}

// ActingPlayer returns the player who must choose the next action, or
// NoOwner before the first reset.
func (e *Engine) ActingPlayer() int {
	if e.state == nil {
		return game.NoOwner
	}
	return e.state.ActingPlayer()
}

// Step applies one action and advances to the new state. The reward is a
// terminal signal: +1 on the step that ends the game (always the
// winner's own END_TURN), 0 otherwise. Illegal actions leave the current
// state untouched and return a *game.IllegalActionError.
func (e *Engine) Step(a game.Action) (*game.GameState, float64, bool, Info, error) {
	if e.state == nil {
		return nil, 0, false, Info{Winner: game.NoOwner}, fmt.Errorf("no game in progress, call Reset first")
	}
	next, err := e.state.Apply(a, e.rng)
	if err != nil {
		return e.state, 0, false, Info{Winner: game.NoOwner}, err
	}
	e.state = next

	done := next.Phase == game.GameOverPhase
	info := Info{Winner: next.Winner}
	reward := 0.0
	if done {
		reward = 1.0
		log.Info().
			Str("game", e.id.String()).
			Int("winner", next.Winner).
			Int("turns", next.TurnNumber).
			Msg("game over")
	}
	return next, reward, done, info, nil
}
