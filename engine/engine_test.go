package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"settlers/game"
)

func TestNewValidatesPlayerCount(t *testing.T) {
	for _, count := range []int{-1, 0, 2, 5} {
		_, err := New(count)
		require.Error(t, err, "player count %d", count)
	}
	for _, count := range []int{3, 4} {
		e, err := New(count)
		require.NoError(t, err)
		require.NotNil(t, e)
	}
}

func TestResetSeedInitialState(t *testing.T) {
	e, err := New(4)
	require.NoError(t, err)
	gs := e.ResetSeed(42)

	require.Equal(t, 19, len(gs.HexTerrains))
	require.Equal(t, 54, gs.Topology.VertexCount)
	require.Equal(t, 72, gs.Topology.EdgeCount)
	require.Equal(t, game.SetupPlaceSettlementPhase, gs.Phase)
	require.Equal(t, 0, gs.CurrentPlayer)
	require.Equal(t, 0, e.ActingPlayer())

	for r := game.Resource(0); r < game.NumResources; r++ {
		require.Equal(t, game.BankPerResource, gs.Bank[r])
	}
	require.Len(t, gs.DevCardDeck, 25)
	require.Len(t, gs.Harbors, 9)
	require.Equal(t, game.Desert, gs.HexTerrains[gs.RobberHex], "robber starts on the desert")
	require.Equal(t, 0, gs.HexNumbers[gs.RobberHex])

	for pid := 0; pid < 4; pid++ {
		p := gs.Players[pid]
		require.Zero(t, p.Resources.Total())
		require.Equal(t, game.MaxSettlements, p.RemainingSettlements)
		require.Equal(t, game.MaxCities, p.RemainingCities)
		require.Equal(t, game.MaxRoads, p.RemainingRoads)
	}
	require.Equal(t, game.NoOwner, gs.Winner)
	require.Equal(t, game.NoOwner, gs.LongestRoadPlayer)
	require.Equal(t, game.NoOwner, gs.LargestArmyPlayer)
}

func TestSameSeedReproducesTrajectory(t *testing.T) {
	run := func() []*game.GameState {
		e, err := New(3)
		require.NoError(t, err)
		e.ResetSeed(1234)
		picker := rand.New(rand.NewSource(99))

		states := []*game.GameState{e.State()}
		for step := 0; step < 500; step++ {
			actions := e.LegalActions()
			if len(actions) == 0 {
				break
			}
			next, _, done, _, err := e.Step(actions[picker.Intn(len(actions))])
			require.NoError(t, err)
			states = append(states, next)
			if done {
				break
			}
		}
		return states
	}

	a, b := run(), run()
	require.Equal(t, len(a), len(b))
	for i := range a {
		require.Equal(t, a[i], b[i], "step %d diverged", i)
	}
}

func TestIllegalStepLeavesStateUntouched(t *testing.T) {
	e, err := New(4)
	require.NoError(t, err)
	e.ResetSeed(7)
	before := e.State()

	got, reward, done, info, err := e.Step(game.Action{Type: game.EndTurnAction})
	var illegal *game.IllegalActionError
	require.ErrorAs(t, err, &illegal)
	require.Same(t, before, got)
	require.Same(t, before, e.State())
	require.Zero(t, reward)
	require.False(t, done)
	require.Equal(t, game.NoOwner, info.Winner)
}

func TestRandomPlayoutInvariants(t *testing.T) {
	e, err := New(4)
	require.NoError(t, err)
	e.ResetSeed(2024)
	picker := rand.New(rand.NewSource(5))

	var finished bool
	for step := 0; step < MaxSteps; step++ {
		actions := e.LegalActions()
		require.NotEmpty(t, actions, "live game with no legal action at step %d", step)

		next, reward, done, info, err := e.Step(actions[picker.Intn(len(actions))])
		require.NoError(t, err)

		for r := game.Resource(0); r < game.NumResources; r++ {
			total := next.Bank[r]
			require.GreaterOrEqual(t, next.Bank[r], 0)
			for _, p := range next.Players {
				require.GreaterOrEqual(t, p.Resources[r], 0)
				total += p.Resources[r]
			}
			require.Equal(t, game.BankPerResource, total)
		}
		for _, p := range next.Players {
			require.GreaterOrEqual(t, p.RemainingSettlements, 0)
			require.GreaterOrEqual(t, p.RemainingCities, 0)
			require.GreaterOrEqual(t, p.RemainingRoads, 0)
		}

		if done {
			require.Equal(t, game.GameOverPhase, next.Phase)
			require.Equal(t, 1.0, reward)
			require.Equal(t, next.Winner, info.Winner)
			require.GreaterOrEqual(t, next.VictoryPoints(next.Winner), game.VPToWin)
			require.Empty(t, e.LegalActions())
			finished = true
			break
		}
		require.Zero(t, reward)
		require.Equal(t, game.NoOwner, info.Winner)
	}

	if !finished {
		t.Logf("playout hit the %d step ceiling without a winner", MaxSteps)
	}
}

func TestStepBeforeResetFails(t *testing.T) {
	e, err := New(3)
	require.NoError(t, err)

	got, reward, done, info, err := e.Step(game.Action{Type: game.RollDiceAction})
	require.Error(t, err)
	require.Nil(t, got)
	require.Zero(t, reward)
	require.False(t, done)
	require.Equal(t, game.NoOwner, info.Winner)

	require.Empty(t, e.LegalActions())
	require.Equal(t, game.NoOwner, e.ActingPlayer())
	require.Nil(t, e.State())
}

func TestResetStartsDistinctGames(t *testing.T) {
	e, err := New(3)
	require.NoError(t, err)
	e.Reset()
	first := e.ID()
	e.Reset()
	require.NotEqual(t, first, e.ID(), "each reset is a new game identity")
}
