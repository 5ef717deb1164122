package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// giveHexRoads assigns the first n border edges of hex hid to the player.
// Hex edges run around the perimeter, so n edges form a simple path over
// n+1 corners (all 6 close the cycle).
func giveHexRoads(gs *GameState, hid, player, n int) {
	for _, eid := range gs.Topology.HexEdges[hid][:n] {
		gs.EdgeRoads[eid] = player
	}
}

func TestLongestRoadSinglePath(t *testing.T) {
	gs := newTestGame(4, 7)

	for n := 1; n <= 5; n++ {
		giveHexRoads(gs, 0, 0, n)
		require.Equal(t, n, gs.LongestRoad(0), "%d perimeter edges", n)
	}
	require.Equal(t, 0, gs.LongestRoad(1), "no roads, no path")
}

func TestLongestRoadFullCycle(t *testing.T) {
	gs := newTestGame(4, 7)
	giveHexRoads(gs, 0, 0, 6)
	require.Equal(t, 6, gs.LongestRoad(0), "a closed hex loop walks all 6 edges")
}

func TestLongestRoadBlockedByOpponent(t *testing.T) {
	gs := newTestGame(4, 7)
	// Three edges over corners c0..c3; an opponent settlement on c2 splits
	// the path. The arriving edge still counts, so both fragments are 2
	// and 1, not 3.
	giveHexRoads(gs, 0, 0, 3)
	c2 := gs.Topology.HexVertices[0][2]
	gs.VertexBuildings[c2] = Building{Kind: Settlement, Owner: 1}

	require.Equal(t, 2, gs.LongestRoad(0))
}

func TestLongestRoadOwnBuildingDoesNotBlock(t *testing.T) {
	gs := newTestGame(4, 7)
	giveHexRoads(gs, 0, 0, 3)
	c2 := gs.Topology.HexVertices[0][2]
	gs.VertexBuildings[c2] = Building{Kind: Settlement, Owner: 0}

	require.Equal(t, 3, gs.LongestRoad(0))
}

func TestLongestRoadIsPure(t *testing.T) {
	gs := newTestGame(4, 7)
	giveHexRoads(gs, 0, 0, 6)
	first := gs.LongestRoad(0)
	require.Equal(t, first, gs.LongestRoad(0), "repeated calls agree")
	require.Equal(t, first, gs.Copy().LongestRoad(0), "copies agree")
}

func TestLongestRoadAward(t *testing.T) {
	t.Run("below threshold stays unclaimed", func(t *testing.T) {
		gs := newTestGame(4, 7)
		giveHexRoads(gs, 0, 0, 4)
		gs.updateLongestRoad()
		require.Equal(t, NoOwner, gs.LongestRoadPlayer)
		require.Equal(t, 0, gs.LongestRoadLength)
	})

	t.Run("first to five claims", func(t *testing.T) {
		gs := newTestGame(4, 7)
		giveHexRoads(gs, 0, 1, 5)
		gs.updateLongestRoad()
		require.Equal(t, 1, gs.LongestRoadPlayer)
		require.Equal(t, 5, gs.LongestRoadLength)
	})

	t.Run("holder keeps the award on a tie", func(t *testing.T) {
		gs := newTestGame(4, 7)
		giveHexRoads(gs, 0, 1, 5)
		gs.updateLongestRoad()
		giveHexRoads(gs, 18, 0, 5)
		gs.updateLongestRoad()
		require.Equal(t, 1, gs.LongestRoadPlayer, "an equal road does not overtake")
	})

	t.Run("strictly longer road overtakes", func(t *testing.T) {
		gs := newTestGame(4, 7)
		giveHexRoads(gs, 0, 1, 5)
		gs.updateLongestRoad()
		giveHexRoads(gs, 18, 0, 6)
		gs.updateLongestRoad()
		require.Equal(t, 0, gs.LongestRoadPlayer)
		require.Equal(t, 6, gs.LongestRoadLength)
	})

	t.Run("holder dropping below five forfeits to the next best", func(t *testing.T) {
		gs := newTestGame(4, 7)
		giveHexRoads(gs, 0, 1, 4)
		giveHexRoads(gs, 18, 0, 5)
		// Stale award from before player 1's road was cut.
		gs.LongestRoadPlayer = 1
		gs.LongestRoadLength = 5

		gs.updateLongestRoad()
		require.Equal(t, 0, gs.LongestRoadPlayer)
		require.Equal(t, 5, gs.LongestRoadLength)
	})
}

func TestLargestArmyAward(t *testing.T) {
	gs := newTestGame(4, 7)

	gs.Players[0].KnightsPlayed = 2
	gs.updateLargestArmy()
	require.Equal(t, NoOwner, gs.LargestArmyPlayer, "two knights is below the threshold")

	gs.Players[0].KnightsPlayed = 3
	gs.updateLargestArmy()
	require.Equal(t, 0, gs.LargestArmyPlayer)
	require.Equal(t, 3, gs.LargestArmySize)

	gs.Players[1].KnightsPlayed = 3
	gs.updateLargestArmy()
	require.Equal(t, 0, gs.LargestArmyPlayer, "a tie does not overtake")

	gs.Players[1].KnightsPlayed = 4
	gs.updateLargestArmy()
	require.Equal(t, 1, gs.LargestArmyPlayer)
	require.Equal(t, 4, gs.LargestArmySize)
}

func TestVictoryPoints(t *testing.T) {
	gs := newTestGame(4, 7)
	require.Equal(t, 0, gs.VictoryPoints(0))

	gs.VertexBuildings[0] = Building{Kind: Settlement, Owner: 0}
	gs.VertexBuildings[1] = Building{Kind: City, Owner: 0}
	gs.VertexBuildings[2] = Building{Kind: Settlement, Owner: 1}
	require.Equal(t, 3, gs.VictoryPoints(0))
	require.Equal(t, 1, gs.VictoryPoints(1))

	gs.LongestRoadPlayer = 0
	gs.LargestArmyPlayer = 0
	require.Equal(t, 7, gs.VictoryPoints(0))

	gs.Players[0].DevCards = []DevCard{VictoryPointCard, Knight}
	gs.Players[0].NewDevCards = []DevCard{VictoryPointCard}
	require.Equal(t, 9, gs.VictoryPoints(0), "pending victory cards score too")
}
