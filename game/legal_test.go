package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestGame(playerCount int, seed uint64) *GameState {
	return NewGame(playerCount, rand.New(rand.NewSource(seed)))
}

func TestEnumerateDiscards(t *testing.T) {
	t.Run("bounded combinations, no duplicates", func(t *testing.T) {
		hand := ResourceSet{2, 1, 1, 0, 0}
		got := enumerateDiscards(hand, 2)

		require.Len(t, got, 4)
		seen := map[ResourceSet]bool{}
		for _, set := range got {
			require.Equal(t, 2, set.Total(), "every discard sums to the target")
			require.True(t, hand.Covers(set), "discard bounded by held quantities")
			require.False(t, seen[set], "no duplicate combination")
			seen[set] = true
		}
	})

	t.Run("complete over a larger hand", func(t *testing.T) {
		hand := ResourceSet{3, 3, 3, 0, 0}
		// x1+x2+x3 = 4 with 0 <= xi <= 3: 15 unconstrained minus 3 overflows.
		require.Len(t, enumerateDiscards(hand, 4), 12)
	})

	t.Run("full discard of entire hand", func(t *testing.T) {
		hand := ResourceSet{1, 0, 0, 0, 1}
		got := enumerateDiscards(hand, 2)
		require.Equal(t, []ResourceSet{hand}, got)
	})

	t.Run("zero target yields the empty discard", func(t *testing.T) {
		got := enumerateDiscards(ResourceSet{1, 1, 0, 0, 0}, 0)
		require.Equal(t, []ResourceSet{{}}, got)
	})
}

func TestSetupSettlementLegality(t *testing.T) {
	gs := newTestGame(4, 7)

	actions := gs.LegalActions()
	require.Len(t, actions, 54, "every vertex is legal on an empty board")

	next, err := gs.Apply(actions[0], nil)
	require.NoError(t, err)
	require.Equal(t, SetupPlaceRoadPhase, next.Phase)

	placed := actions[0].Vertex
	// Complete the draft slot so we are back in a settlement phase.
	roads := next.LegalActions()
	require.NotEmpty(t, roads)
	next, err = next.Apply(roads[0], nil)
	require.NoError(t, err)
	require.Equal(t, SetupPlaceSettlementPhase, next.Phase)

	blocked := map[int]bool{placed: true}
	for _, adj := range gs.Topology.VertexAdjacentVertices[placed] {
		blocked[adj] = true
	}
	for _, a := range next.LegalActions() {
		require.False(t, blocked[a.Vertex],
			"vertex %d violates the minimum distance rule", a.Vertex)
	}
	require.Len(t, next.LegalActions(), 54-len(blocked))
}

func TestMainGameSettlementNeedsRoad(t *testing.T) {
	gs := newTestGame(4, 7)
	gs.Phase = TradeBuildPlayPhase
	gs.Players[0].Resources = ResourceSet{4, 4, 4, 4, 4}

	require.Empty(t, gs.validSettlementVertices(0), "no roads yet, no legal settlement")

	// A lone road makes exactly its two endpoints reachable.
	gs.EdgeRoads[0] = 0
	ep := gs.Topology.EdgeEndpoints[0]
	require.ElementsMatch(t, []int{ep[0], ep[1]}, gs.validSettlementVertices(0))
}

func TestYearOfPlentyEnumeration(t *testing.T) {
	gs := newTestGame(4, 7)
	gs.Phase = YearOfPlentyPickPhase

	t.Run("full bank offers all unordered pairs", func(t *testing.T) {
		require.Len(t, gs.LegalActions(), 15)
	})

	t.Run("single card excludes the double pick", func(t *testing.T) {
		s := gs.Copy()
		s.Bank[Ore] = 1
		require.Len(t, s.LegalActions(), 14)
	})

	t.Run("empty slot excludes every pair using it", func(t *testing.T) {
		s := gs.Copy()
		s.Bank[Ore] = 0
		require.Len(t, s.LegalActions(), 10)
	})
}

func TestStealTargets(t *testing.T) {
	gs := newTestGame(4, 7)
	hid := 0
	corners := gs.Topology.HexVertices[hid]

	gs.VertexBuildings[corners[0]] = Building{Kind: Settlement, Owner: 1}
	gs.VertexBuildings[corners[2]] = Building{Kind: City, Owner: 2}
	gs.VertexBuildings[corners[4]] = Building{Kind: Settlement, Owner: 0}
	gs.Players[1].Resources[Wool] = 3
	// Player 2 has an empty hand and must not be a target.

	require.Equal(t, []int{1}, gs.stealTargets(hid, 0))
	require.Equal(t, []int{0, 1}, func() []int {
		gs.Players[0].Resources[Ore] = 1
		return gs.stealTargets(hid, 3)
	}())
}

func TestMaritimeTradeLegality(t *testing.T) {
	gs := newTestGame(4, 7)
	gs.Phase = TradeBuildPlayPhase
	gs.Harbors = nil
	gs.Players[0].Resources[Lumber] = 4

	require.True(t, gs.isValidMaritimeTrade(0, Lumber, Brick))
	require.False(t, gs.isValidMaritimeTrade(0, Lumber, Lumber), "give must differ from receive")
	require.False(t, gs.isValidMaritimeTrade(0, Brick, Lumber), "hand below ratio")

	gs.Bank[Brick] = 0
	require.False(t, gs.isValidMaritimeTrade(0, Lumber, Brick), "bank must supply the receive")
}

func TestTradeBuildPlayAlwaysOffersEndTurn(t *testing.T) {
	gs := newTestGame(3, 11)
	gs.Phase = TradeBuildPlayPhase

	actions := gs.LegalActions()
	require.Len(t, actions, 1, "empty hand, empty board: only END_TURN")
	require.Equal(t, EndTurnAction, actions[0].Type)
}
