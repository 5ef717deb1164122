package game

import (
	"golang.org/x/exp/rand"
)

// Phase is the current step of the turn state machine.
type Phase int

const (
	PreGamePhase Phase = iota
	SetupPlaceSettlementPhase
	SetupPlaceRoadPhase
	RollDicePhase
	DiscardPhase
	MoveRobberPhase
	StealPhase
	TradeBuildPlayPhase
	RoadBuildingPlacePhase
	YearOfPlentyPickPhase
	MonopolyPickPhase
	GameOverPhase
)

var phaseNames = []string{
	"PRE_GAME",
	"SETUP_PLACE_SETTLEMENT",
	"SETUP_PLACE_ROAD",
	"ROLL_DICE",
	"DISCARD",
	"MOVE_ROBBER",
	"STEAL",
	"TRADE_BUILD_PLAY",
	"ROAD_BUILDING_PLACE",
	"YEAR_OF_PLENTY_PICK",
	"MONOPOLY_PICK",
	"GAME_OVER",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "UNKNOWN"
	}
	return phaseNames[p]
}

// BuildingKind tags a vertex slot: empty, settlement, or city.
type BuildingKind int

const (
	NoBuilding BuildingKind = iota
	Settlement
	City
)

// Building is the tagged contents of a vertex. Owner is only meaningful
// when Kind != NoBuilding.
type Building struct {
	Kind  BuildingKind
	Owner int
}

// NoOwner marks an edge without a road, a missing award holder, a missing
// winner, or a steal with nobody to rob.
const NoOwner = -1

// GameState is the full dynamic state of one game. The topology, terrain
// list, number tokens and harbor list never change after NewGame and are
// shared by reference across copies; everything else is cloned by Copy.
type GameState struct {
	Phase         Phase
	CurrentPlayer int
	PlayerCount   int
	TurnNumber    int

	Topology    *BoardTopology // static
	HexTerrains []Terrain      // static, [hid]
	HexNumbers  []int          // static, [hid] -> dice sum, 0 for desert
	Harbors     []Harbor       // static

	VertexBuildings []Building // [vid]
	EdgeRoads       []int      // [eid] -> owner, NoOwner if empty
	RobberHex       int

	Players []PlayerState

	DevCardDeck []DevCard // drawn from the end
	Bank        ResourceSet

	LongestRoadPlayer int // NoOwner if unclaimed
	LongestRoadLength int
	LargestArmyPlayer int // NoOwner if unclaimed
	LargestArmySize   int

	LastRoll [2]int // zero until the first roll of the turn

	SetupRound int // 0 = first snake-draft pass, 1 = reversed pass
	SetupIndex int

	PendingDiscards []int // player IDs that still owe a discard, in order

	RoadBuildingRoadsLeft int

	LastPlacedVertex int // setup-road anchor, NoOwner between placements

	Winner int // NoOwner until the game ends
}

// NewGame shuffles a fresh board and returns the state at the start of the
// setup draft. playerCount must be 3 or 4; the rng drives the terrain,
// token, and development-deck shuffles.
func NewGame(playerCount int, rng *rand.Rand) *GameState {
	topo := StandardTopology()

	terrains := append([]Terrain(nil), terrainDistribution...)
	rng.Shuffle(len(terrains), func(i, j int) {
		terrains[i], terrains[j] = terrains[j], terrains[i]
	})

	desert := 0
	for hid, t := range terrains {
		if t == Desert {
			desert = hid
			break
		}
	}

	numbers := append([]int(nil), numberTokenDistribution...)
	rng.Shuffle(len(numbers), func(i, j int) {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	})
	hexNumbers := make([]int, len(terrains))
	ni := 0
	for hid, t := range terrains {
		if t == Desert {
			continue
		}
		hexNumbers[hid] = numbers[ni]
		ni++
	}

	deck := append([]DevCard(nil), devCardDistribution...)
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	players := make([]PlayerState, playerCount)
	for i := range players {
		players[i] = NewPlayerState(i)
	}

	roads := make([]int, topo.EdgeCount)
	for i := range roads {
		roads[i] = NoOwner
	}

	gs := &GameState{
		Phase:             SetupPlaceSettlementPhase,
		CurrentPlayer:     0,
		PlayerCount:       playerCount,
		TurnNumber:        0,
		Topology:          topo,
		HexTerrains:       terrains,
		HexNumbers:        hexNumbers,
		Harbors:           AssignHarbors(topo),
		VertexBuildings:   make([]Building, topo.VertexCount),
		EdgeRoads:         roads,
		RobberHex:         desert,
		Players:           players,
		DevCardDeck:       deck,
		LongestRoadPlayer: NoOwner,
		LargestArmyPlayer: NoOwner,
		LastPlacedVertex:  NoOwner,
		Winner:            NoOwner,
	}
	for r := range gs.Bank {
		gs.Bank[r] = BankPerResource
	}
	return gs
}

// Copy returns a copy deep enough for stepping: board tables, players,
// deck and queues are cloned; the static topology, terrains, tokens and
// harbors stay shared.
func (gs *GameState) Copy() *GameState {
	c := *gs
	c.VertexBuildings = append([]Building(nil), gs.VertexBuildings...)
	c.EdgeRoads = append([]int(nil), gs.EdgeRoads...)
	c.Players = make([]PlayerState, len(gs.Players))
	for i := range gs.Players {
		c.Players[i] = gs.Players[i].Copy()
	}
	c.DevCardDeck = append([]DevCard(nil), gs.DevCardDeck...)
	c.PendingDiscards = append([]int(nil), gs.PendingDiscards...)
	return &c
}

// ActingPlayer returns the player who must act next: the head of the
// discard queue during DISCARD, the current player otherwise.
func (gs *GameState) ActingPlayer() int {
	if gs.Phase == DiscardPhase && len(gs.PendingDiscards) > 0 {
		return gs.PendingDiscards[0]
	}
	return gs.CurrentPlayer
}

// setupOrder returns the snake-draft order, e.g. [0 1 2 3 3 2 1 0].
func setupOrder(playerCount int) []int {
	order := make([]int, 0, 2*playerCount)
	for i := 0; i < playerCount; i++ {
		order = append(order, i)
	}
	for i := playerCount - 1; i >= 0; i-- {
		order = append(order, i)
	}
	return order
}

// playerVertices returns the vertices holding the player's buildings.
func (gs *GameState) playerVertices(player int) []int {
	var verts []int
	for vid, b := range gs.VertexBuildings {
		if b.Kind != NoBuilding && b.Owner == player {
			verts = append(verts, vid)
		}
	}
	return verts
}

// payToBank moves cost from the player's hand into the bank.
func (gs *GameState) payToBank(player int, cost ResourceSet) {
	p := &gs.Players[player]
	for r, n := range cost {
		p.Resources[r] -= n
		gs.Bank[r] += n
		if p.Resources[r] < 0 {
			panic("player resource count cannot be negative")
		}
	}
}

// takeFromBank moves amount of a resource from the bank to the player.
func (gs *GameState) takeFromBank(player int, r Resource, amount int) {
	gs.Players[player].Resources[r] += amount
	gs.Bank[r] -= amount
	if gs.Bank[r] < 0 {
		panic("bank resource count cannot be negative")
	}
}
