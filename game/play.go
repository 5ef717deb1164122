package game

import (
	"golang.org/x/exp/rand"
)

// Apply validates the action against the current phase, then applies it
// to a fresh copy of the state and returns the copy. The receiver is
// never mutated, so callers may keep old snapshots for search or replay.
// Illegal actions return an *IllegalActionError and no new state. The
// rng drives dice rolls and steal selection only.
func (gs *GameState) Apply(a Action, rng *rand.Rand) (*GameState, error) {
	illegal := func() (*GameState, error) {
		return nil, &IllegalActionError{Phase: gs.Phase, Action: a}
	}

	s := gs.Copy()

	switch a.Type {
	case PlaceSetupSettlementAction:
		if s.Phase != SetupPlaceSettlementPhase || !s.vertexInRange(a.Vertex) ||
			!s.isValidSetupSettlementVertex(a.Vertex) {
			return illegal()
		}
		s.applySetupSettlement(a.Vertex)

	case PlaceSetupRoadAction:
		if s.Phase != SetupPlaceRoadPhase || !containsInt(s.validSetupRoadEdges(), a.Edge) {
			return illegal()
		}
		s.applySetupRoad(a.Edge)

	case RollDiceAction:
		if s.Phase != RollDicePhase {
			return illegal()
		}
		s.applyRollDice(rng)

	case DiscardResourcesAction:
		if s.Phase != DiscardPhase || len(s.PendingDiscards) == 0 {
			return illegal()
		}
		p := s.Players[s.PendingDiscards[0]]
		if a.Discard.Total() != p.Resources.Total()/2 || !p.Resources.Covers(a.Discard) {
			return illegal()
		}
		s.applyDiscard(a.Discard)

	case MoveRobberAction:
		if s.Phase != MoveRobberPhase || a.Hex < 0 || a.Hex >= len(s.HexTerrains) ||
			a.Hex == s.RobberHex {
			return illegal()
		}
		s.applyMoveRobber(a.Hex)

	case StealResourceAction:
		if s.Phase != StealPhase {
			return illegal()
		}
		targets := s.stealTargets(s.RobberHex, s.CurrentPlayer)
		if a.Victim == NoOwner {
			if len(targets) > 0 {
				return illegal()
			}
		} else if !containsInt(targets, a.Victim) {
			return illegal()
		}
		s.applySteal(a.Victim, rng)

	case BuildRoadAction:
		if s.Phase != TradeBuildPlayPhase || !containsInt(s.validRoadEdges(s.CurrentPlayer), a.Edge) {
			return illegal()
		}
		s.placeRoad(s.CurrentPlayer, a.Edge, false)
		s.updateLongestRoad()

	case BuildSettlementAction:
		if s.Phase != TradeBuildPlayPhase || !s.vertexInRange(a.Vertex) {
			return illegal()
		}
		p := s.Players[s.CurrentPlayer]
		if p.RemainingSettlements <= 0 || !p.Resources.Covers(SettlementCost) ||
			!s.isValidSettlementVertex(s.CurrentPlayer, a.Vertex) {
			return illegal()
		}
		s.applyBuildSettlement(a.Vertex)
		s.updateLongestRoad()

	case BuildCityAction:
		if s.Phase != TradeBuildPlayPhase || !s.vertexInRange(a.Vertex) {
			return illegal()
		}
		p := s.Players[s.CurrentPlayer]
		if p.RemainingCities <= 0 || !p.Resources.Covers(CityCost) ||
			!s.isValidCityVertex(s.CurrentPlayer, a.Vertex) {
			return illegal()
		}
		s.applyBuildCity(a.Vertex)

	case BuyDevCardAction:
		if s.Phase != TradeBuildPlayPhase || !s.canBuyDevCard(s.CurrentPlayer) {
			return illegal()
		}
		s.applyBuyDevCard()

	case PlayKnightAction:
		if s.Phase != TradeBuildPlayPhase || !s.canPlayDevCard(s.CurrentPlayer, Knight) {
			return illegal()
		}
		s.applyPlayKnight()

	case PlayRoadBuildingAction:
		if s.Phase != TradeBuildPlayPhase || !s.canPlayDevCard(s.CurrentPlayer, RoadBuilding) {
			return illegal()
		}
		s.applyPlayRoadBuilding()

	case PlaceRoadBuildingRoadAction:
		if s.Phase != RoadBuildingPlacePhase ||
			!containsInt(s.validRoadEdgesNoCost(s.CurrentPlayer), a.Edge) {
			return illegal()
		}
		s.applyPlaceRoadBuildingRoad(a.Edge)

	case PlayYearOfPlentyAction:
		if s.Phase != TradeBuildPlayPhase || !s.canPlayDevCard(s.CurrentPlayer, YearOfPlenty) {
			return illegal()
		}
		s.Players[s.CurrentPlayer].DevCards = removeDevCard(s.Players[s.CurrentPlayer].DevCards, YearOfPlenty)
		s.Players[s.CurrentPlayer].PlayedDevCardThisTurn = true
		// A bank with fewer than 2 cards cannot supply any pick; the card
		// is spent and the hub phase continues.
		if s.Bank.Total() >= 2 {
			s.Phase = YearOfPlentyPickPhase
		}

	case PickYearOfPlentyAction:
		if s.Phase != YearOfPlentyPickPhase || !resourceInRange(a.Give) || !resourceInRange(a.Receive) {
			return illegal()
		}
		needed := ResourceSet{}
		needed[a.Give]++
		needed[a.Receive]++
		if !s.Bank.Covers(needed) {
			return illegal()
		}
		s.takeFromBank(s.CurrentPlayer, a.Give, 1)
		s.takeFromBank(s.CurrentPlayer, a.Receive, 1)
		s.Phase = TradeBuildPlayPhase

	case PlayMonopolyAction:
		if s.Phase != TradeBuildPlayPhase || !s.canPlayDevCard(s.CurrentPlayer, Monopoly) {
			return illegal()
		}
		s.Players[s.CurrentPlayer].DevCards = removeDevCard(s.Players[s.CurrentPlayer].DevCards, Monopoly)
		s.Players[s.CurrentPlayer].PlayedDevCardThisTurn = true
		s.Phase = MonopolyPickPhase

	case PickMonopolyAction:
		if s.Phase != MonopolyPickPhase || !resourceInRange(a.Give) {
			return illegal()
		}
		s.applyPickMonopoly(a.Give)

	case MaritimeTradeAction:
		if s.Phase != TradeBuildPlayPhase ||
			!resourceInRange(a.Give) || !resourceInRange(a.Receive) ||
			!s.isValidMaritimeTrade(s.CurrentPlayer, a.Give, a.Receive) {
			return illegal()
		}
		s.applyMaritimeTrade(a.Give, a.Receive)

	case EndTurnAction:
		if s.Phase != TradeBuildPlayPhase {
			return illegal()
		}
		s.applyEndTurn()

	default:
		return illegal()
	}

	return s, nil
}

func (gs *GameState) vertexInRange(vid int) bool {
	return vid >= 0 && vid < gs.Topology.VertexCount
}

func resourceInRange(r Resource) bool {
	return r >= 0 && int(r) < NumResources
}

func (gs *GameState) applySetupSettlement(vid int) {
	pid := gs.CurrentPlayer
	gs.VertexBuildings[vid] = Building{Kind: Settlement, Owner: pid}
	gs.Players[pid].RemainingSettlements--

	// The second draft settlement yields one card per producing neighbor.
	if gs.SetupRound == 1 {
		for _, hid := range gs.Topology.VertexAdjacentHexes[vid] {
			if res, ok := gs.HexTerrains[hid].Produces(); ok {
				gs.takeFromBank(pid, res, 1)
			}
		}
	}

	gs.LastPlacedVertex = vid
	gs.Phase = SetupPlaceRoadPhase
}

func (gs *GameState) applySetupRoad(eid int) {
	pid := gs.CurrentPlayer
	gs.EdgeRoads[eid] = pid
	gs.Players[pid].RemainingRoads--

	order := setupOrder(gs.PlayerCount)
	next := gs.SetupIndex + 1
	if next >= len(order) {
		gs.Phase = RollDicePhase
		gs.CurrentPlayer = 0
		gs.LastPlacedVertex = NoOwner
		gs.TurnNumber = 1
		return
	}
	gs.CurrentPlayer = order[next]
	gs.SetupIndex = next
	if next >= gs.PlayerCount {
		gs.SetupRound = 1
	} else {
		gs.SetupRound = 0
	}
	gs.Phase = SetupPlaceSettlementPhase
	gs.LastPlacedVertex = NoOwner
}

func (gs *GameState) applyRollDice(rng *rand.Rand) {
	d1 := rng.Intn(6) + 1
	d2 := rng.Intn(6) + 1
	gs.LastRoll = [2]int{d1, d2}

	if d1+d2 == 7 {
		var pending []int
		for pid := 0; pid < gs.PlayerCount; pid++ {
			if gs.Players[pid].Resources.Total() > DiscardHandLimit {
				pending = append(pending, pid)
			}
		}
		if len(pending) > 0 {
			gs.Phase = DiscardPhase
			gs.PendingDiscards = pending
		} else {
			gs.Phase = MoveRobberPhase
		}
		return
	}

	gs.distributeResources(d1 + d2)
	gs.Phase = TradeBuildPlayPhase
}

// distributeResources pays out a non-7 roll. Demand is tallied per
// resource across every matching hex; if the bank cannot cover the full
// demand for a resource, nobody receives that resource this roll.
func (gs *GameState) distributeResources(total int) {
	var demand [NumResources]map[int]int
	for hid, number := range gs.HexNumbers {
		if number != total || hid == gs.RobberHex {
			continue
		}
		res, ok := gs.HexTerrains[hid].Produces()
		if !ok {
			continue
		}
		for _, vid := range gs.Topology.HexVertices[hid] {
			b := gs.VertexBuildings[vid]
			if b.Kind == NoBuilding {
				continue
			}
			amount := 1
			if b.Kind == City {
				amount = 2
			}
			if demand[res] == nil {
				demand[res] = make(map[int]int)
			}
			demand[res][b.Owner] += amount
		}
	}

	for res, byPlayer := range demand {
		sum := 0
		for _, amount := range byPlayer {
			sum += amount
		}
		if sum == 0 || sum > gs.Bank[res] {
			continue
		}
		for pid, amount := range byPlayer {
			gs.takeFromBank(pid, Resource(res), amount)
		}
	}
}

func (gs *GameState) applyDiscard(discard ResourceSet) {
	pid := gs.PendingDiscards[0]
	gs.payToBank(pid, discard)
	gs.PendingDiscards = gs.PendingDiscards[1:]
	if len(gs.PendingDiscards) == 0 {
		gs.Phase = MoveRobberPhase
	}
}

func (gs *GameState) applyMoveRobber(hid int) {
	gs.RobberHex = hid
	if len(gs.stealTargets(hid, gs.CurrentPlayer)) > 0 {
		gs.Phase = StealPhase
	} else {
		gs.Phase = TradeBuildPlayPhase
	}
}

// applySteal takes one uniformly random card from the victim, weighted by
// held quantity. A NoOwner victim is the no-op steal.
func (gs *GameState) applySteal(victim int, rng *rand.Rand) {
	gs.Phase = TradeBuildPlayPhase
	if victim == NoOwner {
		return
	}

	hand := gs.Players[victim].Resources
	pool := make([]Resource, 0, hand.Total())
	for r := Resource(0); r < NumResources; r++ {
		for i := 0; i < hand[r]; i++ {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		return
	}

	stolen := pool[rng.Intn(len(pool))]
	gs.Players[victim].Resources[stolen]--
	gs.Players[gs.CurrentPlayer].Resources[stolen]++
}

func (gs *GameState) placeRoad(player, eid int, free bool) {
	gs.EdgeRoads[eid] = player
	gs.Players[player].RemainingRoads--
	if gs.Players[player].RemainingRoads < 0 {
		panic("remaining road count cannot be negative")
	}
	if !free {
		gs.payToBank(player, RoadCost)
	}
}

func (gs *GameState) applyBuildSettlement(vid int) {
	pid := gs.CurrentPlayer
	gs.VertexBuildings[vid] = Building{Kind: Settlement, Owner: pid}
	gs.Players[pid].RemainingSettlements--
	gs.payToBank(pid, SettlementCost)
}

// applyBuildCity upgrades a settlement in place and returns the
// settlement piece to the player's stock.
func (gs *GameState) applyBuildCity(vid int) {
	pid := gs.CurrentPlayer
	gs.VertexBuildings[vid] = Building{Kind: City, Owner: pid}
	gs.Players[pid].RemainingCities--
	gs.Players[pid].RemainingSettlements++
	gs.payToBank(pid, CityCost)
}

func (gs *GameState) applyBuyDevCard() {
	pid := gs.CurrentPlayer
	card := gs.DevCardDeck[len(gs.DevCardDeck)-1]
	gs.DevCardDeck = gs.DevCardDeck[:len(gs.DevCardDeck)-1]
	gs.payToBank(pid, DevCardCost)
	gs.Players[pid].NewDevCards = append(gs.Players[pid].NewDevCards, card)
}

func (gs *GameState) applyPlayKnight() {
	p := &gs.Players[gs.CurrentPlayer]
	p.DevCards = removeDevCard(p.DevCards, Knight)
	p.KnightsPlayed++
	p.PlayedDevCardThisTurn = true
	gs.updateLargestArmy()
	gs.Phase = MoveRobberPhase
}

func (gs *GameState) applyPlayRoadBuilding() {
	p := &gs.Players[gs.CurrentPlayer]
	p.DevCards = removeDevCard(p.DevCards, RoadBuilding)
	p.PlayedDevCardThisTurn = true

	roads := p.RemainingRoads
	if roads > 2 {
		roads = 2
	}
	if roads == 0 || len(gs.validRoadEdgesNoCost(gs.CurrentPlayer)) == 0 {
		// Card is spent with nowhere to build; stay in the hub phase.
		return
	}
	gs.Phase = RoadBuildingPlacePhase
	gs.RoadBuildingRoadsLeft = roads
}

func (gs *GameState) applyPlaceRoadBuildingRoad(eid int) {
	pid := gs.CurrentPlayer
	gs.placeRoad(pid, eid, true)
	gs.RoadBuildingRoadsLeft--

	if gs.RoadBuildingRoadsLeft <= 0 {
		gs.Phase = TradeBuildPlayPhase
	} else if len(gs.validRoadEdgesNoCost(pid)) == 0 {
		// Out of legal edges; the remaining free road is forfeited.
		gs.Phase = TradeBuildPlayPhase
		gs.RoadBuildingRoadsLeft = 0
	}

	gs.updateLongestRoad()
}

func (gs *GameState) applyPickMonopoly(res Resource) {
	pid := gs.CurrentPlayer
	stolen := 0
	for i := 0; i < gs.PlayerCount; i++ {
		if i == pid {
			continue
		}
		stolen += gs.Players[i].Resources[res]
		gs.Players[i].Resources[res] = 0
	}
	gs.Players[pid].Resources[res] += stolen
	gs.Phase = TradeBuildPlayPhase
}

func (gs *GameState) applyMaritimeTrade(give, receive Resource) {
	pid := gs.CurrentPlayer
	ratio := gs.tradeRatioFor(pid, give)
	cost := ResourceSet{}
	cost[give] = ratio
	gs.payToBank(pid, cost)
	gs.takeFromBank(pid, receive, 1)
}

// applyEndTurn promotes the cards bought this turn, runs the only victory
// check in the game, and hands the dice to the next player.
func (gs *GameState) applyEndTurn() {
	pid := gs.CurrentPlayer
	p := &gs.Players[pid]
	p.DevCards = append(p.DevCards, p.NewDevCards...)
	p.NewDevCards = nil
	p.PlayedDevCardThisTurn = false

	if gs.VictoryPoints(pid) >= VPToWin {
		gs.Phase = GameOverPhase
		gs.Winner = pid
		return
	}

	gs.CurrentPlayer = (pid + 1) % gs.PlayerCount
	gs.TurnNumber++
	gs.LastRoll = [2]int{}
	gs.Phase = RollDicePhase
}
