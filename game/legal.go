package game

// LegalActions returns every action legal in the current phase, for the
// acting player. The set is empty only in GAME_OVER.
func (gs *GameState) LegalActions() []Action {
	switch gs.Phase {
	case SetupPlaceSettlementPhase:
		var actions []Action
		for _, vid := range gs.validSetupSettlementVertices() {
			actions = append(actions, Action{Type: PlaceSetupSettlementAction, Vertex: vid})
		}
		return actions

	case SetupPlaceRoadPhase:
		var actions []Action
		for _, eid := range gs.validSetupRoadEdges() {
			actions = append(actions, Action{Type: PlaceSetupRoadAction, Edge: eid})
		}
		return actions

	case RollDicePhase:
		return []Action{{Type: RollDiceAction}}

	case DiscardPhase:
		p := gs.Players[gs.PendingDiscards[0]]
		count := p.Resources.Total() / 2
		var actions []Action
		for _, set := range enumerateDiscards(p.Resources, count) {
			actions = append(actions, Action{Type: DiscardResourcesAction, Discard: set})
		}
		return actions

	case MoveRobberPhase:
		var actions []Action
		for hid := range gs.HexTerrains {
			if hid != gs.RobberHex {
				actions = append(actions, Action{Type: MoveRobberAction, Hex: hid})
			}
		}
		return actions

	case StealPhase:
		targets := gs.stealTargets(gs.RobberHex, gs.CurrentPlayer)
		if len(targets) == 0 {
			return []Action{{Type: StealResourceAction, Victim: NoOwner}}
		}
		var actions []Action
		for _, t := range targets {
			actions = append(actions, Action{Type: StealResourceAction, Victim: t})
		}
		return actions

	case TradeBuildPlayPhase:
		return gs.tradeBuildPlayActions()

	case RoadBuildingPlacePhase:
		var actions []Action
		for _, eid := range gs.validRoadEdgesNoCost(gs.CurrentPlayer) {
			actions = append(actions, Action{Type: PlaceRoadBuildingRoadAction, Edge: eid})
		}
		return actions

	case YearOfPlentyPickPhase:
		var actions []Action
		for r1 := Resource(0); r1 < NumResources; r1++ {
			for r2 := r1; r2 < NumResources; r2++ {
				if r1 == r2 {
					if gs.Bank[r1] >= 2 {
						actions = append(actions, Action{Type: PickYearOfPlentyAction, Give: r1, Receive: r2})
					}
				} else if gs.Bank[r1] >= 1 && gs.Bank[r2] >= 1 {
					actions = append(actions, Action{Type: PickYearOfPlentyAction, Give: r1, Receive: r2})
				}
			}
		}
		return actions

	case MonopolyPickPhase:
		var actions []Action
		for r := Resource(0); r < NumResources; r++ {
			actions = append(actions, Action{Type: PickMonopolyAction, Give: r})
		}
		return actions

	default:
		return nil
	}
}

// tradeBuildPlayActions enumerates the hub phase: builds, card purchase
// and plays, maritime trades, and END_TURN (always legal here).
func (gs *GameState) tradeBuildPlayActions() []Action {
	pid := gs.CurrentPlayer
	var actions []Action

	for _, eid := range gs.validRoadEdges(pid) {
		actions = append(actions, Action{Type: BuildRoadAction, Edge: eid})
	}
	for _, vid := range gs.validSettlementVertices(pid) {
		actions = append(actions, Action{Type: BuildSettlementAction, Vertex: vid})
	}
	for _, vid := range gs.validCityVertices(pid) {
		actions = append(actions, Action{Type: BuildCityAction, Vertex: vid})
	}

	if gs.canBuyDevCard(pid) {
		actions = append(actions, Action{Type: BuyDevCardAction})
	}
	if gs.canPlayDevCard(pid, Knight) {
		actions = append(actions, Action{Type: PlayKnightAction})
	}
	if gs.canPlayDevCard(pid, RoadBuilding) {
		actions = append(actions, Action{Type: PlayRoadBuildingAction})
	}
	if gs.canPlayDevCard(pid, YearOfPlenty) {
		actions = append(actions, Action{Type: PlayYearOfPlentyAction})
	}
	if gs.canPlayDevCard(pid, Monopoly) {
		actions = append(actions, Action{Type: PlayMonopolyAction})
	}

	for give := Resource(0); give < NumResources; give++ {
		for receive := Resource(0); receive < NumResources; receive++ {
			if gs.isValidMaritimeTrade(pid, give, receive) {
				actions = append(actions, Action{Type: MaritimeTradeAction, Give: give, Receive: receive})
			}
		}
	}

	actions = append(actions, Action{Type: EndTurnAction})
	return actions
}

// vertexAccessible reports whether the player can extend a road through
// this vertex: their own building sits there, or the vertex is empty and
// one of their roads touches it. An opponent building blocks passage.
func (gs *GameState) vertexAccessible(player, vid int) bool {
	b := gs.VertexBuildings[vid]
	if b.Kind != NoBuilding {
		return b.Owner == player
	}
	for _, eid := range gs.Topology.VertexAdjacentEdges[vid] {
		if gs.EdgeRoads[eid] == player {
			return true
		}
	}
	return false
}

// validRoadEdgesNoCost lists buildable road edges ignoring resources,
// for the free roads of the road-building card.
func (gs *GameState) validRoadEdgesNoCost(player int) []int {
	if gs.Players[player].RemainingRoads <= 0 {
		return nil
	}
	var valid []int
	for eid, ep := range gs.Topology.EdgeEndpoints {
		if gs.EdgeRoads[eid] != NoOwner {
			continue
		}
		if gs.vertexAccessible(player, ep[0]) || gs.vertexAccessible(player, ep[1]) {
			valid = append(valid, eid)
		}
	}
	return valid
}

func (gs *GameState) validRoadEdges(player int) []int {
	p := gs.Players[player]
	if p.RemainingRoads <= 0 || !p.Resources.Covers(RoadCost) {
		return nil
	}
	return gs.validRoadEdgesNoCost(player)
}

// isValidSettlementVertex applies the main-game rules: empty vertex, no
// occupied neighbor, and connected to the player's road network.
func (gs *GameState) isValidSettlementVertex(player, vid int) bool {
	if gs.VertexBuildings[vid].Kind != NoBuilding {
		return false
	}
	for _, adj := range gs.Topology.VertexAdjacentVertices[vid] {
		if gs.VertexBuildings[adj].Kind != NoBuilding {
			return false
		}
	}
	for _, eid := range gs.Topology.VertexAdjacentEdges[vid] {
		if gs.EdgeRoads[eid] == player {
			return true
		}
	}
	return false
}

func (gs *GameState) validSettlementVertices(player int) []int {
	p := gs.Players[player]
	if p.RemainingSettlements <= 0 || !p.Resources.Covers(SettlementCost) {
		return nil
	}
	var valid []int
	for vid := 0; vid < gs.Topology.VertexCount; vid++ {
		if gs.isValidSettlementVertex(player, vid) {
			valid = append(valid, vid)
		}
	}
	return valid
}

func (gs *GameState) isValidCityVertex(player, vid int) bool {
	b := gs.VertexBuildings[vid]
	return b.Kind == Settlement && b.Owner == player
}

func (gs *GameState) validCityVertices(player int) []int {
	p := gs.Players[player]
	if p.RemainingCities <= 0 || !p.Resources.Covers(CityCost) {
		return nil
	}
	var valid []int
	for vid := 0; vid < gs.Topology.VertexCount; vid++ {
		if gs.isValidCityVertex(player, vid) {
			valid = append(valid, vid)
		}
	}
	return valid
}

// isValidSetupSettlementVertex drops the road-connectivity requirement:
// during setup only the distance rule applies.
func (gs *GameState) isValidSetupSettlementVertex(vid int) bool {
	if gs.VertexBuildings[vid].Kind != NoBuilding {
		return false
	}
	for _, adj := range gs.Topology.VertexAdjacentVertices[vid] {
		if gs.VertexBuildings[adj].Kind != NoBuilding {
			return false
		}
	}
	return true
}

func (gs *GameState) validSetupSettlementVertices() []int {
	var valid []int
	for vid := 0; vid < gs.Topology.VertexCount; vid++ {
		if gs.isValidSetupSettlementVertex(vid) {
			valid = append(valid, vid)
		}
	}
	return valid
}

// validSetupRoadEdges restricts the setup road to empty edges touching
// the settlement just placed.
func (gs *GameState) validSetupRoadEdges() []int {
	if gs.LastPlacedVertex == NoOwner {
		return nil
	}
	var valid []int
	for _, eid := range gs.Topology.VertexAdjacentEdges[gs.LastPlacedVertex] {
		if gs.EdgeRoads[eid] == NoOwner {
			valid = append(valid, eid)
		}
	}
	return valid
}

// stealTargets lists opponents with a building on the robbed hex and a
// non-empty hand, in ascending player order.
func (gs *GameState) stealTargets(hid, thief int) []int {
	seen := make(map[int]bool)
	var targets []int
	for pid := 0; pid < gs.PlayerCount; pid++ {
		if pid == thief {
			continue
		}
		for _, vid := range gs.Topology.HexVertices[hid] {
			b := gs.VertexBuildings[vid]
			if b.Kind != NoBuilding && b.Owner == pid && !seen[pid] {
				if gs.Players[pid].Resources.Total() > 0 {
					seen[pid] = true
					targets = append(targets, pid)
				}
			}
		}
	}
	return targets
}

// tradeRatioFor returns the player's best ratio for giving the resource.
func (gs *GameState) tradeRatioFor(player int, give Resource) int {
	return TradeRatio(gs.Harbors, gs.playerVertices(player), give)
}

func (gs *GameState) isValidMaritimeTrade(player int, give, receive Resource) bool {
	if give == receive {
		return false
	}
	if gs.Players[player].Resources[give] < gs.tradeRatioFor(player, give) {
		return false
	}
	return gs.Bank[receive] > 0
}

func (gs *GameState) canBuyDevCard(player int) bool {
	return len(gs.DevCardDeck) > 0 && gs.Players[player].Resources.Covers(DevCardCost)
}

func (gs *GameState) canPlayDevCard(player int, kind DevCard) bool {
	p := gs.Players[player]
	if p.PlayedDevCardThisTurn || kind == VictoryPointCard {
		return false
	}
	return countDevCards(p.DevCards, kind) > 0
}

// enumerateDiscards yields every way to discard exactly count cards from
// the hand: bounded backtracking over the five resource slots with a
// feasibility prune on the remaining supply.
func enumerateDiscards(hand ResourceSet, count int) []ResourceSet {
	suffix := [NumResources + 1]int{}
	for r := NumResources - 1; r >= 0; r-- {
		suffix[r] = suffix[r+1] + hand[r]
	}

	var results []ResourceSet
	var chosen ResourceSet
	var recurse func(idx, remaining int)
	recurse = func(idx, remaining int) {
		if idx == NumResources {
			if remaining == 0 {
				results = append(results, chosen)
			}
			return
		}
		maxTake := hand[idx]
		if remaining < maxTake {
			maxTake = remaining
		}
		for take := 0; take <= maxTake; take++ {
			if remaining-take > suffix[idx+1] {
				continue
			}
			chosen[idx] = take
			recurse(idx+1, remaining-take)
		}
		chosen[idx] = 0
	}
	recurse(0, count)
	return results
}
