package game

// lrFrame is one step of the longest-road walk: the vertex reached and
// the edge taken to reach it (NoOwner for the starting vertex).
type lrFrame struct {
	vertex  int
	edge    int
	nextIdx int
}

// LongestRoad returns the length of the player's longest road: the
// maximum simple edge path through the player's road subgraph, starting
// from every vertex their roads touch. A vertex holding an opponent's
// building terminates a path (the arriving edge still counts). The walk
// uses an explicit frame stack so path length is bounded by road count,
// not call-stack depth.
func (gs *GameState) LongestRoad(player int) int {
	topo := gs.Topology
	playerEdge := make([]bool, topo.EdgeCount)
	any := false
	for eid, owner := range gs.EdgeRoads {
		if owner == player {
			playerEdge[eid] = true
			any = true
		}
	}
	if !any {
		return 0
	}

	startSet := make(map[int]bool)
	for eid, mine := range playerEdge {
		if mine {
			startSet[topo.EdgeEndpoints[eid][0]] = true
			startSet[topo.EdgeEndpoints[eid][1]] = true
		}
	}

	best := 0
	visited := make([]bool, topo.EdgeCount)
	for start := range startSet {
		stack := []lrFrame{{vertex: start, edge: NoOwner}}
		depth := 0
		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			adj := topo.VertexAdjacentEdges[f.vertex]
			advanced := false
			for f.nextIdx < len(adj) {
				eid := adj[f.nextIdx]
				f.nextIdx++
				if !playerEdge[eid] || visited[eid] {
					continue
				}
				ep := topo.EdgeEndpoints[eid]
				next := ep[0]
				if next == f.vertex {
					next = ep[1]
				}

				if depth+1 > best {
					best = depth + 1
				}
				b := gs.VertexBuildings[next]
				if b.Kind != NoBuilding && b.Owner != player {
					// Blocked: the edge counts, the walk may not continue.
					continue
				}
				visited[eid] = true
				depth++
				stack = append(stack, lrFrame{vertex: next, edge: eid})
				advanced = true
				break
			}
			if !advanced {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.edge != NoOwner {
					visited[top.edge] = false
					depth--
				}
			}
		}
	}
	return best
}

// updateLongestRoad re-evaluates the longest-road award after a board
// mutation. The holder keeps the award on ties; a challenger must be
// strictly longer. If the holder's own road shrinks below the threshold
// the award is recomputed from scratch, going to the first player index
// reaching the new maximum.
func (gs *GameState) updateLongestRoad() {
	holder := gs.LongestRoadPlayer
	length := gs.LongestRoadLength

	for pid := 0; pid < gs.PlayerCount; pid++ {
		l := gs.LongestRoad(pid)
		if l < MinLongestRoad {
			continue
		}
		if holder == NoOwner || l > length {
			holder = pid
			length = l
		}
	}

	if holder != NoOwner && gs.LongestRoad(holder) < MinLongestRoad {
		holder = NoOwner
		length = 0
		for pid := 0; pid < gs.PlayerCount; pid++ {
			l := gs.LongestRoad(pid)
			if l >= MinLongestRoad && l > length {
				holder = pid
				length = l
			}
		}
	}

	gs.LongestRoadPlayer = holder
	gs.LongestRoadLength = length
}

// updateLargestArmy applies the same first-claimant policy to knight
// counts, threshold MinLargestArmy.
func (gs *GameState) updateLargestArmy() {
	holder := gs.LargestArmyPlayer
	size := gs.LargestArmySize

	for pid := 0; pid < gs.PlayerCount; pid++ {
		knights := gs.Players[pid].KnightsPlayed
		if knights < MinLargestArmy {
			continue
		}
		if holder == NoOwner || knights > size {
			holder = pid
			size = knights
		}
	}

	gs.LargestArmyPlayer = holder
	gs.LargestArmySize = size
}

// VictoryPoints recomputes the player's score from scratch: 1 per
// settlement, 2 per city, 2 per held award, 1 per victory-point card
// (played or still pending). Nothing is cached.
func (gs *GameState) VictoryPoints(player int) int {
	vp := 0
	for _, b := range gs.VertexBuildings {
		if b.Kind == NoBuilding || b.Owner != player {
			continue
		}
		if b.Kind == City {
			vp += 2
		} else {
			vp++
		}
	}

	if gs.LongestRoadPlayer == player {
		vp += 2
	}
	if gs.LargestArmyPlayer == player {
		vp += 2
	}

	p := gs.Players[player]
	vp += countDevCards(p.DevCards, VictoryPointCard)
	vp += countDevCards(p.NewDevCards, VictoryPointCard)
	return vp
}
