package game

import (
	"math"
	"sort"
)

// HarborType is a generic 3:1 harbor or a 2:1 harbor for one resource.
type HarborType int

const (
	GenericHarbor HarborType = iota
	LumberHarbor
	BrickHarbor
	WoolHarbor
	GrainHarbor
	OreHarbor
)

// harborFor maps a resource to its 2:1 harbor type.
func harborFor(r Resource) HarborType {
	return HarborType(int(LumberHarbor) + int(r))
}

// Harbor grants a discounted maritime trade ratio to players with a
// building on either of its two vertices.
type Harbor struct {
	Type     HarborType
	Vertices [2]int
}

// standardHarborTypes is the harbor sequence placed clockwise around the
// standard board.
var standardHarborTypes = []HarborType{
	GenericHarbor, GrainHarbor, OreHarbor, GenericHarbor, WoolHarbor,
	GenericHarbor, GenericHarbor, BrickHarbor, LumberHarbor,
}

type coastalEdge struct {
	eid    int
	v1, v2 int
}

// coastalEdges returns the edges on the board rim: both endpoints touch
// fewer than 3 hexes and the edge borders exactly one hex.
func coastalEdges(topo *BoardTopology) []coastalEdge {
	coastal := make([]bool, topo.VertexCount)
	for vid := 0; vid < topo.VertexCount; vid++ {
		coastal[vid] = len(topo.VertexAdjacentHexes[vid]) < 3
	}

	var edges []coastalEdge
	for eid, ep := range topo.EdgeEndpoints {
		v1, v2 := ep[0], ep[1]
		if !coastal[v1] || !coastal[v2] {
			continue
		}
		shared := 0
		for _, h := range topo.VertexAdjacentHexes[v1] {
			if containsInt(topo.VertexAdjacentHexes[v2], h) {
				shared++
			}
		}
		if shared == 1 {
			edges = append(edges, coastalEdge{eid: eid, v1: v1, v2: v2})
		}
	}
	return edges
}

// AssignHarbors places the 9 standard harbors on coastal edges at even
// angular spacing around the board center.
func AssignHarbors(topo *BoardTopology) []Harbor {
	edges := coastalEdges(topo)

	var cx, cy float64
	for _, c := range topo.HexCenters {
		cx += c.X
		cy += c.Y
	}
	cx /= float64(len(topo.HexCenters))
	cy /= float64(len(topo.HexCenters))

	angle := func(e coastalEdge) float64 {
		mx := (topo.VertexPos[e.v1].X + topo.VertexPos[e.v2].X) / 2
		my := (topo.VertexPos[e.v1].Y + topo.VertexPos[e.v2].Y) / 2
		return math.Atan2(my-cy, mx-cx)
	}
	sort.Slice(edges, func(i, j int) bool {
		return angle(edges[i]) < angle(edges[j])
	})

	total := len(edges)
	step := float64(total) / float64(len(standardHarborTypes))
	harbors := make([]Harbor, 0, len(standardHarborTypes))
	for i, ht := range standardHarborTypes {
		e := edges[int(float64(i)*step)%total]
		harbors = append(harbors, Harbor{Type: ht, Vertices: [2]int{e.v1, e.v2}})
	}
	return harbors
}

// TradeRatio returns the best maritime trade ratio for giving away the
// resource, over the harbors reachable from the player's building
// vertices: 4 by default, 3 for a generic harbor, 2 for a matching one.
func TradeRatio(harbors []Harbor, playerVertices []int, give Resource) int {
	ratio := 4
	for _, h := range harbors {
		if !containsInt(playerVertices, h.Vertices[0]) && !containsInt(playerVertices, h.Vertices[1]) {
			continue
		}
		if h.Type == GenericHarbor && ratio > 3 {
			ratio = 3
		}
		if h.Type == harborFor(give) {
			ratio = 2
		}
	}
	return ratio
}
