package game

import "math"

// HexCoord is an axial (pointy-top) hex coordinate.
type HexCoord struct {
	Q, R int
}

// Point is a planar position used for vertex deduplication and harbor angles.
type Point struct {
	X, Y float64
}

// HexSize is the hex circumradius used when laying out the standard board.
const HexSize = 50.0

// pointEps is the tolerance for merging hex corners into shared vertices.
// Tight enough for the standard layout; a generalized board shape would
// need a sturdier dedup scheme.
const pointEps = 0.01

// StandardHexCoords is the standard 3-4-5-4-3 diamond of 19 hexes.
var StandardHexCoords = []HexCoord{
	{0, -2}, {1, -2}, {2, -2},
	{-1, -1}, {0, -1}, {1, -1}, {2, -1},
	{-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0},
	{-2, 1}, {-1, 1}, {0, 1}, {1, 1},
	{-2, 2}, {-1, 2}, {0, 2},
}

// BoardTopology holds the immutable board graph: hex centers, vertex
// positions, edge endpoints, and the adjacency tables derived from them.
// Built once per game and shared by reference across state copies.
type BoardTopology struct {
	HexCoords   []HexCoord
	HexCenters  []Point
	VertexPos   []Point
	VertexCount int
	EdgeCount   int

	VertexAdjacentVertices [][]int  // [vid] -> neighbor vids
	VertexAdjacentEdges    [][]int  // [vid] -> incident eids
	VertexAdjacentHexes    [][]int  // [vid] -> touching hids
	EdgeEndpoints          [][2]int // [eid] -> (v1, v2), v1 < v2
	EdgeAdjacentEdges      [][]int  // [eid] -> eids sharing a vertex
	HexVertices            [][]int  // [hid] -> 6 corner vids, in cycle order
	HexEdges               [][]int  // [hid] -> 6 border eids, in cycle order
}

func hexToPixel(c HexCoord, size float64) Point {
	x := size * (math.Sqrt(3)*float64(c.Q) + math.Sqrt(3)/2*float64(c.R))
	y := size * 1.5 * float64(c.R)
	return Point{x, y}
}

func hexCorner(center Point, size float64, i int) Point {
	angle := math.Pi / 180 * float64(60*i-30)
	return Point{
		X: center.X + size*math.Cos(angle),
		Y: center.Y + size*math.Sin(angle),
	}
}

func pointsEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) < pointEps && math.Abs(a.Y-b.Y) < pointEps
}

// BuildTopology computes the board graph for the given hex layout.
// Deterministic: the same coordinate list always produces the same
// vertex and edge indexing.
func BuildTopology(coords []HexCoord, size float64) *BoardTopology {
	centers := make([]Point, len(coords))
	for i, c := range coords {
		centers[i] = hexToPixel(c, size)
	}

	// Deduplicate hex corners into shared vertices.
	var vertexPos []Point
	hexVertices := make([][]int, len(coords))
	for hid, center := range centers {
		vids := make([]int, 6)
		for i := 0; i < 6; i++ {
			corner := hexCorner(center, size, i)
			existing := -1
			for vid, vp := range vertexPos {
				if pointsEqual(vp, corner) {
					existing = vid
					break
				}
			}
			if existing >= 0 {
				vids[i] = existing
			} else {
				vids[i] = len(vertexPos)
				vertexPos = append(vertexPos, corner)
			}
		}
		hexVertices[hid] = vids
	}
	vertexCount := len(vertexPos)

	// Consecutive corner pairs form edges, deduplicated by (min,max) key.
	var edgeEndpoints [][2]int
	edgeByKey := make(map[[2]int]int)
	hexEdges := make([][]int, len(coords))
	for hid := range coords {
		vids := hexVertices[hid]
		eids := make([]int, 6)
		for i := 0; i < 6; i++ {
			v1, v2 := vids[i], vids[(i+1)%6]
			if v1 > v2 {
				v1, v2 = v2, v1
			}
			key := [2]int{v1, v2}
			eid, ok := edgeByKey[key]
			if !ok {
				eid = len(edgeEndpoints)
				edgeByKey[key] = eid
				edgeEndpoints = append(edgeEndpoints, key)
			}
			eids[i] = eid
		}
		hexEdges[hid] = eids
	}
	edgeCount := len(edgeEndpoints)

	vAdjHexes := make([][]int, vertexCount)
	for hid := range coords {
		for _, vid := range hexVertices[hid] {
			if !containsInt(vAdjHexes[vid], hid) {
				vAdjHexes[vid] = append(vAdjHexes[vid], hid)
			}
		}
	}

	vAdjEdges := make([][]int, vertexCount)
	for eid, ep := range edgeEndpoints {
		vAdjEdges[ep[0]] = append(vAdjEdges[ep[0]], eid)
		vAdjEdges[ep[1]] = append(vAdjEdges[ep[1]], eid)
	}

	vAdjVerts := make([][]int, vertexCount)
	for _, ep := range edgeEndpoints {
		if !containsInt(vAdjVerts[ep[0]], ep[1]) {
			vAdjVerts[ep[0]] = append(vAdjVerts[ep[0]], ep[1])
		}
		if !containsInt(vAdjVerts[ep[1]], ep[0]) {
			vAdjVerts[ep[1]] = append(vAdjVerts[ep[1]], ep[0])
		}
	}

	eAdjEdges := make([][]int, edgeCount)
	for eid, ep := range edgeEndpoints {
		for _, v := range ep {
			for _, adj := range vAdjEdges[v] {
				if adj != eid && !containsInt(eAdjEdges[eid], adj) {
					eAdjEdges[eid] = append(eAdjEdges[eid], adj)
				}
			}
		}
	}

	return &BoardTopology{
		HexCoords:              append([]HexCoord(nil), coords...),
		HexCenters:             centers,
		VertexPos:              vertexPos,
		VertexCount:            vertexCount,
		EdgeCount:              edgeCount,
		VertexAdjacentVertices: vAdjVerts,
		VertexAdjacentEdges:    vAdjEdges,
		VertexAdjacentHexes:    vAdjHexes,
		EdgeEndpoints:          edgeEndpoints,
		EdgeAdjacentEdges:      eAdjEdges,
		HexVertices:            hexVertices,
		HexEdges:               hexEdges,
	}
}

// StandardTopology builds the standard 19-hex board.
func StandardTopology() *BoardTopology {
	return BuildTopology(StandardHexCoords, HexSize)
}

func containsInt(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
