package game

// Resource represents one of the five tradeable resource kinds.
type Resource int

const (
	Lumber Resource = iota
	Brick
	Wool
	Grain
	Ore
)

// NumResources is the number of distinct resource kinds.
const NumResources = 5

var resourceNames = [NumResources]string{"lumber", "brick", "wool", "grain", "ore"}

func (r Resource) String() string {
	if r < 0 || int(r) >= NumResources {
		return "unknown"
	}
	return resourceNames[r]
}

// ResourceSet is a per-resource counter, indexed by Resource.
// Used for player hands, the bank, and build costs.
type ResourceSet [NumResources]int

// Total returns the number of cards in the set.
func (s ResourceSet) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Covers reports whether the set holds at least cost of every resource.
func (s ResourceSet) Covers(cost ResourceSet) bool {
	for r, n := range cost {
		if s[r] < n {
			return false
		}
	}
	return true
}

// Terrain represents a hex tile's terrain type.
type Terrain int

const (
	Forest Terrain = iota
	Hills
	Pasture
	Fields
	Mountains
	Desert
)

var terrainNames = []string{"forest", "hills", "pasture", "fields", "mountains", "desert"}

func (t Terrain) String() string {
	if t < 0 || int(t) >= len(terrainNames) {
		return "unknown"
	}
	return terrainNames[t]
}

// Produces returns the resource a terrain yields. Desert yields nothing.
func (t Terrain) Produces() (Resource, bool) {
	switch t {
	case Forest:
		return Lumber, true
	case Hills:
		return Brick, true
	case Pasture:
		return Wool, true
	case Fields:
		return Grain, true
	case Mountains:
		return Ore, true
	default:
		return 0, false
	}
}

// DevCard represents a development card kind.
type DevCard int

const (
	Knight DevCard = iota
	VictoryPointCard
	RoadBuilding
	YearOfPlenty
	Monopoly
)

var devCardNames = []string{"knight", "victory_point", "road_building", "year_of_plenty", "monopoly"}

func (c DevCard) String() string {
	if c < 0 || int(c) >= len(devCardNames) {
		return "unknown"
	}
	return devCardNames[c]
}

// Build costs, indexed by Resource (lumber, brick, wool, grain, ore).
var (
	RoadCost       = ResourceSet{1, 1, 0, 0, 0}
	SettlementCost = ResourceSet{1, 1, 1, 1, 0}
	CityCost       = ResourceSet{0, 0, 0, 2, 3}
	DevCardCost    = ResourceSet{0, 0, 1, 1, 1}
)

// Per-player piece limits and global counters for the standard game.
const (
	MaxSettlements  = 5
	MaxCities       = 4
	MaxRoads        = 15
	BankPerResource = 19

	VPToWin        = 10
	MinLongestRoad = 5
	MinLargestArmy = 3

	DiscardHandLimit = 7
)

// terrainDistribution is the standard 19-tile terrain mix.
var terrainDistribution = []Terrain{
	Forest, Forest, Forest, Forest,
	Hills, Hills, Hills,
	Pasture, Pasture, Pasture, Pasture,
	Fields, Fields, Fields, Fields,
	Mountains, Mountains, Mountains,
	Desert,
}

// numberTokenDistribution is the standard set of 18 dice-sum tokens
// (one per non-desert tile; 7 is never a token).
var numberTokenDistribution = []int{
	2,
	3, 3,
	4, 4,
	5, 5,
	6, 6,
	8, 8,
	9, 9,
	10, 10,
	11, 11,
	12,
}

// devCardDistribution is the standard 25-card development deck.
var devCardDistribution = []DevCard{
	Knight, Knight, Knight, Knight, Knight, Knight, Knight,
	Knight, Knight, Knight, Knight, Knight, Knight, Knight,
	VictoryPointCard, VictoryPointCard, VictoryPointCard, VictoryPointCard, VictoryPointCard,
	RoadBuilding, RoadBuilding,
	YearOfPlenty, YearOfPlenty,
	Monopoly, Monopoly,
}
