package game

import "fmt"

// ActionType represents the kind of action a player can perform.
type ActionType int

const (
	PlaceSetupSettlementAction ActionType = iota
	PlaceSetupRoadAction
	RollDiceAction
	DiscardResourcesAction
	MoveRobberAction
	StealResourceAction
	BuildRoadAction
	BuildSettlementAction
	BuildCityAction
	BuyDevCardAction
	PlayKnightAction
	PlayRoadBuildingAction
	PlaceRoadBuildingRoadAction
	PlayYearOfPlentyAction
	PickYearOfPlentyAction
	PlayMonopolyAction
	PickMonopolyAction
	MaritimeTradeAction
	EndTurnAction
)

var actionNames = []string{
	"PLACE_SETUP_SETTLEMENT",
	"PLACE_SETUP_ROAD",
	"ROLL_DICE",
	"DISCARD_RESOURCES",
	"MOVE_ROBBER",
	"STEAL_RESOURCE",
	"BUILD_ROAD",
	"BUILD_SETTLEMENT",
	"BUILD_CITY",
	"BUY_DEV_CARD",
	"PLAY_KNIGHT",
	"PLAY_ROAD_BUILDING",
	"PLACE_ROAD_BUILDING_ROAD",
	"PLAY_YEAR_OF_PLENTY",
	"PICK_YEAR_OF_PLENTY_RESOURCES",
	"PLAY_MONOPOLY",
	"PICK_MONOPOLY_RESOURCE",
	"MARITIME_TRADE",
	"END_TURN",
}

func (t ActionType) String() string {
	if t < 0 || int(t) >= len(actionNames) {
		return "UNKNOWN"
	}
	return actionNames[t]
}

// Action is one legal move, tagged by Type. Only the fields relevant to
// the type are meaningful:
//
//	PlaceSetupSettlement, BuildSettlement, BuildCity  -> Vertex
//	PlaceSetupRoad, BuildRoad, PlaceRoadBuildingRoad  -> Edge
//	MoveRobber                                        -> Hex
//	StealResource                                     -> Victim (-1 = nobody to rob)
//	DiscardResources                                  -> Discard
//	PickYearOfPlenty                                  -> Give=first pick, Receive=second pick
//	PickMonopoly                                      -> Give
//	MaritimeTrade                                     -> Give, Receive
//	RollDice, BuyDevCard, Play*, EndTurn              -> no payload
type Action struct {
	Type    ActionType
	Vertex  int
	Edge    int
	Hex     int
	Victim  int
	Give    Resource
	Receive Resource
	Discard ResourceSet
}

func (a Action) String() string {
	switch a.Type {
	case PlaceSetupSettlementAction, BuildSettlementAction, BuildCityAction:
		return fmt.Sprintf("%v(vertex=%d)", a.Type, a.Vertex)
	case PlaceSetupRoadAction, BuildRoadAction, PlaceRoadBuildingRoadAction:
		return fmt.Sprintf("%v(edge=%d)", a.Type, a.Edge)
	case MoveRobberAction:
		return fmt.Sprintf("%v(hex=%d)", a.Type, a.Hex)
	case StealResourceAction:
		return fmt.Sprintf("%v(victim=%d)", a.Type, a.Victim)
	case DiscardResourcesAction:
		return fmt.Sprintf("%v(%v)", a.Type, a.Discard)
	case PickYearOfPlentyAction:
		return fmt.Sprintf("%v(%v,%v)", a.Type, a.Give, a.Receive)
	case PickMonopolyAction:
		return fmt.Sprintf("%v(%v)", a.Type, a.Give)
	case MaritimeTradeAction:
		return fmt.Sprintf("%v(give=%v,receive=%v)", a.Type, a.Give, a.Receive)
	default:
		return a.Type.String()
	}
}

// IllegalActionError reports an action that is not legal in the phase it
// was submitted in. The state it was applied to is left untouched.
type IllegalActionError struct {
	Phase  Phase
	Action Action
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %v in phase %v", e.Action, e.Phase)
}
