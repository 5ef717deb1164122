package game

// PlayerState holds everything owned by one player that is not on the
// board: the resource hand, development cards, and remaining pieces.
type PlayerState struct {
	ID        int
	Resources ResourceSet

	DevCards    []DevCard // playable
	NewDevCards []DevCard // bought this turn, playable next turn

	KnightsPlayed int

	RemainingSettlements int
	RemainingCities      int
	RemainingRoads       int

	PlayedDevCardThisTurn bool
}

// NewPlayerState returns a player with full piece stocks and an empty hand.
func NewPlayerState(id int) PlayerState {
	return PlayerState{
		ID:                   id,
		RemainingSettlements: MaxSettlements,
		RemainingCities:      MaxCities,
		RemainingRoads:       MaxRoads,
	}
}

// Copy returns a deep copy of the player.
func (p PlayerState) Copy() PlayerState {
	c := p
	c.DevCards = append([]DevCard(nil), p.DevCards...)
	c.NewDevCards = append([]DevCard(nil), p.NewDevCards...)
	return c
}

// countDevCards counts cards of the given kind in a pile.
func countDevCards(cards []DevCard, kind DevCard) int {
	n := 0
	for _, c := range cards {
		if c == kind {
			n++
		}
	}
	return n
}

// removeDevCard removes one card of the given kind, if present.
func removeDevCard(cards []DevCard, kind DevCard) []DevCard {
	for i, c := range cards {
		if c == kind {
			return append(cards[:i:i], cards[i+1:]...)
		}
	}
	return cards
}
