package pokerengine

import (
	"github.com/thoas/go-funk"
)

// Pot is a main or side pot produced after all betting for a hand is final.
type Pot struct {
	Amount          int64            `json:"amount"`
	Contributors    map[string]int64 `json:"contributors"`
	EligiblePlayers []string         `json:"eligible_players"`
}

// ComputePots layers the full per-player contribution totals into one main
// pot and zero or more side pots. Each iteration takes the minimum remaining
// contribution among players with chips left to collect, so players all-in
// for the same amount always land in the same pot. Folded players' chips stay
// in whichever pot they were layered into, but folded players are never
// eligible to win any pot. seatOrder fixes the iteration order so output is
// deterministic.
func ComputePots(contributed map[string]int64, folded map[string]bool, seatOrder []string) []Pot {
	remaining := make(map[string]int64)
	for playerID, chips := range contributed {
		remaining[playerID] = chips
	}

	pots := make([]Pot, 0)
	for {
		actives := funk.FilterString(seatOrder, func(playerID string) bool {
			return remaining[playerID] > 0
		})
		if len(actives) == 0 {
			break
		}

		layer := remaining[actives[0]]
		for _, playerID := range actives {
			if remaining[playerID] < layer {
				layer = remaining[playerID]
			}
		}

		pot := Pot{
			Contributors: make(map[string]int64),
			EligiblePlayers: funk.FilterString(actives, func(playerID string) bool {
				return !folded[playerID]
			}),
		}
		for _, playerID := range actives {
			pot.Contributors[playerID] = layer
			pot.Amount += layer
			remaining[playerID] -= layer
		}

		pots = append(pots, pot)
	}

	return pots
}

// TotalPotAmount sums the chips across all pots.
func TotalPotAmount(pots []Pot) int64 {
	total := int64(0)
	for _, pot := range pots {
		total += pot.Amount
	}
	return total
}
