package pokerengine

import (
	"github.com/thoas/go-funk"
)

type GameResult struct {
	Pots    []*PotResult    `json:"pots"`
	Players []*PlayerResult `json:"players"`
}

type PotResult struct {
	Amount          int64     `json:"amount"`
	EligiblePlayers []string  `json:"eligible_players"`
	Winners         []*Winner `json:"winners"`
}

type Winner struct {
	PlayerID string `json:"player_id"`
	Chips    int64  `json:"chips"`
}

type PlayerResult struct {
	PlayerID string `json:"player_id"`
	Won      int64  `json:"won"`
	Changed  int64  `json:"changed"`
	Final    int64  `json:"final"`
}

// settle closes the hand: it derives per-player contributions from the full
// action history, layers them into pots, evaluates the surviving hands and
// splits each pot among its best-ranked eligible players. A pot that splits
// unevenly pays the remainder to the first tied winner in seat order.
func (g *Game) settle() error {
	contributed := make(map[string]int64)
	actionTotal := int64(0)
	for _, round := range g.Rounds {
		for _, action := range round.Actions {
			contributed[action.PlayerID] += action.Amount
			actionTotal += action.Amount
		}
	}

	// the running pot total and the action log must agree before any chips move
	if actionTotal != g.Pot {
		g.Status = GameStatus_ReconciliationRequired
		g.RefreshUpdateAt()
		return ErrGamePotMismatch
	}

	folded := make(map[string]bool)
	seatOrder := make([]string, 0, len(g.Players))
	for _, p := range g.Players {
		seatOrder = append(seatOrder, p.PlayerID)
		folded[p.PlayerID] = p.Status == PlayerStatus_Folded
	}

	pots := ComputePots(contributed, folded, seatOrder)
	if TotalPotAmount(pots) != g.Pot {
		g.Status = GameStatus_ReconciliationRequired
		g.RefreshUpdateAt()
		return ErrGamePotMismatch
	}
	g.Pots = pots

	// folded players forfeit all claims; everyone else shows down
	contenders := g.nonFoldedPlayers()
	if len(contenders) > 1 {
		for _, p := range contenders {
			combination := Evaluate(p.HoleCards, g.CommunityCards, g.Options.RequiredHoleCardsCount)
			p.Combination = &combination
		}
	}

	winnings := make(map[string]int64)
	potResults := make([]*PotResult, 0, len(pots))
	for _, pot := range pots {
		eligible := pot.EligiblePlayers
		if len(eligible) == 0 {
			// every contributor to this layer folded, so it can only exist
			// when the hand ended by folds; it goes to the last player standing
			eligible = funk.Map(contenders, func(p *PlayerState) string {
				return p.PlayerID
			}).([]string)
		}

		winners := g.potWinners(eligible)
		share := pot.Amount / int64(len(winners))
		remainder := pot.Amount % int64(len(winners))

		potResult := &PotResult{
			Amount:          pot.Amount,
			EligiblePlayers: pot.EligiblePlayers,
			Winners:         make([]*Winner, 0, len(winners)),
		}
		for idx, playerID := range winners {
			chips := share
			if idx == 0 {
				chips += remainder
			}
			winnings[playerID] += chips
			potResult.Winners = append(potResult.Winners, &Winner{PlayerID: playerID, Chips: chips})
		}
		potResults = append(potResults, potResult)
	}

	result := &GameResult{
		Pots:    potResults,
		Players: make([]*PlayerResult, 0, len(g.Players)),
	}
	for _, p := range g.Players {
		won := winnings[p.PlayerID]
		result.Players = append(result.Players, &PlayerResult{
			PlayerID: p.PlayerID,
			Won:      won,
			Changed:  won - p.TotalCommitted,
			Final:    p.StackSize + won,
		})
	}

	g.Result = result
	g.Rounds = append(g.Rounds, &Round{Name: GameRound_Showdown, Actions: make([]Action, 0)})
	g.CurrentRound = GameRound_Showdown
	g.CurrentTurnPlayer = ""
	g.Status = GameStatus_Finished
	g.RefreshUpdateAt()

	return nil
}

// potWinners returns the eligible players tied for the best hand, in seat
// order. With a single contender left there is nothing to evaluate.
func (g *Game) potWinners(eligible []string) []string {
	if len(eligible) == 1 {
		return eligible
	}

	var best *Combination
	for _, playerID := range eligible {
		p := g.GetPlayer(playerID)
		if p == nil || p.Combination == nil {
			continue
		}
		if best == nil || Compare(*p.Combination, *best) > 0 {
			best = p.Combination
		}
	}

	if best == nil {
		return eligible
	}

	return funk.FilterString(eligible, func(playerID string) bool {
		p := g.GetPlayer(playerID)
		return p != nil && p.Combination != nil && Compare(*p.Combination, *best) == 0
	})
}
