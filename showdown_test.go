package pokerengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// rig replaces the dealt hole cards and the undealt deck so the board and the
// showdown outcome are fully determined.
func rig(g *Game, holeCards map[string][]Card, deck []Card) {
	for playerID, cards := range holeCards {
		g.GetPlayer(playerID).HoleCards = cards
	}
	g.Deck.Cards = deck
}

func TestSettle_OddChipGoesToFirstWinnerInSeatOrder(t *testing.T) {
	g := newTestGame(t, 150, 150, 150)
	rig(g, map[string][]Card{
		"Jeffrey": {c(Suit_Hearts, 10), c(Suit_Clubs, 2)},
		"Chuck":   {c(Suit_Diamonds, 10), c(Suit_Clubs, 3)},
		"Fred":    {c(Suit_Diamonds, 2), c(Suit_Diamonds, 3)},
	}, []Card{
		c(Suit_Hearts, 5),
		c(Suit_Diamonds, 6),
		c(Suit_Clubs, 7),
		c(Suit_Spades, 8),
		c(Suit_Hearts, 9),
	})

	assert.Nil(t, g.Raise("Fred", 15))
	assert.Nil(t, g.Call("Jeffrey"))
	assert.Nil(t, g.Call("Chuck"))
	assert.Equal(t, int64(45), g.Pot)

	for _, round := range []GameRound{GameRound_Flop, GameRound_Turn, GameRound_River} {
		assert.Equal(t, round, g.CurrentRound)
		assert.Nil(t, g.Check("Jeffrey"))
		assert.Nil(t, g.Check("Chuck"))
		assert.Nil(t, g.Check("Fred"))
	}

	assert.Equal(t, GameStatus_Finished, g.Status)
	assert.Equal(t, 1, len(g.Result.Pots))

	// Jeffrey and Chuck both hold the ten-high straight, Fred plays the board.
	// 45 does not split evenly: the odd chip goes to the earliest seat.
	pot := g.Result.Pots[0]
	assert.Equal(t, 2, len(pot.Winners))
	assert.Equal(t, "Jeffrey", pot.Winners[0].PlayerID)
	assert.Equal(t, int64(23), pot.Winners[0].Chips)
	assert.Equal(t, "Chuck", pot.Winners[1].PlayerID)
	assert.Equal(t, int64(22), pot.Winners[1].Chips)

	for _, result := range g.Result.Players {
		switch result.PlayerID {
		case "Jeffrey":
			assert.Equal(t, int64(8), result.Changed)
		case "Chuck":
			assert.Equal(t, int64(7), result.Changed)
		case "Fred":
			assert.Equal(t, int64(-15), result.Changed)
		}
	}
}

func TestSettle_SidePotHasItsOwnWinner(t *testing.T) {
	g := newTestGame(t, 40, 150, 150)
	rig(g, map[string][]Card{
		"Jeffrey": {c(Suit_Spades, Rank_Ace), c(Suit_Diamonds, Rank_Ace)},
		"Chuck":   {c(Suit_Spades, Rank_King), c(Suit_Diamonds, Rank_King)},
		"Fred":    {c(Suit_Clubs, 2), c(Suit_Diamonds, 7)},
	}, []Card{
		c(Suit_Hearts, 5),
		c(Suit_Diamonds, 6),
		c(Suit_Clubs, 9),
		c(Suit_Spades, Rank_Jack),
		c(Suit_Hearts, Rank_Queen),
	})

	assert.Nil(t, g.Call("Fred"))
	assert.Nil(t, g.Allin("Jeffrey"))
	assert.Nil(t, g.Call("Chuck"))
	assert.Nil(t, g.Call("Fred"))
	assert.Equal(t, GameRound_Flop, g.CurrentRound)
	assert.Equal(t, int64(120), g.Pot)

	// the two live stacks keep betting into a side pot Jeffrey cannot win
	assert.Nil(t, g.Raise("Chuck", 30))
	assert.Nil(t, g.Call("Fred"))
	assert.Equal(t, GameRound_Turn, g.CurrentRound)

	assert.Nil(t, g.Check("Chuck"))
	assert.Nil(t, g.Check("Fred"))
	assert.Nil(t, g.Check("Chuck"))
	assert.Nil(t, g.Check("Fred"))

	assert.Equal(t, GameStatus_Finished, g.Status)
	assert.Equal(t, 2, len(g.Pots))
	assert.Equal(t, int64(120), g.Pots[0].Amount)
	assert.Equal(t, int64(60), g.Pots[1].Amount)
	assert.Equal(t, []string{"Chuck", "Fred"}, g.Pots[1].EligiblePlayers)

	// aces take the main pot, kings take the side pot
	assert.Equal(t, "Jeffrey", g.Result.Pots[0].Winners[0].PlayerID)
	assert.Equal(t, int64(120), g.Result.Pots[0].Winners[0].Chips)
	assert.Equal(t, "Chuck", g.Result.Pots[1].Winners[0].PlayerID)
	assert.Equal(t, int64(60), g.Result.Pots[1].Winners[0].Chips)

	changedTotal := int64(0)
	for _, result := range g.Result.Players {
		changedTotal += result.Changed
		switch result.PlayerID {
		case "Jeffrey":
			assert.Equal(t, int64(120), result.Won)
			assert.Equal(t, int64(80), result.Changed)
			assert.Equal(t, int64(120), result.Final)
		case "Chuck":
			assert.Equal(t, int64(-10), result.Changed)
		case "Fred":
			assert.Equal(t, int64(-70), result.Changed)
		}
	}
	assert.Equal(t, int64(0), changedTotal)
}

func TestSettle_FoldOutSkipsEvaluation(t *testing.T) {
	g := newTestGame(t, 150, 150)

	assert.Nil(t, g.Fold("Jeffrey"))
	assert.Equal(t, GameStatus_Finished, g.Status)

	// nothing to evaluate with a single player standing
	for _, p := range g.Players {
		assert.Nil(t, p.Combination)
	}

	// the uncontested layer above the small blind still pays out
	assert.Equal(t, int64(15), TotalPotAmount(g.Pots))
	for _, pot := range g.Result.Pots {
		assert.Equal(t, 1, len(pot.Winners))
		assert.Equal(t, "Chuck", pot.Winners[0].PlayerID)
	}
}

func TestSettle_PotConservation(t *testing.T) {
	g := newTestGame(t, 150, 150, 150)

	assert.Nil(t, g.Call("Fred"))
	assert.Nil(t, g.Call("Jeffrey"))
	assert.Nil(t, g.Raise("Chuck", 10))
	assert.Nil(t, g.Call("Fred"))
	assert.Nil(t, g.Fold("Jeffrey"))

	for g.Status == GameStatus_InProgress {
		assert.Nil(t, g.Check(g.CurrentTurnPlayer))
	}

	actionTotal := int64(0)
	for _, round := range g.Rounds {
		for _, action := range round.Actions {
			actionTotal += action.Amount
		}
	}
	assert.Equal(t, g.Pot, actionTotal)
	assert.Equal(t, g.Pot, TotalPotAmount(g.Pots))

	wonTotal := int64(0)
	for _, result := range g.Result.Players {
		wonTotal += result.Won
	}
	assert.Equal(t, g.Pot, wonTotal)
}
