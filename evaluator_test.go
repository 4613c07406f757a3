package pokerengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func c(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

func TestEvaluate_Categories(t *testing.T) {
	board := []Card{
		c(Suit_Spades, 10),
		c(Suit_Spades, Rank_Jack),
		c(Suit_Spades, Rank_Queen),
		c(Suit_Hearts, 2),
		c(Suit_Diamonds, 3),
	}

	royal := Evaluate([]Card{c(Suit_Spades, Rank_King), c(Suit_Spades, Rank_Ace)}, board, 0)
	assert.Equal(t, HandCategory_RoyalFlush, royal.Category)

	straightFlush := Evaluate([]Card{c(Suit_Spades, 8), c(Suit_Spades, 9)}, board, 0)
	assert.Equal(t, HandCategory_StraightFlush, straightFlush.Category)

	quads := Evaluate([]Card{c(Suit_Hearts, 10), c(Suit_Diamonds, 10)}, append([]Card{c(Suit_Clubs, 10)}, board[:4]...), 0)
	assert.Equal(t, HandCategory_FourOfAKind, quads.Category)

	flush := Evaluate([]Card{c(Suit_Spades, 2), c(Suit_Spades, 7)}, board, 0)
	assert.Equal(t, HandCategory_Flush, flush.Category)

	straight := Evaluate([]Card{c(Suit_Hearts, 8), c(Suit_Diamonds, 9)}, board, 0)
	assert.Equal(t, HandCategory_Straight, straight.Category)

	assert.True(t, Compare(royal, straightFlush) > 0)
	assert.True(t, Compare(straightFlush, quads) > 0)
	assert.True(t, Compare(quads, flush) > 0)
	assert.True(t, Compare(flush, straight) > 0)
}

func TestEvaluate_WheelStraight(t *testing.T) {
	board := []Card{
		c(Suit_Hearts, 2),
		c(Suit_Diamonds, 3),
		c(Suit_Clubs, 4),
		c(Suit_Spades, Rank_King),
		c(Suit_Hearts, Rank_Queen),
	}

	wheel := Evaluate([]Card{c(Suit_Spades, Rank_Ace), c(Suit_Diamonds, 5)}, board, 0)
	assert.Equal(t, HandCategory_Straight, wheel.Category)
	// the ace plays low: a wheel is five high
	assert.Equal(t, 5, wheel.Power[1])

	sixHigh := Evaluate([]Card{c(Suit_Spades, 5), c(Suit_Diamonds, 6)}, board, 0)
	assert.Equal(t, HandCategory_Straight, sixHigh.Category)
	assert.True(t, Compare(sixHigh, wheel) > 0)
}

func TestEvaluate_KickerDecides(t *testing.T) {
	board := []Card{
		c(Suit_Hearts, Rank_King),
		c(Suit_Diamonds, Rank_King),
		c(Suit_Clubs, 7),
		c(Suit_Spades, 4),
		c(Suit_Hearts, 2),
	}

	aceKicker := Evaluate([]Card{c(Suit_Spades, Rank_Ace), c(Suit_Diamonds, 9)}, board, 0)
	queenKicker := Evaluate([]Card{c(Suit_Spades, Rank_Queen), c(Suit_Diamonds, 9)}, board, 0)
	assert.Equal(t, HandCategory_OnePair, aceKicker.Category)
	assert.Equal(t, HandCategory_OnePair, queenKicker.Category)
	assert.True(t, Compare(aceKicker, queenKicker) > 0)
}

func TestEvaluate_ExactTie(t *testing.T) {
	board := []Card{
		c(Suit_Hearts, 5),
		c(Suit_Diamonds, 6),
		c(Suit_Clubs, 7),
		c(Suit_Spades, 8),
		c(Suit_Hearts, 9),
	}

	a := Evaluate([]Card{c(Suit_Spades, 10), c(Suit_Clubs, 2)}, board, 0)
	b := Evaluate([]Card{c(Suit_Diamonds, 10), c(Suit_Hearts, 3)}, board, 0)
	assert.Equal(t, 0, Compare(a, b))
}

func TestEvaluate_OmahaRequiresTwoHoleCards(t *testing.T) {
	// four spades on the board, one spade in the hand: a flush needs two hole
	// cards in Omaha, so it must not count
	board := []Card{
		c(Suit_Spades, 3),
		c(Suit_Spades, 7),
		c(Suit_Spades, 9),
		c(Suit_Spades, Rank_Queen),
		c(Suit_Hearts, 2),
	}
	hole := []Card{
		c(Suit_Spades, Rank_Ace),
		c(Suit_Hearts, Rank_King),
		c(Suit_Diamonds, 4),
		c(Suit_Clubs, 5),
	}

	holdem := Evaluate(hole, board, 0)
	assert.Equal(t, HandCategory_Flush, holdem.Category)

	omaha := Evaluate(hole, board, 2)
	assert.NotEqual(t, HandCategory_Flush, omaha.Category)
}

func TestEvaluate_Deterministic(t *testing.T) {
	board := []Card{
		c(Suit_Hearts, Rank_Ace),
		c(Suit_Diamonds, Rank_Ace),
		c(Suit_Clubs, 7),
		c(Suit_Spades, 7),
		c(Suit_Hearts, 2),
	}
	hole := []Card{c(Suit_Spades, Rank_Ace), c(Suit_Diamonds, 2)}

	first := Evaluate(hole, board, 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, 0, Compare(Evaluate(hole, board, 0), first))
	}
	assert.Equal(t, HandCategory_FullHouse, first.Category)
}
