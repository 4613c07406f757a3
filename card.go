package pokerengine

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

type Suit string

const (
	Suit_Hearts   Suit = "hearts"
	Suit_Diamonds Suit = "diamonds"
	Suit_Clubs    Suit = "clubs"
	Suit_Spades   Suit = "spades"
)

// Rank is 2-14 where 11=J, 12=Q, 13=K, 14=A.
type Rank int

const (
	Rank_Jack  Rank = 11
	Rank_Queen Rank = 12
	Rank_King  Rank = 13
	Rank_Ace   Rank = 14
)

type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

var suitSymbols = map[Suit]string{
	Suit_Hearts:   "H",
	Suit_Diamonds: "D",
	Suit_Clubs:    "C",
	Suit_Spades:   "S",
}

var rankSymbols = map[Rank]string{
	Rank_Jack:  "J",
	Rank_Queen: "Q",
	Rank_King:  "K",
	Rank_Ace:   "A",
}

func (c Card) String() string {
	rank, ok := rankSymbols[c.Rank]
	if !ok {
		rank = fmt.Sprintf("%d", c.Rank)
	}
	return fmt.Sprintf("%s%s", suitSymbols[c.Suit], rank)
}

// Deck holds the undealt remainder of a single hand's cards. Cards are
// consumed front-to-back and a deck is never reused across hands.
type Deck struct {
	Cards []Card `json:"cards"`
}

// NewDeck creates a full 52-card deck in uniformly random order. The only
// failure mode is the entropy source, which callers should treat as fatal.
func NewDeck() (*Deck, error) {
	cards := make([]Card, 0, 52)
	for _, suit := range []Suit{Suit_Hearts, Suit_Diamonds, Suit_Clubs, Suit_Spades} {
		for rank := Rank(2); rank <= Rank_Ace; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}

	// Fisher-Yates with rejection sampling to keep the permutation unbiased
	for i := len(cards) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return nil, err
		}
		cards[i], cards[j] = cards[j], cards[i]
	}

	return &Deck{Cards: cards}, nil
}

// Draw removes and returns the next n cards from the front of the deck.
// Running out of cards cannot happen in a legal hand, so ErrGameInsufficientCards
// indicates a broken invariant rather than a user-facing condition.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n > len(d.Cards) {
		return nil, ErrGameInsufficientCards
	}

	drawn := d.Cards[:n]
	d.Cards = d.Cards[n:]
	return drawn, nil
}

func (d *Deck) Remaining() int {
	return len(d.Cards)
}

func randomInt(max int) (int, error) {
	limit := uint64((1 << 63) / uint64(max) * uint64(max))
	for {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint64(buf[:]) >> 1
		if v < limit {
			return int(v % uint64(max)), nil
		}
	}
}
