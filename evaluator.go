package pokerengine

import (
	"sort"
)

type HandCategory int

const (
	HandCategory_HighCard HandCategory = iota
	HandCategory_OnePair
	HandCategory_TwoPair
	HandCategory_ThreeOfAKind
	HandCategory_Straight
	HandCategory_Flush
	HandCategory_FullHouse
	HandCategory_FourOfAKind
	HandCategory_StraightFlush
	HandCategory_RoyalFlush
)

var handCategorySymbols = map[HandCategory]string{
	HandCategory_HighCard:      "high_card",
	HandCategory_OnePair:       "one_pair",
	HandCategory_TwoPair:       "two_pair",
	HandCategory_ThreeOfAKind:  "three_of_a_kind",
	HandCategory_Straight:      "straight",
	HandCategory_Flush:         "flush",
	HandCategory_FullHouse:     "full_house",
	HandCategory_FourOfAKind:   "four_of_a_kind",
	HandCategory_StraightFlush: "straight_flush",
	HandCategory_RoyalFlush:    "royal_flush",
}

func (c HandCategory) String() string {
	return handCategorySymbols[c]
}

// Combination is the evaluated best five-card hand. Power is a comparable
// sequence: category first, then the deciding ranks high-to-low. Two
// combinations with identical power are an exact tie.
type Combination struct {
	Category HandCategory `json:"category"`
	Power    []int        `json:"power"`
	Cards    []Card       `json:"cards"`
}

// Compare returns a positive number if a outranks b, negative if b outranks a
// and zero on an exact tie. The order is total.
func Compare(a Combination, b Combination) int {
	for i := 0; i < len(a.Power) && i < len(b.Power); i++ {
		if a.Power[i] != b.Power[i] {
			return a.Power[i] - b.Power[i]
		}
	}
	return len(a.Power) - len(b.Power)
}

// Evaluate finds the maximum-ranked five-card combination from hole and
// community cards. requiredHoleCards constrains how many hole cards must be
// used (0 for Hold'em where any five of the seven count, 2 for Omaha).
// It is a pure function: identical inputs always produce identical output.
func Evaluate(holeCards []Card, communityCards []Card, requiredHoleCards int) Combination {
	var best Combination
	found := false

	pick := func(cards []Card) {
		c := evaluateFive(cards)
		if !found || Compare(c, best) > 0 {
			best = c
			found = true
		}
	}

	if requiredHoleCards <= 0 {
		all := append(append([]Card{}, holeCards...), communityCards...)
		forEachCombination(all, 5, pick)
		return best
	}

	forEachCombination(holeCards, requiredHoleCards, func(hole []Card) {
		forEachCombination(communityCards, 5-requiredHoleCards, func(community []Card) {
			pick(append(append([]Card{}, hole...), community...))
		})
	})
	return best
}

func forEachCombination(cards []Card, k int, fn func([]Card)) {
	n := len(cards)
	if k > n {
		return
	}

	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	selected := make([]Card, k)
	for {
		for i, idx := range indexes {
			selected[i] = cards[idx]
		}
		fn(selected)

		// advance to the next index combination
		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}

func evaluateFive(cards []Card) Combination {
	ranks := make([]int, 5)
	for i, c := range cards {
		ranks[i] = int(c.Rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	flush := true
	for _, c := range cards {
		if c.Suit != cards[0].Suit {
			flush = false
			break
		}
	}

	straightHigh := straightHighRank(ranks)
	straight := straightHigh != UnsetValue

	// group ranks by count, ordered by count then rank
	counts := make(map[int]int)
	for _, r := range ranks {
		counts[r]++
	}
	type group struct {
		rank  int
		count int
	}
	groups := make([]group, 0, len(counts))
	for r, c := range counts {
		groups = append(groups, group{rank: r, count: c})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	result := func(category HandCategory, deciding ...int) Combination {
		power := append([]int{int(category)}, deciding...)
		return Combination{
			Category: category,
			Power:    power,
			Cards:    append([]Card{}, cards...),
		}
	}

	switch {
	case straight && flush && straightHigh == int(Rank_Ace):
		return result(HandCategory_RoyalFlush, straightHigh)
	case straight && flush:
		return result(HandCategory_StraightFlush, straightHigh)
	case groups[0].count == 4:
		return result(HandCategory_FourOfAKind, groups[0].rank, groups[1].rank)
	case groups[0].count == 3 && groups[1].count == 2:
		return result(HandCategory_FullHouse, groups[0].rank, groups[1].rank)
	case flush:
		return result(HandCategory_Flush, ranks...)
	case straight:
		return result(HandCategory_Straight, straightHigh)
	case groups[0].count == 3:
		return result(HandCategory_ThreeOfAKind, groups[0].rank, groups[1].rank, groups[2].rank)
	case groups[0].count == 2 && groups[1].count == 2:
		return result(HandCategory_TwoPair, groups[0].rank, groups[1].rank, groups[2].rank)
	case groups[0].count == 2:
		return result(HandCategory_OnePair, groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank)
	default:
		return result(HandCategory_HighCard, ranks...)
	}
}

// straightHighRank expects ranks sorted descending. The wheel (A-2-3-4-5)
// counts as a five-high straight.
func straightHighRank(ranks []int) int {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]-1 {
			// wheel: A,5,4,3,2
			if i == 1 && ranks[0] == int(Rank_Ace) && ranks[1] == 5 {
				continue
			}
			return UnsetValue
		}
	}

	if ranks[0] == int(Rank_Ace) && ranks[1] == 5 {
		return 5
	}
	return ranks[0]
}
