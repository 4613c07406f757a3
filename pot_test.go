package pokerengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePots_SidePots(t *testing.T) {
	contributed := map[string]int64{
		"Jeffrey": 100,
		"Chuck":   300,
		"Fred":    300,
	}
	folded := map[string]bool{}
	seatOrder := []string{"Jeffrey", "Chuck", "Fred"}

	pots := ComputePots(contributed, folded, seatOrder)
	assert.Equal(t, 2, len(pots))

	assert.Equal(t, int64(300), pots[0].Amount)
	assert.Equal(t, []string{"Jeffrey", "Chuck", "Fred"}, pots[0].EligiblePlayers)

	assert.Equal(t, int64(400), pots[1].Amount)
	assert.Equal(t, []string{"Chuck", "Fred"}, pots[1].EligiblePlayers)

	assert.Equal(t, int64(700), TotalPotAmount(pots))
}

func TestComputePots_FoldedChipsStayButClaimsDoNot(t *testing.T) {
	contributed := map[string]int64{
		"Jeffrey": 50,
		"Chuck":   50,
		"Fred":    20,
	}
	folded := map[string]bool{"Fred": true}
	seatOrder := []string{"Jeffrey", "Chuck", "Fred"}

	pots := ComputePots(contributed, folded, seatOrder)
	assert.Equal(t, 2, len(pots))

	// Fred's 20 stays in the first layer without any claim on it
	assert.Equal(t, int64(60), pots[0].Amount)
	assert.Equal(t, []string{"Jeffrey", "Chuck"}, pots[0].EligiblePlayers)
	assert.Equal(t, int64(20), pots[0].Contributors["Fred"])

	assert.Equal(t, int64(60), pots[1].Amount)
	assert.Equal(t, []string{"Jeffrey", "Chuck"}, pots[1].EligiblePlayers)

	assert.Equal(t, int64(120), TotalPotAmount(pots))
}

func TestComputePots_EqualAllinsShareOnePot(t *testing.T) {
	contributed := map[string]int64{
		"Jeffrey": 80,
		"Chuck":   80,
		"Fred":    80,
	}
	pots := ComputePots(contributed, map[string]bool{}, []string{"Jeffrey", "Chuck", "Fred"})
	assert.Equal(t, 1, len(pots))
	assert.Equal(t, int64(240), pots[0].Amount)
	assert.Equal(t, 3, len(pots[0].EligiblePlayers))
}
