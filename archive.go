package pokerengine

// GameArchive is the read-only record handed off for reporting once a hand
// finishes. The engine does not format it beyond this structure.
type GameArchive struct {
	GameID         string         `json:"game_id"`
	DeskID         string         `json:"desk_id"`
	Players        []*PlayerState `json:"players"`
	CommunityCards []Card         `json:"community_cards"`
	Pots           []Pot          `json:"pots"`
	Result         *GameResult    `json:"result"`
	StartAt        int64          `json:"start_at"`
	SettledAt      int64          `json:"settled_at"`
}

func newGameArchive(g *Game) *GameArchive {
	return &GameArchive{
		GameID:         g.ID,
		DeskID:         g.DeskID,
		Players:        g.Players,
		CommunityCards: g.CommunityCards,
		Pots:           g.Pots,
		Result:         g.Result,
		StartAt:        g.StartAt,
		SettledAt:      g.UpdateAt,
	}
}
