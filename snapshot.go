package pokerengine

// GameSnapshot is the public view of a hand emitted to the real-time
// transport after every accepted action or street transition. Hole cards are
// omitted unless the snapshot is rendered for their owner.
type GameSnapshot struct {
	GameID             string               `json:"game_id"`
	DeskID             string               `json:"desk_id"`
	Round              GameRound            `json:"round"`
	Pot                int64                `json:"pot"`
	CommunityCards     []Card               `json:"community_cards"`
	CurrentTurnPlayer  string               `json:"current_turn_player"`
	CurrentActionEndAt int64                `json:"current_action_end_at,omitempty"`
	Players            []GameSnapshotPlayer `json:"players"`
	UpdateSerial       int64                `json:"update_serial"`
}

type GameSnapshotPlayer struct {
	PlayerID       string       `json:"player_id"`
	Seat           int          `json:"seat"`
	Positions      []string     `json:"positions"`
	StackSize      int64        `json:"stack_size"`
	Status         PlayerStatus `json:"status"`
	TotalCommitted int64        `json:"total_committed"`
	StreetWager    int64        `json:"street_wager"`
	HoleCards      []Card       `json:"hole_cards,omitempty"`
}

// Snapshot renders the broadcast view with every player's hole cards hidden.
func (g *Game) Snapshot() *GameSnapshot {
	return g.SnapshotFor("")
}

// SnapshotFor renders the view for one recipient: only their own hole cards
// are included.
func (g *Game) SnapshotFor(playerID string) *GameSnapshot {
	snapshot := &GameSnapshot{
		GameID:            g.ID,
		DeskID:            g.DeskID,
		Round:             g.CurrentRound,
		Pot:               g.Pot,
		CommunityCards:    append([]Card{}, g.CommunityCards...),
		CurrentTurnPlayer: g.CurrentTurnPlayer,
		Players:           make([]GameSnapshotPlayer, 0, len(g.Players)),
		UpdateSerial:      g.UpdateSerial,
	}

	for _, p := range g.Players {
		player := GameSnapshotPlayer{
			PlayerID:       p.PlayerID,
			Seat:           p.Seat,
			Positions:      p.Positions,
			StackSize:      p.StackSize,
			Status:         p.Status,
			TotalCommitted: p.TotalCommitted,
			StreetWager:    p.StreetWager,
		}
		if p.PlayerID == playerID {
			player.HoleCards = append([]Card{}, p.HoleCards...)
		}
		snapshot.Players = append(snapshot.Players, player)
	}

	return snapshot
}
