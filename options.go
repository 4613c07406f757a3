package pokerengine

type GameOptions struct {
	DeskID                 string           `json:"desk_id"`
	SB                     int64            `json:"sb"`
	BB                     int64            `json:"bb"`
	MinRaiseFraction       float64          `json:"min_raise_fraction"`
	HoleCardsCount         int              `json:"hole_cards_count"`
	RequiredHoleCardsCount int              `json:"required_hole_cards_count"`
	Players                []*PlayerSetting `json:"players"`
}

type PlayerSetting struct {
	PlayerID string `json:"player_id"`
	Seat     int    `json:"seat"`
	Bankroll int64  `json:"bankroll"`
}

// NewStandardGameOptions returns Texas Hold'em defaults. The minimum raise
// increment defaults to 25% of the current pot, matching standard pot-limit
// increments.
func NewStandardGameOptions() *GameOptions {
	return &GameOptions{
		SB:                     5,
		BB:                     10,
		MinRaiseFraction:       0.25,
		HoleCardsCount:         2,
		RequiredHoleCardsCount: 0,
		Players:                make([]*PlayerSetting, 0),
	}
}

// NewOmahaGameOptions deals four hole cards of which exactly two must play.
func NewOmahaGameOptions() *GameOptions {
	opts := NewStandardGameOptions()
	opts.HoleCardsCount = 4
	opts.RequiredHoleCardsCount = 2
	return opts
}

type GameEngineOptions struct {
	ActionTime   int `json:"action_time"`   // seconds a player has to act, 0 disables deadline tracking
	Interval     int `json:"interval"`      // seconds between settlement and next hand
	ReadyTimeout int `json:"ready_timeout"` // seconds before unready players are readied automatically
}

func NewGameEngineOptions() *GameEngineOptions {
	return &GameEngineOptions{
		ActionTime:   0,
		Interval:     0,
		ReadyTimeout: 3,
	}
}

type GameEngineCallbacks struct {
	OnGameUpdated         func(g *Game)
	OnGameErrorUpdated    func(g *Game, err error)
	OnGameSnapshotUpdated func(snapshot *GameSnapshot)
	OnGameSettled         func(archive *GameArchive)
}

func NewGameEngineCallbacks() *GameEngineCallbacks {
	return &GameEngineCallbacks{
		OnGameUpdated:         func(*Game) {},
		OnGameErrorUpdated:    func(*Game, error) {},
		OnGameSnapshotUpdated: func(*GameSnapshot) {},
		OnGameSettled:         func(*GameArchive) {},
	}
}
