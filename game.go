package pokerengine

import (
	"encoding/json"
	"math"
	"sort"
	"time"
)

type Action struct {
	PlayerID  string     `json:"player_id"`
	Kind      ActionKind `json:"kind"`
	Amount    int64      `json:"amount"`
	Timestamp int64      `json:"timestamp"`
}

// Round is one street's append-only action log. Rounds are created in fixed
// street order and never reopened.
type Round struct {
	Name    GameRound `json:"name"`
	Actions []Action  `json:"actions"`
}

type PlayerState struct {
	PlayerID       string               `json:"player_id"`
	Seat           int                  `json:"seat"`
	Positions      []string             `json:"positions"`
	StartingStack  int64                `json:"starting_stack"`
	StackSize      int64                `json:"stack_size"`
	Status         PlayerStatus         `json:"status"`
	TotalCommitted int64                `json:"total_committed"`
	StreetWager    int64                `json:"street_wager"`
	ActedThisRound bool                 `json:"acted_this_round"`
	HoleCards      []Card               `json:"hole_cards"`
	Combination    *Combination         `json:"combination,omitempty"`
	Statistics     PlayerGameStatistics `json:"statistics"`
}

// Game is the sole authority for a single hand. Its pot running total always
// equals the sum of all action amounts across all rounds.
type Game struct {
	ID                string         `json:"id"`
	DeskID            string         `json:"desk_id"`
	Options           *GameOptions   `json:"options"`
	Players           []*PlayerState `json:"players"`
	CommunityCards    []Card         `json:"community_cards"`
	Deck              *Deck          `json:"deck"`
	Rounds            []*Round       `json:"rounds"`
	Pot               int64          `json:"pot"`
	Pots              []Pot          `json:"pots,omitempty"`
	CurrentRound      GameRound      `json:"current_round"`
	CurrentTurnPlayer string         `json:"current_turn_player"`
	Status            GameStatus     `json:"status"`
	Result            *GameResult    `json:"result,omitempty"`
	StartAt           int64          `json:"start_at"`
	UpdateAt          int64          `json:"update_at"`
	UpdateSerial      int64          `json:"update_serial"`
}

// NewGame starts a hand: it shuffles a fresh deck, posts the forced blinds as
// the first two actions of the pre-flop round, deals hole cards in seat order
// and hands the turn to the player after the big blind (the small blind when
// heads-up).
func NewGame(gameID string, opts *GameOptions) (*Game, error) {
	if len(opts.Players) < 2 {
		return nil, ErrGameNotEnoughPlayers
	}

	deck, err := NewDeck()
	if err != nil {
		return nil, err
	}

	settings := append([]*PlayerSetting{}, opts.Players...)
	sort.Slice(settings, func(i, j int) bool {
		return settings[i].Seat < settings[j].Seat
	})

	players := make([]*PlayerState, 0, len(settings))
	for idx, setting := range settings {
		positions := []string{Position_Other}
		switch idx {
		case 0:
			positions = []string{Position_SB}
		case 1:
			positions = []string{Position_BB}
		}

		players = append(players, &PlayerState{
			PlayerID:      setting.PlayerID,
			Seat:          setting.Seat,
			Positions:     positions,
			StartingStack: setting.Bankroll,
			StackSize:     setting.Bankroll,
			Status:        PlayerStatus_Active,
			HoleCards:     make([]Card, 0, opts.HoleCardsCount),
		})
	}

	g := &Game{
		ID:             gameID,
		DeskID:         opts.DeskID,
		Options:        opts,
		Players:        players,
		CommunityCards: make([]Card, 0, 5),
		Deck:           deck,
		Rounds:         []*Round{{Name: GameRound_Preflop, Actions: make([]Action, 0)}},
		CurrentRound:   GameRound_Preflop,
		Status:         GameStatus_InProgress,
		StartAt:        time.Now().Unix(),
	}

	// forced blinds seed the pot before any card is dealt
	g.postBlind(players[0], opts.SB, ActionKind_PostSB)
	g.postBlind(players[1], opts.BB, ActionKind_PostBB)

	// hole cards in seat order
	for _, p := range players {
		cards, err := deck.Draw(opts.HoleCardsCount)
		if err != nil {
			return nil, err
		}
		p.HoleCards = append(p.HoleCards, cards...)
	}

	// first to act sits after the big blind, or is the small blind heads-up
	g.CurrentTurnPlayer = g.firstToActFrom(2 % len(players))

	// the forced blinds can put every player all-in before anyone gets a
	// turn; with nobody able to act the board runs out and settles right away
	if g.CurrentTurnPlayer == "" {
		for g.CurrentRound != GameRound_River {
			if err := g.enterNextStreet(); err != nil {
				return nil, err
			}
		}
		if err := g.settle(); err != nil {
			return nil, err
		}
		return g, nil
	}

	g.RefreshUpdateAt()

	return g, nil
}

// NewGameFromState rebuilds a Game from its persisted JSON document.
func NewGameFromState(data []byte) (*Game, error) {
	var g Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// ApplyAction validates and applies a single player action for the current
// street. It is the only mutation entry point while a hand is in progress;
// callers must serialize invocations per game.
func (g *Game) ApplyAction(playerID string, kind ActionKind, amount int64) error {
	if g.Status != GameStatus_InProgress || g.CurrentRound == GameRound_Showdown {
		return ErrGameRoundClosed
	}

	if playerID != g.CurrentTurnPlayer {
		return ErrGameNotPlayersTurn
	}

	p := g.GetPlayer(playerID)
	if p == nil {
		return ErrGamePlayerNotFound
	}

	switch kind {
	case ActionKind_Fold:
		p.Status = PlayerStatus_Folded
		p.Statistics.IsFold = true
		p.Statistics.FoldRound = g.CurrentRound
		g.contribute(p, 0, ActionKind_Fold)
	case ActionKind_Check:
		if g.amountToCall(p) > 0 {
			return ErrGameInvalidCheck
		}
		p.Statistics.CheckTimes++
		g.contribute(p, 0, ActionKind_Check)
	case ActionKind_Call:
		owed := g.amountToCall(p)
		if owed > p.StackSize {
			// the caller must choose all-in explicitly instead
			return ErrGameInsufficientChips
		}
		p.Statistics.CallTimes++
		g.contribute(p, owed, ActionKind_Call)
	case ActionKind_Raise:
		if amount < g.amountToCall(p)+g.minRaiseIncrement() {
			return ErrGameInvalidRaiseAmount
		}
		if amount > p.StackSize {
			return ErrGameInsufficientChips
		}
		p.Statistics.RaiseTimes++
		g.contribute(p, amount, ActionKind_Raise)
		g.reopenAction(p)
	case ActionKind_AllIn:
		previousHigh := g.highWager()
		g.contribute(p, p.StackSize, ActionKind_AllIn)
		p.Status = PlayerStatus_AllIn
		if p.StreetWager > previousHigh {
			// an all-in above the current wager is a raise and re-opens action
			p.Statistics.RaiseTimes++
			g.reopenAction(p)
		} else {
			// a short all-in is economically a call
			p.Statistics.CallTimes++
		}
	default:
		return ErrGameInvalidAction
	}

	p.ActedThisRound = true
	p.Statistics.ActionTimes++
	g.RefreshUpdateAt()

	return g.advance()
}

func (g *Game) Fold(playerID string) error  { return g.ApplyAction(playerID, ActionKind_Fold, 0) }
func (g *Game) Check(playerID string) error { return g.ApplyAction(playerID, ActionKind_Check, 0) }
func (g *Game) Call(playerID string) error  { return g.ApplyAction(playerID, ActionKind_Call, 0) }
func (g *Game) Allin(playerID string) error { return g.ApplyAction(playerID, ActionKind_AllIn, 0) }
func (g *Game) Raise(playerID string, chips int64) error {
	return g.ApplyAction(playerID, ActionKind_Raise, chips)
}

// Getters

func (g *Game) GetPlayer(playerID string) *PlayerState {
	for _, p := range g.Players {
		if p.PlayerID == playerID {
			return p
		}
	}
	return nil
}

func (g *Game) GetJSON() (string, error) {
	encoded, err := json.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (g *Game) Clone() (*Game, error) {
	encoded, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return NewGameFromState(encoded)
}

func (g *Game) RefreshUpdateAt() {
	g.UpdateAt = time.Now().Unix()
	g.UpdateSerial++
}

// internals

func (g *Game) currentRoundState() *Round {
	return g.Rounds[len(g.Rounds)-1]
}

func (g *Game) postBlind(p *PlayerState, blind int64, kind ActionKind) {
	chips := blind
	if chips > p.StackSize {
		chips = p.StackSize
	}
	g.contribute(p, chips, kind)
	if p.StackSize == 0 {
		p.Status = PlayerStatus_AllIn
	}
}

// contribute moves chips from the player's stack into the pot and records the
// action. Posting a blind does not count as having acted this street, so the
// blind players keep their option.
func (g *Game) contribute(p *PlayerState, chips int64, kind ActionKind) {
	p.StackSize -= chips
	p.StreetWager += chips
	p.TotalCommitted += chips
	g.Pot += chips

	round := g.currentRoundState()
	round.Actions = append(round.Actions, Action{
		PlayerID:  p.PlayerID,
		Kind:      kind,
		Amount:    chips,
		Timestamp: time.Now().UnixNano(),
	})
}

func (g *Game) amountToCall(p *PlayerState) int64 {
	owed := g.highWager() - p.StreetWager
	if owed < 0 {
		return 0
	}
	return owed
}

func (g *Game) highWager() int64 {
	high := int64(0)
	for _, p := range g.Players {
		if p.StreetWager > high {
			high = p.StreetWager
		}
	}
	return high
}

func (g *Game) minRaiseIncrement() int64 {
	return int64(math.Ceil(g.Options.MinRaiseFraction * float64(g.Pot)))
}

// reopenAction marks every other active player as still owing a move, which
// re-opens the street after a raise even for players who already acted.
func (g *Game) reopenAction(raiser *PlayerState) {
	for _, p := range g.Players {
		if p.PlayerID != raiser.PlayerID && p.Status == PlayerStatus_Active {
			p.ActedThisRound = false
		}
	}
}

func (g *Game) nonFoldedPlayers() []*PlayerState {
	players := make([]*PlayerState, 0, len(g.Players))
	for _, p := range g.Players {
		if p.Status != PlayerStatus_Folded {
			players = append(players, p)
		}
	}
	return players
}

// firstToActFrom walks the seat ring starting at startIdx and returns the
// first player still able to act.
func (g *Game) firstToActFrom(startIdx int) string {
	for i := 0; i < len(g.Players); i++ {
		p := g.Players[(startIdx+i)%len(g.Players)]
		if p.Status == PlayerStatus_Active {
			return p.PlayerID
		}
	}
	return ""
}

// advance decides what happens after an accepted action: immediate settlement
// when a single non-folded player remains, a board run-out when nobody can
// act, street closure, or simply passing the turn.
func (g *Game) advance() error {
	if len(g.nonFoldedPlayers()) == 1 {
		return g.settle()
	}

	currentIdx := UnsetValue
	for idx, p := range g.Players {
		if p.PlayerID == g.CurrentTurnPlayer {
			currentIdx = idx
			break
		}
	}

	next := g.firstToActFrom((currentIdx + 1) % len(g.Players))
	if next == "" {
		// everyone left standing is all-in, run out the board
		for g.CurrentRound != GameRound_River {
			if err := g.enterNextStreet(); err != nil {
				return err
			}
		}
		return g.settle()
	}

	if g.GetPlayer(next).ActedThisRound && g.streetWagersSettled() {
		if g.CurrentRound == GameRound_River {
			return g.settle()
		}
		return g.enterNextStreet()
	}

	g.CurrentTurnPlayer = next
	return nil
}

// streetWagersSettled reports whether all active players have matched each
// other's wagers for the current street.
func (g *Game) streetWagersSettled() bool {
	wager := int64(UnsetValue)
	for _, p := range g.Players {
		if p.Status != PlayerStatus_Active {
			continue
		}
		if wager == UnsetValue {
			wager = p.StreetWager
		} else if p.StreetWager != wager {
			return false
		}
	}
	return true
}

var nextStreet = map[GameRound]GameRound{
	GameRound_Preflop: GameRound_Flop,
	GameRound_Flop:    GameRound_Turn,
	GameRound_Turn:    GameRound_River,
}

func (g *Game) enterNextStreet() error {
	street := nextStreet[g.CurrentRound]

	dealCount := 1
	if street == GameRound_Flop {
		dealCount = 3
	}
	cards, err := g.Deck.Draw(dealCount)
	if err != nil {
		return err
	}
	g.CommunityCards = append(g.CommunityCards, cards...)

	for _, p := range g.Players {
		p.StreetWager = 0
		p.ActedThisRound = false
	}

	g.CurrentRound = street
	g.Rounds = append(g.Rounds, &Round{Name: street, Actions: make([]Action, 0)})
	g.CurrentTurnPlayer = g.firstToActFrom(0)
	g.RefreshUpdateAt()

	return nil
}
