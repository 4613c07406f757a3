package pokerengine

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/weedbox/pokerengine/blind"
	"github.com/weedbox/pokerengine/desk"
	"github.com/weedbox/syncsaga"
	"github.com/weedbox/timebank"
)

var (
	ErrEngineNoGame         = errors.New("engine: no hand in progress")
	ErrEngineHandInProgress = errors.New("engine: hand already in progress")
)

type GameEngineOpt func(*gameEngine)

// GameEngine owns the lifecycle of hands played on one desk. Every mutation
// of the current hand runs under an exclusive per-game lock for the whole
// load, validate, mutate, persist sequence; the lock is released only after
// persistence succeeds.
type GameEngine interface {
	// Events
	OnGameUpdated(fn func(*Game))
	OnGameErrorUpdated(fn func(*Game, error))
	OnGameSnapshotUpdated(fn func(*GameSnapshot))
	OnGameSettled(fn func(*GameArchive))

	// Hand lifecycle
	GetGame() *Game
	GetDesk() *desk.Desk
	CreateHand() (*Game, error)
	NextHand() error

	// Player readiness
	PlayerReady(playerID string) error

	// Player actions
	PlayerFold(playerID string) error
	PlayerCheck(playerID string) error
	PlayerCall(playerID string) error
	PlayerRaise(playerID string, chips int64) error
	PlayerAllin(playerID string) error
}

type gameEngine struct {
	lock                  sync.Mutex
	options               *GameEngineOptions
	gameOptions           *GameOptions
	desk                  *desk.Desk
	store                 GameStore
	blinds                *blind.Schedule
	game                  *Game
	rg                    *syncsaga.ReadyGroup
	tb                    *timebank.TimeBank
	readyIndexes          map[string]int64
	blindsDebited         map[string]int64
	actionEndAt           int64
	onGameUpdated         func(*Game)
	onGameErrorUpdated    func(*Game, error)
	onGameSnapshotUpdated func(*GameSnapshot)
	onGameSettled         func(*GameArchive)
}

func NewGameEngine(d *desk.Desk, gameOptions *GameOptions, options *GameEngineOptions, opts ...GameEngineOpt) GameEngine {
	callbacks := NewGameEngineCallbacks()
	ge := &gameEngine{
		options:               options,
		gameOptions:           gameOptions,
		desk:                  d,
		store:                 NewMemoryGameStore(),
		rg:                    syncsaga.NewReadyGroup(),
		tb:                    timebank.NewTimeBank(),
		readyIndexes:          make(map[string]int64),
		blindsDebited:         make(map[string]int64),
		onGameUpdated:         callbacks.OnGameUpdated,
		onGameErrorUpdated:    callbacks.OnGameErrorUpdated,
		onGameSnapshotUpdated: callbacks.OnGameSnapshotUpdated,
		onGameSettled:         callbacks.OnGameSettled,
	}

	for _, opt := range opts {
		opt(ge)
	}

	return ge
}

func WithGameStore(store GameStore) GameEngineOpt {
	return func(ge *gameEngine) {
		ge.store = store
	}
}

// WithBlindSchedule raises the blinds over time instead of keeping the fixed
// amounts from the game options. The schedule activates when the first hand
// is created.
func WithBlindSchedule(schedule *blind.Schedule) GameEngineOpt {
	return func(ge *gameEngine) {
		ge.blinds = schedule
	}
}

func (ge *gameEngine) OnGameUpdated(fn func(*Game)) {
	ge.onGameUpdated = fn
}

func (ge *gameEngine) OnGameErrorUpdated(fn func(*Game, error)) {
	ge.onGameErrorUpdated = fn
}

func (ge *gameEngine) OnGameSnapshotUpdated(fn func(*GameSnapshot)) {
	ge.onGameSnapshotUpdated = fn
}

func (ge *gameEngine) OnGameSettled(fn func(*GameArchive)) {
	ge.onGameSettled = fn
}

// GetGame is safe to call while the engine opens hands on its own schedule.
func (ge *gameEngine) GetGame() *Game {
	ge.lock.Lock()
	defer ge.lock.Unlock()
	return ge.game
}

func (ge *gameEngine) GetDesk() *desk.Desk {
	return ge.desk
}

// CreateHand reads the seated, non-sitting-out players from the desk, starts
// a new hand with blinds posted and hole cards dealt, and debits the blind
// players' table balances.
func (ge *gameEngine) CreateHand() (*Game, error) {
	ge.lock.Lock()
	defer ge.lock.Unlock()

	if ge.game != nil && ge.game.Status == GameStatus_InProgress {
		return nil, ErrEngineHandInProgress
	}

	seated := ge.desk.SeatedPlayers()
	if len(seated) < 2 {
		return nil, ErrGameNotEnoughPlayers
	}

	opts := *ge.gameOptions
	opts.DeskID = ge.desk.ID
	if ge.blinds != nil {
		if !ge.blinds.Activated() {
			ge.blinds.Activate(time.Now().Unix())
		}
		level, err := ge.blinds.Current(time.Now().Unix())
		if err != nil {
			return nil, err
		}
		opts.SB = level.SB
		opts.BB = level.BB
	}
	opts.Players = make([]*PlayerSetting, 0, len(seated))
	for _, p := range seated {
		opts.Players = append(opts.Players, &PlayerSetting{
			PlayerID: p.PlayerID,
			Seat:     p.Seat,
			Bankroll: p.Balance,
		})
	}

	g, err := NewGame(uuid.New().String(), &opts)
	if err != nil {
		return nil, err
	}

	// blinds leave the table balances as soon as the hand exists
	ge.blindsDebited = make(map[string]int64)
	for _, p := range g.Players {
		if p.TotalCommitted > 0 {
			if err := ge.desk.Debit(p.PlayerID, p.TotalCommitted); err != nil {
				return nil, err
			}
			ge.blindsDebited[p.PlayerID] = p.TotalCommitted
		}
	}

	if err := ge.store.Save(g); err != nil {
		return nil, err
	}

	ge.game = g
	if g.Status == GameStatus_Finished {
		// both blinds were short enough to be all-in at the deal
		ge.settleHand(g)
	} else {
		ge.resetActionDeadline()
	}
	ge.emitEvent(g)
	ge.emitSnapshotEvent(g)

	return g, nil
}

// NextHand gates the next hand on player readiness: all seated players join
// a ready group and anyone who has not confirmed by the timeout is readied
// automatically.
func (ge *gameEngine) NextHand() error {
	ge.lock.Lock()
	defer ge.lock.Unlock()

	if ge.game != nil && ge.game.Status == GameStatus_InProgress {
		return ErrEngineHandInProgress
	}

	seated := ge.desk.SeatedPlayers()
	if len(seated) < 2 {
		return ErrGameNotEnoughPlayers
	}

	ge.rg.Stop()
	ge.rg.SetTimeoutInterval(ge.options.ReadyTimeout)
	ge.rg.OnTimeout(func(rg *syncsaga.ReadyGroup) {
		// auto ready by default
		for idx, isReady := range rg.GetParticipantStates() {
			if !isReady {
				rg.Ready(idx)
			}
		}
	})
	ge.rg.OnCompleted(func(rg *syncsaga.ReadyGroup) {
		if _, err := ge.CreateHand(); err != nil {
			ge.emitErrorEvent(ge.GetGame(), err)
		}
	})

	ge.rg.ResetParticipants()
	ge.readyIndexes = make(map[string]int64)
	for idx, p := range seated {
		ge.rg.Add(int64(idx), false)
		ge.readyIndexes[p.PlayerID] = int64(idx)
	}

	ge.rg.Start()
	return nil
}

func (ge *gameEngine) PlayerReady(playerID string) error {
	idx, exist := ge.readyIndexes[playerID]
	if !exist {
		return ErrGamePlayerNotFound
	}

	ge.rg.Ready(idx)
	return nil
}

func (ge *gameEngine) PlayerFold(playerID string) error {
	return ge.playerAction(func(g *Game) error {
		return g.Fold(playerID)
	})
}

func (ge *gameEngine) PlayerCheck(playerID string) error {
	return ge.playerAction(func(g *Game) error {
		return g.Check(playerID)
	})
}

func (ge *gameEngine) PlayerCall(playerID string) error {
	return ge.playerAction(func(g *Game) error {
		return g.Call(playerID)
	})
}

func (ge *gameEngine) PlayerRaise(playerID string, chips int64) error {
	return ge.playerAction(func(g *Game) error {
		return g.Raise(playerID, chips)
	})
}

func (ge *gameEngine) PlayerAllin(playerID string) error {
	return ge.playerAction(func(g *Game) error {
		return g.Allin(playerID)
	})
}

// playerAction serializes one action against the current hand: validate and
// mutate under the lock, persist the whole document, then settle or pass the
// turn. Rejected actions leave both state and store untouched.
func (ge *gameEngine) playerAction(action func(*Game) error) error {
	ge.lock.Lock()
	defer ge.lock.Unlock()

	g := ge.game
	if g == nil {
		return ErrEngineNoGame
	}
	if g.Status == GameStatus_Finished {
		return ErrGameRoundClosed
	}

	if err := action(g); err != nil {
		if errors.Is(err, ErrGamePotMismatch) {
			// integrity violation, never silently resolved
			_ = ge.store.Save(g)
			ge.emitErrorEvent(g, err)
		}
		return err
	}

	if err := ge.store.Save(g); err != nil {
		return err
	}

	if g.Status == GameStatus_Finished {
		ge.settleHand(g)
	} else {
		ge.resetActionDeadline()
	}

	ge.emitEvent(g)
	ge.emitSnapshotEvent(g)
	return nil
}

// settleHand moves the remaining committed chips and the payouts between the
// game result and the desk balances, then hands the archive record off.
func (ge *gameEngine) settleHand(g *Game) {
	ge.tb.Cancel()
	ge.actionEndAt = 0

	for _, p := range g.Players {
		extra := p.TotalCommitted - ge.blindsDebited[p.PlayerID]
		if extra > 0 {
			if err := ge.desk.Debit(p.PlayerID, extra); err != nil {
				ge.emitErrorEvent(g, err)
			}
		}
	}
	for _, result := range g.Result.Players {
		if result.Won > 0 {
			if err := ge.desk.Credit(result.PlayerID, result.Won); err != nil {
				ge.emitErrorEvent(g, err)
			}
		}
	}

	ge.emitSettledEvent(g)

	// schedule the next hand when configured to run continuously
	if ge.options.Interval > 0 {
		_ = ge.tb.NewTask(time.Duration(ge.options.Interval)*time.Second, func(isCancelled bool) {
			if isCancelled {
				return
			}

			if err := ge.NextHand(); err != nil {
				ge.emitErrorEvent(g, err)
			}
		})
	}
}

// resetActionDeadline tracks how long the current player has to act. No
// action is forced on expiry; consumers observe the deadline through the
// snapshot and decide their own policy.
func (ge *gameEngine) resetActionDeadline() {
	ge.tb.Cancel()
	ge.actionEndAt = 0

	if ge.options.ActionTime <= 0 {
		return
	}

	g := ge.game
	ge.actionEndAt = time.Now().Add(time.Duration(ge.options.ActionTime) * time.Second).Unix()
	_ = ge.tb.NewTask(time.Duration(ge.options.ActionTime)*time.Second, func(isCancelled bool) {
		if isCancelled {
			return
		}

		ge.emitEvent(g)
	})
}
