package pokerengine

import (
	"errors"
	"sync"

	"github.com/weedbox/pokerengine/desk"
)

var (
	ErrManagerDeskNotFound = errors.New("manager: desk not found")
)

// Manager hosts many independent desks, each with its own engine and lock.
// Actions against different desks never contend with each other.
type Manager interface {
	Reset()

	// Desk Actions
	CreateDesk(deskID string, maxSeats int, gameOptions *GameOptions, options *GameEngineOptions, opts ...GameEngineOpt) (GameEngine, error)
	GetGameEngine(deskID string) (GameEngine, error)
	ReleaseDesk(deskID string) error

	// Hand Actions
	StartHand(deskID string) (*Game, error)
	NextHand(deskID string) error

	// Player Actions
	PlayerJoin(deskID, playerID string, buyIn int64) error
	PlayerLeave(deskID, playerID string) error
	PlayerReady(deskID, playerID string) error
	PlayerFold(deskID, playerID string) error
	PlayerCheck(deskID, playerID string) error
	PlayerCall(deskID, playerID string) error
	PlayerRaise(deskID, playerID string, chips int64) error
	PlayerAllin(deskID, playerID string) error
}

type manager struct {
	gameEngines sync.Map
}

func NewManager() Manager {
	return &manager{}
}

func (m *manager) Reset() {
	m.gameEngines.Range(func(key, _ interface{}) bool {
		m.gameEngines.Delete(key)
		return true
	})
}

func (m *manager) CreateDesk(deskID string, maxSeats int, gameOptions *GameOptions, options *GameEngineOptions, opts ...GameEngineOpt) (GameEngine, error) {
	d := desk.NewDesk(deskID, maxSeats)
	ge := NewGameEngine(d, gameOptions, options, opts...)
	m.gameEngines.Store(deskID, ge)
	return ge, nil
}

func (m *manager) GetGameEngine(deskID string) (GameEngine, error) {
	ge, exist := m.gameEngines.Load(deskID)
	if !exist {
		return nil, ErrManagerDeskNotFound
	}
	return ge.(GameEngine), nil
}

func (m *manager) ReleaseDesk(deskID string) error {
	m.gameEngines.Delete(deskID)
	return nil
}

func (m *manager) StartHand(deskID string) (*Game, error) {
	ge, err := m.GetGameEngine(deskID)
	if err != nil {
		return nil, err
	}
	return ge.CreateHand()
}

func (m *manager) NextHand(deskID string) error {
	ge, err := m.GetGameEngine(deskID)
	if err != nil {
		return err
	}
	return ge.NextHand()
}

func (m *manager) PlayerJoin(deskID, playerID string, buyIn int64) error {
	ge, err := m.GetGameEngine(deskID)
	if err != nil {
		return err
	}

	_, err = ge.GetDesk().Join(playerID, buyIn)
	return err
}

func (m *manager) PlayerLeave(deskID, playerID string) error {
	ge, err := m.GetGameEngine(deskID)
	if err != nil {
		return err
	}
	return ge.GetDesk().Leave(playerID)
}

func (m *manager) PlayerReady(deskID, playerID string) error {
	ge, err := m.GetGameEngine(deskID)
	if err != nil {
		return err
	}
	return ge.PlayerReady(playerID)
}

func (m *manager) PlayerFold(deskID, playerID string) error {
	ge, err := m.GetGameEngine(deskID)
	if err != nil {
		return err
	}
	return ge.PlayerFold(playerID)
}

func (m *manager) PlayerCheck(deskID, playerID string) error {
	ge, err := m.GetGameEngine(deskID)
	if err != nil {
		return err
	}
	return ge.PlayerCheck(playerID)
}

func (m *manager) PlayerCall(deskID, playerID string) error {
	ge, err := m.GetGameEngine(deskID)
	if err != nil {
		return err
	}
	return ge.PlayerCall(playerID)
}

func (m *manager) PlayerRaise(deskID, playerID string, chips int64) error {
	ge, err := m.GetGameEngine(deskID)
	if err != nil {
		return err
	}
	return ge.PlayerRaise(playerID, chips)
}

func (m *manager) PlayerAllin(deskID, playerID string) error {
	ge, err := m.GetGameEngine(deskID)
	if err != nil {
		return err
	}
	return ge.PlayerAllin(playerID)
}
