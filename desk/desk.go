package desk

import (
	"encoding/json"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/thoas/go-funk"
)

const UnsetValue = -1

var (
	ErrPlayerNotFound      = errors.New("desk: player not found")
	ErrNoEmptySeats        = errors.New("desk: no empty seats available")
	ErrInsufficientBalance = errors.New("desk: insufficient balance")
	ErrPlayerAlreadySeated = errors.New("desk: player already seated")
)

// Desk is the seating collaborator the game engine reads at hand start and
// settles against at hand end. It outlives individual hands and is only
// mutated at hand boundaries or through explicit join/leave requests.
type Desk struct {
	ID       string        `json:"id"`
	MaxSeats int           `json:"max_seats"`
	SeatMap  []int         `json:"seat_map"` // index: seat, value: Players index (UnsetValue when empty)
	Players  []*PlayerInfo `json:"players"`
	UpdateAt int64         `json:"update_at"`

	mu sync.RWMutex
}

type PlayerInfo struct {
	PlayerID   string `json:"player_id"`
	Seat       int    `json:"seat"`
	Balance    int64  `json:"balance"`
	SittingOut bool   `json:"sitting_out"`
}

func NewDesk(deskID string, maxSeats int) *Desk {
	seatMap := make([]int, maxSeats)
	for seat := 0; seat < maxSeats; seat++ {
		seatMap[seat] = UnsetValue
	}

	return &Desk{
		ID:       deskID,
		MaxSeats: maxSeats,
		SeatMap:  seatMap,
		Players:  make([]*PlayerInfo, 0),
		UpdateAt: time.Now().Unix(),
	}
}

// Join seats a player at a random empty seat with their buy-in.
func (d *Desk) Join(playerID string, buyIn int64) (*PlayerInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.findPlayerIdx(playerID) != UnsetValue {
		return nil, ErrPlayerAlreadySeated
	}

	seat := d.randomEmptySeat()
	if seat == UnsetValue {
		return nil, ErrNoEmptySeats
	}

	player := &PlayerInfo{
		PlayerID:   playerID,
		Seat:       seat,
		Balance:    buyIn,
		SittingOut: false,
	}
	d.Players = append(d.Players, player)
	d.SeatMap[seat] = len(d.Players) - 1
	d.refresh()

	return player, nil
}

func (d *Desk) Leave(playerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	playerIdx := d.findPlayerIdx(playerID)
	if playerIdx == UnsetValue {
		return ErrPlayerNotFound
	}

	d.SeatMap[d.Players[playerIdx].Seat] = UnsetValue
	d.Players = funk.Filter(d.Players, func(p *PlayerInfo) bool {
		return p.PlayerID != playerID
	}).([]*PlayerInfo)

	// re-index remaining players in the seat map
	for idx, p := range d.Players {
		d.SeatMap[p.Seat] = idx
	}
	d.refresh()

	return nil
}

func (d *Desk) SitOut(playerID string) error {
	return d.setSittingOut(playerID, true)
}

func (d *Desk) SitIn(playerID string) error {
	return d.setSittingOut(playerID, false)
}

// SeatedPlayers returns the players eligible to be dealt into a new hand, in
// seat order: seated, not sitting out and holding chips.
func (d *Desk) SeatedPlayers() []*PlayerInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()

	players := make([]*PlayerInfo, 0, len(d.Players))
	for _, playerIdx := range d.SeatMap {
		if playerIdx == UnsetValue {
			continue
		}
		p := d.Players[playerIdx]
		if !p.SittingOut && p.Balance > 0 {
			players = append(players, p)
		}
	}
	return players
}

// Debit removes chips from a player's table balance at a hand boundary.
func (d *Desk) Debit(playerID string, amount int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	playerIdx := d.findPlayerIdx(playerID)
	if playerIdx == UnsetValue {
		return ErrPlayerNotFound
	}

	if d.Players[playerIdx].Balance < amount {
		return ErrInsufficientBalance
	}

	d.Players[playerIdx].Balance -= amount
	d.refresh()
	return nil
}

// Credit adds chips to a player's table balance at a hand boundary.
func (d *Desk) Credit(playerID string, amount int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	playerIdx := d.findPlayerIdx(playerID)
	if playerIdx == UnsetValue {
		return ErrPlayerNotFound
	}

	d.Players[playerIdx].Balance += amount
	d.refresh()
	return nil
}

func (d *Desk) GetPlayer(playerID string) *PlayerInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()

	playerIdx := d.findPlayerIdx(playerID)
	if playerIdx == UnsetValue {
		return nil
	}
	return d.Players[playerIdx]
}

func (d *Desk) GetJSON() (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	encoded, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (d *Desk) setSittingOut(playerID string, sittingOut bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	playerIdx := d.findPlayerIdx(playerID)
	if playerIdx == UnsetValue {
		return ErrPlayerNotFound
	}

	d.Players[playerIdx].SittingOut = sittingOut
	d.refresh()
	return nil
}

func (d *Desk) findPlayerIdx(playerID string) int {
	for idx, p := range d.Players {
		if p.PlayerID == playerID {
			return idx
		}
	}
	return UnsetValue
}

func (d *Desk) randomEmptySeat() int {
	emptySeats := make([]int, 0, d.MaxSeats)
	for seat, playerIdx := range d.SeatMap {
		if playerIdx == UnsetValue {
			emptySeats = append(emptySeats, seat)
		}
	}

	if len(emptySeats) == 0 {
		return UnsetValue
	}
	return emptySeats[rand.Intn(len(emptySeats))]
}

func (d *Desk) refresh() {
	d.UpdateAt = time.Now().Unix()
}
