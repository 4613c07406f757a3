package pokerengine

import (
	"errors"
	"sync"
)

var (
	ErrStoreGameNotFound = errors.New("store: game not found")
)

// GameStore is the persistence boundary: load by id and a single atomic
// replace by id. No partial-field update semantics are assumed.
type GameStore interface {
	Load(gameID string) (*Game, error)
	Save(g *Game) error
	Delete(gameID string) error
}

type memoryGameStore struct {
	games sync.Map
}

// NewMemoryGameStore keeps serialized game documents in memory. Each Save
// stores an independent copy so in-flight mutations never leak into the
// stored state.
func NewMemoryGameStore() GameStore {
	return &memoryGameStore{}
}

func (s *memoryGameStore) Load(gameID string) (*Game, error) {
	data, exist := s.games.Load(gameID)
	if !exist {
		return nil, ErrStoreGameNotFound
	}
	return NewGameFromState(data.([]byte))
}

func (s *memoryGameStore) Save(g *Game) error {
	encoded, err := g.GetJSON()
	if err != nil {
		return err
	}
	s.games.Store(g.ID, []byte(encoded))
	return nil
}

func (s *memoryGameStore) Delete(gameID string) error {
	s.games.Delete(gameID)
	return nil
}
