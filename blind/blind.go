package blind

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrNoLevels     = errors.New("blind: schedule has no levels")
	ErrNotActivated = errors.New("blind: schedule is not activated")
)

// Level is one rung of a blind schedule. DurationMins 0 or negative on the
// last level means it never expires.
type Level struct {
	Level        int   `json:"level"`
	SB           int64 `json:"sb"`
	BB           int64 `json:"bb"`
	DurationMins int   `json:"duration_mins"`
}

type LevelState struct {
	Level   Level `json:"level"`
	EndAt   int64 `json:"end_at"`
	Expired bool  `json:"expired"`
}

// Schedule tracks which blind level applies as time passes. Levels only move
// forward; the final level stays current once reached.
type Schedule struct {
	InitialLevel int           `json:"initial_level"`
	CurrentIndex int           `json:"current_index"`
	StartedAt    int64         `json:"started_at"`
	LevelStates  []*LevelState `json:"level_states"`

	mu sync.Mutex
}

func NewSchedule(initialLevel int, levels []Level) (*Schedule, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	states := make([]*LevelState, 0, len(levels))
	currentIndex := 0
	for idx, level := range levels {
		states = append(states, &LevelState{Level: level})
		if level.Level == initialLevel {
			currentIndex = idx
		}
	}

	return &Schedule{
		InitialLevel: initialLevel,
		CurrentIndex: currentIndex,
		LevelStates:  states,
	}, nil
}

// Activate anchors every level's end time to the start of play.
func (s *Schedule) Activate(startAt int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.StartedAt = startAt
	endAt := startAt
	for i := s.CurrentIndex; i < len(s.LevelStates); i++ {
		endAt += int64((time.Duration(s.LevelStates[i].Level.DurationMins) * time.Minute).Seconds())
		s.LevelStates[i].EndAt = endAt
	}
}

func (s *Schedule) Activated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.StartedAt > 0
}

// Current returns the blind level in effect at the given time, advancing past
// any expired levels first.
func (s *Schedule) Current(now int64) (Level, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.StartedAt == 0 {
		return Level{}, ErrNotActivated
	}

	for s.CurrentIndex < len(s.LevelStates)-1 {
		state := s.LevelStates[s.CurrentIndex]
		if state.Level.DurationMins <= 0 || now < state.EndAt {
			break
		}
		state.Expired = true
		s.CurrentIndex++
	}

	return s.LevelStates[s.CurrentIndex].Level, nil
}
