package blind

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLevels() []Level {
	return []Level{
		{Level: 1, SB: 5, BB: 10, DurationMins: 10},
		{Level: 2, SB: 10, BB: 20, DurationMins: 10},
		{Level: 3, SB: 20, BB: 40, DurationMins: 0},
	}
}

func TestSchedule_LevelsAdvanceWithTime(t *testing.T) {
	s, err := NewSchedule(1, testLevels())
	assert.Nil(t, err)

	startAt := time.Now().Unix()
	s.Activate(startAt)
	assert.True(t, s.Activated())

	level, err := s.Current(startAt)
	assert.Nil(t, err)
	assert.Equal(t, int64(5), level.SB)

	level, err = s.Current(startAt + 10*60)
	assert.Nil(t, err)
	assert.Equal(t, 2, level.Level)
	assert.Equal(t, int64(20), level.BB)

	// the last level has no duration and never expires
	level, err = s.Current(startAt + 100*60)
	assert.Nil(t, err)
	assert.Equal(t, 3, level.Level)
	assert.Equal(t, int64(40), level.BB)
}

func TestSchedule_InitialLevelOffset(t *testing.T) {
	s, err := NewSchedule(2, testLevels())
	assert.Nil(t, err)

	startAt := time.Now().Unix()
	s.Activate(startAt)

	level, err := s.Current(startAt)
	assert.Nil(t, err)
	assert.Equal(t, 2, level.Level)
}

func TestSchedule_Errors(t *testing.T) {
	_, err := NewSchedule(1, nil)
	assert.Equal(t, ErrNoLevels, err)

	s, err := NewSchedule(1, testLevels())
	assert.Nil(t, err)

	_, err = s.Current(time.Now().Unix())
	assert.Equal(t, ErrNotActivated, err)
}
