package pokerengine

import "errors"

var (
	// validation errors, reported to the acting client only
	ErrGameNotPlayersTurn     = errors.New("game: not player's turn")
	ErrGameRoundClosed        = errors.New("game: round closed")
	ErrGameInvalidCheck       = errors.New("game: check with outstanding bet")
	ErrGameInvalidRaiseAmount = errors.New("game: invalid raise amount")
	ErrGameInvalidAction      = errors.New("game: invalid action")
	ErrGamePlayerNotFound     = errors.New("game: player not found")
	ErrGameInsufficientChips  = errors.New("game: insufficient chips")

	// hand creation / deal errors, fatal to the hand
	ErrGameNotEnoughPlayers  = errors.New("game: not enough players")
	ErrGameInsufficientCards = errors.New("game: insufficient cards in deck")

	// integrity errors, hand must be flagged for manual reconciliation
	ErrGamePotMismatch = errors.New("game: pot total mismatches action history")
)
