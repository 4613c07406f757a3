package pokerengine

const (
	// General
	UnsetValue = -1

	// Position
	Position_SB    = "sb"
	Position_BB    = "bb"
	Position_Other = "other"
)

type GameRound string

const (
	GameRound_Preflop  GameRound = "preflop"
	GameRound_Flop     GameRound = "flop"
	GameRound_Turn     GameRound = "turn"
	GameRound_River    GameRound = "river"
	GameRound_Showdown GameRound = "showdown"
)

type ActionKind string

const (
	ActionKind_Fold   ActionKind = "fold"
	ActionKind_Check  ActionKind = "check"
	ActionKind_Call   ActionKind = "call"
	ActionKind_Raise  ActionKind = "raise"
	ActionKind_AllIn  ActionKind = "allin"
	ActionKind_PostSB ActionKind = "post_sb"
	ActionKind_PostBB ActionKind = "post_bb"
)

type GameStatus string

const (
	GameStatus_InProgress             GameStatus = "in_progress"
	GameStatus_Finished               GameStatus = "finished"
	GameStatus_ReconciliationRequired GameStatus = "reconciliation_required"
)

type PlayerStatus string

const (
	PlayerStatus_Active     PlayerStatus = "active"
	PlayerStatus_AllIn      PlayerStatus = "allin"
	PlayerStatus_Folded     PlayerStatus = "folded"
	PlayerStatus_SittingOut PlayerStatus = "sitting_out"
)
