package pokerengine

// PlayerGameStatistics accumulates per-hand action counters for reporting.
type PlayerGameStatistics struct {
	ActionTimes int       `json:"action_times"`
	RaiseTimes  int       `json:"raise_times"`
	CallTimes   int       `json:"call_times"`
	CheckTimes  int       `json:"check_times"`
	IsFold      bool      `json:"is_fold"`
	FoldRound   GameRound `json:"fold_round,omitempty"`
}
