package pokerengine

func (ge *gameEngine) emitEvent(g *Game) {
	ge.onGameUpdated(g)
}

func (ge *gameEngine) emitErrorEvent(g *Game, err error) {
	ge.onGameErrorUpdated(g, err)
}

func (ge *gameEngine) emitSnapshotEvent(g *Game) {
	snapshot := g.Snapshot()
	snapshot.CurrentActionEndAt = ge.actionEndAt
	ge.onGameSnapshotUpdated(snapshot)
}

func (ge *gameEngine) emitSettledEvent(g *Game) {
	ge.onGameSettled(newGameArchive(g))
}
