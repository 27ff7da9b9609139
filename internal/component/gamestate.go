package component

// GameState is the canonical game-progress record. Exactly one entity
// should carry it.
type GameState struct {
	Lives              int
	Score              int
	Level              int
	AsteroidsRemaining int
	IsGameOver         bool
}

func (GameState) Tag() Tag { return TagGameState }
