package t2048

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Game      int // 1-indexed game number within the session
	Moves     int
	Score     int
	HighScore int
	Board     Board
	MaxTile   Tile
	Status    Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Game:      g.games,
		Moves:     g.moves,
		Score:     Score(g.board),
		HighScore: g.highScore,
		Board:     g.board,
		MaxTile:   MaxTile(g.board),
		Status:    g.status,
	}
}
