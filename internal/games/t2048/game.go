package t2048

// Status is the lifecycle state of a game.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusLost    Status = "lost"
	StatusWon     Status = "won"
)

// HighScorePolicy controls how long the high score is remembered.
type HighScorePolicy string

const (
	// HighScoreSession keeps the best score for the lifetime of the Game.
	HighScoreSession HighScorePolicy = "session"
	// HighScoreGame forgets the high score whenever a new game starts,
	// so the reported high score is always the score just lost with.
	HighScoreGame HighScorePolicy = "game"
)

// Game sequences turns of 2048: spawn, move, evaluate.
// It holds no I/O; front-ends drive it and render its board.
type Game struct {
	rng    Rand
	policy HighScorePolicy

	board     Board
	status    Status
	moves     int
	games     int
	highScore int
	lastSpawn Spawned
}

// Option configures a Game.
type Option func(*Game)

// WithHighScorePolicy sets the high score policy. The default is HighScoreSession.
func WithHighScorePolicy(p HighScorePolicy) Option {
	return func(g *Game) {
		g.policy = p
	}
}

// New creates a game and starts the first round.
func New(rng Rand, opts ...Option) *Game {
	g := &Game{
		rng:    rng,
		policy: HighScoreSession,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// Reset discards the board and starts a new game with a single tile.
func (g *Game) Reset() {
	if g.policy == HighScoreGame {
		g.highScore = 0
	}
	g.status = StatusPlaying
	g.moves = 0
	g.games++
	g.board, g.lastSpawn, _ = Spawn(EmptyBoard(), g.rng)
}

// Move swipes the board in the given direction.
// Returns false if the game is over or the swipe changes nothing; no tile is spawned then.
func (g *Game) Move(dir Direction) bool {
	if g.status != StatusPlaying {
		return false
	}

	next := Swipe(g.board, dir)
	if next == g.board {
		return false
	}
	g.board = next
	g.moves++

	if IsWin(g.board) {
		g.status = StatusWon
		return true
	}

	g.board, g.lastSpawn, _ = Spawn(g.board, g.rng)

	if IsFull(g.board) && IsStuck(g.board) {
		g.status = StatusLost
		if score := Score(g.board); score > g.highScore {
			g.highScore = score
		}
	}
	return true
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// Status returns the current game status.
func (g *Game) Status() Status {
	return g.status
}

// Score returns the score of the current board.
func (g *Game) Score() int {
	return Score(g.board)
}

// HighScore returns the best score recorded at a loss.
func (g *Game) HighScore() int {
	return g.highScore
}

// Moves returns the number of accepted moves in the current game.
func (g *Game) Moves() int {
	return g.moves
}

// Games returns how many games have been started, including the current one.
func (g *Game) Games() int {
	return g.games
}

// LastSpawn returns the tile placed most recently.
func (g *Game) LastSpawn() Spawned {
	return g.lastSpawn
}
