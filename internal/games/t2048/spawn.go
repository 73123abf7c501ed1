package t2048

// Rand is the randomness the spawn rule needs.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Spawn values and odds: one draw in spawnFourOdds yields a 4.
const (
	spawnTwo      Tile = 2
	spawnFour     Tile = 4
	spawnFourOdds      = 10
)

// Spawned describes the tile placed by Spawn.
type Spawned struct {
	Pos   Position
	Value Tile
}

// Spawn places a 2 (90%) or a 4 (10%) on a random empty cell.
// The cell is found by drawing random positions until one is empty.
// A full board is returned unchanged with ok set to false.
func Spawn(board Board, rng Rand) (Board, Spawned, bool) {
	if IsFull(board) {
		return board, Spawned{}, false
	}

	value := spawnTwo
	if rng.Intn(spawnFourOdds) == 0 {
		value = spawnFour
	}

	for {
		row := rng.Intn(BoardSize)
		col := rng.Intn(BoardSize)
		if !board[row][col].IsEmpty() {
			continue
		}
		board[row][col] = value
		return board, Spawned{Pos: Position{Row: row, Col: col}, Value: value}, true
	}
}
