package t2048

// IsFull returns true if no cell is empty.
func IsFull(board Board) bool {
	return EmptyCount(board) == 0
}

// IsStuck returns true if no swipe changes the board.
// A board with an empty cell is never stuck.
func IsStuck(board Board) bool {
	if !IsFull(board) {
		return false
	}
	for _, dir := range Directions {
		if Swipe(board, dir) != board {
			return false
		}
	}
	return true
}

// IsWin returns true if any cell holds exactly WinTile.
func IsWin(board Board) bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if board[row][col] == WinTile {
				return true
			}
		}
	}
	return false
}

// Score returns the sum of all tiles on the board.
func Score(board Board) int {
	total := 0
	for row := range BoardSize {
		for col := range BoardSize {
			total += int(board[row][col])
		}
	}
	return total
}

// EmptyCount returns the number of empty cells.
func EmptyCount(board Board) int {
	count := 0
	for row := range BoardSize {
		for col := range BoardSize {
			if board[row][col].IsEmpty() {
				count++
			}
		}
	}
	return count
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) Tile {
	var maxVal Tile
	for row := range BoardSize {
		for col := range BoardSize {
			if board[row][col] > maxVal {
				maxVal = board[row][col]
			}
		}
	}
	return maxVal
}
