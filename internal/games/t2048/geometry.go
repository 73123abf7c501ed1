package t2048

// Transpose returns the board reflected across its main diagonal.
func Transpose(board Board) Board {
	var result Board
	for row := range BoardSize {
		for col := range BoardSize {
			result[col][row] = board[row][col]
		}
	}
	return result
}

// FlipHorizontal returns the board with each row reversed.
func FlipHorizontal(board Board) Board {
	var result Board
	for row := range BoardSize {
		for col := range BoardSize {
			result[row][BoardSize-1-col] = board[row][col]
		}
	}
	return result
}
