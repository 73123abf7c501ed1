package t2048

import "github.com/vovakirdan/t2048/internal/core"

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every move direction.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// slideRowRight compacts a single row toward the right edge.
// Each destination cell accepts at most one merge per call.
func slideRowRight(row [BoardSize]Tile) [BoardSize]Tile {
	for dst := BoardSize - 1; dst >= 0; dst-- {
		for src := dst - 1; src >= 0; src-- {
			if row[src].IsEmpty() {
				continue
			}

			if row[dst].IsEmpty() {
				// Slide and keep looking for a tile to merge into it
				row[dst] = row[src]
				row[src] = Empty
				continue
			}

			if row[dst] == row[src] {
				row[dst] += row[src]
				row[src] = Empty
			}
			break
		}
	}
	return row
}

// SwipeRight slides and merges all tiles toward the right edge.
func SwipeRight(board Board) Board {
	var result Board
	for row := range BoardSize {
		result[row] = slideRowRight(board[row])
	}
	return result
}

// SwipeLeft slides and merges all tiles toward the left edge.
func SwipeLeft(board Board) Board {
	return FlipHorizontal(SwipeRight(FlipHorizontal(board)))
}

// SwipeUp slides and merges all tiles toward the top edge.
func SwipeUp(board Board) Board {
	return Transpose(FlipHorizontal(SwipeRight(FlipHorizontal(Transpose(board)))))
}

// SwipeDown slides and merges all tiles toward the bottom edge.
func SwipeDown(board Board) Board {
	return Transpose(SwipeRight(Transpose(board)))
}

// Swipe performs a move in the given direction.
// Unknown directions return the board unchanged.
func Swipe(board Board, dir Direction) Board {
	switch dir {
	case DirLeft:
		return SwipeLeft(board)
	case DirRight:
		return SwipeRight(board)
	case DirUp:
		return SwipeUp(board)
	case DirDown:
		return SwipeDown(board)
	default:
		return board
	}
}

// DirectionFor maps a movement action to its direction.
func DirectionFor(a core.Action) (Direction, bool) {
	if !a.IsMove() {
		return 0, false
	}
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	default:
		return DirRight, true
	}
}
