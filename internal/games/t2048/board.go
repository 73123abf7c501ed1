// Package t2048 implements the classic 2048 sliding-tile puzzle on a fixed 4x4 grid.
package t2048

import (
	"strconv"
	"strings"
)

// BoardSize is the board dimension.
const BoardSize = 4

// WinTile is the tile value that wins the game.
const WinTile Tile = 2048

// Tile is the value held by a board cell. The zero value is an empty cell.
type Tile uint32

// Empty is the empty cell.
const Empty Tile = 0

// IsEmpty reports whether the cell holds no tile.
func (t Tile) IsEmpty() bool {
	return t == Empty
}

// Board represents a 4x4 game board indexed as [row][col].
// Boards are values: every transform returns a new board.
type Board [BoardSize][BoardSize]Tile

// Position is a cell coordinate on the board.
type Position struct {
	Row, Col int
}

// EmptyBoard returns a board with no tiles.
func EmptyBoard() Board {
	return Board{}
}

// Tile returns the value at the given cell.
func (b Board) Tile(row, col int) Tile {
	return b[row][col]
}

// String formats the board one row per line, with "." for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for row := range BoardSize {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range BoardSize {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if b[row][col].IsEmpty() {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strconv.FormatUint(uint64(b[row][col]), 10))
		}
	}
	return sb.String()
}
