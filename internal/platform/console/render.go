package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// clearScreen moves the cursor home and erases the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// FormatBoard renders the board as text, one line per row.
// Each cell is bracketed with its value left-aligned in a field of the given width.
func FormatBoard(b t2048.Board, width int) string {
	var sb strings.Builder
	for row := range t2048.BoardSize {
		for col := range t2048.BoardSize {
			val := ""
			if tile := b.Tile(row, col); !tile.IsEmpty() {
				val = strconv.FormatUint(uint64(tile), 10)
			}
			fmt.Fprintf(&sb, "[ %-*s ] ", width, val)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
