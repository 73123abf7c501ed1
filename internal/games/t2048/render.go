package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/t2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = BoardSize*cellWidth + 1  // +1 for right border
	boardH = BoardSize*cellHeight + 1 // +1 for bottom border

	// MinScreenW and MinScreenH are the smallest screen the board fits on.
	MinScreenW = boardW + 4
	MinScreenH = boardH + hudHeight + 2
)

// TileColor returns the display color for a tile value.
func TileColor(v Tile) core.Color {
	switch {
	case v.IsEmpty():
		return core.ColorDefault
	case v <= 2:
		return core.ColorWhite
	case v <= 4:
		return core.ColorBrightWhite
	case v <= 8:
		return core.ColorYellow
	case v <= 16:
		return core.ColorBrightYellow
	case v <= 32:
		return core.ColorOrange
	case v <= 64:
		return core.ColorRed
	case v <= 128:
		return core.ColorBrightRed
	case v <= 256:
		return core.ColorMagenta
	case v <= 512:
		return core.ColorBrightMagenta
	case v <= 1024:
		return core.ColorCyan
	case v <= 2048:
		return core.ColorBrightGreen
	default:
		return core.ColorBrightCyan
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and high score.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.Score()))

	best := fmt.Sprintf("Best: %d", g.highScore)
	dst.DrawText(boardX+boardW-len(best), 1, best)

	info := fmt.Sprintf("Game %d  Moves %d  Max %d", g.games, g.moves, MaxTile(g.board))
	infoX := boardX + (boardW-len(info))/2
	dst.DrawTextColored(core.Clamp(infoX, 0, dst.Width()), 2, info, core.ColorGray)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, gridCorner(x, y))

			if x < BoardSize {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < BoardSize {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	for row := range BoardSize {
		for col := range BoardSize {
			val := g.board[row][col]
			if val.IsEmpty() {
				continue
			}

			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1

			// Center the value in the cell
			valStr := strconv.FormatUint(uint64(val), 10)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(val))
		}
	}
}

// gridCorner picks the box-drawing rune for a grid intersection.
func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == BoardSize:
		return '┐'
	case y == BoardSize && x == 0:
		return '└'
	case y == BoardSize && x == BoardSize:
		return '┘'
	case y == 0:
		return '┬'
	case y == BoardSize:
		return '┴'
	case x == 0:
		return '├'
	case x == BoardSize:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws the lost/won boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX, centerY := core.NewRect(boardX, boardY, boardW, boardH).Center()

	switch g.status {
	case StatusWon:
		drawOverlay(dst, centerX, centerY, "You win! :D", fmt.Sprintf("Score: %d", g.Score()), "Press any key")
	case StatusLost:
		drawOverlay(dst, centerX, centerY,
			"You lost :(",
			fmt.Sprintf("Your score: %d", g.Score()),
			fmt.Sprintf("High score: %d", g.highScore),
			"Restarting...",
		)
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
