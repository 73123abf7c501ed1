package t2048

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/t2048/internal/core"
)

func TestSlideRowRight(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]Tile
		expected [4]Tile
	}{
		{
			name:     "simple merge",
			input:    [4]Tile{2, 2, 0, 0},
			expected: [4]Tile{0, 0, 0, 4},
		},
		{
			name:     "merge leaves blocking tile",
			input:    [4]Tile{2, 0, 2, 4},
			expected: [4]Tile{0, 0, 4, 4},
		},
		{
			name:     "merge with trailing tile",
			input:    [4]Tile{2, 2, 2, 0},
			expected: [4]Tile{0, 0, 2, 4},
		},
		{
			name:     "double merge",
			input:    [4]Tile{2, 2, 2, 2},
			expected: [4]Tile{0, 0, 4, 4},
		},
		{
			name:     "one merge per tile per move",
			input:    [4]Tile{4, 4, 4, 4},
			expected: [4]Tile{0, 0, 8, 8},
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]Tile{8, 4, 4, 0},
			expected: [4]Tile{0, 0, 8, 8},
		},
		{
			name:     "no merge possible",
			input:    [4]Tile{2, 4, 8, 16},
			expected: [4]Tile{2, 4, 8, 16},
		},
		{
			name:     "slide with gaps",
			input:    [4]Tile{2, 0, 0, 2},
			expected: [4]Tile{0, 0, 0, 4},
		},
		{
			name:     "slide behind merge",
			input:    [4]Tile{4, 0, 2, 2},
			expected: [4]Tile{0, 0, 4, 4},
		},
		{
			name:     "empty row",
			input:    [4]Tile{0, 0, 0, 0},
			expected: [4]Tile{0, 0, 0, 0},
		},
		{
			name:     "single tile",
			input:    [4]Tile{0, 4, 0, 0},
			expected: [4]Tile{0, 0, 0, 4},
		},
		{
			name:     "single tile already at edge",
			input:    [4]Tile{0, 0, 0, 4},
			expected: [4]Tile{0, 0, 0, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := slideRowRight(tt.input)
			if result != tt.expected {
				t.Errorf("slideRowRight(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSwipeRight(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	expected := Board{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	if result := SwipeRight(board); result != expected {
		t.Errorf("SwipeRight: got\n%v\nwant\n%v", result, expected)
	}
}

func TestSwipeLeft(t *testing.T) {
	board := Board{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 0},
		{0, 0, 0, 2},
	}

	expected := Board{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 2, 0, 0},
		{2, 0, 0, 0},
	}

	if result := SwipeLeft(board); result != expected {
		t.Errorf("SwipeLeft: got\n%v\nwant\n%v", result, expected)
	}
}

func TestSwipeUp(t *testing.T) {
	board := Board{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	expected := Board{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if result := SwipeUp(board); result != expected {
		t.Errorf("SwipeUp: got\n%v\nwant\n%v", result, expected)
	}
}

func TestSwipeDown(t *testing.T) {
	board := Board{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}

	expected := Board{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	if result := SwipeDown(board); result != expected {
		t.Errorf("SwipeDown: got\n%v\nwant\n%v", result, expected)
	}
}

func TestSwipeDispatch(t *testing.T) {
	board := Board{
		{0, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	tests := []struct {
		dir Direction
		pos Position
	}{
		{DirUp, Position{Row: 0, Col: 1}},
		{DirDown, Position{Row: 3, Col: 1}},
		{DirLeft, Position{Row: 1, Col: 0}},
		{DirRight, Position{Row: 1, Col: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			result := Swipe(board, tt.dir)
			if result.Tile(tt.pos.Row, tt.pos.Col) != 2 {
				t.Errorf("Swipe(%s): tile not at %+v\n%v", tt.dir, tt.pos, result)
			}
			if EmptyCount(result) != BoardSize*BoardSize-1 {
				t.Errorf("Swipe(%s) should keep a single tile\n%v", tt.dir, result)
			}
		})
	}

	if result := Swipe(board, Direction(99)); result != board {
		t.Error("Swipe with unknown direction should return the board unchanged")
	}
}

func TestSwipeNoChange(t *testing.T) {
	board := Board{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if SwipeLeft(board) != board {
		t.Error("SwipeLeft should not change already left-aligned tiles")
	}
	if SwipeUp(board) != board {
		t.Error("SwipeUp should not change tiles already on the top row")
	}
}

// randomBoard fills roughly half the cells with small powers of two.
func randomBoard(rng *rand.Rand) Board {
	var b Board
	for row := range BoardSize {
		for col := range BoardSize {
			if rng.Intn(2) == 0 {
				continue
			}
			b[row][col] = Tile(2) << rng.Intn(4)
		}
	}
	return b
}

func TestGeometryInvolutions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		b := randomBoard(rng)

		if Transpose(Transpose(b)) != b {
			t.Fatalf("Transpose is not an involution for\n%v", b)
		}
		if FlipHorizontal(FlipHorizontal(b)) != b {
			t.Fatalf("FlipHorizontal is not an involution for\n%v", b)
		}
		if Score(Transpose(b)) != Score(b) || EmptyCount(Transpose(b)) != EmptyCount(b) {
			t.Fatalf("Transpose changed tile contents for\n%v", b)
		}
		if Score(FlipHorizontal(b)) != Score(b) || EmptyCount(FlipHorizontal(b)) != EmptyCount(b) {
			t.Fatalf("FlipHorizontal changed tile contents for\n%v", b)
		}
	}
}

func TestTranspose(t *testing.T) {
	board := Board{
		{2, 4, 8, 16},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	expected := Board{
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{16, 0, 0, 0},
	}

	if result := Transpose(board); result != expected {
		t.Errorf("Transpose: got\n%v\nwant\n%v", result, expected)
	}
}

func TestSwipePreservesSum(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		b := randomBoard(rng)
		for _, dir := range Directions {
			if got, want := Score(Swipe(b, dir)), Score(b); got != want {
				t.Fatalf("Swipe(%s) changed sum %d -> %d for\n%v", dir, want, got, b)
			}
		}
	}
}

// hasEqualNeighbourInRow reports whether two horizontally adjacent tiles match.
func hasEqualNeighbourInRow(b Board) bool {
	for row := range BoardSize {
		for col := 0; col < BoardSize-1; col++ {
			if !b[row][col].IsEmpty() && b[row][col] == b[row][col+1] {
				return true
			}
		}
	}
	return false
}

func TestSwipeRightCompactsAndSettles(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for i := 0; i < 200; i++ {
		once := SwipeRight(randomBoard(rng))

		// Tiles occupy a suffix of every row
		for row := range BoardSize {
			seenTile := false
			for col := range BoardSize {
				if !once[row][col].IsEmpty() {
					seenTile = true
				} else if seenTile {
					t.Fatalf("row %d not compacted:\n%v", row, once)
				}
			}
		}

		if !hasEqualNeighbourInRow(once) && SwipeRight(once) != once {
			t.Fatalf("second SwipeRight changed a settled board:\n%v", once)
		}
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action core.Action
		dir    Direction
		ok     bool
	}{
		{core.ActionUp, DirUp, true},
		{core.ActionDown, DirDown, true},
		{core.ActionLeft, DirLeft, true},
		{core.ActionRight, DirRight, true},
		{core.ActionRestart, 0, false},
		{core.ActionNone, 0, false},
		{core.ActionQuit, 0, false},
		{core.Action(99), 0, false},
	}

	for _, tt := range tests {
		dir, ok := DirectionFor(tt.action)
		if ok != tt.ok || (ok && dir != tt.dir) {
			t.Errorf("DirectionFor(%s) = (%s, %v), want (%s, %v)", tt.action, dir, ok, tt.dir, tt.ok)
		}
	}
}
