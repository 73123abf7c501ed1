package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/t2048/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score: 8")
	s.DrawTextColored(2, 1, "2048", core.ColorBrightGreen)
	s.DrawTextColored(8, 1, "16", core.ColorBrightYellow)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("RenderScreen produced %d line breaks, want 2", got)
	}
	for _, want := range []string{"Score: 8", "2048", "16"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q:\n%s", want, out)
		}
	}
}
