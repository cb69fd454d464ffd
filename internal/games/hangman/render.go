package hangman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hangart/internal/core"
)

// StatusLines is the height of the text area below the picture.
const StatusLines = 4

// Render draws the picture and the status lines.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if h <= StatusLines || w < 20 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	status := core.NewRect(0, h-StatusLines, w, StatusLines)
	g.renderArt(dst, status)
	g.renderStatus(dst, status)
}

// artRect returns where the picture goes on a screen of width w.
func (g *Game) artRect(w int) core.Rect {
	dim := g.image.Dimension()
	off := g.image.Offset()

	x := off.X
	if g.cfg.Placement.Center {
		x += (w - dim.Width) / 2
	}
	return core.NewRect(x, off.Y, dim.Width, dim.Height)
}

func (g *Game) renderArt(dst *core.Screen, status core.Rect) {
	r := g.artRect(dst.Width())

	if !dst.Bounds().ContainsRect(r) || r.Intersects(status) {
		dst.DrawTextCentered(status.Y/2, "Enlarge the terminal to see the picture")
		return
	}

	frame := core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2)
	if dst.Bounds().ContainsRect(frame) && !frame.Intersects(status) {
		dst.DrawBox(frame)
	}
	dst.DrawBlock(r.X, r.Y, g.image.String())
}

func (g *Game) renderStatus(dst *core.Screen, status core.Rect) {
	y := status.Y

	word := g.secret.masked()
	if g.gameOver {
		word = g.secret.spaced()
	}
	dst.DrawTextCentered(y, word)

	dst.DrawText(1, y+1, "Misses: "+spacedRunes(g.misses))
	dst.DrawText(1, y+2, fmt.Sprintf("Lives: %d/%d   Picture: %d%%",
		g.LivesLeft(), g.cfg.Lives, int(g.image.Progress()*100)))

	var msg string
	switch {
	case g.gameOver && g.won:
		msg = fmt.Sprintf("Well done! Score %d. Enter: next word, Esc: quit", g.score)
	case g.gameOver:
		msg = "Out of lives. Enter: next word, Esc: quit"
	default:
		msg = "Type a letter to guess. Esc: quit"
	}
	dst.DrawText(1, y+3, msg)
}

func spacedRunes(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
