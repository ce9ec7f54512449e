// Package tcellui drives Gravity Worm directly on a tcell screen: a ticker
// paces the simulation and a poller goroutine feeds key events through a
// channel that is drained without blocking on every tick.
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/gravity-worm/internal/core"
	"github.com/vovakirdan/gravity-worm/internal/games/worm"
)

// palette maps core.Color to terminal palette colors, matching the Bubble Tea driver.
var palette = map[core.Color]tcell.Color{
	core.ColorDefault:      tcell.ColorDefault,
	core.ColorRed:          tcell.PaletteColor(1),
	core.ColorGreen:        tcell.PaletteColor(2),
	core.ColorYellow:       tcell.PaletteColor(3),
	core.ColorBlue:         tcell.PaletteColor(4),
	core.ColorMagenta:      tcell.PaletteColor(5),
	core.ColorCyan:         tcell.PaletteColor(6),
	core.ColorWhite:        tcell.PaletteColor(7),
	core.ColorBrightRed:    tcell.PaletteColor(9),
	core.ColorBrightGreen:  tcell.PaletteColor(10),
	core.ColorBrightYellow: tcell.PaletteColor(11),
	core.ColorBrightCyan:   tcell.PaletteColor(14),
	core.ColorGray:         tcell.PaletteColor(245),
}

func styleFor(c core.Color) tcell.Style {
	tc, ok := palette[c]
	if !ok {
		tc = tcell.ColorDefault
	}
	return tcell.StyleDefault.Foreground(tc)
}

// cellRenderer draws worm frames straight into a tcell screen.
type cellRenderer struct {
	screen tcell.Screen
	theme  worm.Theme
}

func newCellRenderer(screen tcell.Screen, theme worm.Theme) *cellRenderer {
	return &cellRenderer{screen: screen, theme: theme}
}

// Draw implements worm.Renderer.
func (r *cellRenderer) Draw(f worm.Frame) {
	r.screen.Clear()

	near := styleFor(r.theme.NearWall)
	far := styleFor(r.theme.FarWall)
	body := styleFor(r.theme.WormColor)

	for x, ceil := range f.NearWall {
		r.setCell(x, ceil, r.theme.WallRune, near)
		r.setCell(x, ceil+f.Gap, r.theme.WallRune, near)
	}
	for i, ceil := range f.FarWall {
		x := f.WormLen + i
		r.setCell(x, ceil, r.theme.WallRune, far)
		r.setCell(x, ceil+f.Gap, r.theme.WallRune, far)
	}
	for x, row := range f.Worm {
		r.setCell(x, row, r.theme.WormRune, body)
	}

	r.drawText(0, 0, worm.ScoreLine(f), styleFor(r.theme.HUD))

	if f.GameOver {
		r.drawMessage(worm.GameOverTitle, worm.GameOverPrompt)
	}
}

// setCell writes one cell, ignoring positions off screen.
func (r *cellRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *cellRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.setCell(x+i, y, ch, style)
	}
}

// drawMessage draws a boxed two-line message in the center of the screen.
func (r *cellRenderer) drawMessage(title, subtitle string) {
	w, h := r.screen.Size()
	boxW := max(len(title), len(subtitle)) + 4
	box := core.CenteredRect(w, h, boxW, 5)
	style := tcell.StyleDefault

	top, bottom := box.Y, box.Bottom()-1
	left, right := box.X, box.Right()-1
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			ch := ' '
			switch {
			case y == top && x == left:
				ch = tcell.RuneULCorner
			case y == top && x == right:
				ch = tcell.RuneURCorner
			case y == bottom && x == left:
				ch = tcell.RuneLLCorner
			case y == bottom && x == right:
				ch = tcell.RuneLRCorner
			case y == top || y == bottom:
				ch = tcell.RuneHLine
			case x == left || x == right:
				ch = tcell.RuneVLine
			}
			r.setCell(x, y, ch, style)
		}
	}

	r.drawText(box.X+(boxW-len(title))/2, box.Y+1, title, style)
	r.drawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, style)
}
