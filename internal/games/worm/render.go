package worm

import (
	"fmt"

	"github.com/vovakirdan/gravity-worm/internal/config"
	"github.com/vovakirdan/gravity-worm/internal/core"
)

// Messages shown when a session ends.
const (
	GameOverTitle  = "GAME OVER!"
	GameOverPrompt = "R: play again  |  Enter: finish"
)

// Frame is a read-only view of one tick, handed to a Renderer.
// Track slices are copies; renderers may keep or modify them freely.
type Frame struct {
	Worm     []int // Worm rows for columns [0, WormLen)
	NearWall []int // Ceiling rows for columns [0, WormLen)
	FarWall  []int // Ceiling rows for columns [WormLen, WormLen+len(FarWall))
	Gap      int
	WormLen  int
	Score    int
	Best     int
	GameOver bool
}

// Renderer draws frames. The platform supplies one per output backend.
type Renderer interface {
	Draw(f Frame)
}

// Theme holds the glyphs and colors for drawing a frame.
type Theme struct {
	WallRune  rune
	WormRune  rune
	NearWall  core.Color
	FarWall   core.Color
	WormColor core.Color
	HUD       core.Color
}

// ThemeFromConfig resolves config names into a Theme.
// Unknown colors fall back to the default color; config.Validate reports them earlier.
func ThemeFromConfig(cfg config.WormConfig) Theme {
	parse := func(name string) core.Color {
		c, _ := core.ParseColor(name)
		return c
	}
	return Theme{
		WallRune:  cfg.WallRune(),
		WormRune:  cfg.WormRune(),
		NearWall:  parse(cfg.Colors.NearWall),
		FarWall:   parse(cfg.Colors.FarWall),
		WormColor: parse(cfg.Colors.Worm),
		HUD:       parse(cfg.Colors.HUD),
	}
}

// ScreenRenderer draws frames into a core.Screen buffer.
type ScreenRenderer struct {
	dst   *core.Screen
	theme Theme
}

// NewScreenRenderer creates a renderer targeting dst.
func NewScreenRenderer(dst *core.Screen, theme Theme) *ScreenRenderer {
	return &ScreenRenderer{dst: dst, theme: theme}
}

// Draw renders walls, worm, score line and, after the end, the game over box.
func (r *ScreenRenderer) Draw(f Frame) {
	dst := r.dst
	dst.Clear()

	for x, ceil := range f.NearWall {
		dst.SetColored(x, ceil, r.theme.WallRune, r.theme.NearWall)
		dst.SetColored(x, ceil+f.Gap, r.theme.WallRune, r.theme.NearWall)
	}
	for i, ceil := range f.FarWall {
		x := f.WormLen + i
		dst.SetColored(x, ceil, r.theme.WallRune, r.theme.FarWall)
		dst.SetColored(x, ceil+f.Gap, r.theme.WallRune, r.theme.FarWall)
	}
	for x, row := range f.Worm {
		dst.SetColored(x, row, r.theme.WormRune, r.theme.WormColor)
	}

	dst.DrawTextColored(0, 0, ScoreLine(f), r.theme.HUD)

	if f.GameOver {
		drawCenteredMessage(dst, GameOverTitle, GameOverPrompt)
	}
}

// ScoreLine formats the HUD text for a frame.
func ScoreLine(f Frame) string {
	if f.Best > 0 {
		return fmt.Sprintf("Score: %d  Best: %d", f.Score, f.Best)
	}
	return fmt.Sprintf("Score: %d", f.Score)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
