package worm

import (
	"github.com/vovakirdan/gravity-worm/internal/core"
)

// NoKey marks a tick without input in a key pattern.
const NoKey = '.'

// KeyPattern scripts input for headless runs. Each rune is the key pressed
// on one tick; NoKey means nothing was pressed. The pattern repeats.
type KeyPattern string

// KeyAt returns the key for a zero-based tick and whether one was pressed.
func (p KeyPattern) KeyAt(tick int) (string, bool) {
	runes := []rune(p)
	if len(runes) == 0 {
		return "", false
	}
	r := runes[tick%len(runes)]
	if r == NoKey {
		return "", false
	}
	return string(r), true
}

// Simulate resets g to a height×width field and steps it up to ticks times
// with keys from pattern, stopping early at game over. Runs are
// deterministic: the same arguments always give the same snapshot.
func Simulate(g *Game, height, width, ticks int, pattern KeyPattern) (Snapshot, error) {
	g.Reset(core.RuntimeConfig{ScreenW: width, ScreenH: height, TickInterval: g.cfg.TickInterval()})
	if err := g.Err(); err != nil {
		return g.Snapshot(), err
	}

	in := core.NewInputFrame()
	for tick := range ticks {
		if key, ok := pattern.KeyAt(tick); ok {
			in.Press(key)
		}
		if g.Step(in).State.GameOver {
			break
		}
		in.Clear()
	}

	return g.Snapshot(), nil
}
