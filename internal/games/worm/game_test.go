package worm

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/gravity-worm/internal/config"
	"github.com/vovakirdan/gravity-worm/internal/core"
	"github.com/vovakirdan/gravity-worm/internal/registry"
)

func newTestGame(w, h int) *Game {
	g := NewWithConfig(config.DefaultWormConfig())
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickInterval: core.DefaultTickInterval})
	return g
}

func keys(pressed ...string) core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range pressed {
		in.Press(k)
	}
	return in
}

func TestLastKeyWins(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []string
		wormDecr bool
		head     int
	}{
		{"lift then other", []string{LiftKey, "x"}, false, 7},
		{"other then lift", []string{"x", LiftKey}, true, 5},
		{"lift only", []string{LiftKey}, true, 5},
		{"arrow key", []string{"up"}, false, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(20, 24)
			g.Step(keys(tc.pressed...))

			e := g.Engine()
			if e.WormDecr() != tc.wormDecr {
				t.Errorf("WormDecr() = %v, expected %v", e.WormDecr(), tc.wormDecr)
			}
			if e.Head() != tc.head {
				t.Errorf("Head() = %d, expected %d", e.Head(), tc.head)
			}
		})
	}
}

func TestDirectionPersistsWithoutKeys(t *testing.T) {
	g := newTestGame(20, 24)

	g.Step(keys(LiftKey))
	g.Step(keys())

	if !g.Engine().WormDecr() {
		t.Error("direction should persist across ticks with no input")
	}
	if g.Engine().Head() != 4 {
		t.Errorf("Head() = %d, expected 4 after two lifted ticks", g.Engine().Head())
	}
}

func TestScoreCountsSurvivedTicks(t *testing.T) {
	g := newTestGame(20, 24)

	// Lifting from row 6 hits the ceiling at row 3 on the third tick
	var res core.StepResult
	for range 3 {
		res = g.Step(keys(LiftKey))
	}

	if !res.State.GameOver {
		t.Fatal("expected game over on the third lifted tick")
	}
	if res.State.Score != 2 {
		t.Errorf("Score = %d, expected 2 survived ticks", res.State.Score)
	}
	if res.State.Best != 2 {
		t.Errorf("Best = %d, expected 2", res.State.Best)
	}
	if res.State.Ticks != 3 {
		t.Errorf("Ticks = %d, expected 3", res.State.Ticks)
	}
}

func TestStepAfterGameOverIsNoop(t *testing.T) {
	g := newTestGame(20, 24)
	for range 3 {
		g.Step(keys(LiftKey))
	}
	before := g.Snapshot()

	for range 5 {
		g.Step(keys("x"))
	}

	if after := g.Snapshot(); after != before {
		t.Errorf("snapshot changed after game over: before %+v, after %+v", before, after)
	}
}

func TestRestartKeepsBest(t *testing.T) {
	g := newTestGame(20, 24)
	for range 3 {
		g.Step(keys(LiftKey))
	}

	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 24})

	state := g.State()
	if state.GameOver || state.Score != 0 || state.Ticks != 0 {
		t.Errorf("restart should start a fresh session, got %+v", state)
	}
	if state.Best != 2 {
		t.Errorf("Best = %d, expected it to survive a restart", state.Best)
	}
	if g.Engine().Head() != 6 || g.Engine().Gap() != 21 {
		t.Error("restart should rebuild the engine from the screen size")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := newTestGame(40, 6)

	if !errors.Is(g.Err(), ErrInvalidDimension) {
		t.Fatalf("Err() = %v, expected ErrInvalidDimension", g.Err())
	}
	if g.Engine() != nil {
		t.Error("no engine should exist for a too-small screen")
	}
	if !g.State().TooSmall {
		t.Error("State().TooSmall should be set")
	}

	// Stepping is harmless
	g.Step(keys(LiftKey))
	if g.State().Ticks != 0 {
		t.Error("Step should not tick without an engine")
	}

	screen := core.NewScreen(40, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Errorf("too small message missing:\n%s", screen.String())
	}

	if snap := g.Snapshot(); snap.State != StateTooSmall {
		t.Errorf("Snapshot().State = %q, expected %q", snap.State, StateTooSmall)
	}

	// Growing the terminal recovers
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 24})
	if g.Err() != nil || g.Engine() == nil {
		t.Error("Reset with a large enough screen should start a session")
	}
}

func TestRenderFreshField(t *testing.T) {
	g := newTestGame(20, 24)
	screen := core.NewScreen(20, 24)
	g.Render(screen)

	// Worm covers columns [0, 11) on row 6
	for x := range 11 {
		cell := screen.GetCell(x, 6)
		if cell.Rune != '=' || cell.Color != core.ColorBrightGreen {
			t.Fatalf("worm cell (%d,6) = %q/%v", x, cell.Rune, cell.Color)
		}
	}

	// Ceiling row 3 spans near and far walls in different colors
	if cell := screen.GetCell(4, 3); cell.Rune != 'x' || cell.Color != core.ColorCyan {
		t.Errorf("near wall cell = %q/%v", cell.Rune, cell.Color)
	}
	if cell := screen.GetCell(15, 3); cell.Rune != 'x' || cell.Color != core.ColorGray {
		t.Errorf("far wall cell = %q/%v", cell.Rune, cell.Color)
	}

	// Floor at 3+21 = 24 is off screen; nothing below the worm
	if r := screen.Get(4, 23); r != ' ' {
		t.Errorf("row 23 should be empty, got %q", r)
	}

	if row := screen.Row(0); !strings.HasPrefix(row, "Score: 0") {
		t.Errorf("score line = %q", row)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(40, 24)
	for range 3 {
		g.Step(keys(LiftKey))
	}

	screen := core.NewScreen(40, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, GameOverTitle) {
		t.Errorf("game over title missing:\n%s", out)
	}
	if !strings.Contains(out, GameOverPrompt) {
		t.Errorf("game over prompt missing:\n%s", out)
	}
}

func TestScoreLine(t *testing.T) {
	tests := []struct {
		frame    Frame
		expected string
	}{
		{Frame{Score: 0}, "Score: 0"},
		{Frame{Score: 7}, "Score: 7"},
		{Frame{Score: 3, Best: 12}, "Score: 3  Best: 12"},
	}

	for _, tc := range tests {
		if got := ScoreLine(tc.frame); got != tc.expected {
			t.Errorf("ScoreLine(%+v) = %q, expected %q", tc.frame, got, tc.expected)
		}
	}
}

type recordingRenderer struct {
	frames []Frame
}

func (r *recordingRenderer) Draw(f Frame) {
	r.frames = append(r.frames, f)
}

func TestDrawToCustomRenderer(t *testing.T) {
	g := newTestGame(20, 24)
	g.Step(keys("x"))

	r := &recordingRenderer{}
	g.DrawTo(r)

	if len(r.frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(r.frames))
	}
	f := r.frames[0]
	if len(f.Worm) != 11 || len(f.NearWall) != 11 || len(f.FarWall) != 9 {
		t.Errorf("frame track lengths = %d/%d/%d", len(f.Worm), len(f.NearWall), len(f.FarWall))
	}
	if f.Worm[len(f.Worm)-1] != 7 || f.Score != 1 || f.Gap != 20 {
		t.Errorf("unexpected frame %+v", f)
	}

	// Frames are copies
	f.Worm[0] = -100
	if g.Engine().WormTrack()[0] == -100 {
		t.Error("frame must not alias engine state")
	}

	small := newTestGame(2, 2)
	small.DrawTo(r)
	if len(r.frames) != 1 {
		t.Error("DrawTo should skip drawing without an engine")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() []Snapshot {
		g := newTestGame(60, 30)
		var snaps []Snapshot
		for i := range 400 {
			var in core.InputFrame
			if (i/4)%2 == 0 {
				in = keys(LiftKey)
			} else {
				in = keys("j")
			}
			g.Step(in)
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: snapshots differ: %+v vs %+v", i+1, a[i], b[i])
		}
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("worm")
	if err != nil {
		t.Fatalf("worm should be registered: %v", err)
	}
	if g.Title() != "Gravity Worm" {
		t.Errorf("Title() = %q", g.Title())
	}
}
