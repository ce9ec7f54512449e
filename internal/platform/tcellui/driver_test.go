package tcellui

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/gravity-worm/internal/config"
	"github.com/vovakirdan/gravity-worm/internal/core"
	"github.com/vovakirdan/gravity-worm/internal/games/worm"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestDriver(t *testing.T, w, h int) (*Driver, tcell.SimulationScreen) {
	t.Helper()
	screen := newTestScreen(t, w, h)
	game := worm.NewWithConfig(config.DefaultWormConfig())
	d := NewDriver(screen, game, 10*time.Millisecond, log.New(io.Discard))
	d.reset()
	return d, screen
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func cellAt(screen tcell.Screen, x, y int) (rune, tcell.Color) {
	ch, _, style, _ := screen.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return ch, fg
}

// crash lifts the worm into the ceiling of a 20x24 field (three ticks).
func crash(t *testing.T, d *Driver) {
	t.Helper()
	d.handle(runeEvent(' '))
	for range 3 {
		d.tick()
	}
	if !d.game.State().GameOver {
		t.Fatalf("expected game over, state %+v", d.game.State())
	}
}

func TestCellRendererDrawsFrame(t *testing.T) {
	d, screen := newTestDriver(t, 20, 24)
	d.draw()

	if ch, fg := cellAt(screen, 5, 6); ch != '=' || fg != tcell.PaletteColor(10) {
		t.Errorf("worm cell = %q/%v", ch, fg)
	}
	if ch, fg := cellAt(screen, 5, 3); ch != 'x' || fg != tcell.PaletteColor(6) {
		t.Errorf("near wall cell = %q/%v", ch, fg)
	}
	if ch, fg := cellAt(screen, 15, 3); ch != 'x' || fg != tcell.PaletteColor(245) {
		t.Errorf("far wall cell = %q/%v", ch, fg)
	}
	if ch, _ := cellAt(screen, 0, 0); ch != 'S' {
		t.Errorf("score line should start at the origin, got %q", ch)
	}
}

func TestDriverGameOverBox(t *testing.T) {
	d, screen := newTestDriver(t, 40, 24)
	crash(t, d)
	d.draw()

	w, h := screen.Size()
	boxW := len(worm.GameOverPrompt) + 4
	box := core.CenteredRect(w, h, boxW, 5)

	if ch, _ := cellAt(screen, box.X, box.Y); ch != tcell.RuneULCorner {
		t.Errorf("box corner = %q", ch)
	}
	titleX := box.X + (boxW-len(worm.GameOverTitle))/2
	if ch, _ := cellAt(screen, titleX, box.Y+1); ch != 'G' {
		t.Errorf("title should start with G, got %q", ch)
	}
}

func TestDriverRestartAndFinish(t *testing.T) {
	d, _ := newTestDriver(t, 20, 24)
	crash(t, d)

	if d.Runs() != 1 {
		t.Errorf("Runs() = %d, expected 1", d.Runs())
	}

	// Steering keys are ignored once the run is over
	d.handle(runeEvent('x'))
	if d.frame.Pending() {
		t.Error("steering should be dropped after game over")
	}

	d.handle(runeEvent('r'))
	d.tick()
	state := d.game.State()
	if state.GameOver || state.Best != 2 || state.Score != 0 {
		t.Fatalf("after restart state = %+v", state)
	}

	crash(t, d)
	d.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	d.tick()
	if !d.finished {
		t.Error("enter then tick should finish")
	}
	if d.Runs() != 2 {
		t.Errorf("Runs() = %d, expected 2", d.Runs())
	}
}

func TestDrainIsNonBlocking(t *testing.T) {
	d, _ := newTestDriver(t, 20, 24)

	d.events <- runeEvent(' ')
	d.events <- runeEvent('x')

	if d.drain() {
		t.Fatal("steering keys should not quit")
	}
	if len(d.frame.Keys) != 2 || d.frame.Keys[0] != " " || d.frame.Keys[1] != "x" {
		t.Errorf("Keys = %q, expected [\" \" \"x\"]", d.frame.Keys)
	}

	// Empty queue returns at once
	done := make(chan bool)
	go func() { done <- d.drain() }()
	select {
	case quit := <-done:
		if quit {
			t.Error("empty drain should not quit")
		}
	case <-time.After(time.Second):
		t.Fatal("drain blocked on an empty queue")
	}

	// Last key wins once the tick fires
	d.tick()
	if d.game.Engine().WormDecr() {
		t.Error("x after space should steer down")
	}

	d.events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	if !d.drain() {
		t.Error("esc should quit")
	}
}

func TestDriverResize(t *testing.T) {
	d, screen := newTestDriver(t, 20, 24)

	screen.SetSize(20, 6)
	d.handle(tcell.NewEventResize(20, 6))
	if !d.game.State().TooSmall {
		t.Fatal("a 20x6 screen is too small")
	}
	d.draw()

	screen.SetSize(30, 24)
	d.handle(tcell.NewEventResize(30, 24))
	if d.game.State().TooSmall || d.game.Engine().WormLen() != 16 {
		t.Error("growing the screen should start a session sized to it")
	}
}

func TestRunQuitsOnEscape(t *testing.T) {
	d, screen := newTestDriver(t, 20, 24)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := d.Run(ctx); err != nil {
		t.Errorf("Run() = %v, expected nil after esc", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newTestScreen(t, 20, 24)
	game := worm.NewWithConfig(config.DefaultWormConfig())
	d := NewDriver(screen, game, time.Hour, log.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, expected context.Canceled", err)
	}
}
