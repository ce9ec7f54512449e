package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/gravity-worm/internal/core"
	"github.com/vovakirdan/gravity-worm/internal/games/worm"
)

// eventBuffer bounds how many events may queue between two ticks.
const eventBuffer = 100

// Driver runs a worm.Game on a tcell screen.
type Driver struct {
	screen   tcell.Screen
	game     *worm.Game
	renderer *cellRenderer
	logger   *log.Logger
	interval time.Duration
	events   chan tcell.Event
	frame    core.InputFrame
	runs     int
	finished bool
}

// Open creates and initializes a terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	return screen, nil
}

// NewDriver wires a game to an initialized screen. The caller owns the
// screen and must Fini it.
func NewDriver(screen tcell.Screen, game *worm.Game, interval time.Duration, logger *log.Logger) *Driver {
	if interval <= 0 {
		interval = core.DefaultTickInterval
	}
	return &Driver{
		screen:   screen,
		game:     game,
		renderer: newCellRenderer(screen, worm.ThemeFromConfig(game.Config())),
		logger:   logger,
		interval: interval,
		events:   make(chan tcell.Event, eventBuffer),
		frame:    core.NewInputFrame(),
	}
}

// Run plays until the player quits, finishes after a game over, or ctx is
// done. Quitting and finishing return nil.
func (d *Driver) Run(ctx context.Context) error {
	d.reset()
	d.logger.Info("session started", "game", d.game.ID(), "backend", "tcell", "tick", d.interval)
	d.draw()

	done := make(chan struct{})
	defer close(done)
	go d.poll(done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			if quit := d.drain(); quit {
				d.logger.Info("quit", "runs", d.runs, "best", d.game.State().Best)
				return nil
			}
			d.tick()
			if d.finished {
				d.logger.Info("finished", "runs", d.runs, "best", d.game.State().Best)
				return nil
			}
			d.draw()
		}
	}
}

// poll forwards screen events until the screen is finalized or Run returns.
func (d *Driver) poll(done <-chan struct{}) {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.events <- ev:
		case <-done:
			return
		}
	}
}

// drain consumes every queued event without blocking.
// Returns true if the player asked to quit.
func (d *Driver) drain() bool {
	for {
		select {
		case ev := <-d.events:
			if d.handle(ev) {
				return true
			}
		default:
			return false
		}
	}
}

// handle applies one event. Returns true on a quit request.
func (d *Driver) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(ev)

	case *tcell.EventResize:
		d.screen.Sync()
		if !d.game.State().GameOver {
			d.reset()
			w, h := d.screen.Size()
			d.logger.Info("resized", "width", w, "height", h, "too_small", d.game.State().TooSmall)
		}
	}
	return false
}

func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			return true
		}
	}

	key := keyName(ev)
	if !d.game.State().GameOver {
		d.frame.Press(key)
		return false
	}

	switch key {
	case "r", "R":
		d.frame.Set(core.ActionRestart)
	case "enter":
		d.frame.Set(core.ActionFinish)
	}
	return false
}

// keyName names a key the way the Bubble Tea driver does, so both drivers
// feed the game the same strings.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyEnter:
		return "enter"
	}
	return ev.Name()
}

// tick advances the game by one step, or acts on the game over choice.
func (d *Driver) tick() {
	defer d.frame.Clear()

	if d.game.State().GameOver {
		switch {
		case d.frame.Has(core.ActionFinish):
			d.finished = true
		case d.frame.Has(core.ActionRestart):
			d.reset()
			d.logger.Info("restarted", "best", d.game.State().Best)
		}
		return
	}

	state := d.game.Step(d.frame).State
	if state.GameOver {
		d.runs++
		d.logger.Info("game over", "score", state.Score, "best", state.Best, "ticks", state.Ticks)
	}
}

func (d *Driver) reset() {
	w, h := d.screen.Size()
	d.game.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickInterval: d.interval})
	d.renderer.theme = worm.ThemeFromConfig(d.game.Config())
}

func (d *Driver) draw() {
	if d.game.Engine() == nil {
		d.screen.Clear()
		d.renderer.drawMessage("Terminal too small",
			fmt.Sprintf("Need at least %dx%d", worm.MinWidth, worm.MinHeight))
	} else {
		d.game.DrawTo(d.renderer)
	}
	d.screen.Show()
}

// Runs returns how many runs ended in a game over.
func (d *Driver) Runs() int {
	return d.runs
}
