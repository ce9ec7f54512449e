package worm

import (
	"fmt"

	"github.com/vovakirdan/gravity-worm/internal/config"
	"github.com/vovakirdan/gravity-worm/internal/core"
	"github.com/vovakirdan/gravity-worm/internal/registry"
)

// LiftKey is the key that sends the worm toward the top of the screen.
// Any other key sends it down.
const LiftKey = " "

// configPath stores the custom config path set via CLI
var (
	configPath  string
	speedPreset config.SpeedPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSpeedPreset sets the tick period preset applied on Reset.
func SetSpeedPreset(preset config.SpeedPreset) {
	speedPreset = preset
}

// LoadConfig loads the config the same way Reset does.
func LoadConfig() (config.WormConfig, error) {
	cfg, err := config.LoadWorm(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplySpeedPreset(&cfg, speedPreset)
	return cfg, nil
}

// Game adapts the Engine to the platform's registry.Game contract.
type Game struct {
	engine   *Engine
	cfg      config.WormConfig
	runtime  core.RuntimeConfig
	pinned   bool // Config was supplied by the caller; Reset keeps it
	gameOver bool
	setupErr error // Non-nil when the screen cannot host a session
	ticks    int
	best     int // Best score across sessions of this Game
}

// New creates a Gravity Worm game instance.
func New() *Game {
	return &Game{cfg: config.DefaultWormConfig()}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.WormConfig) *Game {
	g := New()
	g.cfg = cfg
	g.pinned = true
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "worm"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Gravity Worm"
}

// Config returns the config the game renders with.
func (g *Game) Config() config.WormConfig {
	return g.cfg
}

// Reset throws away the current session and starts a new one sized to the screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.gameOver = false
	g.ticks = 0

	// Load game config
	if !g.pinned {
		cfg, err := LoadConfig()
		if err != nil {
			cfg = config.DefaultWormConfig()
		}
		g.cfg = cfg
	}

	engine, err := NewEngine(runtime.ScreenH, runtime.ScreenW)
	if err != nil {
		g.engine = nil
		g.setupErr = err
		return
	}
	g.engine = engine
	g.setupErr = nil
}

// Err returns why the last Reset could not start a session, if it failed.
func (g *Game) Err() error {
	return g.setupErr
}

// Engine exposes the current session's engine, or nil.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Step runs one tick: apply pending keys, advance, check for death.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Update worm direction from input
	for _, key := range in.Keys {
		Steer(g.engine, key)
	}

	g.engine.Advance()
	g.ticks++

	if g.engine.Alive() {
		g.engine.addSurvivedTick()
		g.best = max(g.best, g.engine.Score())
	} else {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// Steer applies one key press. Only the last key of a batch matters since
// each press overwrites the direction.
func Steer(e *Engine, key string) {
	e.SetWormDecr(key == LiftKey)
}

// Frame captures the current session for a Renderer.
func (g *Game) Frame() Frame {
	if g.engine == nil {
		return Frame{Best: g.best}
	}
	return Frame{
		Worm:     g.engine.WormTrack(),
		NearWall: g.engine.NearWall(),
		FarWall:  g.engine.FarWall(),
		Gap:      g.engine.Gap(),
		WormLen:  g.engine.WormLen(),
		Score:    g.engine.Score(),
		Best:     g.best,
		GameOver: g.gameOver,
	}
}

// DrawTo hands the current frame to any renderer.
// Does nothing while the screen is too small.
func (g *Game) DrawTo(r Renderer) {
	if g.engine == nil {
		return
	}
	r.Draw(g.Frame())
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.engine == nil {
		dst.Clear()
		drawCenteredMessage(dst, "Terminal too small",
			fmt.Sprintf("Need at least %dx%d", MinWidth, MinHeight))
		return
	}
	g.DrawTo(NewScreenRenderer(dst, ThemeFromConfig(g.cfg)))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.engine != nil {
		score = g.engine.Score()
	}
	return core.GameState{
		Score:    score,
		Best:     g.best,
		Ticks:    g.ticks,
		GameOver: g.gameOver,
		TooSmall: g.engine == nil,
	}
}

// Register the game with the registry
func init() {
	registry.Register("worm", func() registry.Game {
		return New()
	})
}
