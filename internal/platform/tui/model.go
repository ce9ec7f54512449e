package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravity-worm/internal/core"
	"github.com/vovakirdan/gravity-worm/internal/registry"
)

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	runs       []RunRecord
	recorded   bool // Whether the current game over is already in runs
	quitting   bool
	finished   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started",
		"game", m.game.ID(), "width", m.config.ScreenW, "height", m.config.ScreenH,
		"tick", m.config.TickInterval)

	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.gameState.GameOver) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The cave is sized to the screen, so a running session starts over.
	// A finished one keeps its result box until the player decides.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.logger.Info("resized", "width", msg.Width, "height", msg.Height, "too_small", m.gameState.TooSmall)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		switch {
		case m.inputFrame.Has(core.ActionFinish):
			m.finished = true
			return m, tea.Quit

		case m.inputFrame.Has(core.ActionRestart):
			m.game.Reset(m.config)
			m.gameState = m.game.State()
			m.recorded = false
			m.logger.Info("restarted", "best", m.gameState.Best)
			m.inputFrame.Clear()
			return m, tickCmd(m.config.TickInterval)
		}
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the run on game over (once)
	if m.gameState.GameOver && !m.recorded {
		m.runs = append(m.runs, RunRecord{
			Number:   len(m.runs) + 1,
			Score:    m.gameState.Score,
			Ticks:    m.gameState.Ticks,
			Survived: time.Duration(m.gameState.Ticks) * m.config.TickInterval,
		})
		m.recorded = true
		m.logger.Info("game over", "score", m.gameState.Score, "best", m.gameState.Best, "ticks", m.gameState.Ticks)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickInterval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.finished {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Runs returns the finished runs of this session in order.
func (m Model) Runs() []RunRecord {
	return m.runs
}

// Finished returns true if the player chose to finish after a game over.
func (m Model) Finished() bool {
	return m.finished
}

// Quitting returns true if the player quit with a quit key.
func (m Model) Quitting() bool {
	return m.quitting
}

// State returns the last known game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run shows the intro, plays until the player quits or finishes, then shows
// the results of the session when the player finished normally.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	begin, cfg, err := RunIntro(game.Title(), cfg)
	if err != nil {
		return err
	}
	if !begin {
		logger.Info("quit from intro")
		return nil
	}

	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return nil
	}
	logger.Info("session ended", "runs", len(m.Runs()), "best", m.State().Best, "finished", m.Finished())

	if !m.Finished() {
		return nil
	}
	return RunResults(game.Title(), m.Runs(), cfg.ScreenW, cfg.ScreenH)
}
