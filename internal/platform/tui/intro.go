package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-worm/internal/core"
)

// Intro screen text.
var introLines = []string{
	"Controls:",
	"",
	"space           Up",
	"any other key   Down",
	"esc / ctrl+c    Quit",
}

const introPrompt = "Press any key to begin..."

// IntroModel is the Bubble Tea model for the title screen shown before play.
type IntroModel struct {
	title    string
	config   core.RuntimeConfig
	quitting bool
	started  bool
}

// NewIntroModel creates the intro screen for a game title.
func NewIntroModel(title string, cfg core.RuntimeConfig) IntroModel {
	return IntroModel{
		title:  title,
		config: cfg,
	}
}

// Init initializes the intro model.
func (m IntroModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the intro screen.
func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
		default:
			m.started = true
		}
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// View renders the intro screen.
func (m IntroModel) View() string {
	if m.quitting || m.started {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.config.ScreenW))
	b.WriteString("\n\n")

	// Controls block is left-aligned inside a centered column
	blockW := 0
	for _, line := range introLines {
		blockW = max(blockW, len(line))
	}
	pad := strings.Repeat(" ", max(0, (m.config.ScreenW-blockW)/2))
	for _, line := range introLines {
		b.WriteString(pad + line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(introPrompt, m.config.ScreenW))
	b.WriteString("\n")

	return b.String()
}

// Started returns true if the player pressed a key to begin.
func (m IntroModel) Started() bool {
	return m.started
}

// Config returns the current runtime config (may have been updated by resize).
func (m IntroModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunIntro shows the intro screen. It reports whether play should begin and
// the runtime config with the latest terminal size.
func RunIntro(title string, cfg core.RuntimeConfig) (bool, core.RuntimeConfig, error) {
	p := tea.NewProgram(
		NewIntroModel(title, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, cfg, err
	}

	m, ok := finalModel.(IntroModel)
	if !ok {
		return false, cfg, nil
	}
	return m.Started(), m.Config(), nil
}
