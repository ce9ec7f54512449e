package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-worm/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game input.
// Every key steers the worm, so only a few keys are reserved.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a platform action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// Restart and Finish are only reported after the session ended.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, gameOver bool) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys; q steers like any other letter
	switch key {
	case "ctrl+c", "esc":
		return core.ActionQuit, true
	}

	if !gameOver {
		return core.ActionNone, false
	}

	switch key {
	case "r", "R":
		return core.ActionRestart, false
	case "enter":
		return core.ActionFinish, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// While a session runs the raw key is queued for the next tick.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, gameOver bool) bool {
	action, isQuit := km.MapKey(msg, gameOver)
	if isQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
		return false
	}
	if !gameOver {
		frame.Press(msg.String())
	}
	return false
}
