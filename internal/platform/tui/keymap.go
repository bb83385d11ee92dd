package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fuelrun/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "k", "f":
		return core.ActionFire, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// holdWindowMillis is how long a steering or fire key counts as held after its
// last press. Terminals report key repeats, never releases, so the window
// has to bridge the gap between repeats.
const holdWindowMillis = 150

// heldKeys latches continuous actions across ticks.
// The zero value is not usable; use newHeldKeys.
type heldKeys struct {
	ticks map[core.Action]int
	hold  int
}

func newHeldKeys(tickRate int) heldKeys {
	if tickRate <= 0 {
		tickRate = 60
	}
	return heldKeys{
		ticks: make(map[core.Action]int),
		hold:  max(1, tickRate*holdWindowMillis/1000),
	}
}

// press registers a key press. Steering and fire stay held for the hold
// window; every other action fires on the next tick only.
func (h heldKeys) press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft:
		delete(h.ticks, core.ActionRight)
		h.ticks[a] = h.hold
	case core.ActionRight:
		delete(h.ticks, core.ActionLeft)
		h.ticks[a] = h.hold
	case core.ActionFire:
		h.ticks[a] = h.hold
	default:
		h.ticks[a] = 1
	}
}

// frame returns the actions active this tick and ages every latch by one.
func (h heldKeys) frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, n := range h.ticks {
		f.Set(a)
		if n <= 1 {
			delete(h.ticks, a)
		} else {
			h.ticks[a] = n - 1
		}
	}
	return f
}

func (h heldKeys) clear() {
	clear(h.ticks)
}
