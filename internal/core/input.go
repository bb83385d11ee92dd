package core

import "strings"

// Action is a semantic input, decoupled from the physical key that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // turn counter-clockwise
	ActionRight          // turn clockwise
	ActionFire           // shoot; every shot also boosts the ship
	ActionUp             // menu navigation
	ActionDown           // menu navigation
	ActionConfirm        // menu selection
	ActionBack           // leave a finished or paused run
	ActionRestart        // tear the run down and respawn
	ActionQuit           // exit game or session
	ActionPause          // toggle pause

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Fire", "Up", "Down",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions active during one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as active. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear deactivates every action.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Actions lists the active actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionLeft; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (f InputFrame) String() string {
	acts := f.Actions()
	names := make([]string, len(acts))
	for i, a := range acts {
		names[i] = a.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}
