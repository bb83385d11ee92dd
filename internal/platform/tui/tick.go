// Package tui provides the Bubble Tea integration for Fuel Run.
// It handles the terminal UI loop, input mapping, run recording and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTickRate = 60
	maxTickRate     = 250
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval converts a tick rate into a frame period. Non-positive rates
// fall back to 60 Hz; rates above maxTickRate are capped.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(min(tickRate, maxTickRate))
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
