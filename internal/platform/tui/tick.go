// Package tui runs a game in the terminal with Bubble Tea: the fixed-rate tick
// loop, key handling with synthesized releases, rendering and run history.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when the configured rate is not positive.
const defaultTickRate = 30

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the frame duration for tickRate frames per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
