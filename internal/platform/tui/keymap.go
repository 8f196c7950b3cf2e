package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dragon-arcade/internal/core"
)

// Default hold timing. Terminals send a key once, pause for the auto-repeat
// delay, then repeat quickly; there is no key-up event.
const (
	DefaultRepeatDelay = 500 * time.Millisecond
	DefaultHoldWindow  = 150 * time.Millisecond
)

// KeyMap defines the key bindings while playing.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Restart    key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Restart, k.Screenshot, k.Quit, k.ForceQuit},
	}
}

// DefaultKeyMap returns arrows/WASD movement, r to restart after a win and
// q/esc to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// moveActions is the fixed order in which expired holds are reported.
var moveActions = []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown}

type hold struct {
	last     time.Time
	repeated bool
}

// HoldTracker synthesizes key releases from auto-repeat. A direction counts
// as held until no repeat arrives within RepeatDelay after the first press,
// or within HoldWindow after a repeat.
type HoldTracker struct {
	RepeatDelay time.Duration
	HoldWindow  time.Duration

	held map[core.Action]hold
}

// NewHoldTracker creates a tracker with the default timings.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{
		RepeatDelay: DefaultRepeatDelay,
		HoldWindow:  DefaultHoldWindow,
		held:        make(map[core.Action]hold),
	}
}

// Press records a key event for a movement action.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !a.IsMove() {
		return
	}
	_, repeated := h.held[a]
	h.held[a] = hold{last: now, repeated: repeated}
}

// Held reports whether a is currently considered down.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.held[a]
	return ok
}

// Expire drops holds that timed out and returns them as releases.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var released []core.Action
	for _, a := range moveActions {
		st, ok := h.held[a]
		if !ok {
			continue
		}
		window := h.RepeatDelay
		if st.repeated {
			window = h.HoldWindow
		}
		if now.Sub(st.last) > window {
			delete(h.held, a)
			released = append(released, a)
		}
	}
	return released
}

// Reset forgets every hold.
func (h *HoldTracker) Reset() {
	clear(h.held)
}
