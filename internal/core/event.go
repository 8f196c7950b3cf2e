package core

import "time"

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventSessionStart EventKind = iota
	EventEat
	EventHit
	EventWin
	EventGameOver
	EventSessionEnd
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSessionStart:
		return "session_start"
	case EventEat:
		return "eat"
	case EventHit:
		return "hit"
	case EventWin:
		return "win"
	case EventGameOver:
		return "game_over"
	case EventSessionEnd:
		return "session_end"
	default:
		return "unknown"
	}
}

// Event is emitted by a game so the platform can log it or record a run.
// Fields that do not apply to a kind are left zero.
type Event struct {
	Kind     EventKind
	Size     int           // Player size after the event
	Health   int           // Player health after the event
	Reason   string        // Why a session ended ("game_over", "restart", "quit")
	Eaten    int           // Enemies eaten so far in the session
	Hits     int           // Damaging collisions so far in the session
	Duration time.Duration // Session length, set on EventSessionEnd
	Seed     int64         // RNG seed, set on EventSessionStart
}
