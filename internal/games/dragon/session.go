package dragon

import (
	"time"

	"github.com/vovakirdan/dragon-arcade/internal/config"
	"github.com/vovakirdan/dragon-arcade/internal/core"
)

// Phase is the externally visible state of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseInvulnerable
	PhaseGameOver
	PhaseWon
	PhaseEnded
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseInvulnerable:
		return "invulnerable"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// EndReason says why a session finished.
type EndReason int

const (
	EndNone EndReason = iota
	EndGameOver
	EndRestart
	EndQuit
)

// String returns the reason as recorded in run history.
func (r EndReason) String() string {
	switch r {
	case EndGameOver:
		return "game_over"
	case EndRestart:
		return "restart"
	case EndQuit:
		return "quit"
	default:
		return "none"
	}
}

// Clock supplies wall-clock time to the session timers.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// TickResult describes the outcome of one Tick.
type TickResult struct {
	Phase  Phase
	Reason EndReason // Set once the session has ended
	Events []core.Event
}

// Session is one playthrough: from spawn until the game-over screen times
// out, the player restarts after winning, or quits.
type Session struct {
	cfg     config.DragonConfig
	view    View
	clock   Clock
	rng     *Random
	factory *Factory
	pop     *Population

	seed   int64
	player PlayerState
	camera Camera
	intent Intent

	invulnerable bool
	invulnStart  time.Time
	gameOver     bool
	gameOverAt   time.Time
	won          bool
	ended        bool
	reason       EndReason

	startedAt time.Time
	ticks     uint64
	eaten     int
	hits      int
	events    []core.Event
}

// NewSession creates a session with the player at the center of the first
// screen. A nil clock means the system clock.
func NewSession(cfg config.DragonConfig, seed int64, clock Clock) *Session {
	if clock == nil {
		clock = SystemClock{}
	}

	view := View{W: cfg.World.ViewWidth, H: cfg.World.ViewHeight}
	rng := NewRandom(seed)
	factory := NewFactory(rng, view, cfg.Enemies, cfg.Obstacles.Variants)

	s := &Session{
		cfg:     cfg,
		view:    view,
		clock:   clock,
		rng:     rng,
		factory: factory,
		pop: NewPopulation(factory, rng, view,
			cfg.Population.Enemies, cfg.Population.Obstacles, cfg.Enemies.DirChangeFreq),
		seed: seed,
		player: PlayerState{
			X:      view.W / 2,
			Y:      view.H / 2,
			Facing: FacingLeft,
			Size:   cfg.Player.StartSize,
			Health: cfg.Player.MaxHealth,
		},
		startedAt: clock.Now(),
	}
	s.pop.Seed(cfg.Population.InitialObstacles)
	s.emit(core.EventSessionStart)
	return s
}

// Tick advances the session by one frame.
func (s *Session) Tick(in Input) TickResult {
	if s.ended {
		return s.result()
	}
	if in.Quit {
		s.end(EndQuit)
		return s.result()
	}
	s.ticks++

	s.expireInvulnerability()
	s.pop.Advance(s.camera)
	cx, cy := s.player.Center()
	s.camera = s.camera.Follow(cx, cy, s.view, s.cfg.World.CameraSlack)

	s.applyInput(in)
	if s.won && in.Restart {
		s.end(EndRestart)
		return s.result()
	}

	if !s.gameOver {
		s.movePlayer()
		s.resolveCollisions()
	} else if s.clock.Now().Sub(s.gameOverAt) > s.cfg.Timing.GameOverTime() {
		s.end(EndGameOver)
	}

	return s.result()
}

// expireInvulnerability turns invulnerability off once its window passed.
func (s *Session) expireInvulnerability() {
	if s.invulnerable && s.clock.Now().Sub(s.invulnStart) > s.cfg.Timing.InvulnTime() {
		s.invulnerable = false
	}
}

// applyInput updates movement flags and facing.
func (s *Session) applyInput(in Input) {
	for _, d := range in.Released {
		s.intent.Release(d)
	}
	for _, d := range in.Pressed {
		s.intent.Press(d)
		switch d {
		case DirLeft:
			s.player.Facing = FacingLeft
		case DirRight:
			s.player.Facing = FacingRight
		}
	}
}

// movePlayer applies the movement flags and advances the hop. A hop that has
// started keeps going until it lands even if the player stops.
func (s *Session) movePlayer() {
	rate := s.cfg.Player.MoveRate
	if s.intent.Left {
		s.player.X -= rate
	}
	if s.intent.Right {
		s.player.X += rate
	}
	if s.intent.Up {
		s.player.Y -= rate
	}
	if s.intent.Down {
		s.player.Y += rate
	}

	if s.intent.Moving() || s.player.Bounce != 0 {
		s.player.Bounce = advanceBounce(s.player.Bounce, s.cfg.Player.BounceRate)
	}
}

// playerBody is the player's collision rectangle, bounce included.
func (s *Session) playerBody() core.Rect {
	return s.player.BodyRect(s.cfg.Player.BounceRate, s.cfg.Player.BounceHeight)
}

func (s *Session) end(reason EndReason) {
	s.ended = true
	s.reason = reason
	s.emit(core.EventSessionEnd)
}

// emit queues an event carrying the current player stats.
func (s *Session) emit(kind core.EventKind) {
	ev := core.Event{
		Kind:   kind,
		Size:   s.player.Size,
		Health: s.player.Health,
		Eaten:  s.eaten,
		Hits:   s.hits,
	}
	switch kind {
	case core.EventSessionStart:
		ev.Seed = s.seed
	case core.EventSessionEnd:
		ev.Reason = s.reason.String()
		ev.Duration = s.clock.Now().Sub(s.startedAt)
	}
	s.events = append(s.events, ev)
}

// result drains the queued events into a TickResult.
func (s *Session) result() TickResult {
	events := s.events
	s.events = nil
	return TickResult{
		Phase:  s.Phase(),
		Reason: s.reason,
		Events: events,
	}
}

// Phase derives the current phase. Game over outranks a win because a won
// player can still be eaten.
func (s *Session) Phase() Phase {
	switch {
	case s.ended:
		return PhaseEnded
	case s.gameOver:
		return PhaseGameOver
	case s.won:
		return PhaseWon
	case s.invulnerable:
		return PhaseInvulnerable
	default:
		return PhasePlaying
	}
}

// Player returns a copy of the player state.
func (s *Session) Player() PlayerState {
	return s.player
}

// Camera returns the camera position.
func (s *Session) Camera() Camera {
	return s.camera
}

// Enemies returns the live enemies.
func (s *Session) Enemies() []EnemyState {
	return s.pop.Enemies()
}

// Obstacles returns the live obstacles.
func (s *Session) Obstacles() []ObstacleState {
	return s.pop.Obstacles()
}

// Invulnerable reports whether the player is inside the post-hit window.
func (s *Session) Invulnerable() bool {
	return s.invulnerable
}

// Ended reports whether the session is over.
func (s *Session) Ended() bool {
	return s.ended
}

// Reason returns why the session ended, or EndNone.
func (s *Session) Reason() EndReason {
	return s.reason
}

// Seed returns the seed the session was created with.
func (s *Session) Seed() int64 {
	return s.seed
}

// Ticks returns the number of frames simulated.
func (s *Session) Ticks() uint64 {
	return s.ticks
}
