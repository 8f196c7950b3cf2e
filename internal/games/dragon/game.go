// Package dragon implements Dragon Eat Dragon, a top-down arcade game in an
// endless world: eat dragons smaller than you, flee the bigger ones, and grow
// past the win size.
//
// Session is the simulation. Game adapts it to the arcade registry so the
// platform can drive it one tick per frame and draw it into a core.Screen.
package dragon

import (
	"github.com/vovakirdan/dragon-arcade/internal/config"
	"github.com/vovakirdan/dragon-arcade/internal/core"
	"github.com/vovakirdan/dragon-arcade/internal/registry"
)

// gameConfig is the configuration new games are created with, set via CLI.
var gameConfig = config.DefaultDragonConfig()

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.DragonConfig) {
	gameConfig = cfg
}

// Game implements registry.Game on top of a Session. When a session ends by
// game over or by restarting after a win, the next one starts right away.
type Game struct {
	cfg     config.DragonConfig
	clock   Clock
	seeds   *Random
	session *Session
	state   core.GameState
}

// New creates a game with the configured settings and the system clock.
func New() *Game {
	return NewWithClock(gameConfig, SystemClock{})
}

// NewWithClock creates a game with explicit settings and clock.
func NewWithClock(cfg config.DragonConfig, clock Clock) *Game {
	return &Game{cfg: cfg, clock: clock}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dragon"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dragon Eat Dragon"
}

// Reset starts a fresh session. Follow-up sessions draw their seeds from
// cfg.Seed so a whole run of restarts is repeatable.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seeds = NewRandom(cfg.Seed)
	g.start()
}

func (g *Game) start() {
	g.session = NewSession(g.cfg, g.seeds.Seed(), g.clock)
	g.state = g.currentState()
}

// Step advances the current session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := g.session.Tick(toInput(in))
	events := res.Events

	switch res.Reason {
	case EndGameOver, EndRestart:
		g.start()
		events = append(events, g.session.result().Events...)
	case EndQuit:
		g.state = g.currentState()
		g.state.Quit = true
		return core.StepResult{State: g.state, Events: events}
	}

	g.state = g.currentState()
	return core.StepResult{State: g.state, Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Session returns the session being played.
func (g *Game) Session() *Session {
	return g.session
}

func (g *Game) currentState() core.GameState {
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.Player().Size,
		Health:   g.session.Player().Health,
		GameOver: phase == PhaseGameOver,
		Won:      phase == PhaseWon,
		Quit:     g.session.Reason() == EndQuit,
	}
}

// moveActions lists movement actions in the order presses are applied.
var moveActions = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
	{core.ActionUp, DirUp},
	{core.ActionDown, DirDown},
}

// toInput converts a platform input frame into session input.
func toInput(f core.InputFrame) Input {
	var in Input
	for _, m := range moveActions {
		if f.IsReleased(m.action) {
			in.Released = append(in.Released, m.dir)
		}
		if f.Has(m.action) {
			in.Pressed = append(in.Pressed, m.dir)
		}
	}
	in.Restart = f.Has(core.ActionRestart)
	in.Quit = f.Has(core.ActionQuit)
	return in
}

// Register the game with the registry
func init() {
	registry.Register("dragon", func() registry.Game {
		return New()
	})
}
