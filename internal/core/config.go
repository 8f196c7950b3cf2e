package core

// RuntimeConfig is what the platform tells a game when it starts.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Steps per second
	Seed     int64 // 0 lets the platform pick one from the clock
}

// DefaultConfig is a classic 80x24 terminal at 30 steps per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
}

// GameState is the part of a game's state the platform acts on.
type GameState struct {
	Score    int  // Player size for the dragon game
	Health   int  // Hearts left
	GameOver bool // The game-over message is on screen
	Won      bool // The win message is on screen
	Quit     bool // The game asked the platform to exit
}

// StepResult is what one Game.Step produced.
type StepResult struct {
	State  GameState
	Events []Event // In the order they happened
}
