// Package config provides YAML-based game configuration loading for the
// dragon arcade, plus environment helpers for command-line defaults.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DragonConfig contains all configuration for the Dragon Eat Dragon game.
type DragonConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Timing     TimingConfig     `yaml:"timing"`
	Population PopulationConfig `yaml:"population"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
}

// WorldConfig defines the viewport and camera behavior.
type WorldConfig struct {
	ViewWidth   int `yaml:"view_width"`   // Viewport width in world pixels
	ViewHeight  int `yaml:"view_height"`  // Viewport height in world pixels
	CameraSlack int `yaml:"camera_slack"` // Distance from center before the camera moves
}

// PlayerConfig defines the player dragon.
type PlayerConfig struct {
	MoveRate     int `yaml:"move_rate"`     // Pixels per frame per axis
	BounceRate   int `yaml:"bounce_rate"`   // Frames per hop (larger is slower)
	BounceHeight int `yaml:"bounce_height"` // Hop height in pixels
	StartSize    int `yaml:"start_size"`
	WinSize      int `yaml:"win_size"` // Size that must be exceeded to win
	MaxHealth    int `yaml:"max_health"`
}

// TimingConfig defines frame rate and wall-clock timers.
type TimingConfig struct {
	FPS             int     `yaml:"fps"`
	InvulnSeconds   float64 `yaml:"invuln_seconds"`    // Invulnerability after a hit
	GameOverSeconds float64 `yaml:"game_over_seconds"` // How long "Game Over" stays up
}

// PopulationConfig defines how many entities live in the active area.
type PopulationConfig struct {
	Obstacles        int `yaml:"obstacles"`
	Enemies          int `yaml:"enemies"`
	InitialObstacles int `yaml:"initial_obstacles"` // Rocks scattered on the first screen
}

// EnemyConfig defines enemy dragon generation.
type EnemyConfig struct {
	MinSpeed        int `yaml:"min_speed"`
	MaxSpeed        int `yaml:"max_speed"`
	DirChangeFreq   int `yaml:"dir_change_freq"` // Percent chance per frame of a new heading
	MinBounceRate   int `yaml:"min_bounce_rate"`
	MaxBounceRate   int `yaml:"max_bounce_rate"`
	MinBounceHeight int `yaml:"min_bounce_height"`
	MaxBounceHeight int `yaml:"max_bounce_height"`
}

// ObstacleConfig lists the available obstacle sprites.
type ObstacleConfig struct {
	Variants []ObstacleVariant `yaml:"variants"`
}

// ObstacleVariant is the fixed size of one obstacle sprite.
type ObstacleVariant struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InvulnTime returns the invulnerability window as a duration.
func (t TimingConfig) InvulnTime() time.Duration {
	return secondsToDuration(t.InvulnSeconds)
}

// GameOverTime returns how long the game-over screen lasts.
func (t TimingConfig) GameOverTime() time.Duration {
	return secondsToDuration(t.GameOverSeconds)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Validate checks the configuration for values the simulation cannot run with.
func (c DragonConfig) Validate() error {
	switch {
	case c.World.ViewWidth <= 0 || c.World.ViewHeight <= 0:
		return fmt.Errorf("config: view size must be positive, got %dx%d", c.World.ViewWidth, c.World.ViewHeight)
	case c.World.CameraSlack < 0:
		return errors.New("config: camera_slack must not be negative")
	case 2*c.World.CameraSlack >= min(c.World.ViewWidth, c.World.ViewHeight):
		return fmt.Errorf("config: camera_slack %d must be less than half the view", c.World.CameraSlack)
	case c.Player.MoveRate <= 0:
		return errors.New("config: player.move_rate must be positive")
	case c.Player.BounceRate <= 0:
		return errors.New("config: player.bounce_rate must be positive")
	case c.Player.StartSize <= 0:
		return errors.New("config: player.start_size must be positive")
	case c.Player.WinSize <= c.Player.StartSize:
		return fmt.Errorf("config: player.win_size %d must exceed start_size %d", c.Player.WinSize, c.Player.StartSize)
	case c.Player.MaxHealth <= 0:
		return errors.New("config: player.max_health must be positive")
	case c.Timing.FPS <= 0:
		return errors.New("config: timing.fps must be positive")
	case c.Timing.InvulnSeconds < 0 || c.Timing.GameOverSeconds < 0:
		return errors.New("config: timers must not be negative")
	case c.Population.Obstacles < 0 || c.Population.Enemies < 0 || c.Population.InitialObstacles < 0:
		return errors.New("config: population counts must not be negative")
	case c.Enemies.MinSpeed <= 0 || c.Enemies.MaxSpeed < c.Enemies.MinSpeed:
		return fmt.Errorf("config: enemy speed range [%d,%d] is invalid", c.Enemies.MinSpeed, c.Enemies.MaxSpeed)
	case c.Enemies.DirChangeFreq < 0 || c.Enemies.DirChangeFreq > 100:
		return errors.New("config: enemies.dir_change_freq must be a percentage")
	case c.Enemies.MinBounceRate <= 0 || c.Enemies.MaxBounceRate < c.Enemies.MinBounceRate:
		return fmt.Errorf("config: enemy bounce rate range [%d,%d] is invalid", c.Enemies.MinBounceRate, c.Enemies.MaxBounceRate)
	case c.Enemies.MinBounceHeight < 0 || c.Enemies.MaxBounceHeight < c.Enemies.MinBounceHeight:
		return fmt.Errorf("config: enemy bounce height range [%d,%d] is invalid", c.Enemies.MinBounceHeight, c.Enemies.MaxBounceHeight)
	case len(c.Obstacles.Variants) == 0:
		return errors.New("config: at least one obstacle variant is required")
	}

	for i, v := range c.Obstacles.Variants {
		if v.Width <= 0 || v.Height <= 0 {
			return fmt.Errorf("config: obstacle variant %d has invalid size %dx%d", i, v.Width, v.Height)
		}
	}
	return nil
}
