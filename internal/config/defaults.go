package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// DefaultDragonConfig returns the default Dragon Eat Dragon configuration.
// It mirrors defaults/dragon.yaml and is used if the embedded file cannot be parsed.
func DefaultDragonConfig() DragonConfig {
	return DragonConfig{
		World: WorldConfig{
			ViewWidth:   640,
			ViewHeight:  480,
			CameraSlack: 90,
		},
		Player: PlayerConfig{
			MoveRate:     9,
			BounceRate:   6,
			BounceHeight: 30,
			StartSize:    25,
			WinSize:      300,
			MaxHealth:    3,
		},
		Timing: TimingConfig{
			FPS:             30,
			InvulnSeconds:   2,
			GameOverSeconds: 4,
		},
		Population: PopulationConfig{
			Obstacles:        80,
			Enemies:          30,
			InitialObstacles: 10,
		},
		Enemies: EnemyConfig{
			MinSpeed:        3,
			MaxSpeed:        7,
			DirChangeFreq:   2,
			MinBounceRate:   10,
			MaxBounceRate:   18,
			MinBounceHeight: 10,
			MaxBounceHeight: 50,
		},
		Obstacles: ObstacleConfig{
			Variants: []ObstacleVariant{
				{Width: 48, Height: 40},
				{Width: 40, Height: 40},
				{Width: 56, Height: 32},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDragonYAML
}
