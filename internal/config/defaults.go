package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the built-in jumper configuration.
// It mirrors defaults/jumper.yaml and is used when that fails to parse.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: WorldConfig{
			Width:  500,
			Height: 500,
		},
		Player: PlayerConfig{
			Name:   "Player",
			Width:  20,
			Height: 20,
			Step:   10,
			MaxX:   480,
		},
		Platforms: PlatformConfig{
			Count:         5,
			Width:         100,
			Height:        10,
			FirstX:        200,
			FirstY:        400,
			Spacing:       100,
			InitialSpread: 300,
			RecycleSpread: 400,
			RecycleY:      -10,
		},
		Physics: PhysicsConfig{
			Gravity:        1,
			BounceVelocity: -15,
			ScrollSpeed:    1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Leaderboard: LeaderboardConfig{
			URL:           "",
			Timeout:       3 * time.Second,
			TopN:          10,
			LocalCapacity: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `jumper config`.
func DefaultYAML() []byte {
	return defaultJumperYAML
}
