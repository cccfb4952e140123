// Package config provides YAML-based game configuration loading and
// difficulty management for the jumper.
package config

import "time"

// JumperConfig contains all configuration for the platform jumper.
// Distances are in world units, velocities in world units per tick.
type JumperConfig struct {
	World       WorldConfig       `yaml:"world"`
	Player      PlayerConfig      `yaml:"player"`
	Platforms   PlatformConfig    `yaml:"platforms"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
	Input       InputConfig       `yaml:"input"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// WorldConfig defines the visible playfield.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"` // Falling below this ends the game
}

// PlayerConfig defines the player body and horizontal movement.
type PlayerConfig struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Step   int    `yaml:"step"`  // Horizontal move per tick while a direction is held
	MaxX   int    `yaml:"max_x"` // Rightmost allowed x
}

// PlatformConfig defines the platform pool and its layout.
type PlatformConfig struct {
	Count         int `yaml:"count"`
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	FirstX        int `yaml:"first_x"`
	FirstY        int `yaml:"first_y"`
	Spacing       int `yaml:"spacing"`        // Vertical gap between initial platforms
	InitialSpread int `yaml:"initial_spread"` // Initial x is drawn from [0, initial_spread)
	RecycleSpread int `yaml:"recycle_spread"` // Recycled x is drawn from [0, recycle_spread)
	RecycleY      int `yaml:"recycle_y"`      // y given to a platform that scrolled off the bottom
}

// PhysicsConfig defines vertical motion.
type PhysicsConfig struct {
	Gravity        int `yaml:"gravity"`
	BounceVelocity int `yaml:"bounce_velocity"` // Negative = upward
	ScrollSpeed    int `yaml:"scroll_speed"`
}

// InputConfig tunes how terminal key presses become held directions.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // A direction stays held this long after its last press
}

// HoldDuration returns the hold window as a duration.
func (c InputConfig) HoldDuration() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// LeaderboardConfig defines the remote backend and the local fallback.
type LeaderboardConfig struct {
	URL           string        `yaml:"url"` // Empty disables the remote backend
	Timeout       time.Duration `yaml:"timeout"`
	TopN          int           `yaml:"top_n"`
	LocalCapacity int           `yaml:"local_capacity"` // Scores kept by the local store
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to scroll speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown or empty values
// return "" which means "use the config file as is".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
