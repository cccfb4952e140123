package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the YAML configuration.
const (
	EnvLeaderboardURL     = "JUMPER_LEADERBOARD_URL"
	EnvLeaderboardTimeout = "JUMPER_LEADERBOARD_TIMEOUT"
	EnvPlayerName         = "JUMPER_PLAYER_NAME"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// LoadJumper loads the jumper configuration.
// Search order: customPath -> ~/.jumper/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func LoadJumper(customPath string) (JumperConfig, error) {
	base := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		cfg := base
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{"configs/jumper.yaml"}
	if userCfgPath := userConfigPath("jumper.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := base
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// embeddedDefault parses the embedded YAML, falling back to the hardcoded
// defaults if that ever fails.
func embeddedDefault() JumperConfig {
	var cfg JumperConfig
	if err := yaml.Unmarshal(defaultJumperYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultJumperConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumper", "configs", filename)
}

// ApplyEnv loads the given dotenv files (".env" when none are given) into the
// process environment and applies the JUMPER_* overrides to cfg.
// Missing dotenv files are not an error; variables already set in the
// environment win over dotenv values.
func ApplyEnv(cfg *JumperConfig, envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: cannot load env file: %w", err)
	}

	if url, ok := os.LookupEnv(EnvLeaderboardURL); ok {
		cfg.Leaderboard.URL = strings.TrimSpace(url)
	}
	if raw, ok := os.LookupEnv(EnvLeaderboardTimeout); ok && raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvLeaderboardTimeout, err)
		}
		cfg.Leaderboard.Timeout = d
	}
	if name, ok := os.LookupEnv(EnvPlayerName); ok && strings.TrimSpace(name) != "" {
		cfg.Player.Name = strings.TrimSpace(name)
	}
	return nil
}

// ApplyJumperPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate checks that the configuration describes a playable world.
func (c JumperConfig) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive")
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Player.Step >= 0, "player step must not be negative")
	check(c.Player.MaxX >= 0, "player max_x must not be negative")
	check(c.Platforms.Count > 0, "platform count must be positive")
	check(c.Platforms.Width > 0 && c.Platforms.Height > 0, "platform size must be positive")
	check(c.Platforms.InitialSpread > 0, "platform initial_spread must be positive")
	check(c.Platforms.RecycleSpread > 0, "platform recycle_spread must be positive")
	check(c.Physics.BounceVelocity < 0, "bounce_velocity must be negative (upward)")
	check(c.Physics.ScrollSpeed >= 0, "scroll_speed must not be negative")
	check(c.Leaderboard.TopN >= 0 && c.Leaderboard.LocalCapacity >= 0, "leaderboard sizes must not be negative")

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
