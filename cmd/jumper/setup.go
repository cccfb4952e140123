package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/leaderboard"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
)

// Flags shared by the commands that start a game.
var (
	flagConfig     string
	flagDifficulty string
	flagName       string
	flagOffline    bool
)

// loadConfig resolves the jumper configuration from the config file, the
// environment and the command line, and hands it to the game package.
func loadConfig() (config.JumperConfig, error) {
	cfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyJumperPreset(&cfg, preset)
	}
	if flagName != "" {
		cfg.Player.Name = flagName
	}
	cfg.Player.Name = playerName(cfg.Player.Name)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	jumper.SetConfig(cfg)
	return cfg, nil
}

// playerName trims the name and caps it at the leaderboard limit.
func playerName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = core.DefaultConfig().PlayerName
	}
	if r := []rune(name); len(r) > leaderboard.MaxNameLength {
		name = string(r[:leaderboard.MaxNameLength])
	}
	return name
}

// sessionOptions builds TUI options from the config and global flags.
func sessionOptions(cfg config.JumperConfig) tui.Options {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	opts := tui.DefaultOptions()
	opts.Runtime = core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		PlayerName: cfg.Player.Name,
	}
	if hold := cfg.Input.HoldDuration(); hold > 0 {
		opts.HoldWindow = hold
	}
	if cfg.Leaderboard.Timeout > 0 {
		opts.SubmitTimeout = cfg.Leaderboard.Timeout
	}
	if cfg.Leaderboard.TopN > 0 {
		opts.TopN = cfg.Leaderboard.TopN
	}
	return opts
}

// tuiLogger returns the logger used while a TUI owns the terminal. Logs go
// to --log when set and are discarded otherwise. The returned close func
// must be called once the TUI exits.
func tuiLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// serverLogger returns the logger for long-running server commands.
func serverLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
