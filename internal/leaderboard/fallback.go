package leaderboard

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// Fallback prefers the remote board and uses the local one whenever the
// remote fails. With no remote configured it is a thin wrapper over Local.
type Fallback struct {
	remote Board
	local  Board
	logger *log.Logger
}

// NewFallback combines two boards. remote may be nil.
func NewFallback(remote, local Board, logger *log.Logger) *Fallback {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Fallback{remote: remote, local: local, logger: logger}
}

// New builds the board described by cfg: a Fallback over the remote service
// (unless offline or no URL is set) and a local store at dbPath.
func New(cfg config.LeaderboardConfig, dbPath string, offline bool, logger *log.Logger) (*Fallback, *Local) {
	local := OpenLocal(dbPath, cfg.LocalCapacity, logger)

	var remote Board
	if !offline && cfg.URL != "" {
		remote = NewRemote(cfg.URL, cfg.Timeout)
	}
	return NewFallback(remote, local, logger), local
}

// Remote reports whether a remote service is configured.
func (f *Fallback) Remote() bool {
	return f.remote != nil
}

// Submit tries the remote service, then the local store.
func (f *Fallback) Submit(ctx context.Context, e Entry) error {
	if f.remote != nil {
		err := f.remote.Submit(ctx, e)
		if err == nil {
			f.logger.Info("score submitted", "player", e.PlayerName, "score", e.Score)
			return nil
		}
		f.logger.Warn("remote submit failed, saving locally", "error", err)
	}
	if err := f.local.Submit(ctx, e); err != nil {
		f.logger.Error("local submit failed", "error", err)
		return err
	}
	f.logger.Info("score saved locally", "player", e.PlayerName, "score", e.Score)
	return nil
}

// Top returns the remote top list, or the local one if the remote fails or
// has no entries. The result is ranked and capped at n.
func (f *Fallback) Top(ctx context.Context, n int) ([]Entry, error) {
	n = normalizeLimit(n)
	if f.remote != nil {
		entries, err := f.remote.Top(ctx, n)
		switch {
		case err != nil:
			f.logger.Warn("remote top failed, using local scores", "error", err)
		case len(entries) > 0:
			return Rank(entries, n), nil
		}
	}

	entries, err := f.local.Top(ctx, n)
	if err != nil {
		f.logger.Warn("local top failed", "error", err)
		return nil, nil
	}
	return Rank(entries, n), nil
}
