package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/storage"
)

// ErrNoStore is returned by Local.Submit when the database could not be opened.
var ErrNoStore = errors.New("leaderboard: local store unavailable")

// Local keeps the best runs in the SQLite score store, pruned to capacity
// after every insert. Read failures are logged and yield an empty list.
type Local struct {
	store    *storage.Store
	capacity int
	logger   *log.Logger
}

// NewLocal wraps an open store. A nil store is allowed and behaves as an
// always-empty board. A nil logger discards output.
func NewLocal(store *storage.Store, capacity int, logger *log.Logger) *Local {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Local{
		store:    store,
		capacity: normalizeLimit(capacity),
		logger:   logger,
	}
}

// OpenLocal opens the database at path. If that fails the error is logged
// and the returned board is empty.
func OpenLocal(path string, capacity int, logger *log.Logger) *Local {
	l := NewLocal(nil, capacity, logger)
	store, err := storage.Open(path)
	if err != nil {
		l.logger.Warn("could not open local scores", "path", path, "error", err)
		return l
	}
	l.store = store
	return l
}

// Store returns the underlying store, or nil.
func (l *Local) Store() *storage.Store {
	return l.store
}

// Submit saves the entry and drops everything below the top capacity.
func (l *Local) Submit(_ context.Context, e Entry) error {
	if l.store == nil {
		return ErrNoStore
	}
	if _, err := l.store.SaveScore(GameID, e.PlayerName, e.Score); err != nil {
		return fmt.Errorf("leaderboard: local submit: %w", err)
	}
	if _, err := l.store.Prune(GameID, l.capacity); err != nil {
		l.logger.Warn("could not prune local scores", "error", err)
	}
	return nil
}

// Top returns up to n local entries, best first. It never fails.
func (l *Local) Top(_ context.Context, n int) ([]Entry, error) {
	if l.store == nil {
		return nil, nil
	}
	rows, err := l.store.TopScores(GameID, normalizeLimit(n))
	if err != nil {
		l.logger.Warn("could not read local scores", "error", err)
		return nil, nil
	}
	entries := make([]Entry, len(rows))
	for i, r := range rows {
		entries[i] = Entry{PlayerName: r.PlayerName, Score: r.Score, CreatedAt: r.CreatedAt}
	}
	return entries, nil
}

// Close closes the underlying store.
func (l *Local) Close() error {
	if l.store == nil {
		return nil
	}
	return l.store.Close()
}
