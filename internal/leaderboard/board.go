// Package leaderboard records finished runs and serves the best ones.
// A Board is either a remote HTTP service, the local SQLite store, or a
// Fallback that prefers the remote and degrades to the local store.
package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// GameID is the storage key for jumper scores.
const GameID = "jumper"

// DefaultTopN is the number of entries returned when no limit is given.
const DefaultTopN = 10

// MaxNameLength bounds player names accepted for submission.
const MaxNameLength = 32

var (
	// ErrStatus is wrapped by remote calls that got a non-2xx response.
	ErrStatus = errors.New("leaderboard: unexpected status")

	// ErrInvalidEntry is returned for entries with no name or a negative score.
	ErrInvalidEntry = errors.New("leaderboard: invalid entry")
)

// Board stores finished runs and returns the best ones.
type Board interface {
	Submit(ctx context.Context, e Entry) error
	Top(ctx context.Context, n int) ([]Entry, error)
}

// Entry is one finished run.
type Entry struct {
	PlayerName string    `json:"playerName"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
}

// UnmarshalJSON accepts "name" as an alias of "playerName".
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw struct {
		PlayerName string    `json:"playerName"`
		Name       string    `json:"name"`
		Score      int       `json:"score"`
		CreatedAt  time.Time `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.PlayerName = raw.PlayerName
	if e.PlayerName == "" {
		e.PlayerName = raw.Name
	}
	e.Score = raw.Score
	e.CreatedAt = raw.CreatedAt
	return nil
}

// Validate trims the name and checks it can be stored.
func (e *Entry) Validate() error {
	e.PlayerName = strings.TrimSpace(e.PlayerName)
	switch {
	case e.PlayerName == "":
		return fmt.Errorf("%w: empty player name", ErrInvalidEntry)
	case len([]rune(e.PlayerName)) > MaxNameLength:
		return fmt.Errorf("%w: player name longer than %d", ErrInvalidEntry, MaxNameLength)
	case e.Score < 0:
		return fmt.Errorf("%w: negative score %d", ErrInvalidEntry, e.Score)
	}
	return nil
}

// Rank sorts entries by score descending, keeping the input order for ties,
// and caps the result at n (DefaultTopN when n <= 0).
func Rank(entries []Entry, n int) []Entry {
	n = normalizeLimit(n)
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func normalizeLimit(n int) int {
	if n <= 0 {
		return DefaultTopN
	}
	return n
}
