package leaderboard

import (
	"context"
	"errors"
	"testing"
)

// fakeBoard records submissions and serves canned results.
type fakeBoard struct {
	entries   []Entry
	submitted []Entry
	err       error
}

func (f *fakeBoard) Submit(_ context.Context, e Entry) error {
	if f.err != nil {
		return f.err
	}
	f.submitted = append(f.submitted, e)
	return nil
}

func (f *fakeBoard) Top(_ context.Context, n int) ([]Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

var errDown = errors.New("down")

func TestFallbackSubmit(t *testing.T) {
	tests := []struct {
		name        string
		remote      *fakeBoard
		wantRemote  int
		wantLocal   int
		remoteIsNil bool
	}{
		{name: "remote ok", remote: &fakeBoard{}, wantRemote: 1},
		{name: "remote down", remote: &fakeBoard{err: errDown}, wantLocal: 1},
		{name: "no remote", remoteIsNil: true, wantLocal: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := &fakeBoard{}
			var remote Board
			if !tt.remoteIsNil {
				remote = tt.remote
			}
			f := NewFallback(remote, local, nil)

			if err := f.Submit(context.Background(), Entry{PlayerName: "ann", Score: 3}); err != nil {
				t.Fatalf("Submit() failed: %v", err)
			}
			if tt.remote != nil && len(tt.remote.submitted) != tt.wantRemote {
				t.Errorf("remote got %d submissions, want %d", len(tt.remote.submitted), tt.wantRemote)
			}
			if len(local.submitted) != tt.wantLocal {
				t.Errorf("local got %d submissions, want %d", len(local.submitted), tt.wantLocal)
			}
		})
	}
}

func TestFallbackSubmitBothFail(t *testing.T) {
	f := NewFallback(&fakeBoard{err: errDown}, &fakeBoard{err: ErrNoStore}, nil)
	err := f.Submit(context.Background(), Entry{PlayerName: "ann", Score: 3})
	if !errors.Is(err, ErrNoStore) {
		t.Errorf("error = %v, want local error", err)
	}
}

func TestFallbackTop(t *testing.T) {
	remoteEntries := []Entry{{PlayerName: "r1", Score: 2}, {PlayerName: "r2", Score: 8}}
	localEntries := []Entry{{PlayerName: "l1", Score: 5}}

	tests := []struct {
		name      string
		remote    Board
		wantFirst string
	}{
		{"remote ok", &fakeBoard{entries: remoteEntries}, "r2"},
		{"remote down", &fakeBoard{err: errDown}, "l1"},
		{"remote empty", &fakeBoard{}, "l1"},
		{"no remote", nil, "l1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFallback(tt.remote, &fakeBoard{entries: localEntries}, nil)
			entries, err := f.Top(context.Background(), 10)
			if err != nil {
				t.Fatalf("Top() failed: %v", err)
			}
			if len(entries) == 0 || entries[0].PlayerName != tt.wantFirst {
				t.Errorf("entries = %+v, want first %s", entries, tt.wantFirst)
			}
		})
	}
}

func TestFallbackTopCaps(t *testing.T) {
	many := make([]Entry, 30)
	for i := range many {
		many[i] = Entry{PlayerName: "p", Score: i}
	}
	f := NewFallback(&fakeBoard{entries: many}, &fakeBoard{}, nil)

	entries, _ := f.Top(context.Background(), 0)
	if len(entries) != DefaultTopN {
		t.Fatalf("len = %d, want %d", len(entries), DefaultTopN)
	}
	if entries[0].Score != 29 {
		t.Errorf("best = %d, want 29", entries[0].Score)
	}
}

func TestFallbackLocalErrorIsEmpty(t *testing.T) {
	f := NewFallback(nil, &fakeBoard{err: errDown}, nil)
	entries, err := f.Top(context.Background(), 5)
	if err != nil || len(entries) != 0 {
		t.Errorf("Top() = %v, %v; want empty, nil", entries, err)
	}
}
