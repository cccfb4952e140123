package jumper

import (
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
)

// constRand always returns v, capped to the requested range.
type constRand int

func (c constRand) Intn(n int) int {
	return min(int(c), n-1)
}

// seqRand returns the queued values in order, then zero.
type seqRand struct {
	vals []int
}

func (s *seqRand) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v % n
}

func TestPlatformFieldInitialLayout(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	pf := NewPlatformField(cfg.Platforms, cfg.World.Height, &seqRand{vals: []int{10, 20, 30, 40}})

	platforms := pf.Platforms()
	if len(platforms) != 5 {
		t.Fatalf("expected 5 platforms, got %d", len(platforms))
	}

	first := pf.First()
	if first.Rect.X != 200 || first.Rect.Y != 400 {
		t.Errorf("first platform at (%d,%d), want (200,400)", first.Rect.X, first.Rect.Y)
	}

	wantX := []int{200, 10, 20, 30, 40}
	wantY := []int{400, 300, 200, 100, 0}
	for i, p := range platforms {
		if p.Rect.X != wantX[i] || p.Rect.Y != wantY[i] {
			t.Errorf("platform %d at (%d,%d), want (%d,%d)", i, p.Rect.X, p.Rect.Y, wantX[i], wantY[i])
		}
		if p.Rect.W != 100 || p.Rect.H != 10 {
			t.Errorf("platform %d size %dx%d, want 100x10", i, p.Rect.W, p.Rect.H)
		}
		if p.Token != Token(i) {
			t.Errorf("platform %d token %d, want %d", i, p.Token, i)
		}
	}
	if pf.NextToken() != 5 {
		t.Errorf("NextToken = %d, want 5", pf.NextToken())
	}
}

func TestPlatformFieldInitialSpread(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	pf := NewPlatformField(cfg.Platforms, cfg.World.Height, constRand(1000))

	for i, p := range pf.Platforms()[1:] {
		if p.Rect.X < 0 || p.Rect.X >= 300 {
			t.Errorf("platform %d x=%d outside [0,300)", i+1, p.Rect.X)
		}
	}
}

func TestPlatformFieldScrollRecycles(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	pf := NewPlatformField(cfg.Platforms, cfg.World.Height, constRand(399))

	pf.Platforms()[2].Rect.Y = 500
	oldToken := pf.Platforms()[2].Token

	recycled := pf.Scroll(1)

	if len(recycled) != 1 || recycled[0] != 2 {
		t.Fatalf("recycled slots = %v, want [2]", recycled)
	}
	p := pf.Platforms()[2]
	if p.Rect.Y != -10 {
		t.Errorf("recycled y = %d, want -10", p.Rect.Y)
	}
	if p.Rect.X != 399 {
		t.Errorf("recycled x = %d, want 399", p.Rect.X)
	}
	if p.Token <= oldToken {
		t.Errorf("recycled token %d should be greater than %d", p.Token, oldToken)
	}
	if p.Token != 5 {
		t.Errorf("recycled token = %d, want 5", p.Token)
	}

	// Everything else just moved down
	if got := pf.Platforms()[0].Rect.Y; got != 401 {
		t.Errorf("platform 0 y = %d, want 401", got)
	}
}

func TestPlatformFieldBoundaryNotRecycled(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	pf := NewPlatformField(cfg.Platforms, cfg.World.Height, constRand(0))

	pf.Platforms()[1].Rect.Y = 499
	if recycled := pf.Scroll(1); len(recycled) != 0 {
		t.Errorf("platform at y=500 should stay, recycled %v", recycled)
	}
	if got := pf.Platforms()[1].Rect.Y; got != 500 {
		t.Errorf("y = %d, want 500", got)
	}
}

func TestPlatformFieldResetRestartsTokens(t *testing.T) {
	cfg := config.DefaultJumperConfig()
	pf := NewPlatformField(cfg.Platforms, cfg.World.Height, constRand(0))

	for i := 0; i < 700; i++ {
		pf.Scroll(1)
	}
	if pf.NextToken() <= 5 {
		t.Fatalf("expected recycles after 700 scrolls, NextToken = %d", pf.NextToken())
	}

	pf.Reset()
	for i, p := range pf.Platforms() {
		if p.Token != Token(i) {
			t.Errorf("after reset platform %d token %d, want %d", i, p.Token, i)
		}
	}
}

func TestVisitedSet(t *testing.T) {
	v := make(VisitedSet)
	if v.Has(3) {
		t.Error("empty set should not contain 3")
	}
	if !v.Add(3) {
		t.Error("first Add should report true")
	}
	if v.Add(3) {
		t.Error("second Add should report false")
	}
	if !v.Has(3) {
		t.Error("set should contain 3")
	}
}
