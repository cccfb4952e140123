package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Token identifies a platform between two recycles. Tokens are issued in
// increasing order and never reused within a session.
type Token uint64

// Rand is the random source used for platform placement.
// *math/rand.Rand satisfies it; tests inject deterministic sources.
type Rand interface {
	Intn(n int) int
}

// Platform is a single landing surface.
type Platform struct {
	Rect  core.Rect
	Token Token
}

// VisitedSet holds the tokens already credited for score.
// Entries are never removed: a recycled platform gets a new token, so stale
// entries simply never match a live platform again.
type VisitedSet map[Token]struct{}

// Has reports whether the token was already credited.
func (v VisitedSet) Has(t Token) bool {
	_, ok := v[t]
	return ok
}

// Add marks the token as visited. It returns false if it already was.
func (v VisitedSet) Add(t Token) bool {
	if v.Has(t) {
		return false
	}
	v[t] = struct{}{}
	return true
}

// PlatformField owns the fixed pool of platforms: initial layout, scrolling
// and recycling.
type PlatformField struct {
	platforms []Platform
	nextToken Token
	rng       Rand
	cfg       config.PlatformConfig
	worldH    int
}

// NewPlatformField creates a field and lays out the initial platforms.
func NewPlatformField(cfg config.PlatformConfig, worldH int, rng Rand) *PlatformField {
	pf := &PlatformField{
		platforms: make([]Platform, 0, cfg.Count),
		rng:       rng,
		cfg:       cfg,
		worldH:    worldH,
	}
	pf.Reset()
	return pf
}

// Reset discards all platforms, restarts token numbering at zero and builds
// a fresh layout: the first platform at a fixed spot, the rest stacked above
// it at random x.
func (pf *PlatformField) Reset() {
	pf.platforms = pf.platforms[:0]
	pf.nextToken = 0

	pf.platforms = append(pf.platforms, Platform{
		Rect:  core.NewRect(pf.cfg.FirstX, pf.cfg.FirstY, pf.cfg.Width, pf.cfg.Height),
		Token: pf.issue(),
	})

	for i := 1; i < pf.cfg.Count; i++ {
		pf.platforms = append(pf.platforms, Platform{
			Rect: core.NewRect(
				pf.rng.Intn(pf.cfg.InitialSpread),
				pf.cfg.FirstY-i*pf.cfg.Spacing,
				pf.cfg.Width,
				pf.cfg.Height,
			),
			Token: pf.issue(),
		})
	}
}

func (pf *PlatformField) issue() Token {
	t := pf.nextToken
	pf.nextToken++
	return t
}

// First returns the starting platform as laid out by Reset.
func (pf *PlatformField) First() Platform {
	return pf.platforms[0]
}

// Platforms returns the live platforms. The slice is owned by the field.
func (pf *PlatformField) Platforms() []Platform {
	return pf.platforms
}

// NextToken returns the token the next recycled platform will receive.
func (pf *PlatformField) NextToken() Token {
	return pf.nextToken
}

// Scroll moves every platform down by speed. Platforms that pass the bottom
// of the world are moved back above the top at a new random x and get a new
// token. Returns the slots that were recycled.
func (pf *PlatformField) Scroll(speed int) []int {
	var recycled []int
	for i := range pf.platforms {
		p := &pf.platforms[i]
		p.Rect.Y += speed
		if p.Rect.Y > pf.worldH {
			p.Rect.Y = pf.cfg.RecycleY
			p.Rect.X = pf.rng.Intn(pf.cfg.RecycleSpread)
			p.Token = pf.issue()
			recycled = append(recycled, i)
		}
	}
	return recycled
}
