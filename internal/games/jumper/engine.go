package jumper

import (
	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Intent holds the horizontal movement flags for a tick. Both may be set at
// once, in which case the two moves cancel out.
type Intent struct {
	Left  bool
	Right bool
}

// Player is the jumping body.
type Player struct {
	X, Y      int
	VelocityY int // Positive = falling
	W, H      int
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// GameState is all mutable simulation state. It is owned by an Engine and
// replaced wholesale by Reset.
type GameState struct {
	Player   Player
	Field    *PlatformField
	Visited  VisitedSet
	Score    int
	GameOver bool
	Intent   Intent
	Ticks    int
}

// PlatformView is a read-only copy of a platform for renderers.
type PlatformView struct {
	Rect    core.Rect
	Token   Token
	Visited bool
}

// FrameResult describes the state after a tick and what happened during it.
type FrameResult struct {
	Player    core.Rect
	VelocityY int
	Platforms []PlatformView
	Score     int
	GameOver  bool

	Bounced  bool  // The player touched at least one platform
	Scored   int   // Platforms credited for the first time this tick
	Recycled []int // Platform slots recycled this tick
	Ended    bool  // This tick moved the game from running to game over
}

// Engine is the fixed-timestep simulation. It is not safe for concurrent
// use; input edits and ticks must come from the same goroutine.
type Engine struct {
	cfg        config.JumperConfig
	rng        Rand
	difficulty *config.DifficultyManager
	state      GameState
}

// NewEngine creates an engine and performs the initial Reset.
func NewEngine(cfg config.JumperConfig, rng Rand) *Engine {
	e := &Engine{
		cfg:        cfg,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	e.Reset()
	return e
}

// Reset builds a fresh game: new platform layout, player standing centered
// on the first platform, score and flags cleared.
func (e *Engine) Reset() {
	field := e.state.Field
	if field == nil {
		field = NewPlatformField(e.cfg.Platforms, e.cfg.World.Height, e.rng)
	} else {
		field.Reset()
	}

	first := field.First().Rect
	pw, ph := e.cfg.Player.Width, e.cfg.Player.Height

	e.state = GameState{
		Player: Player{
			X: first.X + first.W/2 - pw/2,
			Y: first.Y - ph,
			W: pw,
			H: ph,
		},
		Field:   field,
		Visited: make(VisitedSet),
	}
}

// Restart is Reset under the name the game-over screen uses. It may be
// called at any time.
func (e *Engine) Restart() {
	e.Reset()
}

// SetIntent replaces the stored movement flags used by Tick.
func (e *Engine) SetIntent(in Intent) {
	e.state.Intent = in
}

// Tick advances one step using the stored movement flags.
func (e *Engine) Tick() FrameResult {
	return e.Advance(e.state.Intent)
}

// Advance stores the given intent and runs one simulation step:
// vertical integration, fall check, bounce or gravity, horizontal movement,
// then platform scroll. Once the game is over it returns the current
// snapshot without changing anything.
func (e *Engine) Advance(in Intent) FrameResult {
	s := &e.state
	if s.GameOver {
		return e.Snapshot()
	}

	s.Intent = in
	s.Ticks++

	var res FrameResult

	s.Player.Y += s.Player.VelocityY

	if s.Player.Y > e.cfg.World.Height {
		s.GameOver = true
		res.Ended = true
	}

	res.Bounced, res.Scored = e.bounceIfOnPlatform()

	if in.Left && s.Player.X > 0 {
		s.Player.X -= e.cfg.Player.Step
	}
	if in.Right && s.Player.X < e.cfg.Player.MaxX {
		s.Player.X += e.cfg.Player.Step
	}
	s.Player.X = core.Clamp(s.Player.X, 0, e.cfg.Player.MaxX)

	speed := e.difficulty.ScrollSpeed(e.cfg.Physics.ScrollSpeed, s.Score, s.Ticks)
	res.Recycled = s.Field.Scroll(speed)

	snap := e.Snapshot()
	snap.Bounced = res.Bounced
	snap.Scored = res.Scored
	snap.Recycled = res.Recycled
	snap.Ended = res.Ended
	return snap
}

// bounceIfOnPlatform checks every platform for a landing. Any contact sets
// the bounce velocity and credits each newly touched platform once; no
// contact applies gravity instead.
func (e *Engine) bounceIfOnPlatform() (bounced bool, scored int) {
	s := &e.state
	player := s.Player.Rect()
	feet := player.Bottom()

	for _, p := range s.Field.Platforms() {
		if feet < p.Rect.Y || feet > p.Rect.Bottom() || !player.OverlapsX(p.Rect) {
			continue
		}
		bounced = true
		s.Player.VelocityY = e.cfg.Physics.BounceVelocity
		if s.Visited.Add(p.Token) {
			s.Score++
			scored++
		}
	}

	if !bounced {
		s.Player.VelocityY += e.cfg.Physics.Gravity
	}
	return bounced, scored
}

// Snapshot returns the current state without advancing.
func (e *Engine) Snapshot() FrameResult {
	s := &e.state
	platforms := s.Field.Platforms()
	views := make([]PlatformView, len(platforms))
	for i, p := range platforms {
		views[i] = PlatformView{
			Rect:    p.Rect,
			Token:   p.Token,
			Visited: s.Visited.Has(p.Token),
		}
	}
	return FrameResult{
		Player:    s.Player.Rect(),
		VelocityY: s.Player.VelocityY,
		Platforms: views,
		Score:     s.Score,
		GameOver:  s.GameOver,
	}
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.state.Score
}

// GameOver reports whether the player has fallen out of the world.
func (e *Engine) GameOver() bool {
	return e.state.GameOver
}

// Intent returns the stored movement flags.
func (e *Engine) Intent() Intent {
	return e.state.Intent
}

// Ticks returns the number of simulated ticks since the last reset.
func (e *Engine) Ticks() int {
	return e.state.Ticks
}

// World returns the size of the simulated world.
func (e *Engine) World() (w, h int) {
	return e.cfg.World.Width, e.cfg.World.Height
}
