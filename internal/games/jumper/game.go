// Package jumper implements an endless platform jumper.
// The player bounces on platforms that scroll down the screen and scores a
// point for every platform touched for the first time.
package jumper

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	BorderChar   = '│'
)

// Game adapts the Engine to the arcade platform: pause handling, input
// mapping and terminal rendering.
type Game struct {
	engine  *Engine
	cfg     config.JumperConfig
	runtime core.RuntimeConfig
	paused  bool
}

// gameConfig is the configuration used by games created through the
// registry. Set from the CLI once at startup.
var gameConfig *config.JumperConfig

// SetConfig sets the configuration for games created after this call.
func SetConfig(cfg config.JumperConfig) {
	gameConfig = &cfg
}

// New creates a new jumper game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that ignores the package-level config.
func NewWithConfig(cfg config.JumperConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Jumper"
}

// Reset initializes or restarts the game with a new random layout.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.cfg.Platforms.Count == 0 {
		g.cfg = resolveConfig()
	}

	g.engine = NewEngine(g.cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.paused = false
}

// resolveConfig returns the CLI-provided config, or whatever the config
// search path yields.
func resolveConfig() config.JumperConfig {
	if gameConfig != nil {
		return *gameConfig
	}
	cfg, err := config.LoadJumper("")
	if err != nil {
		return config.DefaultJumperConfig()
	}
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.engine.Advance(Intent{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	})

	return core.StepResult{State: g.State(), Ended: res.Ended}
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Render draws the current game state to the screen.
// The world is scaled to fit the area below the HUD line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.engine.Snapshot()
	worldW, worldH := g.engine.World()

	// Keep the playfield square-ish: terminal cells are about twice as tall as wide
	fieldH := dst.Height() - 1
	fieldW := core.Max(1, min(dst.Width(), fieldH*2))
	offsetX := (dst.Width() - fieldW) / 2
	vp := core.Viewport{WorldW: worldW, WorldH: worldH, ScreenW: fieldW, ScreenH: fieldH}

	place := func(r core.Rect) core.Rect {
		cell := vp.Project(r)
		cell.X += offsetX
		cell.Y++ // HUD line
		return cell
	}

	// Field borders
	if offsetX > 0 {
		for y := 1; y < dst.Height(); y++ {
			dst.SetColored(offsetX-1, y, BorderChar, core.ColorGray)
			dst.SetColored(offsetX+fieldW, y, BorderChar, core.ColorGray)
		}
	}

	for _, p := range snap.Platforms {
		color := core.ColorBrightGreen
		if p.Visited {
			color = core.ColorGray
		}
		cell := place(p.Rect)
		if cell.Y < 1 {
			continue // still above the visible field
		}
		dst.DrawRect(cell, PlatformChar, color)
	}

	if !snap.GameOver {
		cell := place(snap.Player)
		if cell.Y >= 1 {
			dst.DrawRect(cell, PlayerChar, core.ColorBrightRed)
		}
	}

	// HUD
	dst.DrawTextColored(1, 0, fmt.Sprintf("Height: %d", snap.Score), core.ColorBrightWhite)
	if name := g.runtime.PlayerName; name != "" {
		label := "Player: " + name
		dst.DrawTextColored(dst.Width()-len([]rune(label))-1, 0, label, core.ColorCyan)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  S scores  Q quit", snap.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("jumper", func() registry.Game {
		return New()
	})
}
