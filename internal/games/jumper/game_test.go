package jumper

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   100,
		Seed:       seed,
		PlayerName: "tester",
	}
}

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultJumperConfig())
	g.Reset(testRuntime(seed))
	return g
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 1500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 < 10:
			inputs[i].Set(core.ActionLeft)
		case i%40 >= 25:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() (core.GameState, FrameResult) {
		g := newTestGame(12345)
		var state core.GameState
		for _, in := range inputs {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return state, g.Engine().Snapshot()
	}

	state1, snap1 := run()
	state2, snap2 := run()

	if state1 != state2 {
		t.Errorf("states differ: %+v vs %+v", state1, state2)
	}
	if snap1.Player != snap2.Player {
		t.Errorf("player differs: %+v vs %+v", snap1.Player, snap2.Player)
	}
	for i := range snap1.Platforms {
		if snap1.Platforms[i] != snap2.Platforms[i] {
			t.Errorf("platform %d differs: %+v vs %+v", i, snap1.Platforms[i], snap2.Platforms[i])
		}
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(1)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	ticks := g.Engine().Ticks()

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Engine().Ticks() != ticks {
		t.Errorf("engine advanced while paused: %d -> %d", ticks, g.Engine().Ticks())
	}

	res = g.Step(pause)
	if res.State.Paused {
		t.Error("second pause press should resume")
	}
	if g.Engine().Ticks() != ticks+1 {
		t.Errorf("resume tick should advance the engine, ticks = %d", g.Engine().Ticks())
	}
}

func TestGameStepMapsMovement(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)

	if x := g.Engine().Snapshot().Player.X; x != 250 {
		t.Errorf("x = %d, want 250", x)
	}
	if !g.Engine().Intent().Right {
		t.Error("right intent should be stored")
	}
}

func TestGameEndedReportedOnce(t *testing.T) {
	g := newTestGame(1)
	g.Engine().state.Player.Y = 499
	g.Engine().state.Player.VelocityY = 5

	res := g.Step(core.NewInputFrame())
	if !res.Ended || !res.State.GameOver {
		t.Fatalf("ended=%v gameOver=%v", res.Ended, res.State.GameOver)
	}

	res = g.Step(core.NewInputFrame())
	if res.Ended {
		t.Error("Ended reported twice")
	}
	if !res.State.GameOver {
		t.Error("game over should persist")
	}
}

func TestGameResetClearsPause(t *testing.T) {
	g := newTestGame(1)
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	g.Reset(testRuntime(2))
	if g.State().Paused {
		t.Error("Reset should clear pause")
	}
	if g.State().Score != 0 {
		t.Errorf("Reset should clear score, got %d", g.State().Score)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(5)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Height: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Player: tester") {
		t.Errorf("HUD should show player name, row = %q", screen.Row(0))
	}

	var player, platform bool
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			c := screen.GetCell(x, y)
			switch {
			case c.Rune == PlayerChar && c.Color == core.ColorBrightRed:
				player = true
			case c.Rune == PlatformChar && c.Color == core.ColorBrightGreen:
				platform = true
			}
		}
	}
	if !player {
		t.Error("player not drawn")
	}
	if !platform {
		t.Error("no unvisited platform drawn")
	}
}

func TestGameRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		want  string
	}{
		{
			name: "paused",
			setup: func(g *Game) {
				in := core.NewInputFrame()
				in.Set(core.ActionPause)
				g.Step(in)
			},
			want: "PAUSED",
		},
		{
			name: "game over",
			setup: func(g *Game) {
				g.Engine().state.Player.Y = 600
				g.Step(core.NewInputFrame())
			},
			want: "GAME OVER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(1)
			tt.setup(g)
			screen := core.NewScreen(80, 24)
			g.Render(screen)
			if !strings.Contains(screen.String(), tt.want) {
				t.Errorf("screen missing %q:\n%s", tt.want, screen.String())
			}
		})
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("jumper") {
		t.Fatal("jumper should be registered")
	}
	g, err := registry.Create("jumper")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "jumper" || g.Title() != "Sky Jumper" {
		t.Errorf("ID=%q Title=%q", g.ID(), g.Title())
	}
}

func TestGameStateBeforeReset(t *testing.T) {
	g := New()
	if s := g.State(); s != (core.GameState{}) {
		t.Errorf("State before Reset = %+v", s)
	}
}
