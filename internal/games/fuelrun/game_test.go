package fuelrun

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/fuelrun/internal/config"
	"github.com/vovakirdan/fuelrun/internal/core"
	"github.com/vovakirdan/fuelrun/internal/games/fuelrun/sim"
	"github.com/vovakirdan/fuelrun/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestVariantsRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
		mode  sim.FireMode
	}{
		{IDClassic, "Fuel Run", sim.FireAimed},
		{IDScatter, "Fuel Run: Scatter", sim.FireBurst},
	}
	for _, tt := range tests {
		g, err := registry.Create(tt.id)
		if err != nil {
			t.Fatalf("registry.Create(%q) error: %v", tt.id, err)
		}
		if g.ID() != tt.id || g.Title() != tt.title {
			t.Errorf("got %q/%q, want %q/%q", g.ID(), g.Title(), tt.id, tt.title)
		}
		g.Reset(testConfig())
		if mode := g.(*Game).World().Tuning().FireMode; mode != tt.mode {
			t.Errorf("%s fire mode = %v, want %v", tt.id, mode, tt.mode)
		}
	}
}

func TestDefaultConfigMatchesDefaultTuning(t *testing.T) {
	if got := TuningFromConfig(config.DefaultFuelRunConfig()); got != sim.DefaultTuning() {
		t.Errorf("TuningFromConfig(defaults) differs from sim.DefaultTuning():\n%+v\n%+v", got, sim.DefaultTuning())
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%4 != 0 {
			inputs[i].Set(core.ActionFire)
		}
		if (i/50)%2 == 0 {
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func() (sim.Snapshot, core.GameState) {
		g := New()
		g.Reset(testConfig())
		var state core.GameState
		for _, in := range inputs {
			state = g.Step(in).State
		}
		return g.World().Snapshot(), state
	}

	snap1, state1 := run()
	snap2, state2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if state1 != state2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", state1, state2)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(core.NewInputFrame())

	res := g.Step(frameWith(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	frame := g.World().Frame()
	for i := 0; i < 10; i++ {
		g.Step(frameWith(core.ActionFire))
	}
	if g.World().Frame() != frame {
		t.Error("paused game should not advance the world")
	}

	res = g.Step(frameWith(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
	if g.World().Frame() != frame+1 {
		t.Error("resumed game should advance")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.World().KillPlayer()

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("game should be over without a player")
	}
	frame := g.World().Frame()
	g.Step(frameWith(core.ActionFire, core.ActionPause))
	if g.World().Frame() != frame {
		t.Error("finished game should not advance without a restart")
	}

	res = g.Step(frameWith(core.ActionRestart))
	if res.State.GameOver {
		t.Error("restart should clear game over")
	}
	if _, ok := g.World().Player(); !ok {
		t.Error("restart should bring the player back")
	}
}

func TestShotCue(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	var cues []string
	for i := 0; i < 10; i++ {
		cues = append(cues, g.Step(frameWith(core.ActionFire)).Cues...)
	}
	shots := 0
	for _, c := range cues {
		if c == sim.SoundShot {
			shots++
		}
	}
	if shots == 0 {
		t.Errorf("holding fire for 10 ticks produced no shot cue, cues=%v", cues)
	}
	if g.Summary().Frames != 10 {
		t.Errorf("Summary().Frames = %d, want 10", g.Summary().Frames)
	}
}

func TestScoreFromStats(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	var r registry.Summarizer = g
	if r.Summary().Score != 0 {
		t.Error("fresh game should score 0")
	}
	if g.State().Score != 0 {
		t.Error("fresh game state should score 0")
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	// Camera and player both start at the origin, the center of the playfield.
	if r := screen.Get(40, 11); r != '→' {
		t.Errorf("cell (40, 11) = %q, want the player glyph", r)
	}
	if status := screen.Row(23); !strings.Contains(status, "Score: 0") || !strings.Contains(status, "Ammo: 100") {
		t.Errorf("status line = %q", status)
	}

	icons := 0
	for y := 0; y < 23; y++ {
		icons += strings.Count(screen.Row(y), "▮")
	}
	if icons != 2 {
		t.Errorf("found %d fuel icons, want 2", icons)
	}
}

func TestRenderMessages(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.Step(frameWith(core.ActionPause))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused game should show the pause box")
	}
}

func TestOctant(t *testing.T) {
	tests := []struct {
		facing float64
		want   int
	}{
		{0, 0},
		{math.Pi / 4, 1},
		{math.Pi / 2, 2},
		{math.Pi, 4},
		{-math.Pi / 2, 6},
		{-math.Pi / 4, 7},
		{0.3, 0},
		{-0.3, 0},
	}
	for _, tt := range tests {
		if got := octant(tt.facing); got != tt.want {
			t.Errorf("octant(%v) = %d, want %d", tt.facing, got, tt.want)
		}
	}
}
