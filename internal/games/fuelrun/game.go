// Package fuelrun adapts the Fuel Run simulation to the arcade platform.
// The player flies a vehicle whose only thrust is its gun: every shot pushes
// it forward while enemies close in. Destroyed enemies drop fuel that refills
// the ammunition, and a roaming target awards stars.
package fuelrun

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fuelrun/internal/config"
	"github.com/vovakirdan/fuelrun/internal/core"
	"github.com/vovakirdan/fuelrun/internal/games/fuelrun/sim"
	"github.com/vovakirdan/fuelrun/internal/registry"
)

// Registered variant IDs.
const (
	IDClassic = "fuelrun"
	IDScatter = "fuelrun_scatter"
)

// Leaderboard points.
const (
	PointsPerTarget = 100
	PointsPerKill   = 10
)

// cueHold is how many ticks a sound cue stays on the status line.
const cueHold = 30

// Game implements registry.Game on top of a sim.World.
type Game struct {
	id    string
	title string
	cfg   config.FuelRunConfig

	world  *sim.World
	diff   *config.DifficultyManager
	rc     core.RuntimeConfig
	delta  time.Duration
	logger *log.Logger

	paused   bool
	gameOver bool
	cue      string
	cueTicks int
	report   sim.FrameReport
}

// New creates the classic aimed-gun variant.
func New() *Game {
	return NewVariant(IDClassic)
}

// NewVariant creates the variant with the given ID using the default configuration.
func NewVariant(id string) *Game {
	g := &Game{id: id, logger: log.Default()}
	g.Configure(config.DefaultFuelRunConfig())
	return g
}

// Configure replaces the configuration used by the next Reset.
// The scatter variant always fires bursts.
func (g *Game) Configure(cfg config.FuelRunConfig) {
	g.title = "Fuel Run"
	if g.id == IDScatter {
		cfg.Gun.Mode = "burst"
		g.title = "Fuel Run: Scatter"
	}
	g.cfg = cfg
}

// SetLogger sets the logger for run events. A nil logger is ignored.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Blurb describes the variant in one line.
func (g *Game) Blurb() string {
	if g.cfg.Gun.Mode == "burst" {
		return "Every shot sprays a fan of fragments."
	}
	return "One bullet per shot, and every shot is thrust."
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rc = cfg
	g.delta = cfg.Delta()
	g.world = sim.NewWorld(TuningFromConfig(g.cfg), cfg.Seed)
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.paused = false
	g.gameOver = false
	g.cue = ""
	g.cueTicks = 0
	g.report = sim.FrameReport{}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}

	restart := in.Has(core.ActionRestart)
	if restart {
		g.gameOver = false
		g.paused = false
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	report := g.world.Step(sim.Input{
		TurnLeft:  in.Has(core.ActionLeft),
		TurnRight: in.Has(core.ActionRight),
		Fire:      in.Has(core.ActionFire),
		Reset:     restart,
	}, g.delta)
	g.report = report

	g.applyDifficulty()

	for _, e := range report.Events {
		switch e.Kind {
		case sim.EventPlayerDied:
			g.logger.Debug("player died", "game", g.id, "frame", report.Frame, "score", g.score())
		case sim.EventReset:
			g.logger.Debug("run reset", "game", g.id, "frame", report.Frame)
		}
	}

	if _, ok := g.world.Player(); !ok {
		g.gameOver = true
	}

	cues := report.Sounds()
	if len(cues) > 0 {
		g.cue = cues[len(cues)-1]
		g.cueTicks = cueHold
	} else if g.cueTicks > 0 {
		g.cueTicks--
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// applyDifficulty raises the enemy speed limit as the run progresses.
func (g *Game) applyDifficulty() {
	st := g.world.Stats()
	g.world.SetEnemyMaxSpeed(g.diff.EnemyMaxSpeed(g.cfg.Enemies.MaxSpeed, config.Progress{Score: g.score(), Frames: st.Frames}))
}

func (g *Game) score() int {
	if g.world == nil {
		return 0
	}
	st := g.world.Stats()
	return st.TargetsReached*PointsPerTarget + st.Kills*PointsPerKill
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Summary describes the current run for persistence.
func (g *Game) Summary() core.RunSummary {
	if g.world == nil {
		return core.RunSummary{}
	}
	st := g.world.Stats()
	return core.RunSummary{
		Score:         g.score(),
		Kills:         st.Kills,
		Targets:       st.TargetsReached,
		FuelCollected: st.FuelCollected,
		Frames:        st.Frames,
	}
}

// World exposes the simulation for headless drivers.
func (g *Game) World() *sim.World {
	return g.world
}

// LastReport returns what happened during the most recent simulated frame.
// Paused and finished ticks leave it untouched.
func (g *Game) LastReport() sim.FrameReport {
	return g.report
}

// Delta returns the fixed frame duration derived from the tick rate.
func (g *Game) Delta() time.Duration {
	return g.delta
}

// Register the variants with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return NewVariant(IDClassic)
	})
	registry.Register(IDScatter, func() registry.Game {
		return NewVariant(IDScatter)
	})
}
