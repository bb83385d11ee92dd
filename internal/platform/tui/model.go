package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fuelrun/internal/core"
	"github.com/vovakirdan/fuelrun/internal/registry"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	recorder  ScoreRecorder
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	held      heldKeys
	gameState core.GameState

	// embedded models return to the menu on Back instead of quitting.
	embedded   bool
	quitting   bool
	backToMenu bool
	played     bool // at least one tick since the last save
	runSaved   bool
	lastRunID  string
}

// NewModel creates a new Bubble Tea model for the given game.
// recorder and logger may be nil.
func NewModel(game registry.Game, recorder ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg = cfg.Normalized()
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder:  recorder,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		held:      newHeldKeys(cfg.TickRate),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game projects onto whatever grid it gets, so no reset is needed.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.saveRun()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	m.held.press(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	in := m.held.frame()
	restart := in.Has(core.ActionRestart)
	if restart {
		// A reset abandons the run in progress; record it before it is gone.
		m.saveRun()
	}

	result := m.game.Step(in)
	m.gameState = result.State
	if restart {
		m.runSaved = false
		m.played = false
	}
	if !m.gameState.Paused && !m.gameState.GameOver {
		m.played = true
	}

	if m.gameState.GameOver {
		m.held.clear()
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// runSummary asks the game for its run record, falling back to the score.
func (m *Model) runSummary() core.RunSummary {
	if s, ok := m.game.(registry.Summarizer); ok {
		return s.Summary()
	}
	return core.RunSummary{Score: m.game.State().Score}
}

// saveRun records the current run once. Failures are logged; play goes on.
func (m *Model) saveRun() {
	if m.runSaved || !m.played {
		return
	}
	m.runSaved = true
	if m.recorder == nil {
		return
	}

	run := m.runSummary()
	id, err := m.recorder.SaveRun(m.game.ID(), run)
	if err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
		return
	}
	m.lastRunID = id
	m.logger.Debug("run saved", "game", m.game.ID(), "run", id, "score", run.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".fuelrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastRunID returns the ID of the most recently saved run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, recorder ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, recorder, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
