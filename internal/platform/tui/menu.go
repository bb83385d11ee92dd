package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fuelrun/internal/core"
	"github.com/vovakirdan/fuelrun/internal/registry"
	"github.com/vovakirdan/fuelrun/internal/storage"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const (
	menuTagline  = "Your gun is your engine. Mind the fuel."
	menuControls = "↑/↓ choose  ·  enter fly  ·  tab scores  ·  q quit"
	menuInGame   = "in flight: a/d turn  ·  space fire  ·  p pause  ·  r reset  ·  esc menu"
)

// MenuItem is one variant on the picker.
type MenuItem struct {
	GameID    string
	Title     string
	Blurb     string
	HighScore int
}

// MenuModel picks a variant to fly or opens the scoreboard.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered variant with its best score from
// store. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	infos := registry.List()
	items := make([]MenuItem, len(infos))
	for i, g := range infos {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, Blurb: g.Blurb}
		if store == nil {
			continue
		}
		if best, err := store.HighScore(g.ID); err == nil {
			items[i].HighScore = best
		}
	}
	return MenuModel{items: items, config: cfg, keyMapper: NewKeyMapper()}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = max(0, m.cursor-1)
		case MenuActionDown:
			m.cursor = max(0, min(len(m.items)-1, m.cursor+1))
		case MenuActionSelect:
			if len(m.items) == 0 {
				return m, nil
			}
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		case MenuActionScoreboard:
			m.openScoreboard = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		menuTitleStyle.Render("F U E L   R U N"),
		"",
		menuDimStyle.Render(menuTagline),
		"",
	}
	for i, item := range m.items {
		row := fmt.Sprintf("%-20s best %6d", item.Title, item.HighScore)
		if i == m.cursor {
			lines = append(lines, menuCursorStyle.Render("▸ "+row))
		} else {
			lines = append(lines, "  "+row)
		}
	}
	if len(m.items) > 0 && m.items[m.cursor].Blurb != "" {
		lines = append(lines, "", menuDimStyle.Render(m.items[m.cursor].Blurb))
	}
	lines = append(lines, "", menuDimStyle.Render(menuControls), menuDimStyle.Render(menuInGame))

	for i, l := range lines {
		lines[i] = centerText(l, m.config.ScreenW)
	}
	return strings.Join(lines, "\n")
}

// Selected returns the chosen item, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, including any size changes seen.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text to the middle of width, measuring styled width.
func centerText(text string, width int) string {
	if w := lipgloss.Width(text); w < width {
		return strings.Repeat(" ", (width-w)/2) + text
	}
	return text
}

// MenuResult is what the standalone menu program decided.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu as its own program.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config(), WantsScoreboard: m.WantsScoreboard()}
	switch {
	case res.WantsScoreboard:
	case m.Selected() != nil && !m.IsQuitting():
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
