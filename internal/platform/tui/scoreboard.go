package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fuelrun/internal/registry"
	"github.com/vovakirdan/fuelrun/internal/storage"
)

const maxRuns = 100

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("130")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmptyStyle = boardDimStyle.Italic(true).Padding(2, 4)
)

// runOrder is the column the run list is ranked by.
type runOrder int

const (
	orderBest runOrder = iota
	orderLongest
	orderRecent
	orderCount
)

func (o runOrder) String() string {
	switch o {
	case orderLongest:
		return "longest"
	case orderRecent:
		return "recent"
	default:
		return "best"
	}
}

// sortRuns orders runs in place. Ties keep their stored order.
func sortRuns(runs []storage.RunEntry, o runOrder) {
	slices.SortStableFunc(runs, func(a, b storage.RunEntry) int {
		switch o {
		case orderLongest:
			return cmp.Compare(b.Frames, a.Frames)
		case orderRecent:
			return b.CreatedAt.Compare(a.CreatedAt)
		default:
			return cmp.Or(cmp.Compare(b.Score, a.Score), cmp.Compare(b.Frames, a.Frames))
		}
	})
}

// scoreboardKeys are the scoreboard bindings, also used to render help.
type scoreboardKeys struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Sort key.Binding
	Help key.Binding
	Back key.Binding
	Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Sort, k.Back, k.Help}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Prev, k.Sort},
		{k.Help, k.Back, k.Quit},
	}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next variant")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev variant")),
		Sort: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel browses recorded runs per variant.
type ScoreboardModel struct {
	games   []registry.GameInfo
	current int
	order   runOrder
	store   *storage.Store // may be nil
	runs    []storage.RunEntry
	stats   *storage.GameStats
	table   table.Model
	help    help.Model
	keys    scoreboardKeys
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   newScoreboardKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 7},
			{Title: "Kills", Width: 6},
			{Title: "Stars", Width: 6},
			{Title: "Fuel", Width: 5},
			{Title: "Frames", Width: 8},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-12)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("130"))
	t.SetStyles(s)
	return t
}

// reload fetches runs and totals for the current variant. Storage errors
// leave the board empty.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.current].ID
		if runs, err := m.store.TopRuns(id, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.resort()
}

func (m *ScoreboardModel) resort() {
	sortRuns(m.runs, m.order)
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Kills),
			strconv.Itoa(r.Targets),
			strconv.Itoa(r.FuelCollected),
			strconv.Itoa(r.Frames),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchVariant(step int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + step + len(m.games)) % len(m.games)
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchVariant(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchVariant(-1)
			return m, nil
		case key.Matches(msg, m.keys.Sort):
			m.order = (m.order + 1) % orderCount
			m.resort()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.resort()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("BEST RUNS"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		b.WriteString(centerText(boardFrameStyle.Render(boardEmptyStyle.Render("No runs recorded yet.\nFly one to set a high score!")), m.width))
	} else {
		b.WriteString(centerText(boardFrameStyle.Render(m.table.View()), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(boardDimStyle.Render(m.selectedLine()), m.width))
	}

	if line := m.statsLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(centerText(line, m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders one tab per variant plus the current sort order.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, 0, len(m.games)+1)
	for i, g := range m.games {
		if i == m.current {
			parts = append(parts, boardActiveTab.Render(g.Title))
		} else {
			parts = append(parts, boardTabStyle.Render(g.Title))
		}
	}
	parts = append(parts, boardDimStyle.Render("sorted by "+m.order.String()))
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// selectedLine identifies the highlighted run.
func (m ScoreboardModel) selectedLine() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return ""
	}
	r := m.runs[i]
	id := r.RunID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("run %s  |  %s", id, r.CreatedAt.Format("2006-01-02 15:04:05"))
}

// statsLine summarizes every recorded run of the current variant.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  |  avg %.0f  |  %d kills  |  %d stars  |  longest %d frames",
		m.stats.RunsCount, m.stats.AvgScore, m.stats.TotalKills, m.stats.TotalTargets, m.stats.LongestRun)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard as its own program. It reports whether
// the user asked to go back rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
