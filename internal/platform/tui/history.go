package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcticode/icebreaker/internal/storage"
)

// maxHistoryRows caps how many matches are loaded into the table.
const maxHistoryRows = 100

// HistoryKeyMap defines the key bindings for the match history screen.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the match history sub-screen backed by the storage layer.
type HistoryModel struct {
	store     *storage.Store
	entries   []storage.MatchEntry
	wins      [2]int
	names     [2]string
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	goingBack bool
	quitting  bool
}

// NewHistoryModel creates a history screen. store may be nil, in which case
// an empty table is shown.
func NewHistoryModel(store *storage.Store, names [2]string, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:  store,
		names:  names,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.load()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Winner", Width: 12},
		{Title: "Tiles", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(historyTableHeight(m.height)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func historyTableHeight(screenH int) int {
	h := screenH - 8 // Leave room for header, totals, help and margins
	if h < 3 {
		h = 3
	}
	return h
}

// load pulls recent matches and win totals from storage.
func (m *HistoryModel) load() {
	m.entries = nil
	m.wins = [2]int{}

	if m.store != nil {
		if entries, err := m.store.RecentMatches(maxHistoryRows); err == nil {
			m.entries = entries
		}
		if wins, err := m.store.WinCounts(); err == nil {
			m.wins = wins
		}
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			m.nameFor(e.Winner),
			fmt.Sprintf("%d", e.TilesBroken),
			(time.Duration(e.DurationSecs) * time.Second).String(),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *HistoryModel) nameFor(id int) string {
	if id == 0 || id == 1 {
		return m.names[id]
	}
	return fmt.Sprintf("PLAYER %d", id)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(historyTableHeight(m.height))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the match history screen.
func (m HistoryModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	totals := fmt.Sprintf("%s: %d wins   %s: %d wins",
		m.names[0], m.wins[0], m.names[1], m.wins[1])

	var body string
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		body = emptyStyle.Render("No matches recorded yet.\nPlay a game to fill the history!")
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		body = tableStyle.Render(m.table.View())
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return titleStyle.Render(centerText("MATCH HISTORY", m.width)) + "\n\n" +
		centerText(totals, m.width) + "\n\n" +
		body + "\n" +
		helpStyle.Render(m.help.View(m.keys))
}

// IsGoingBack reports whether the user asked to leave the history screen.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}
