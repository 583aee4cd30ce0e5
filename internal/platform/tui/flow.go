// Package tui provides the Bubble Tea presentation layer for Icebreaker:
// start menu, board screen, end screen, match history, and SSH serving.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcticode/icebreaker/internal/config"
	"github.com/arcticode/icebreaker/internal/core"
	"github.com/arcticode/icebreaker/internal/game"
	"github.com/arcticode/icebreaker/internal/session"
	"github.com/arcticode/icebreaker/internal/storage"
)

// gameOverMsg fires after the post-trap pause, moving play to the end screen.
type gameOverMsg struct{}

func gameOverCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Millisecond
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return gameOverMsg{}
	})
}

// FlowModel manages the full sitting flow: start menu -> game -> end screen,
// with the match history reachable from both menus.
type FlowModel struct {
	cfg    config.Config
	sess   *session.Session
	store  *storage.Store
	width  int
	height int

	names [2]string

	start *StartMenu
	board *GameView
	end   *EndMenu

	history   HistoryModel
	inHistory bool

	keyMapper *KeyMapper

	status      string // status text region on the board screen
	banner      string // winner banner on the end screen
	pendingOver bool   // waiting out the game-over pause
	quitting    bool
}

// NewFlowModel creates the top-level model. store may be nil, in which case
// matches are only tallied in memory for the sitting.
func NewFlowModel(cfg config.Config, sess *session.Session, store *storage.Store, width, height int) FlowModel {
	names := [2]string{cfg.Players.Zero.Name, cfg.Players.One.Name}
	colors := [2]core.Color{
		config.ColorForName(cfg.Players.Zero.Color),
		config.ColorForName(cfg.Players.One.Color),
	}

	// Player markers on the board follow the configured colors
	sess.Engine().Player(game.Player0).Color = colors[0]
	sess.Engine().Player(game.Player1).Color = colors[1]

	return FlowModel{
		cfg:       cfg,
		sess:      sess,
		store:     store,
		width:     width,
		height:    height,
		names:     names,
		start:     NewStartMenu(width, height),
		board:     NewGameView(width, height),
		end:       NewEndMenu(width, height),
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the flow.
func (m FlowModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and routes them to the active screen.
func (m FlowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.start.Resize(wsm.Width, wsm.Height)
		m.board.Resize(wsm.Width, wsm.Height)
		m.end.Resize(wsm.Width, wsm.Height)
	}

	if m.inHistory {
		return m.updateHistory(msg)
	}

	if _, ok := msg.(gameOverMsg); ok {
		m.pendingOver = false
		m.status = ""
		m.sess.Apply(session.CmdFinishGame)
		return m, nil
	}

	switch m.sess.Screen() {
	case session.ScreenStart:
		return m.updateStart(msg)
	case session.ScreenGame:
		return m.updateGame(msg)
	case session.ScreenEnd:
		return m.updateEnd(msg)
	}
	return m, nil
}

func (m FlowModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)

	if m.history.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.history.IsGoingBack() {
		m.inHistory = false
		return m, nil
	}
	return m, cmd
}

func (m FlowModel) openHistory() FlowModel {
	m.history = NewHistoryModel(m.store, m.names, m.width, m.height)
	m.inHistory = true
	return m
}

func (m FlowModel) updateStart(msg tea.Msg) (tea.Model, tea.Cmd) {
	choice := StartChoiceNone

	switch msg := msg.(type) {
	case tea.KeyMsg:
		choice = m.start.HandleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			choice = m.start.HandleClick(msg.X, msg.Y)
		}
	}

	switch choice {
	case StartChoicePlay:
		return m.startGame(), nil
	case StartChoiceHistory:
		return m.openHistory(), nil
	case StartChoiceQuit:
		m.sess.Apply(session.CmdExit)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m FlowModel) startGame() FlowModel {
	m.sess.Apply(session.CmdStartGame)
	m.board = NewGameView(m.width, m.height)
	m.status = ""
	m.banner = ""
	m.pendingOver = false
	return m
}

func (m FlowModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToBoardAction(msg)

		if action == BoardActionForceQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if m.pendingOver {
			// Only forced quit interrupts the game-over pause
			return m, nil
		}

		switch action {
		case BoardActionCursorUp:
			m.board.MoveCursor(0, -1)
		case BoardActionCursorDown:
			m.board.MoveCursor(0, 1)
		case BoardActionCursorLeft:
			m.board.MoveCursor(-1, 0)
		case BoardActionCursorRight:
			m.board.MoveCursor(1, 0)
		case BoardActionSelect:
			return m.clickCell(m.board.Cursor())
		case BoardActionReset:
			m.status = m.sess.Apply(session.CmdResetGame)
		case BoardActionQuit:
			return m.requestQuit()
		}

	case tea.MouseMsg:
		if m.pendingOver {
			return m, nil
		}
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		switch m.board.ButtonAt(msg.X, msg.Y) {
		case ButtonReset:
			m.status = m.sess.Apply(session.CmdResetGame)
			return m, nil
		case ButtonQuit:
			return m.requestQuit()
		}

		if cell, ok := m.board.CellAt(msg.X, msg.Y); ok {
			return m.clickCell(cell)
		}
	}
	return m, nil
}

func (m FlowModel) clickCell(c game.Cell) (tea.Model, tea.Cmd) {
	ev := m.sess.Click(c)
	m.status = ev.Status

	if ev.Over {
		m.banner = fmt.Sprintf("%s WINS!", m.names[ev.Winner])
		m.pendingOver = true
		return m, gameOverCmd(m.cfg.UI.GameOverDelay())
	}
	return m, nil
}

func (m FlowModel) requestQuit() (tea.Model, tea.Cmd) {
	m.status = m.sess.Apply(session.CmdQuitRequest)
	if m.sess.Screen() == session.ScreenEnd {
		// Quit confirmed mid-game: no winner banner on the end screen
		m.banner = ""
		m.status = ""
	}
	return m, nil
}

func (m FlowModel) updateEnd(msg tea.Msg) (tea.Model, tea.Cmd) {
	choice := EndChoiceNone

	switch msg := msg.(type) {
	case tea.KeyMsg:
		choice = m.end.HandleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			choice = m.end.HandleClick(msg.X, msg.Y)
		}
	}

	switch choice {
	case EndChoicePlayAgain:
		m.sess.Apply(session.CmdPlayAgain)
		m.board = NewGameView(m.width, m.height)
		m.status = ""
		m.banner = ""
		m.pendingOver = false
		return m, nil
	case EndChoiceHistory:
		return m.openHistory(), nil
	case EndChoiceExit:
		m.sess.Apply(session.CmdExit)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the active screen.
func (m FlowModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inHistory {
		return m.history.View()
	}

	switch m.sess.Screen() {
	case session.ScreenStart:
		return m.start.View()
	case session.ScreenGame:
		return m.board.Render(m.sess.Engine(), m.status)
	case session.ScreenEnd:
		return m.end.View(m.banner, m.names, m.sess.Wins())
	}
	return ""
}

// Run starts a local Bubble Tea program for the given configuration.
// store may be nil when the match database is unavailable.
func Run(cfg config.Config, store *storage.Store, rt core.RuntimeConfig) error {
	var recorder session.MatchRecorder
	if store != nil {
		recorder = store
	}
	sess := session.New(recorder)

	model := NewFlowModel(cfg, sess, store, rt.ScreenW, rt.ScreenH)

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	if cfg.UI.Mouse && rt.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, opts...)
	_, err := p.Run()
	return err
}
