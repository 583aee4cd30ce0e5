package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcticode/icebreaker/internal/core"
)

// StartChoice is a selection made on the start menu.
type StartChoice int

const (
	StartChoiceNone StartChoice = iota
	StartChoicePlay
	StartChoiceHistory
	StartChoiceQuit
)

// Start menu entries, in display order.
const (
	startItemPlay = iota
	startItemHistory
	startItemQuit
	startItemCount
)

var startItems = [startItemCount]string{
	startItemPlay:    "Start Game",
	startItemHistory: "Match History",
	startItemQuit:    "Quit",
}

// StartMenu is the entry screen shown before a game begins.
type StartMenu struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper

	itemRects [startItemCount]core.Rect
}

// NewStartMenu creates the start menu for the given terminal size.
func NewStartMenu(width, height int) *StartMenu {
	m := &StartMenu{keyMapper: NewKeyMapper()}
	m.Resize(width, height)
	return m
}

// Resize recomputes item hit boxes for a new terminal size.
func (m *StartMenu) Resize(width, height int) {
	m.width = width
	m.height = height

	// Items are centered starting a third of the way down the screen
	itemY := height / 3
	for i := 0; i < startItemCount; i++ {
		label := m.itemLabel(i, false)
		x := core.Max(0, (width-len(label))/2)
		m.itemRects[i] = core.NewRect(x, itemY+i*2, len(label), 1)
	}
}

func (m *StartMenu) itemLabel(i int, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	return fmt.Sprintf("%s%s", cursor, startItems[i])
}

func (m *StartMenu) choiceFor(i int) StartChoice {
	switch i {
	case startItemPlay:
		return StartChoicePlay
	case startItemHistory:
		return StartChoiceHistory
	case startItemQuit:
		return StartChoiceQuit
	}
	return StartChoiceNone
}

// HandleKey processes a key press and returns the resulting choice, if any.
func (m *StartMenu) HandleKey(msg tea.KeyMsg) StartChoice {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return StartChoiceQuit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < startItemCount-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m.choiceFor(m.cursor)
	}
	return StartChoiceNone
}

// HandleClick processes a mouse click and returns the resulting choice, if any.
func (m *StartMenu) HandleClick(x, y int) StartChoice {
	for i, rect := range m.itemRects {
		if rect.Contains(x, y) {
			m.cursor = i
			return m.choiceFor(i)
		}
	}
	return StartChoiceNone
}

// View renders the start menu.
func (m *StartMenu) View() string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(centerText("I C E B R E A K E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Trap your opponent on thin ice", m.width))
	b.WriteString("\n")

	// Pad down to the first item row
	for line := 5; line < m.itemRects[0].Y; line++ {
		b.WriteString("\n")
	}

	for i := 0; i < startItemCount; i++ {
		b.WriteString(centerText(m.itemLabel(i, i == m.cursor), m.width))
		b.WriteString("\n\n")
	}

	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString("\n")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}
