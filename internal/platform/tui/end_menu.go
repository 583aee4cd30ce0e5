package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcticode/icebreaker/internal/core"
)

// EndChoice is a selection made on the end screen.
type EndChoice int

const (
	EndChoiceNone EndChoice = iota
	EndChoicePlayAgain
	EndChoiceHistory
	EndChoiceExit
)

// End screen entries, in display order.
const (
	endItemPlayAgain = iota
	endItemHistory
	endItemExit
	endItemCount
)

var endItems = [endItemCount]string{
	endItemPlayAgain: "Play Again",
	endItemHistory:   "Match History",
	endItemExit:      "Exit",
}

var bannerStyle = lipgloss.NewStyle().Bold(true)

// EndMenu is the screen shown after a game finishes or the players quit.
// It carries the winner banner and the two-entry scoreboard.
type EndMenu struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper

	itemRects [endItemCount]core.Rect
}

// NewEndMenu creates the end screen for the given terminal size.
func NewEndMenu(width, height int) *EndMenu {
	m := &EndMenu{keyMapper: NewKeyMapper()}
	m.Resize(width, height)
	return m
}

// Resize recomputes item hit boxes for a new terminal size.
func (m *EndMenu) Resize(width, height int) {
	m.width = width
	m.height = height

	itemY := height/3 + 4
	for i := 0; i < endItemCount; i++ {
		label := m.itemLabel(i, false)
		x := core.Max(0, (width-len(label))/2)
		m.itemRects[i] = core.NewRect(x, itemY+i*2, len(label), 1)
	}
}

func (m *EndMenu) itemLabel(i int, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	return fmt.Sprintf("%s%s", cursor, endItems[i])
}

func (m *EndMenu) choiceFor(i int) EndChoice {
	switch i {
	case endItemPlayAgain:
		return EndChoicePlayAgain
	case endItemHistory:
		return EndChoiceHistory
	case endItemExit:
		return EndChoiceExit
	}
	return EndChoiceNone
}

// HandleKey processes a key press and returns the resulting choice, if any.
func (m *EndMenu) HandleKey(msg tea.KeyMsg) EndChoice {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return EndChoiceExit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < endItemCount-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m.choiceFor(m.cursor)
	}
	return EndChoiceNone
}

// HandleClick processes a mouse click and returns the resulting choice, if any.
func (m *EndMenu) HandleClick(x, y int) EndChoice {
	for i, rect := range m.itemRects {
		if rect.Contains(x, y) {
			m.cursor = i
			return m.choiceFor(i)
		}
	}
	return EndChoiceNone
}

// View renders the end screen. banner is empty when the players quit
// without finishing a game.
func (m *EndMenu) View(banner string, names [2]string, wins [2]int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	if banner != "" {
		b.WriteString(bannerStyle.Render(centerText(banner, m.width)))
	}
	b.WriteString("\n\n")

	score := fmt.Sprintf("%s: %d   %s: %d", names[0], wins[0], names[1], wins[1])
	b.WriteString(centerText(score, m.width))
	b.WriteString("\n")

	// Pad down to the first item row
	for line := 5; line < m.itemRects[0].Y; line++ {
		b.WriteString("\n")
	}

	for i := 0; i < endItemCount; i++ {
		b.WriteString(centerText(m.itemLabel(i, i == m.cursor), m.width))
		b.WriteString("\n\n")
	}

	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString("\n")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}
