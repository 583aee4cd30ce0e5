package tui

import (
	"fmt"
	"strings"

	"github.com/arcticode/icebreaker/internal/core"
	"github.com/arcticode/icebreaker/internal/game"
)

// Board layout constants. Each ice tile is drawn as a tileW x tileH box
// with a one-cell gap between tiles so clicks on the gaps miss.
const (
	tileW    = 9
	tileH    = 3
	tileGapX = 1
	tileGapY = 1

	gridW = game.Cols*tileW + (game.Cols-1)*tileGapX
	gridH = game.Rows*tileH + (game.Rows-1)*tileGapY
)

// Button identifies an on-screen control on the board screen.
type Button int

const (
	ButtonNone Button = iota
	ButtonReset
	ButtonQuit
)

// GameView renders the board screen and maps clicks back to grid cells.
type GameView struct {
	screen  *core.Screen
	width   int
	height  int
	originX int
	originY int
	cursor  game.Cell

	resetBtn core.Rect
	quitBtn  core.Rect
}

// NewGameView creates a board view for the given terminal size.
// Player colors are read off the engine's players at render time.
func NewGameView(width, height int) *GameView {
	v := &GameView{
		screen: core.NewScreen(width, height),
		cursor: game.StartPosition(game.Player0),
	}
	v.Resize(width, height)
	return v
}

// Resize recomputes the layout for a new terminal size.
func (v *GameView) Resize(width, height int) {
	v.width = width
	v.height = height
	v.screen.Resize(width, height)

	v.originX = core.Max(0, (width-gridW)/2)
	v.originY = 3

	btnY := core.Clamp(v.originY+gridH, 0, height-1)
	v.resetBtn = core.NewRect(v.originX, btnY, 9, 1)
	v.quitBtn = core.NewRect(v.originX+11, btnY, 8, 1)
}

// TileRect returns the screen rectangle of a grid cell.
func (v *GameView) TileRect(c game.Cell) core.Rect {
	x := v.originX + c.Col*(tileW+tileGapX)
	y := v.originY + c.Row*(tileH+tileGapY)
	return core.NewRect(x, y, tileW, tileH)
}

// CellAt maps a screen coordinate to a grid cell.
// Clicks on the gaps between tiles return false.
func (v *GameView) CellAt(x, y int) (game.Cell, bool) {
	gx := x - v.originX
	gy := y - v.originY
	if gx < 0 || gy < 0 {
		return game.Cell{}, false
	}

	col := gx / (tileW + tileGapX)
	row := gy / (tileH + tileGapY)
	if col >= game.Cols || row >= game.Rows {
		return game.Cell{}, false
	}
	if gx%(tileW+tileGapX) >= tileW || gy%(tileH+tileGapY) >= tileH {
		return game.Cell{}, false
	}

	return game.Cell{Col: col, Row: row}, true
}

// ButtonAt maps a screen coordinate to an on-screen control.
func (v *GameView) ButtonAt(x, y int) Button {
	switch {
	case v.resetBtn.Contains(x, y):
		return ButtonReset
	case v.quitBtn.Contains(x, y):
		return ButtonQuit
	default:
		return ButtonNone
	}
}

// Cursor returns the keyboard cursor position.
func (v *GameView) Cursor() game.Cell {
	return v.cursor
}

// MoveCursor shifts the keyboard cursor, clamped to the grid.
func (v *GameView) MoveCursor(dc, dr int) {
	v.cursor.Col = core.Clamp(v.cursor.Col+dc, 0, game.Cols-1)
	v.cursor.Row = core.Clamp(v.cursor.Row+dr, 0, game.Rows-1)
}

// Render draws the board, prompt, status line and controls.
func (v *GameView) Render(e *game.Engine, status string) string {
	v.screen.Clear()

	v.renderPrompt(e)
	v.renderStatus(status)
	v.renderGrid(e)
	v.renderControls()

	return RenderScreen(v.screen)
}

func (v *GameView) renderPrompt(e *game.Engine) {
	prompt := e.Prompt()
	if prompt == "" {
		return
	}

	color := e.Player(e.Active()).Color
	for i, line := range strings.Split(prompt, "\n") {
		v.screen.DrawTextColored(1, i, line, color)
	}
}

func (v *GameView) renderStatus(status string) {
	if status == "" {
		return
	}
	x := core.Max(0, v.width-len(status)-1)
	v.screen.DrawTextColored(x, 0, status, core.ColorYellow)
}

func (v *GameView) renderGrid(e *game.Engine) {
	board := e.Board()

	for row := 0; row < game.Rows; row++ {
		for col := 0; col < game.Cols; col++ {
			c := game.Cell{Col: col, Row: row}
			rect := v.TileRect(c)

			if board.IsBroken(c) {
				v.screen.DrawRect(rect, '~', core.ColorGray)
			} else {
				v.screen.DrawBox(rect, core.ColorBrightCyan)
			}
		}
	}

	// Players on top of the ice
	for _, id := range []game.PlayerID{game.Player0, game.Player1} {
		p := e.Player(id)
		rect := v.TileRect(p.Pos)
		cx, cy := rect.Center()
		label := fmt.Sprintf("P%d", id)
		v.screen.DrawTextColored(cx-1, cy, label, p.Color)
	}

	// Keyboard cursor overlays the tile border
	v.screen.DrawBox(v.TileRect(v.cursor), core.ColorYellow)
}

func (v *GameView) renderControls() {
	v.screen.DrawTextColored(v.resetBtn.X, v.resetBtn.Y, "[ RESET ]", core.ColorWhite)
	v.screen.DrawTextColored(v.quitBtn.X, v.quitBtn.Y, "[ QUIT ]", core.ColorWhite)

	help := "arrows/wasd: cursor | enter: select | r: reset | q: quit"
	helpY := core.Clamp(v.resetBtn.Y+1, 0, v.height-1)
	v.screen.DrawTextColored(core.Max(0, (v.width-len(help))/2), helpY, help, core.ColorGray)
}
