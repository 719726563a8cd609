package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/sliding-tictactoe/internal/entity"
)

// Screen layout, in terminal cells.
const (
	boardLeft  = 2
	boardTop   = 3
	cellWidth  = 4
	cellHeight = 2

	titleRow   = 1
	statusRow  = boardTop + entity.BoardSize*cellHeight
	messageRow = statusRow + 1
	helpRow    = messageRow + 2
)

const (
	title    = "Sliding Tic-Tac-Toe"
	helpText = "click: place  arrows: move window  r: restart  q: quit"
)

var (
	markAColor     = tcell.NewRGBColor(0xff, 0x6b, 0x6b)
	markBColor     = tcell.NewRGBColor(0x4e, 0xcd, 0xc4)
	windowColor    = tcell.NewRGBColor(0xff, 0xd1, 0x66)
	highlightColor = tcell.NewRGBColor(0x5a, 0x4a, 0x1e)
	errorColor     = tcell.NewRGBColor(0xff, 0xb4, 0xb4)

	defaultStyle = tcell.StyleDefault
	titleStyle   = defaultStyle.Bold(true)
	outsideStyle = defaultStyle.Foreground(tcell.ColorGray)
	windowStyle  = defaultStyle.Foreground(windowColor).Bold(true)
	pulseStyle   = defaultStyle.Foreground(errorColor).Bold(true)
)

// cellOrigin - returns the screen position of the opening bracket of a board cell.
func cellOrigin(pos entity.Position) (int, int) {
	return boardLeft + pos.Col*cellWidth, boardTop + pos.Row*cellHeight
}

// cellAt - maps a screen position to the board cell whose block contains it.
func cellAt(x, y int) (entity.Position, bool) {
	if x < boardLeft || y < boardTop {
		return entity.Position{}, false
	}

	pos := entity.Position{
		Row: (y - boardTop) / cellHeight,
		Col: (x - boardLeft) / cellWidth,
	}

	return pos, pos.InBoard()
}

func (that *View) draw() {
	state := that.uGame.State()

	that.screen.Clear()

	drawText(that.screen, boardLeft, titleRow, titleStyle, title)

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			that.drawCell(&state, entity.Position{Row: row, Col: col})
		}
	}

	statusStyle := defaultStyle
	if that.pulse.on {
		statusStyle = pulseStyle
	}

	drawText(that.screen, boardLeft, statusRow, statusStyle, that.statusLine(&state))
	drawText(that.screen, boardLeft, messageRow, defaultStyle, that.message)
	drawText(that.screen, boardLeft, helpRow, outsideStyle, helpText)

	that.screen.Show()
}

func (that *View) drawCell(state *entity.Game, pos entity.Position) {
	x, y := cellOrigin(pos)
	mark := state.Board[pos.Row][pos.Col]

	bracketStyle := outsideStyle
	if state.InWindow(pos) {
		bracketStyle = windowStyle
	}

	markStyle := that.markStyle(mark)

	if state.WinningLine.Contains(pos) && (!that.lineFlash.active() || that.lineFlash.on) {
		bracketStyle = bracketStyle.Background(highlightColor)
		markStyle = markStyle.Background(highlightColor)
	}

	that.screen.SetContent(x, y, '[', nil, bracketStyle)
	that.screen.SetContent(x+1, y, that.markRune(mark), nil, markStyle)
	that.screen.SetContent(x+2, y, ']', nil, bracketStyle)
}

func (that *View) statusLine(state *entity.Game) string {
	switch state.Status {
	case entity.StatusWon:
		return fmt.Sprintf("Winner: %c", that.playerRune(state.Winner))
	case entity.StatusDrawn:
		return "Draw"
	}

	turn := that.playerRune(state.Turn)
	if state.LastActionWasMove {
		return fmt.Sprintf("Turn: %c (window was moved, you must place a mark)", turn)
	}

	return fmt.Sprintf("Turn: %c (place a mark or move the window)", turn)
}

func (that *View) markRune(mark entity.Mark) rune {
	switch mark {
	case entity.MarkA:
		return that.markA
	case entity.MarkB:
		return that.markB
	default:
		return ' '
	}
}

func (that *View) playerRune(player entity.Player) rune {
	return that.markRune(player.Mark())
}

func (that *View) markStyle(mark entity.Mark) tcell.Style {
	switch mark {
	case entity.MarkA:
		return defaultStyle.Foreground(markAColor).Bold(true)
	case entity.MarkB:
		return defaultStyle.Foreground(markBColor).Bold(true)
	default:
		return defaultStyle
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
