package terminal

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/sliding-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/sliding-tictactoe/internal/entity"
)

func (that *View) handleKey(ev *tcell.EventKey) bool {
	var (
		handler func() bool
		ok      bool
	)

	if ev.Key() == tcell.KeyRune {
		handler, ok = that.runeHandlers[unicode.ToLower(ev.Rune())]
	} else {
		handler, ok = that.keyHandlers[ev.Key()]
	}

	if !ok {
		return true
	}

	return handler()
}

func (that *View) handleClick(x, y int) {
	log := that.logger.With("method", "handleClick")

	pos, ok := cellAt(x, y)
	if !ok {
		return
	}

	result, err := that.uGame.PlaceMark(pos.Row, pos.Col)
	if err != nil {
		that.showError(err)
		return
	}

	that.message = ""
	that.pulse.stop()

	switch result.Status {
	case entity.StatusWon:
		that.message = fmt.Sprintf("Player %c wins! Press r to restart.", that.playerRune(result.Winner))
		that.lineFlash.start(that.flashCount)
		log.Debug("winning line flash started", "line", result.WinningLine.Kind)
	case entity.StatusDrawn:
		that.message = "The board is full: it's a draw! Press r to restart."
	}
}

func (that *View) slideHandler(direction entity.Direction) func() bool {
	return func() bool {
		if _, err := that.uGame.SlideWindow(direction); err != nil {
			that.showError(err)
			return true
		}

		that.message = ""
		that.pulse.stop()

		return true
	}
}

func (that *View) handleRestart() bool {
	that.uGame.Restart()

	that.message = ""
	that.lineFlash.stop()
	that.pulse.stop()

	return true
}

func (that *View) handleQuit() bool {
	return false
}

// showError - turns a rejected operation into status line feedback.
func (that *View) showError(err error) {
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		that.message = "The game is over. Press r to restart."
	case errors.Is(err, apperror.ErrCellOccupied):
		that.message = "That cell is already taken."
	case errors.Is(err, apperror.ErrOutOfBounds):
		that.message = "Click inside the board."
	case errors.Is(err, apperror.ErrConsecutiveMove):
		that.message = "The window was just moved: place a mark first."
	case errors.Is(err, apperror.ErrWindowOutOfBounds):
		that.message = "The window cannot move further that way."
		that.pulse.start(that.flashCount)
	default:
		that.logger.Error("unexpected game error", "error", err)
		that.message = "Something went wrong: " + err.Error()
	}
}
