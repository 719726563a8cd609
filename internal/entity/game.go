package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/sliding-tictactoe/internal/apperror"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDrawn      Status = "drawn"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Board [BoardSize][BoardSize]Mark

// Game is the whole mutable state of a round.
// Status, Winner and WinningLine change only on placements.
type Game struct {
	Board             Board    `json:"board"`
	Window            Position `json:"window"`
	Turn              Player   `json:"player_turn"`
	LastActionWasMove bool     `json:"last_action_was_move"`
	Status            Status   `json:"status"`
	Winner            Player   `json:"winner,omitempty"`
	WinningLine       *Line    `json:"winning_line,omitempty"`
}

// NewGame - returns an empty board with a centered window and player A to move.
func NewGame() *Game {
	return &Game{
		Window: Position{Row: 1, Col: 1},
		Turn:   PlayerA,
		Status: StatusInProgress,
	}
}

// Reset - brings the game back to the state produced by NewGame.
func (that *Game) Reset() {
	*that = *NewGame()
}

// Snapshot - returns a deep copy that callers may keep or modify freely.
func (that *Game) Snapshot() Game {
	snapshot := *that
	if that.WinningLine != nil {
		line := *that.WinningLine
		snapshot.WinningLine = &line
	}

	return snapshot
}

func (that *Game) CellAt(pos Position) (Mark, error) {
	if !pos.InBoard() {
		return EmptyCell, fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, pos.Row, pos.Col)
	}

	return that.Board[pos.Row][pos.Col], nil
}

// InWindow - reports whether the board cell lies inside the current window.
func (that *Game) InWindow(pos Position) bool {
	return pos.Row >= that.Window.Row && pos.Row < that.Window.Row+WindowSize &&
		pos.Col >= that.Window.Col && pos.Col < that.Window.Col+WindowSize
}

func (that *Game) IsBoardFull() bool {
	for _, row := range that.Board {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusInProgress
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
