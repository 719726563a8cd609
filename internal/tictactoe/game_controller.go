package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/sliding-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/sliding-tictactoe/internal/entity"
)

// PlaceMark - writes the active player's mark into the cell and evaluates the window.
func PlaceMark(gameInstance *entity.Game, row, col int) (*entity.PlaceResult, error) {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	pos := entity.Position{Row: row, Col: col}
	if err := validatePlacement(gameInstance, pos); err != nil {
		return nil, fmt.Errorf("invalid placement: %w", err)
	}

	player := gameInstance.Turn
	gameInstance.Board[row][col] = player.Mark()
	gameInstance.LastActionWasMove = false
	updateGameStatus(gameInstance, player)

	result := &entity.PlaceResult{
		Position: pos,
		Player:   player,
		Status:   gameInstance.Status,
		Winner:   gameInstance.Winner,
	}
	if gameInstance.WinningLine != nil {
		line := *gameInstance.WinningLine
		result.WinningLine = &line
	}

	return result, nil
}

// SlideWindow - moves the window one cell and passes the turn.
// The next accepted action must be a placement.
func SlideWindow(gameInstance *entity.Game, direction entity.Direction) (*entity.SlideResult, error) {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if gameInstance.LastActionWasMove {
		return nil, apperror.ErrConsecutiveMove
	}

	next, err := canSlideWindow(gameInstance.Window, direction)
	if err != nil {
		return nil, fmt.Errorf("invalid slide: %w", err)
	}

	gameInstance.Window = next
	gameInstance.LastActionWasMove = true
	gameInstance.Turn = gameInstance.Turn.Opponent()

	return &entity.SlideResult{
		Direction: direction,
		Window:    gameInstance.Window,
		Turn:      gameInstance.Turn,
	}, nil
}

// validatePlacement - checks if the cell can take a mark.
func validatePlacement(gameInstance *entity.Game, pos entity.Position) error {
	if !pos.InBoard() {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, pos.Row, pos.Col)
	}

	if gameInstance.Board[pos.Row][pos.Col] != entity.EmptyCell {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrCellOccupied, pos.Row, pos.Col)
	}

	return nil
}

// canSlideWindow - returns the window corner after one step in the direction.
func canSlideWindow(window entity.Position, direction entity.Direction) (entity.Position, error) {
	dRow, dCol, ok := direction.Delta()
	if !ok {
		return window, fmt.Errorf("%w: %q", apperror.ErrInvalidDirection, direction)
	}

	next := entity.Position{Row: window.Row + dRow, Col: window.Col + dCol}
	if !next.IsValidWindow() {
		return window, fmt.Errorf("%w: %s from row %d col %d", apperror.ErrWindowOutOfBounds, direction, window.Row, window.Col)
	}

	return next, nil
}

// updateGameStatus - checks the game status after a placement.
func updateGameStatus(gameInstance *entity.Game, player entity.Player) {
	if line, ok := evaluateWindow(gameInstance.Board, gameInstance.Window, player); ok {
		gameInstance.Status = entity.StatusWon
		gameInstance.Winner = player
		gameInstance.WinningLine = &line
		return
	}

	if gameInstance.IsBoardFull() {
		gameInstance.Status = entity.StatusDrawn
		return
	}

	gameInstance.Turn = player.Opponent()
}

// evaluateWindow - looks for a full line of the player's marks inside the window only.
// Rows come first, then columns, then the main and anti diagonals.
func evaluateWindow(board entity.Board, window entity.Position, player entity.Player) (entity.Line, bool) {
	for _, line := range windowLines(window) {
		if lineOwnedBy(board, line, player.Mark()) {
			return line, true
		}
	}

	return entity.Line{}, false
}

// windowLines - lists every candidate line of the window in evaluation order.
func windowLines(window entity.Position) []entity.Line {
	lines := make([]entity.Line, 0, 2*entity.WindowSize+2)

	for i := range entity.WindowSize {
		line := entity.Line{Kind: entity.LineRow, Index: i}
		for j := range entity.WindowSize {
			line.Cells[j] = entity.Position{Row: window.Row + i, Col: window.Col + j}
		}
		lines = append(lines, line)
	}

	for j := range entity.WindowSize {
		line := entity.Line{Kind: entity.LineColumn, Index: j}
		for i := range entity.WindowSize {
			line.Cells[i] = entity.Position{Row: window.Row + i, Col: window.Col + j}
		}
		lines = append(lines, line)
	}

	diagonal := entity.Line{Kind: entity.LineDiagonal}
	antiDiagonal := entity.Line{Kind: entity.LineAntiDiagonal}
	for i := range entity.WindowSize {
		diagonal.Cells[i] = entity.Position{Row: window.Row + i, Col: window.Col + i}
		antiDiagonal.Cells[i] = entity.Position{Row: window.Row + i, Col: window.Col + entity.WindowSize - 1 - i}
	}

	return append(lines, diagonal, antiDiagonal)
}

func lineOwnedBy(board entity.Board, line entity.Line, mark entity.Mark) bool {
	if mark == entity.EmptyCell {
		return false
	}

	for _, cell := range line.Cells {
		if board[cell.Row][cell.Col] != mark {
			return false
		}
	}

	return true
}
