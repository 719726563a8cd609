package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrOutOfBounds       = errors.New("cell is outside the board")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrConsecutiveMove   = errors.New("window was just moved, a mark must be placed")
	ErrWindowOutOfBounds = errors.New("window cannot move past the board edge")
	ErrInvalidDirection  = errors.New("invalid window direction")
)
