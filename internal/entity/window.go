package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/sliding-tictactoe/internal/apperror"
)

const (
	BoardSize  = 5
	WindowSize = 3

	// MaxWindowOffset is the largest row or column the window's top-left corner may take.
	MaxWindowOffset = BoardSize - WindowSize
)

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) InBoard() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// IsValidWindow - reports whether the position is a legal top-left corner for the window.
func (that Position) IsValidWindow() bool {
	return that.Row >= 0 && that.Row <= MaxWindowOffset && that.Col >= 0 && that.Col <= MaxWindowOffset
}

type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

func ParseDirection(value string) (Direction, error) {
	direction := Direction(strings.ToLower(strings.TrimSpace(value)))
	if _, _, ok := direction.Delta(); !ok {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidDirection, value)
	}

	return direction, nil
}

// Delta - returns the row and column offset of a single step in the direction.
func (that Direction) Delta() (int, int, bool) {
	switch that {
	case DirectionUp:
		return -1, 0, true
	case DirectionDown:
		return 1, 0, true
	case DirectionLeft:
		return 0, -1, true
	case DirectionRight:
		return 0, 1, true
	default:
		return 0, 0, false
	}
}

type LineKind string

const (
	LineRow          LineKind = "row"
	LineColumn       LineKind = "column"
	LineDiagonal     LineKind = "diagonal"
	LineAntiDiagonal LineKind = "anti_diagonal"
)

// Line is a completed three-in-a-row inside the window.
// Index is the row or column inside the window, zero for diagonals.
// Cells hold absolute board coordinates.
type Line struct {
	Kind  LineKind             `json:"kind"`
	Index int                  `json:"index"`
	Cells [WindowSize]Position `json:"cells"`
}

func (that *Line) Contains(pos Position) bool {
	if that == nil {
		return false
	}

	for _, cell := range that.Cells {
		if cell == pos {
			return true
		}
	}

	return false
}
