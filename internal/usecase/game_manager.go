package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/sliding-tictactoe/internal/entity"
	"github.com/rocketscienceinc/sliding-tictactoe/internal/tictactoe"
)

// GameManager owns a single round and is the only way the view reaches the rules.
// Calls must be serialized by the caller.
type GameManager struct {
	logger *slog.Logger

	game       *entity.Game
	roundID    string
	newRoundID func() string
}

func NewGameManager(logger *slog.Logger) *GameManager {
	manager := &GameManager{
		logger:     logger.With("component", "game_manager"),
		game:       entity.NewGame(),
		newRoundID: uuid.NewString,
	}
	manager.roundID = manager.newRoundID()

	return manager
}

func (that *GameManager) PlaceMark(row, col int) (*entity.PlaceResult, error) {
	log := that.logger.With("method", "PlaceMark", "roundID", that.roundID, "player", that.game.Turn)

	result, err := tictactoe.PlaceMark(that.game, row, col)
	if err != nil {
		log.Debug("placement rejected", "row", row, "col", col, "error", err)
		return nil, fmt.Errorf("failed place mark: %w", err)
	}

	log.Debug("mark placed", "row", row, "col", col, "status", result.Status)

	switch result.Status {
	case entity.StatusWon:
		log.Info("game won", "winner", result.Winner, "line", result.WinningLine.Kind, "index", result.WinningLine.Index)
	case entity.StatusDrawn:
		log.Info("game drawn")
	}

	return result, nil
}

func (that *GameManager) SlideWindow(direction entity.Direction) (*entity.SlideResult, error) {
	log := that.logger.With("method", "SlideWindow", "roundID", that.roundID, "player", that.game.Turn)

	result, err := tictactoe.SlideWindow(that.game, direction)
	if err != nil {
		log.Debug("slide rejected", "direction", direction, "error", err)
		return nil, fmt.Errorf("failed slide window: %w", err)
	}

	log.Debug("window moved", "direction", direction, "row", result.Window.Row, "col", result.Window.Col)

	return result, nil
}

// Restart - discards the current round and starts a new one.
func (that *GameManager) Restart() {
	previous := that.roundID

	that.game.Reset()
	that.roundID = that.newRoundID()

	that.logger.Info("game restarted", "previousRoundID", previous, "roundID", that.roundID)
}

// State - returns a read-only snapshot for rendering.
func (that *GameManager) State() entity.Game {
	return that.game.Snapshot()
}

func (that *GameManager) RoundID() string {
	return that.roundID
}
