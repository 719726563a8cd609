package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/sliding-tictactoe/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

const (
	screenWidth  = 80
	screenHeight = 24
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Manager *usecase.GameManager
	Screen  tcell.SimulationScreen
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("could not init simulation screen: %v", err)
	}

	screen.SetSize(screenWidth, screenHeight)

	t.Cleanup(func() {
		screen.Fini()
	})

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Manager: usecase.NewGameManager(logger),
		Screen:  screen,
	}
}

// Row - returns the text currently shown on screen row y.
func (that *Suite) Row(y int) string {
	that.Helper()

	cells, width, _ := that.Screen.GetContents()

	row := make([]rune, 0, width)
	for x := range width {
		cell := cells[y*width+x]
		if len(cell.Runes) == 0 {
			row = append(row, ' ')
			continue
		}

		row = append(row, cell.Runes[0])
	}

	return string(row)
}
