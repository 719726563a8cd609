package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/sliding-tictactoe/internal/config"
	"github.com/rocketscienceinc/sliding-tictactoe/internal/usecase"
	"github.com/rocketscienceinc/sliding-tictactoe/transport/terminal"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	opts, err := viewOptions(conf)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("could not create terminal screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("could not init terminal screen: %w", err)
	}

	defer screen.Fini()

	gameUseCase := usecase.NewGameManager(logger)
	view := terminal.New(logger, gameUseCase, screen, opts)

	log.Info("Starting terminal view", "roundID", gameUseCase.RoundID())

	if err = view.Run(ctx); err != nil {
		return fmt.Errorf("terminal view error: %w", err)
	}

	log.Info("Terminal view closed, shutting down")

	return nil
}

func viewOptions(conf *config.Config) (terminal.Options, error) {
	markA, err := conf.Marks.RuneA()
	if err != nil {
		return terminal.Options{}, fmt.Errorf("invalid player-a mark: %w", err)
	}

	markB, err := conf.Marks.RuneB()
	if err != nil {
		return terminal.Options{}, fmt.Errorf("invalid player-b mark: %w", err)
	}

	return terminal.Options{
		MarkA:         markA,
		MarkB:         markB,
		FlashInterval: conf.Flash.Interval,
		FlashCount:    conf.Flash.Count,
	}, nil
}
