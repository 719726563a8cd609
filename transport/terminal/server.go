package terminal

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/sliding-tictactoe/internal/entity"
)

const (
	defaultFlashInterval = 200 * time.Millisecond
	defaultFlashCount    = 6
)

type uGame interface {
	PlaceMark(row, col int) (*entity.PlaceResult, error)
	SlideWindow(direction entity.Direction) (*entity.SlideResult, error)
	Restart()
	State() entity.Game
}

// Options tune the presentation only; the rules never see them.
type Options struct {
	MarkA rune
	MarkB rune

	FlashInterval time.Duration
	FlashCount    int
}

type View struct {
	logger *slog.Logger
	uGame  uGame
	screen tcell.Screen

	markA         rune
	markB         rune
	flashInterval time.Duration
	flashCount    int

	keyHandlers  map[tcell.Key]func() bool
	runeHandlers map[rune]func() bool

	message    string
	buttonDown bool
	lineFlash  blink
	pulse      blink
}

func New(logger *slog.Logger, uGame uGame, screen tcell.Screen, opts Options) *View {
	view := &View{
		logger: logger.With("component", "terminal"),
		uGame:  uGame,
		screen: screen,

		markA:         opts.MarkA,
		markB:         opts.MarkB,
		flashInterval: opts.FlashInterval,
		flashCount:    opts.FlashCount,

		keyHandlers:  make(map[tcell.Key]func() bool),
		runeHandlers: make(map[rune]func() bool),
	}

	if view.markA == 0 {
		view.markA = 'X'
	}

	if view.markB == 0 {
		view.markB = 'O'
	}

	if view.flashInterval <= 0 {
		view.flashInterval = defaultFlashInterval
	}

	if view.flashCount <= 0 {
		view.flashCount = defaultFlashCount
	}

	view.keyHandlers[tcell.KeyUp] = view.slideHandler(entity.DirectionUp)
	view.keyHandlers[tcell.KeyDown] = view.slideHandler(entity.DirectionDown)
	view.keyHandlers[tcell.KeyLeft] = view.slideHandler(entity.DirectionLeft)
	view.keyHandlers[tcell.KeyRight] = view.slideHandler(entity.DirectionRight)
	view.keyHandlers[tcell.KeyEscape] = view.handleQuit
	view.keyHandlers[tcell.KeyCtrlC] = view.handleQuit

	view.runeHandlers['r'] = view.handleRestart
	view.runeHandlers['q'] = view.handleQuit

	return view
}

// Run - draws the game and processes screen events until quit, screen shutdown or ctx cancellation.
func (that *View) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.screen.EnableMouse(tcell.MouseButtonEvents)
	that.screen.HideCursor()
	that.draw()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	go that.pollEvents(events, done)

	ticker := time.NewTicker(that.flashInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, closing view")
			return nil

		case ev, ok := <-events:
			if !ok {
				log.Info("screen closed")
				return nil
			}

			if !that.handleEvent(ev) {
				log.Info("quit requested")
				return nil
			}

			that.draw()

		case <-ticker.C:
			if that.tick() {
				that.draw()
			}
		}
	}
}

// pollEvents - forwards screen events until the screen is finalized or Run returns.
func (that *View) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)

	for {
		ev := that.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent - applies one event, returns false when the view must stop.
func (that *View) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return that.handleKey(ev)

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !that.buttonDown {
			x, y := ev.Position()
			that.handleClick(x, y)
		}

		that.buttonDown = pressed

	case *tcell.EventResize:
		that.screen.Sync()
	}

	return true
}

func (that *View) tick() bool {
	lineChanged := that.lineFlash.step()
	pulseChanged := that.pulse.step()

	return lineChanged || pulseChanged
}
