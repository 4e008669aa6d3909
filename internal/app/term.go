package app

import (
	"time"

	"maze-gen/internal/render"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
)

// KeyAction maps a terminal key event to an Action.
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionSpeedUp
	case tcell.KeyDown:
		return ActionSlowDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return ActionNewMaze
		case 'q':
			return ActionQuit
		}
	}
	return ActionNone
}

// Terminal renders a Session into a tcell screen.
type Terminal struct {
	session   *Session
	screen    tcell.Screen
	presenter *render.TerminalPresenter
	log       *log.Logger
}

// NewTerminal wraps an initialized screen.
func NewTerminal(session *Session, screen tcell.Screen, logger *log.Logger) *Terminal {
	return &Terminal{
		session:   session,
		screen:    screen,
		presenter: render.NewTerminalPresenter(screen, Background),
		log:       logger,
	}
}

// Draw paints one frame and shows it.
func (t *Terminal) Draw() {
	t.screen.Clear()
	w, h := t.session.CanvasSize()
	t.presenter.Center(w, h, 2)
	t.presenter.Present(t.session.Frame())

	_, sh := t.screen.Size()
	status := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	t.presenter.DrawText(0, sh-1, t.session.SpeedLabel(), status)
	title := "MAZE GENERATOR"
	sw, _ := t.screen.Size()
	t.presenter.DrawText(sw-len(title)-1, sh-1, title, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	for i, line := range t.session.StatusLines() {
		t.presenter.DrawText(0, i, line, tcell.StyleDefault)
	}
	t.screen.Show()
}

// Run drives the session until the user quits. Events are read on a helper
// goroutine; the session is only touched by the caller's goroutine.
func (t *Terminal) Run() {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	// The display refreshes at a fixed frame rate; steps are paced by the
	// session's own accumulator.
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	t.log.WithField("rate", t.session.Rate()).Info("terminal shell started")
	t.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !t.session.Apply(KeyAction(ev)) {
					return
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case now := <-ticker.C:
			t.session.Tick(now)
			t.Draw()
		}
	}
}

// RunTerminal opens the terminal screen, runs the session and restores the
// terminal on return.
func RunTerminal(session *Session, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	NewTerminal(session, screen, logger).Run()
	return nil
}
