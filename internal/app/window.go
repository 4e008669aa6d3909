//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"time"

	"maze-gen/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session   *Session
	presenter *render.WindowPresenter
	log       *log.Logger
}

// New constructs a Game for the provided session.
func New(session *Session, logger *log.Logger) *Game {
	w, h := session.CanvasSize()
	return &Game{
		session:   session,
		presenter: render.NewWindowPresenter(w, h, Frame),
		log:       logger,
	}
}

// Update handles input and runs the steps that are due.
func (g *Game) Update() error {
	for _, a := range windowActions() {
		if !g.session.Apply(a) {
			g.log.Info("window shell closed")
			return ebiten.Termination
		}
	}
	g.session.Tick(time.Now())
	return nil
}

func windowActions() []Action {
	var actions []Action
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		actions = append(actions, ActionQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		actions = append(actions, ActionSpeedUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		actions = append(actions, ActionSlowDown)
	}
	// A new maze starts when space is released.
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		actions = append(actions, ActionNewMaze)
	}
	return actions
}

// Draw paints the maze centered on screen with the rate and title lines.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(Background)

	cfg := g.session.Config()
	w, h := g.session.CanvasSize()
	sw, sh := float64(w*cfg.Scale), float64(h*cfg.Scale)
	x := float64(cfg.ScreenWidth)/2 - sw/2
	y := float64(cfg.ScreenHeight)/2 - sh/2 - 50
	g.presenter.Blit(screen, g.session.Frame(), x, y, cfg.Scale, 2)

	face := basicfont.Face7x13
	text.Draw(screen, g.session.SpeedLabel(), face, 10, cfg.ScreenHeight-16, color.RGBA{R: 255, G: 255, A: 255})
	title := "MAZE GENERATOR"
	text.Draw(screen, title, face, cfg.ScreenWidth-len(title)*7-10, cfg.ScreenHeight-16, color.White)
	for i, line := range g.session.StatusLines() {
		text.Draw(screen, line, face, 10, 20+i*16, color.White)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.Config()
	return cfg.ScreenWidth, cfg.ScreenHeight
}

// RunWindow opens the maze window and blocks until it is closed.
func RunWindow(session *Session, logger *log.Logger) error {
	cfg := session.Config()
	ebiten.SetWindowTitle("Maze Generator")
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetTPS(ebiten.DefaultTPS)

	logger.WithField("rate", session.Rate()).Info("window shell started")
	if err := ebiten.RunGame(New(session, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
