package app

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"maze-gen/internal/core"
	"maze-gen/internal/maze"
	"maze-gen/internal/render"

	log "github.com/sirupsen/logrus"
)

var (
	// Background fills the area around the maze.
	Background = color.RGBA{R: 6, G: 140, B: 42, A: 255}
	// Frame is drawn just behind the maze image.
	Frame = color.RGBA{R: 0, G: 36, B: 9, A: 255}
)

// Session glues the maze, its canvas and the step pacing together. Both
// shells drive it from a single goroutine.
type Session struct {
	cfg     Config
	maze    *maze.Maze
	canvas  *render.Canvas
	rng     *core.RNG
	pacer   *core.FixedStep
	palette maze.Palette
	log     *log.Entry

	seed      int64
	mazes     int
	announced bool
}

// NewSession validates cfg and builds the first maze from seed.
func NewSession(cfg Config, seed int64, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	cw, ch := maze.CanvasSize(cfg.Width, cfg.Height, cfg.PathWidth)
	s := &Session{
		cfg:     cfg,
		maze:    maze.New(cfg.Width, cfg.Height),
		canvas:  render.NewCanvas(cw, ch),
		rng:     core.NewRNG(seed),
		pacer:   core.NewFixedStep(cfg.Rate),
		palette: maze.DefaultPalette(),
		seed:    seed,
		log: logger.WithFields(log.Fields{
			"width":  cfg.Width,
			"height": cfg.Height,
			"seed":   seed,
		}),
	}
	s.NewMaze()
	return s, nil
}

// Maze exposes the maze being generated.
func (s *Session) Maze() *maze.Maze { return s.maze }

// CanvasSize returns the pixel size of every frame.
func (s *Session) CanvasSize() (int, int) { return s.canvas.Size() }

// Config returns the validated configuration.
func (s *Session) Config() Config { return s.cfg }

// NewMaze discards the current maze and starts another from a random cell.
// The RNG keeps running, so successive mazes differ.
func (s *Session) NewMaze() {
	s.maze.Reset(s.rng)
	s.mazes++
	s.announced = false
	s.pacer.Restart()
	start, _ := s.maze.Cursor()
	s.log.WithFields(log.Fields{"maze": s.mazes, "start_x": start.X, "start_y": start.Y}).Debug("maze reset")
}

// Step advances generation by one unit of work.
func (s *Session) Step() bool {
	changed := s.maze.Step(s.rng)
	if s.maze.Done() && !s.announced {
		s.announced = true
		st := s.maze.Stats()
		s.log.WithFields(log.Fields{
			"maze":       s.mazes,
			"steps":      st.Steps,
			"backtracks": st.Backtracks,
			"max_depth":  st.MaxDepth,
			"dead_ends":  s.maze.DeadEnds(),
		}).Info("maze complete")
	}
	return changed
}

// Tick runs every step that is due at now and returns how many ran.
func (s *Session) Tick(now time.Time) int {
	due := s.pacer.Advance(now)
	for i := 0; i < due; i++ {
		s.Step()
	}
	return due
}

// Frame paints the maze and returns the snapshot surface.
func (s *Session) Frame() *image.RGBA {
	s.maze.Paint(s.canvas, s.cfg.PathWidth, s.palette)
	return s.canvas.Snapshot()
}

// Rate returns the current steps per second.
func (s *Session) Rate() int { return s.pacer.Rate() }

// SpeedUp raises the rate by one increment, up to MaxRate.
func (s *Session) SpeedUp() { s.setRate(s.Rate() + s.cfg.RateStep) }

// SlowDown lowers the rate by one increment, down to MinRate.
func (s *Session) SlowDown() { s.setRate(s.Rate() - s.cfg.RateStep) }

func (s *Session) setRate(rate int) {
	rate = s.cfg.clampRate(rate)
	if rate == s.Rate() {
		return
	}
	s.pacer.SetRate(rate)
	s.log.WithField("rate", rate).Debug("update rate changed")
}

// SpeedLabel is the rate line shown by both shells.
func (s *Session) SpeedLabel() string {
	return fmt.Sprintf("UPDATE RATE: %dx SPEED", s.Rate()/s.cfg.RateStep)
}

// StatusLines returns the generation progress for display.
func (s *Session) StatusLines() []string {
	return s.maze.Parameters().Lines()
}
