package game

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"golang.org/x/image/colornames"

	"github.com/stefanfaur/JAPC/internal/config"
	"github.com/stefanfaur/JAPC/internal/entities"
	tm "github.com/stefanfaur/JAPC/internal/tilemap"
)

// ErrQuit is returned by Update once the input source asks to quit.
var ErrQuit = errors.New("quit requested")

type Action int

const (
	ActionPause Action = iota
)

// Renderer is the drawing surface the game paints each frame.
type Renderer interface {
	Clear(c color.Color)
	FillRect(r image.Rectangle, c color.Color)
	DrawText(s string, x, y int, c color.Color)
	Present()
}

// InputSource reports keyboard state for the current frame.
type InputSource interface {
	Pressed(dir entities.Direction) bool
	JustPressed(a Action) bool
	QuitRequested() bool
}

type Sounds interface {
	PlayDot()
}

var (
	wallColor  = colornames.Blue
	dotColor   = colornames.White
	actorColor = colornames.Yellow
	textColor  = colornames.White
)

// State is everything the frame loop mutates. It is owned by a single
// goroutine and never shared.
type State struct {
	cfg         config.Config
	tileMap     *tm.TileMap
	player      *entities.Actor
	dots        []entities.Dot
	score       int
	tickCounter int
	paused      bool
	cleared     bool
	seed        uint64
	rng         *rand.Rand
	runID       uuid.UUID
	log         *logrus.Entry
	audio       Sounds
	logger      *logrus.Logger
}

type Option func(*State)

func WithLogger(l *logrus.Logger) Option {
	return func(g *State) { g.logger = l }
}

func WithSounds(s Sounds) Option {
	return func(g *State) { g.audio = s }
}

// New builds the world for cfg: the maze, the actor's spawn and the dots.
func New(cfg config.Config, opts ...Option) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	g := &State{cfg: cfg, runID: uuid.New()}
	for _, o := range opts {
		o(g)
	}
	if g.logger == nil {
		g.logger = logrus.StandardLogger()
	}
	g.seed = uint64(cfg.Seed)
	if cfg.Seed == 0 {
		g.seed = uint64(time.Now().UnixNano())
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	g.log = g.logger.WithFields(logrus.Fields{
		"run":     g.runID.String(),
		"seed":    g.seed,
		"variant": string(cfg.Variant),
	})

	if cfg.Variant.HasGrid() {
		if err := g.buildMaze(); err != nil {
			return nil, err
		}
	} else {
		g.player = &entities.Actor{
			X:     (cfg.ScreenWidth - cfg.TileSize) / 2,
			Y:     (cfg.ScreenHeight - cfg.TileSize) / 2,
			Size:  cfg.TileSize,
			Speed: cfg.Speed,
		}
	}
	if cfg.Variant.HasDots() {
		g.placeDots()
	}

	fields := logrus.Fields{
		"spawn_x": g.player.X,
		"spawn_y": g.player.Y,
		"dots":    len(g.dots),
	}
	if g.tileMap != nil {
		fields["grid"] = fmt.Sprintf("%dx%d", g.tileMap.Width, g.tileMap.Height)
		fields["walls"] = g.tileMap.WallCount()
	}
	g.log.WithFields(fields).Info("game ready")
	return g, nil
}

func (g *State) ScreenWidth() int  { return g.cfg.ScreenWidth }
func (g *State) ScreenHeight() int { return g.cfg.ScreenHeight }
func (g *State) Score() int        { return g.score }
func (g *State) Seed() uint64      { return g.seed }
func (g *State) Paused() bool      { return g.paused }

// Player returns a copy of the actor.
func (g *State) Player() entities.Actor { return *g.player }

// DotsLeft counts the dots not yet collected.
func (g *State) DotsLeft() int {
	n := 0
	for i := range g.dots {
		if g.dots[i].Active {
			n++
		}
	}
	return n
}

// Update advances one frame: quit check, pause toggle, movement, collection.
func (g *State) Update(in InputSource) error {
	g.tickCounter++
	if in.QuitRequested() {
		g.log.WithField("score", g.score).Info("quit")
		return ErrQuit
	}
	if in.JustPressed(ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}
	g.Move(readIntent(in))
	if g.cfg.Variant.HasDots() {
		g.Collect()
	}
	return nil
}

func readIntent(in InputSource) entities.Intent {
	return entities.Intent{
		Up:    in.Pressed(entities.DirUp),
		Down:  in.Pressed(entities.DirDown),
		Left:  in.Pressed(entities.DirLeft),
		Right: in.Pressed(entities.DirRight),
	}
}

// Render paints the frame: background, walls, dots, actor, overlay.
func (g *State) Render(r Renderer) {
	r.Clear(color.Black)

	if g.tileMap != nil {
		ts := g.tileMap.TileSize
		for y := 0; y < g.tileMap.Height; y++ {
			for x := 0; x < g.tileMap.Width; x++ {
				if g.tileMap.Tiles[y][x] == tm.TileWall {
					r.FillRect(image.Rect(x*ts, y*ts, (x+1)*ts, (y+1)*ts), wallColor)
				}
			}
		}
	}

	for i := range g.dots {
		if g.dots[i].Active {
			r.FillRect(g.dots[i].Rect(), dotColor)
		}
	}

	r.FillRect(g.player.Rect(), actorColor)

	if g.cfg.Variant.HasDots() {
		r.DrawText(fmt.Sprintf("Score %d", g.score), 10, 10, textColor)
	}
	if g.paused {
		r.DrawText("Paused", 10, g.cfg.ScreenHeight-30, textColor)
	}
	r.Present()
}
