package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/image/font/basicfont"

	"github.com/stefanfaur/JAPC/internal/config"
	"github.com/stefanfaur/JAPC/internal/entities"
	"github.com/stefanfaur/JAPC/internal/game"
	"github.com/stefanfaur/JAPC/internal/render"
)

type fakeControls struct {
	quit bool
}

func (fakeControls) Pressed(entities.Direction) bool { return false }
func (fakeControls) JustPressed(game.Action) bool    { return false }
func (f fakeControls) QuitRequested() bool           { return f.quit }
func (fakeControls) FullscreenToggled() bool         { return false }

func newGame(t *testing.T) *Game {
	t.Helper()
	l, _ := test.NewNullLogger()
	cfg := config.Default()
	cfg.Seed = 17
	state, err := game.New(cfg, game.WithLogger(l))
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return New(state, render.NewScreen(basicfont.Face7x13))
}

func TestUpdateQuitTerminates(t *testing.T) {
	g := newGame(t)
	g.keys = fakeControls{quit: true}
	if err := g.Update(); err != ebiten.Termination {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
}

func TestUpdateIdleKeepsActor(t *testing.T) {
	g := newGame(t)
	g.keys = fakeControls{}
	before := g.state.Player()
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.state.Player() != before {
		t.Fatalf("actor moved with no keys held")
	}
}

func TestLayoutMatchesScreenSize(t *testing.T) {
	g := newGame(t)
	w, h := g.Layout(1920, 1080)
	if w != 640 || h != 480 {
		t.Fatalf("layout mismatch: got %dx%d want 640x480", w, h)
	}
}

func TestGameDrawDoesNotPanic(t *testing.T) {
	g := newGame(t)
	screen := ebiten.NewImage(g.state.ScreenWidth(), g.state.ScreenHeight())
	g.Draw(screen)
	g.Draw(screen)
}
