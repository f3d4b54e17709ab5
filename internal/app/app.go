// Package app runs a game.State inside ebiten's window loop.
package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/stefanfaur/JAPC/internal/game"
	"github.com/stefanfaur/JAPC/internal/input"
	"github.com/stefanfaur/JAPC/internal/render"
)

// Controls is the per-frame input the window loop reads.
type Controls interface {
	game.InputSource
	FullscreenToggled() bool
}

// Game adapts game.State to ebiten.Game.
type Game struct {
	state      *game.State
	screen     *render.Screen
	keys       Controls
	fullscreen bool
}

func New(state *game.State, screen *render.Screen) *Game {
	return &Game{state: state, screen: screen, keys: input.Keyboard{}}
}

func (g *Game) Update() error {
	if g.keys.FullscreenToggled() {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	if err := g.state.Update(g.keys); err != nil {
		if errors.Is(err, game.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Bind(screen)
	g.state.Render(g.screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.state.ScreenWidth(), g.state.ScreenHeight()
}

// Run opens the window and blocks until the player quits. A normal quit
// returns nil.
func Run(g *Game, title string, scale int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.state.ScreenWidth()*scale, g.state.ScreenHeight()*scale)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil {
		return errors.Wrap(err, "run game")
	}
	return nil
}
