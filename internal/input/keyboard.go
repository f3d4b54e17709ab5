// Package input reads the keyboard through ebiten.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/stefanfaur/JAPC/internal/entities"
	"github.com/stefanfaur/JAPC/internal/game"
)

var dirKeys = map[entities.Direction][]ebiten.Key{
	entities.DirUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	entities.DirDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	entities.DirLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	entities.DirRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

var actionKeys = map[game.Action][]ebiten.Key{
	game.ActionPause: {ebiten.KeySpace},
}

// Keyboard implements game.InputSource. The window close button counts as a
// quit only when ebiten.SetWindowClosingHandled(true) is set.
type Keyboard struct{}

func (Keyboard) Pressed(dir entities.Direction) bool {
	for _, k := range dirKeys[dir] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (Keyboard) JustPressed(a game.Action) bool {
	for _, k := range actionKeys[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (Keyboard) QuitRequested() bool {
	return ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

// FullscreenToggled reports a press of F this frame.
func (Keyboard) FullscreenToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF)
}
