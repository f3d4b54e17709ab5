// Package render draws game frames onto an ebiten image.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Screen implements game.Renderer. Bind it to the frame's target image
// before drawing; the face is owned by the caller.
type Screen struct {
	dst    *ebiten.Image
	face   font.Face
	ascent int
}

func NewScreen(face font.Face) *Screen {
	return &Screen{face: face, ascent: face.Metrics().Ascent.Ceil()}
}

func (s *Screen) Bind(dst *ebiten.Image) { s.dst = dst }

func (s *Screen) Clear(c color.Color) {
	s.dst.Fill(c)
}

func (s *Screen) FillRect(r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

// DrawText places the top-left of the text at (x, y).
func (s *Screen) DrawText(str string, x, y int, c color.Color) {
	text.Draw(s.dst, str, s.face, x, y+s.ascent, c)
}

// Present releases the target; ebiten shows the frame once Draw returns.
func (s *Screen) Present() {
	s.dst = nil
}
