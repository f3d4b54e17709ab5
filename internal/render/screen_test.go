package render

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

func TestNewScreenUsesFaceAscent(t *testing.T) {
	s := NewScreen(basicfont.Face7x13)
	if s.ascent != 11 {
		t.Fatalf("expected ascent 11 for the 7x13 face, got %d", s.ascent)
	}
}

func TestFillRectSkipsEmptyRect(t *testing.T) {
	s := NewScreen(basicfont.Face7x13)
	// Unbound: anything other than an early return would dereference nil.
	s.FillRect(image.Rect(5, 5, 5, 20), colornames.White)
	s.FillRect(image.Rectangle{}, colornames.White)
}

func TestScreenDrawsFrame(t *testing.T) {
	s := NewScreen(basicfont.Face7x13)
	dst := ebiten.NewImage(64, 48)
	s.Bind(dst)
	s.Clear(colornames.Black)
	s.FillRect(image.Rect(0, 0, 32, 32), colornames.Blue)
	s.DrawText("Score 0", 10, 10, colornames.White)
	s.Present()
	if s.dst != nil {
		t.Fatalf("Present should release the target")
	}
}
